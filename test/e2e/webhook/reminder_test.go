package webhook_test

import (
	"net/http"
	"testing"

	"github.com/gavv/httpexpect/v2"
	"github.com/jmoiron/sqlx"

	"github.com/OwlPharaoh20/Personal-AI-Voice-Assistant/testutil"
	"github.com/OwlPharaoh20/Personal-AI-Voice-Assistant/testutil/e2e"
)

func TestReminder_Add(t *testing.T) {
	expect, _, teardown := e2e.Setup(t, e2e.SetupOption{
		TearDown: func(t *testing.T, db *sqlx.DB) {
			testutil.DropReminder(t, db)
		},
	})
	defer teardown()

	tests := []struct {
		name   string
		act    func(t *testing.T) *httpexpect.Response
		assert func(t *testing.T, got *httpexpect.Response)
	}{
		{
			name: "It should create a reminder and return the record",
			act: func(t *testing.T) *httpexpect.Response {
				return expect.POST("/add_reminder/").
					WithJSON(e2e.Envelope("call-1", "addReminder", map[string]any{
						"reminder_text": "Call the dentist",
						"importance":    "high",
					})).
					Expect()
			},
			assert: func(t *testing.T, got *httpexpect.Response) {
				got.Status(http.StatusOK)
				result := got.JSON().Object().Value("results").Array().Value(0).Object()
				result.Value("toolCallId").String().IsEqual("call-1")
				reminder := result.Value("result").Object()
				reminder.Value("id").Number().Gt(0)
				reminder.Value("reminder_text").String().IsEqual("Call the dentist")
				reminder.Value("importance").String().IsEqual("high")
			},
		},
		{
			name: "It should reject missing required fields",
			act: func(t *testing.T) *httpexpect.Response {
				return expect.POST("/add_reminder/").
					WithJSON(e2e.Envelope(e2e.NewToolCallID(), "addReminder", map[string]any{
						"reminder_text": "Call the dentist",
					})).
					Expect()
			},
			assert: func(t *testing.T, got *httpexpect.Response) {
				got.Status(http.StatusBadRequest)
				got.JSON().Object().Value("message").String().IsEqual("Missing required fields")
			},
		},
		{
			name: "It should accept string-encoded arguments",
			act: func(t *testing.T) *httpexpect.Response {
				return expect.POST("/add_reminder/").
					WithJSON(e2e.Envelope(e2e.NewToolCallID(), "addReminder",
						`{"reminder_text":"Water the plants","importance":"low"}`)).
					Expect()
			},
			assert: func(t *testing.T, got *httpexpect.Response) {
				got.Status(http.StatusOK)
				got.JSON().Object().Value("results").Array().
					Value(0).Object().Value("result").Object().
					Value("importance").String().IsEqual("low")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.act(t)
			tt.assert(t, got)
		})
	}
}

func TestReminder_ListAndDelete(t *testing.T) {
	expect, _, teardown := e2e.Setup(t, e2e.SetupOption{})
	defer teardown()

	expect.POST("/get_reminders/").
		WithJSON(e2e.Envelope(e2e.NewToolCallID(), "getReminders", nil)).
		Expect().
		Status(http.StatusOK).
		JSON().Object().Value("results").Array().
		Value(0).Object().Value("result").Array().IsEmpty()

	created := expect.POST("/add_reminder/").
		WithJSON(e2e.Envelope(e2e.NewToolCallID(), "addReminder", map[string]any{
			"reminder_text": "Call the dentist",
			"importance":    "high",
		})).
		Expect().
		Status(http.StatusOK).
		JSON().Object().Value("results").Array().
		Value(0).Object().Value("result").Object()
	id := int(created.Value("id").Number().Raw())

	expect.POST("/get_reminders/").
		WithJSON(e2e.Envelope(e2e.NewToolCallID(), "getReminders", nil)).
		Expect().
		Status(http.StatusOK).
		JSON().Object().Value("results").Array().
		Value(0).Object().Value("result").Array().Length().IsEqual(1)

	ack := expect.POST("/delete_reminder/").
		WithJSON(e2e.Envelope(e2e.NewToolCallID(), "deleteReminder", map[string]any{"id": id})).
		Expect().
		Status(http.StatusOK).
		JSON().Object().Value("results").Array().
		Value(0).Object().Value("result").Object()
	ack.Value("id").Number().IsEqual(id)
	ack.Value("deleted").Boolean().IsTrue()

	expect.POST("/delete_reminder/").
		WithJSON(e2e.Envelope(e2e.NewToolCallID(), "deleteReminder", map[string]any{"id": id})).
		Expect().
		Status(http.StatusNotFound).
		JSON().Object().Value("message").String().IsEqual("Reminder not found")

	expect.POST("/delete_reminder/").
		WithJSON(e2e.Envelope(e2e.NewToolCallID(), "deleteReminder", map[string]any{})).
		Expect().
		Status(http.StatusBadRequest).
		JSON().Object().Value("message").String().IsEqual("Missing reminder ID")
}
