package webhook

import (
	"context"

	"github.com/labstack/echo/v4"

	"github.com/OwlPharaoh20/Personal-AI-Voice-Assistant/pkg/entity/model"
	"github.com/OwlPharaoh20/Personal-AI-Voice-Assistant/pkg/util/datetime"
)

// calendarEntryArguments is the raw argument shape of addCalendarEntry;
// timestamps arrive as ISO-8601 strings.
type calendarEntryArguments struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	EventFrom   string `json:"event_from"`
	EventTo     string `json:"event_to"`
}

// AddCalendarEntry handles POST /add_calendar_entry/.
func (h *Handler) AddCalendarEntry(c echo.Context) error {
	return dispatch(c, functionAddCalendarEntry, func(ctx context.Context, call model.ToolCall) (interface{}, error) {
		var args calendarEntryArguments
		if err := call.Function.DecodeArguments(&args); err != nil {
			return nil, err
		}
		if args.Title == "" || args.EventFrom == "" || args.EventTo == "" {
			return nil, model.NewValidationError("Missing required fields")
		}

		eventFrom, err := datetime.ParseISO(args.EventFrom)
		if err != nil {
			return nil, model.NewValidationError("Invalid date format. Use ISO format.")
		}
		eventTo, err := datetime.ParseISO(args.EventTo)
		if err != nil {
			return nil, model.NewValidationError("Invalid date format. Use ISO format.")
		}

		return h.ctrl.CalendarEvent.Create(ctx, model.CreateCalendarEventInput{
			Title:       args.Title,
			Description: args.Description,
			EventFrom:   eventFrom,
			EventTo:     eventTo,
		})
	})
}

// GetCalendarEntries handles POST /get_calendar_entries/.
func (h *Handler) GetCalendarEntries(c echo.Context) error {
	return dispatch(c, functionGetCalendarEntries, func(ctx context.Context, call model.ToolCall) (interface{}, error) {
		return h.ctrl.CalendarEvent.List(ctx)
	})
}

// DeleteCalendarEntry handles POST /delete_calendar_entry/.
func (h *Handler) DeleteCalendarEntry(c echo.Context) error {
	return dispatch(c, functionDeleteCalendarEntry, func(ctx context.Context, call model.ToolCall) (interface{}, error) {
		var args idArguments
		if err := call.Function.DecodeArguments(&args); err != nil {
			return nil, err
		}
		if args.ID == 0 {
			return nil, model.NewValidationError("Missing event ID")
		}

		if err := h.ctrl.CalendarEvent.Delete(ctx, args.ID); err != nil {
			return nil, err
		}
		return deleteAck{ID: args.ID, Deleted: true}, nil
	})
}
