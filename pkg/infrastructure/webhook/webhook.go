package webhook

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/OwlPharaoh20/Personal-AI-Voice-Assistant/pkg/adapter/controller"
	"github.com/OwlPharaoh20/Personal-AI-Voice-Assistant/pkg/entity/model"
)

// Expected function name of each endpoint
const (
	functionCreateTodo          = "createTodo"
	functionGetTodos            = "getTodos"
	functionCompleteTodo        = "completeTodo"
	functionDeleteTodo          = "deleteTodo"
	functionAddReminder         = "addReminder"
	functionGetReminders        = "getReminders"
	functionDeleteReminder      = "deleteReminder"
	functionAddCalendarEntry    = "addCalendarEntry"
	functionGetCalendarEntries  = "getCalendarEntries"
	functionDeleteCalendarEntry = "deleteCalendarEntry"
)

// Handler exposes the tool-call endpoints over the controller.
type Handler struct {
	ctrl controller.Controller
}

// New creates the webhook handler
func New(ctrl controller.Controller) *Handler {
	return &Handler{ctrl: ctrl}
}

// resultFunc produces the result payload for the matched tool call.
type resultFunc func(ctx context.Context, call model.ToolCall) (interface{}, error)

// dispatch scans the envelope for the first tool call whose function name
// is fn, runs the handler and wraps its payload in the result envelope.
// Further matching calls are ignored.
func dispatch(c echo.Context, fn string, run resultFunc) error {
	var req model.WebhookRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid Request")
	}

	for _, call := range req.Message.ToolCalls {
		if call.Function.Name != fn {
			continue
		}

		result, err := run(c.Request().Context(), call)
		if err != nil {
			return httpError(err)
		}

		return c.JSON(http.StatusOK, model.WebhookResponse{
			Results: []model.ToolCallResult{
				{ToolCallID: call.ID, Result: result},
			},
		})
	}

	return httpError(model.NewInvalidRequestError())
}

// idArguments is the argument shape of the id-keyed endpoints. An absent or
// zero id counts as missing.
type idArguments struct {
	ID int `json:"id"`
}

// deleteAck acknowledges a deletion.
type deleteAck struct {
	ID      int  `json:"id"`
	Deleted bool `json:"deleted"`
}

// httpError converts a model error into an echo error carrying its status.
func httpError(err error) error {
	return echo.NewHTTPError(model.StatusCode(err), err.Error())
}
