package webhook

import (
	"context"

	"github.com/labstack/echo/v4"

	"github.com/OwlPharaoh20/Personal-AI-Voice-Assistant/pkg/entity/model"
)

// AddReminder handles POST /add_reminder/.
func (h *Handler) AddReminder(c echo.Context) error {
	return dispatch(c, functionAddReminder, func(ctx context.Context, call model.ToolCall) (interface{}, error) {
		var input model.CreateReminderInput
		if err := call.Function.DecodeArguments(&input); err != nil {
			return nil, err
		}
		if input.ReminderText == "" || input.Importance == "" {
			return nil, model.NewValidationError("Missing required fields")
		}

		return h.ctrl.Reminder.Create(ctx, input)
	})
}

// GetReminders handles POST /get_reminders/.
func (h *Handler) GetReminders(c echo.Context) error {
	return dispatch(c, functionGetReminders, func(ctx context.Context, call model.ToolCall) (interface{}, error) {
		return h.ctrl.Reminder.List(ctx)
	})
}

// DeleteReminder handles POST /delete_reminder/.
func (h *Handler) DeleteReminder(c echo.Context) error {
	return dispatch(c, functionDeleteReminder, func(ctx context.Context, call model.ToolCall) (interface{}, error) {
		var args idArguments
		if err := call.Function.DecodeArguments(&args); err != nil {
			return nil, err
		}
		if args.ID == 0 {
			return nil, model.NewValidationError("Missing reminder ID")
		}

		if err := h.ctrl.Reminder.Delete(ctx, args.ID); err != nil {
			return nil, err
		}
		return deleteAck{ID: args.ID, Deleted: true}, nil
	})
}
