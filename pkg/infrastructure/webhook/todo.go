package webhook

import (
	"context"

	"github.com/labstack/echo/v4"

	"github.com/OwlPharaoh20/Personal-AI-Voice-Assistant/pkg/entity/model"
)

// CreateTodo handles POST /create_todo/.
func (h *Handler) CreateTodo(c echo.Context) error {
	return dispatch(c, functionCreateTodo, func(ctx context.Context, call model.ToolCall) (interface{}, error) {
		var input model.CreateTodoInput
		if err := call.Function.DecodeArguments(&input); err != nil {
			return nil, err
		}
		if input.Title == "" {
			return nil, model.NewValidationError("Missing required fields")
		}

		if _, err := h.ctrl.Todo.Create(ctx, input); err != nil {
			return nil, err
		}
		return "success", nil
	})
}

// GetTodos handles POST /get_todos/.
func (h *Handler) GetTodos(c echo.Context) error {
	return dispatch(c, functionGetTodos, func(ctx context.Context, call model.ToolCall) (interface{}, error) {
		return h.ctrl.Todo.List(ctx)
	})
}

// CompleteTodo handles POST /complete_todo/.
func (h *Handler) CompleteTodo(c echo.Context) error {
	return dispatch(c, functionCompleteTodo, func(ctx context.Context, call model.ToolCall) (interface{}, error) {
		var args idArguments
		if err := call.Function.DecodeArguments(&args); err != nil {
			return nil, err
		}
		if args.ID == 0 {
			return nil, model.NewValidationError("Missing To-Do ID")
		}

		if _, err := h.ctrl.Todo.Complete(ctx, args.ID); err != nil {
			return nil, err
		}
		return "success", nil
	})
}

// DeleteTodo handles POST /delete_todo/.
func (h *Handler) DeleteTodo(c echo.Context) error {
	return dispatch(c, functionDeleteTodo, func(ctx context.Context, call model.ToolCall) (interface{}, error) {
		var args idArguments
		if err := call.Function.DecodeArguments(&args); err != nil {
			return nil, err
		}
		if args.ID == 0 {
			return nil, model.NewValidationError("Missing To-Do ID")
		}

		if err := h.ctrl.Todo.Delete(ctx, args.ID); err != nil {
			return nil, err
		}
		return "success", nil
	})
}
