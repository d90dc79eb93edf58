package controller

import (
	"context"

	"github.com/OwlPharaoh20/Personal-AI-Voice-Assistant/pkg/entity/model"
	usecase "github.com/OwlPharaoh20/Personal-AI-Voice-Assistant/pkg/usecase/usecase/todo"
)

type Todo interface {
	Create(ctx context.Context, input model.CreateTodoInput) (*model.Todo, error)
	List(ctx context.Context) ([]model.Todo, error)
	Complete(ctx context.Context, id int) (*model.Todo, error)
	Delete(ctx context.Context, id int) error
}

type todoController struct {
	todoUseCase usecase.Todo
}

// Create new todo controller

func NewTodoController(tu usecase.Todo) Todo {
	return &todoController{todoUseCase: tu}
}

func (tc *todoController) Create(
	ctx context.Context,
	input model.CreateTodoInput,
) (*model.Todo, error) {
	return tc.todoUseCase.Create(ctx, input)
}

func (tc *todoController) List(ctx context.Context) ([]model.Todo, error) {
	return tc.todoUseCase.List(ctx)
}

func (tc *todoController) Complete(ctx context.Context, id int) (*model.Todo, error) {
	return tc.todoUseCase.Complete(ctx, id)
}

func (tc *todoController) Delete(ctx context.Context, id int) error {
	return tc.todoUseCase.Delete(ctx, id)
}
