package usecase

import (
	"context"

	"github.com/OwlPharaoh20/Personal-AI-Voice-Assistant/pkg/entity/model"
	"github.com/OwlPharaoh20/Personal-AI-Voice-Assistant/pkg/usecase/repository"
)

type todoUseCase struct {
	todoRepository repository.Todo
}

type Todo interface {
	Create(ctx context.Context, input model.CreateTodoInput) (*model.Todo, error)
	List(ctx context.Context) ([]model.Todo, error)
	Complete(ctx context.Context, id int) (*model.Todo, error)
	Delete(ctx context.Context, id int) error
}

// This function creates new todo use case
func NewTodoUseCase(r repository.Todo) Todo {
	return &todoUseCase{todoRepository: r}
}

func (t *todoUseCase) Create(
	ctx context.Context,
	input model.CreateTodoInput,
) (*model.Todo, error) {
	return t.todoRepository.Create(ctx, input)
}

func (t *todoUseCase) List(ctx context.Context) ([]model.Todo, error) {
	return t.todoRepository.List(ctx)
}

func (t *todoUseCase) Complete(ctx context.Context, id int) (*model.Todo, error) {
	return t.todoRepository.Complete(ctx, id)
}

func (t *todoUseCase) Delete(ctx context.Context, id int) error {
	return t.todoRepository.Delete(ctx, id)
}
