//go:generate mockgen -source=todo.go -destination=./mocks/todo_repository_mock.go -package=mocks
package repository

import (
	"context"

	"github.com/OwlPharaoh20/Personal-AI-Voice-Assistant/pkg/entity/model"
)

// Todo is an interface of repository

type Todo interface {
	Create(ctx context.Context, input model.CreateTodoInput) (*model.Todo, error)
	List(ctx context.Context) ([]model.Todo, error)
	Complete(ctx context.Context, id int) (*model.Todo, error)
	Delete(ctx context.Context, id int) error
}
