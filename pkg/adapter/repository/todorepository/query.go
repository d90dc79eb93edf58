package todorepository

import (
	"context"
	"database/sql"

	"github.com/pkg/errors"

	"github.com/OwlPharaoh20/Personal-AI-Voice-Assistant/pkg/entity/model"
)

func (r *todoRepository) List(ctx context.Context) ([]model.Todo, error) {
	todos := []model.Todo{}
	err := r.db.SelectContext(ctx, &todos,
		"SELECT id, title, description, completed FROM todos")
	if err != nil {
		return nil, model.NewDBError(err)
	}

	return todos, nil
}

// get looks a todo up by id, mapping sql.ErrNoRows to NotFound.
func (r *todoRepository) get(ctx context.Context, id int) (*model.Todo, error) {
	var todo model.Todo
	err := r.db.GetContext(ctx, &todo,
		"SELECT id, title, description, completed FROM todos WHERE id = ?", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, model.NewNotFoundError("Todo not found")
		}
		return nil, model.NewDBError(err)
	}

	return &todo, nil
}
