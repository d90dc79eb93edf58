package todorepository

import (
	"context"

	"github.com/OwlPharaoh20/Personal-AI-Voice-Assistant/pkg/entity/model"
)

// Complete marks a todo as done. Completing an already completed todo is a
// no-op, not an error.
func (r *todoRepository) Complete(ctx context.Context, id int) (*model.Todo, error) {
	todo, err := r.get(ctx, id)
	if err != nil {
		return nil, err
	}

	_, err = r.db.ExecContext(ctx,
		"UPDATE todos SET completed = 1 WHERE id = ?", id)
	if err != nil {
		return nil, model.NewDBError(err)
	}

	todo.Completed = true
	return todo, nil
}
