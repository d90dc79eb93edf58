package todorepository

import (
	"context"

	"github.com/OwlPharaoh20/Personal-AI-Voice-Assistant/pkg/entity/model"
)

func (r *todoRepository) Create(
	ctx context.Context,
	input model.CreateTodoInput,
) (*model.Todo, error) {
	res, err := r.db.ExecContext(ctx,
		"INSERT INTO todos (title, description, completed) VALUES (?, ?, 0)",
		input.Title, input.Description,
	)
	if err != nil {
		return nil, model.NewDBError(err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, model.NewDBError(err)
	}

	return &model.Todo{
		ID:          int(id),
		Title:       input.Title,
		Description: input.Description,
	}, nil
}
