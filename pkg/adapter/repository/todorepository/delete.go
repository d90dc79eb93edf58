package todorepository

import (
	"context"

	"github.com/OwlPharaoh20/Personal-AI-Voice-Assistant/pkg/entity/model"
)

func (r *todoRepository) Delete(ctx context.Context, id int) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM todos WHERE id = ?", id)
	if err != nil {
		return model.NewDBError(err)
	}

	rows, _ := res.RowsAffected()
	if rows == 0 {
		return model.NewNotFoundError("Todo not found")
	}

	return nil
}
