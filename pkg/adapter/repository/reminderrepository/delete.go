package reminderrepository

import (
	"context"

	"github.com/OwlPharaoh20/Personal-AI-Voice-Assistant/pkg/entity/model"
)

func (r *reminderRepository) Delete(ctx context.Context, id int) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM reminders WHERE id = ?", id)
	if err != nil {
		return model.NewDBError(err)
	}

	rows, _ := res.RowsAffected()
	if rows == 0 {
		return model.NewNotFoundError("Reminder not found")
	}

	return nil
}
