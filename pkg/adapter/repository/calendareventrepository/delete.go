package calendareventrepository

import (
	"context"

	"github.com/OwlPharaoh20/Personal-AI-Voice-Assistant/pkg/entity/model"
)

func (r *calendarEventRepository) Delete(ctx context.Context, id int) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM calendar_events WHERE id = ?", id)
	if err != nil {
		return model.NewDBError(err)
	}

	rows, _ := res.RowsAffected()
	if rows == 0 {
		return model.NewNotFoundError("Calendar event not found")
	}

	return nil
}
