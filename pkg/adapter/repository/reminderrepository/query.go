package reminderrepository

import (
	"context"

	"github.com/OwlPharaoh20/Personal-AI-Voice-Assistant/pkg/entity/model"
)

func (r *reminderRepository) List(ctx context.Context) ([]model.Reminder, error) {
	reminders := []model.Reminder{}
	err := r.db.SelectContext(ctx, &reminders,
		"SELECT id, reminder_text, importance FROM reminders")
	if err != nil {
		return nil, model.NewDBError(err)
	}

	return reminders, nil
}
