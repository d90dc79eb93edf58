package reminderrepository

import (
	"context"

	"github.com/OwlPharaoh20/Personal-AI-Voice-Assistant/pkg/entity/model"
)

func (r *reminderRepository) Create(
	ctx context.Context,
	input model.CreateReminderInput,
) (*model.Reminder, error) {
	res, err := r.db.ExecContext(ctx,
		"INSERT INTO reminders (reminder_text, importance) VALUES (?, ?)",
		input.ReminderText, input.Importance,
	)
	if err != nil {
		return nil, model.NewDBError(err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, model.NewDBError(err)
	}

	return &model.Reminder{
		ID:           int(id),
		ReminderText: input.ReminderText,
		Importance:   input.Importance,
	}, nil
}
