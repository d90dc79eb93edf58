package calendareventrepository

import (
	"context"

	"github.com/OwlPharaoh20/Personal-AI-Voice-Assistant/pkg/entity/model"
)

func (r *calendarEventRepository) Create(
	ctx context.Context,
	input model.CreateCalendarEventInput,
) (*model.CalendarEvent, error) {
	res, err := r.db.ExecContext(ctx,
		"INSERT INTO calendar_events (title, description, event_from, event_to) VALUES (?, ?, ?, ?)",
		input.Title, input.Description, input.EventFrom.UTC(), input.EventTo.UTC(),
	)
	if err != nil {
		return nil, model.NewDBError(err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, model.NewDBError(err)
	}

	return &model.CalendarEvent{
		ID:          int(id),
		Title:       input.Title,
		Description: input.Description,
		EventFrom:   input.EventFrom,
		EventTo:     input.EventTo,
	}, nil
}
