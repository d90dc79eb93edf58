package calendareventrepository

import (
	"context"

	"github.com/OwlPharaoh20/Personal-AI-Voice-Assistant/pkg/entity/model"
)

func (r *calendarEventRepository) List(ctx context.Context) ([]model.CalendarEvent, error) {
	events := []model.CalendarEvent{}
	err := r.db.SelectContext(ctx, &events,
		"SELECT id, title, description, event_from, event_to FROM calendar_events")
	if err != nil {
		return nil, model.NewDBError(err)
	}

	return events, nil
}
