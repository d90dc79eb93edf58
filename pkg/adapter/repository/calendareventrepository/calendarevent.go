package calendareventrepository

import (
	"github.com/jmoiron/sqlx"

	ur "github.com/OwlPharaoh20/Personal-AI-Voice-Assistant/pkg/usecase/repository"
)

type calendarEventRepository struct {
	db *sqlx.DB
}

func NewCalendarEventRepository(db *sqlx.DB) ur.CalendarEvent {
	return &calendarEventRepository{db}
}
