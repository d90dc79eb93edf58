package reminderrepository

import (
	"github.com/jmoiron/sqlx"

	ur "github.com/OwlPharaoh20/Personal-AI-Voice-Assistant/pkg/usecase/repository"
)

type reminderRepository struct {
	db *sqlx.DB
}

func NewReminderRepository(db *sqlx.DB) ur.Reminder {
	return &reminderRepository{db}
}
