//go:generate mockgen -source=reminder.go -destination=./mocks/reminder_repository_mock.go -package=mocks
package repository

import (
	"context"

	"github.com/OwlPharaoh20/Personal-AI-Voice-Assistant/pkg/entity/model"
)

// Reminder is an interface of repository

type Reminder interface {
	Create(ctx context.Context, input model.CreateReminderInput) (*model.Reminder, error)
	List(ctx context.Context) ([]model.Reminder, error)
	Delete(ctx context.Context, id int) error
}
