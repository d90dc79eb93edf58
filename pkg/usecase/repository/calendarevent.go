//go:generate mockgen -source=calendarevent.go -destination=./mocks/calendarevent_repository_mock.go -package=mocks
package repository

import (
	"context"

	"github.com/OwlPharaoh20/Personal-AI-Voice-Assistant/pkg/entity/model"
)

// CalendarEvent is an interface of repository

type CalendarEvent interface {
	Create(ctx context.Context, input model.CreateCalendarEventInput) (*model.CalendarEvent, error)
	List(ctx context.Context) ([]model.CalendarEvent, error)
	Delete(ctx context.Context, id int) error
}
