package usecase

import (
	"context"

	"github.com/OwlPharaoh20/Personal-AI-Voice-Assistant/pkg/entity/model"
	"github.com/OwlPharaoh20/Personal-AI-Voice-Assistant/pkg/usecase/repository"
)

type calendarEventUseCase struct {
	calendarEventRepository repository.CalendarEvent
}

type CalendarEvent interface {
	Create(ctx context.Context, input model.CreateCalendarEventInput) (*model.CalendarEvent, error)
	List(ctx context.Context) ([]model.CalendarEvent, error)
	Delete(ctx context.Context, id int) error
}

// This function creates new calendar event use case
func NewCalendarEventUseCase(r repository.CalendarEvent) CalendarEvent {
	return &calendarEventUseCase{calendarEventRepository: r}
}

func (u *calendarEventUseCase) Create(
	ctx context.Context,
	input model.CreateCalendarEventInput,
) (*model.CalendarEvent, error) {
	return u.calendarEventRepository.Create(ctx, input)
}

func (u *calendarEventUseCase) List(ctx context.Context) ([]model.CalendarEvent, error) {
	return u.calendarEventRepository.List(ctx)
}

func (u *calendarEventUseCase) Delete(ctx context.Context, id int) error {
	return u.calendarEventRepository.Delete(ctx, id)
}
