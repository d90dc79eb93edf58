package controller

import (
	"context"

	"github.com/OwlPharaoh20/Personal-AI-Voice-Assistant/pkg/entity/model"
	usecase "github.com/OwlPharaoh20/Personal-AI-Voice-Assistant/pkg/usecase/usecase/calendarevent"
)

type CalendarEvent interface {
	Create(ctx context.Context, input model.CreateCalendarEventInput) (*model.CalendarEvent, error)
	List(ctx context.Context) ([]model.CalendarEvent, error)
	Delete(ctx context.Context, id int) error
}

type calendarEventController struct {
	calendarEventUseCase usecase.CalendarEvent
}

// Create new calendar event controller

func NewCalendarEventController(cu usecase.CalendarEvent) CalendarEvent {
	return &calendarEventController{calendarEventUseCase: cu}
}

func (cc *calendarEventController) Create(
	ctx context.Context,
	input model.CreateCalendarEventInput,
) (*model.CalendarEvent, error) {
	return cc.calendarEventUseCase.Create(ctx, input)
}

func (cc *calendarEventController) List(ctx context.Context) ([]model.CalendarEvent, error) {
	return cc.calendarEventUseCase.List(ctx)
}

func (cc *calendarEventController) Delete(ctx context.Context, id int) error {
	return cc.calendarEventUseCase.Delete(ctx, id)
}
