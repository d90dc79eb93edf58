package controller

import (
	"context"

	"github.com/OwlPharaoh20/Personal-AI-Voice-Assistant/pkg/entity/model"
	usecase "github.com/OwlPharaoh20/Personal-AI-Voice-Assistant/pkg/usecase/usecase/reminder"
)

type Reminder interface {
	Create(ctx context.Context, input model.CreateReminderInput) (*model.Reminder, error)
	List(ctx context.Context) ([]model.Reminder, error)
	Delete(ctx context.Context, id int) error
}

type reminderController struct {
	reminderUseCase usecase.Reminder
}

// Create new reminder controller

func NewReminderController(ru usecase.Reminder) Reminder {
	return &reminderController{reminderUseCase: ru}
}

func (rc *reminderController) Create(
	ctx context.Context,
	input model.CreateReminderInput,
) (*model.Reminder, error) {
	return rc.reminderUseCase.Create(ctx, input)
}

func (rc *reminderController) List(ctx context.Context) ([]model.Reminder, error) {
	return rc.reminderUseCase.List(ctx)
}

func (rc *reminderController) Delete(ctx context.Context, id int) error {
	return rc.reminderUseCase.Delete(ctx, id)
}
