package usecase

import (
	"context"

	"github.com/OwlPharaoh20/Personal-AI-Voice-Assistant/pkg/entity/model"
	"github.com/OwlPharaoh20/Personal-AI-Voice-Assistant/pkg/usecase/repository"
)

type reminderUseCase struct {
	reminderRepository repository.Reminder
}

type Reminder interface {
	Create(ctx context.Context, input model.CreateReminderInput) (*model.Reminder, error)
	List(ctx context.Context) ([]model.Reminder, error)
	Delete(ctx context.Context, id int) error
}

// This function creates new reminder use case
func NewReminderUseCase(r repository.Reminder) Reminder {
	return &reminderUseCase{reminderRepository: r}
}

func (u *reminderUseCase) Create(
	ctx context.Context,
	input model.CreateReminderInput,
) (*model.Reminder, error) {
	return u.reminderRepository.Create(ctx, input)
}

func (u *reminderUseCase) List(ctx context.Context) ([]model.Reminder, error) {
	return u.reminderRepository.List(ctx)
}

func (u *reminderUseCase) Delete(ctx context.Context, id int) error {
	return u.reminderRepository.Delete(ctx, id)
}
