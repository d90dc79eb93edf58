package registry

import (
	"github.com/OwlPharaoh20/Personal-AI-Voice-Assistant/pkg/adapter/controller"
	reminderrepository "github.com/OwlPharaoh20/Personal-AI-Voice-Assistant/pkg/adapter/repository/reminderrepository"
	usecase "github.com/OwlPharaoh20/Personal-AI-Voice-Assistant/pkg/usecase/usecase/reminder"
)

func (r *registry) NewReminderController() controller.Reminder {
	repo := reminderrepository.NewReminderRepository(r.db)
	u := usecase.NewReminderUseCase(repo)

	return controller.NewReminderController(u)
}
