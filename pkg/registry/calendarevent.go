package registry

import (
	"github.com/OwlPharaoh20/Personal-AI-Voice-Assistant/pkg/adapter/controller"
	calendareventrepository "github.com/OwlPharaoh20/Personal-AI-Voice-Assistant/pkg/adapter/repository/calendareventrepository"
	usecase "github.com/OwlPharaoh20/Personal-AI-Voice-Assistant/pkg/usecase/usecase/calendarevent"
)

func (r *registry) NewCalendarEventController() controller.CalendarEvent {
	repo := calendareventrepository.NewCalendarEventRepository(r.db)
	u := usecase.NewCalendarEventUseCase(repo)

	return controller.NewCalendarEventController(u)
}
