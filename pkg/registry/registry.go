package registry

import (
	"github.com/jmoiron/sqlx"

	"github.com/OwlPharaoh20/Personal-AI-Voice-Assistant/pkg/adapter/controller"
)

type registry struct {
	db *sqlx.DB
}

// Registry is an interface of registry
type Registry interface {
	NewController() controller.Controller
}

// New registers entire controller with dependencies
func New(db *sqlx.DB) Registry {
	return &registry{db: db}
}

// NewController generates controllers
func (r *registry) NewController() controller.Controller {
	return controller.Controller{
		Todo:          r.NewTodoController(),
		Reminder:      r.NewReminderController(),
		CalendarEvent: r.NewCalendarEventController(),
	}
}
