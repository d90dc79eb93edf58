package registry

import (
	"github.com/OwlPharaoh20/Personal-AI-Voice-Assistant/pkg/adapter/controller"
	todorepository "github.com/OwlPharaoh20/Personal-AI-Voice-Assistant/pkg/adapter/repository/todorepository"
	usecase "github.com/OwlPharaoh20/Personal-AI-Voice-Assistant/pkg/usecase/usecase/todo"
)

func (r *registry) NewTodoController() controller.Todo {
	repo := todorepository.NewTodoRepository(r.db)
	u := usecase.NewTodoUseCase(repo)

	return controller.NewTodoController(u)
}
