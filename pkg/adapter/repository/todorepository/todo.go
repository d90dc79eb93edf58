package todorepository

import (
	"github.com/jmoiron/sqlx"

	ur "github.com/OwlPharaoh20/Personal-AI-Voice-Assistant/pkg/usecase/repository"
)

type todoRepository struct {
	db *sqlx.DB
}

func NewTodoRepository(db *sqlx.DB) ur.Todo {
	return &todoRepository{db}
}
