package model

// Todo is a single to-do item tracked for the user.
type Todo struct {
	ID          int    `db:"id" json:"id"`
	Title       string `db:"title" json:"title"`
	Description string `db:"description" json:"description"`
	Completed   bool   `db:"completed" json:"completed"`
}

// CreateTodoInput represents the arguments of a createTodo tool call.
type CreateTodoInput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}
