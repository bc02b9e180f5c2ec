package dto

import (
	"time"

	"github.com/AnthoniusHendriyanto/todo-service/internal/todo/domain"
)

type CreateTodoInput struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Status      string     `json:"status"`
	Priority    string     `json:"priority"`
	DueDate     *time.Time `json:"dueDate"`
}

// UpdateTodoInput carries a partial todo update. Nil fields are left
// unchanged.
type UpdateTodoInput struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	Status      *string    `json:"status"`
	Priority    *string    `json:"priority"`
	DueDate     *time.Time `json:"dueDate"`
}

type TodoOutput struct {
	ID          string     `json:"id"`
	UserID      string     `json:"user_id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Status      string     `json:"status"`
	Priority    string     `json:"priority"`
	DueDate     *time.Time `json:"dueDate,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

type PaginationOutput struct {
	CurrentPage  int `json:"currentPage"`
	TotalPages   int `json:"totalPages"`
	TotalItems   int `json:"totalItems"`
	ItemsPerPage int `json:"itemsPerPage"`
}

type ListTodosOutput struct {
	Todos      []TodoOutput     `json:"todos"`
	Pagination PaginationOutput `json:"pagination"`
}

func ToTodoOutput(t *domain.Todo) TodoOutput {
	return TodoOutput{
		ID:          t.ID,
		UserID:      t.UserID,
		Title:       t.Title,
		Description: t.Description,
		Status:      string(t.Status),
		Priority:    string(t.Priority),
		DueDate:     t.DueDate,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

func ToTodoOutputs(todos []*domain.Todo) []TodoOutput {
	out := make([]TodoOutput, 0, len(todos))
	for _, t := range todos {
		out = append(out, ToTodoOutput(t))
	}

	return out
}
