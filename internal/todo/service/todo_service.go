package service

import (
	"strings"
	"time"

	autherror "github.com/AnthoniusHendriyanto/todo-service/internal/errors"
	"github.com/AnthoniusHendriyanto/todo-service/internal/todo/domain"
	"github.com/AnthoniusHendriyanto/todo-service/internal/todo/dto"
	"github.com/AnthoniusHendriyanto/todo-service/pkg/constant"
	"github.com/google/uuid"
)

// TodoService owns every todo operation reachable from a handler. Each call
// is scoped by the caller's resolved user id; a todo that exists but belongs
// to someone else is reported as not found, never as forbidden, so ownership
// is not revealed through the error shape.
type TodoService struct {
	repo domain.TodoRepository
}

func NewTodoService(repo domain.TodoRepository) *TodoService {
	return &TodoService{repo: repo}
}

// Pagination describes the slice of the filtered sequence a List call
// returned.
type Pagination struct {
	CurrentPage  int
	TotalPages   int
	TotalItems   int
	ItemsPerPage int
}

// List returns one page of the caller's todos, filtered then sliced in
// insertion order. Page is 1-based; limit defaults to 10 and is capped at
// 100. Pages past the end yield an empty slice, not an error.
func (s *TodoService) List(userID string, filter domain.Filter, page, limit int) ([]*domain.Todo, Pagination, error) {
	if filter.Status != "" && !filter.Status.Valid() {
		return nil, Pagination{}, autherror.ErrInvalidStatus
	}
	if filter.Priority != "" && !filter.Priority.Valid() {
		return nil, Pagination{}, autherror.ErrInvalidPriority
	}

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = constant.DefaultPageLimit
	}
	if limit > constant.MaxPageLimit {
		limit = constant.MaxPageLimit
	}

	todos, err := s.repo.FindByOwner(userID, filter)
	if err != nil {
		return nil, Pagination{}, err
	}

	total := len(todos)
	totalPages := (total + limit - 1) / limit

	start := (page - 1) * limit
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}

	return todos[start:end], Pagination{
		CurrentPage:  page,
		TotalPages:   totalPages,
		TotalItems:   total,
		ItemsPerPage: limit,
	}, nil
}

// Get fetches one todo by id within the caller's scope.
func (s *TodoService) Get(userID, id string) (*domain.Todo, error) {
	todo, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if todo == nil || todo.UserID != userID {
		return nil, autherror.ErrTodoNotFound
	}

	return todo, nil
}

// Create stores a new todo for the caller. Title is required; status and
// priority fall back to pending/medium when omitted.
func (s *TodoService) Create(userID string, input dto.CreateTodoInput) (*domain.Todo, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, autherror.ErrTitleRequired
	}

	status := domain.StatusPending
	if input.Status != "" {
		status = domain.Status(input.Status)
		if !status.Valid() {
			return nil, autherror.ErrInvalidStatus
		}
	}

	priority := domain.PriorityMedium
	if input.Priority != "" {
		priority = domain.Priority(input.Priority)
		if !priority.Valid() {
			return nil, autherror.ErrInvalidPriority
		}
	}

	now := time.Now()

	todo := &domain.Todo{
		ID:          uuid.NewString(),
		UserID:      userID,
		Title:       input.Title,
		Description: input.Description,
		Status:      status,
		Priority:    priority,
		DueDate:     input.DueDate,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Create(todo); err != nil {
		return nil, err
	}

	return todo, nil
}

// Update merges the provided fields into the caller's todo.
func (s *TodoService) Update(userID, id string, input dto.UpdateTodoInput) (*domain.Todo, error) {
	if _, err := s.Get(userID, id); err != nil {
		return nil, err
	}

	update := domain.TodoUpdate{
		Description: input.Description,
		DueDate:     input.DueDate,
	}

	if input.Title != nil {
		if strings.TrimSpace(*input.Title) == "" {
			return nil, autherror.ErrTitleRequired
		}
		update.Title = input.Title
	}
	if input.Status != nil {
		status := domain.Status(*input.Status)
		if !status.Valid() {
			return nil, autherror.ErrInvalidStatus
		}
		update.Status = &status
	}
	if input.Priority != nil {
		priority := domain.Priority(*input.Priority)
		if !priority.Valid() {
			return nil, autherror.ErrInvalidPriority
		}
		update.Priority = &priority
	}

	updated, err := s.repo.Update(id, update)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, autherror.ErrTodoNotFound
	}

	return updated, nil
}

// Delete removes the caller's todo by id.
func (s *TodoService) Delete(userID, id string) error {
	if _, err := s.Get(userID, id); err != nil {
		return err
	}

	if !s.repo.Delete(id) {
		return autherror.ErrTodoNotFound
	}

	return nil
}
