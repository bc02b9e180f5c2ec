package memory

import (
	"sync"
	"time"

	"github.com/AnthoniusHendriyanto/todo-service/internal/todo/domain"
)

// TodoRepository holds the canonical todo collection in process memory.
// Insertion order is preserved by an ordered slice; byID indexes it for
// point lookups. Returned todos are copies.
type TodoRepository struct {
	mu      sync.RWMutex
	ordered []*domain.Todo
	byID    map[string]*domain.Todo
}

func NewTodoRepository() *TodoRepository {
	return &TodoRepository{byID: make(map[string]*domain.Todo)}
}

// FindByOwner returns the owner's todos in insertion order. Set filter
// fields are AND-combined exact matches.
func (r *TodoRepository) FindByOwner(userID string, filter domain.Filter) ([]*domain.Todo, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []*domain.Todo
	for _, t := range r.ordered {
		if t.UserID != userID {
			continue
		}
		if filter.Status != "" && t.Status != filter.Status {
			continue
		}
		if filter.Priority != "" && t.Priority != filter.Priority {
			continue
		}
		result = append(result, copyTodo(t))
	}

	return result, nil
}

func (r *TodoRepository) FindByID(id string) (*domain.Todo, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.byID[id]
	if !ok {
		return nil, nil
	}

	return copyTodo(t), nil
}

func (r *TodoRepository) Create(todo *domain.Todo) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cp := copyTodo(todo)
	r.ordered = append(r.ordered, cp)
	r.byID[cp.ID] = cp

	return nil
}

// Update merges the set fields of update into the stored todo and bumps
// UpdatedAt. Returns (nil, nil) when the todo does not exist.
func (r *TodoRepository) Update(id string, update domain.TodoUpdate) (*domain.Todo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.byID[id]
	if !ok {
		return nil, nil
	}

	if update.Title != nil {
		t.Title = *update.Title
	}
	if update.Description != nil {
		t.Description = *update.Description
	}
	if update.Status != nil {
		t.Status = *update.Status
	}
	if update.Priority != nil {
		t.Priority = *update.Priority
	}
	if update.DueDate != nil {
		due := *update.DueDate
		t.DueDate = &due
	}
	t.UpdatedAt = time.Now()

	return copyTodo(t), nil
}

func (r *TodoRepository) Delete(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[id]; !ok {
		return false
	}
	delete(r.byID, id)
	for i, t := range r.ordered {
		if t.ID == id {
			r.ordered = append(r.ordered[:i], r.ordered[i+1:]...)
			break
		}
	}

	return true
}

// DeleteAllByOwner removes every todo owned by userID and reports how many
// were removed.
func (r *TodoRepository) DeleteAllByOwner(userID string) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	kept := r.ordered[:0]
	count := 0
	for _, t := range r.ordered {
		if t.UserID == userID {
			delete(r.byID, t.ID)
			count++
			continue
		}
		kept = append(kept, t)
	}
	r.ordered = kept

	return count
}

func copyTodo(t *domain.Todo) *domain.Todo {
	cp := *t
	if t.DueDate != nil {
		due := *t.DueDate
		cp.DueDate = &due
	}

	return &cp
}
