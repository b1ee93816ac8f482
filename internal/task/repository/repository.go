package repository

import (
	"time"

	"donorhub-backend/internal/task/domain"
)

// TaskFilters are combined with AND; nil fields are ignored.
type TaskFilters struct {
	OwnerID   *string
	Completed *int
	DueAfter  *time.Time
	DueBefore *time.Time
}

// TaskRepository is the only layer allowed to query the task table.
// Lookups return (nil, nil) when nothing matches; the service decides 404.
type TaskRepository interface {
	Find(filters TaskFilters) ([]*domain.Task, error)
	FindByID(id string) (*domain.Task, error)
	FindByPersonID(personID string) ([]*domain.Task, error)
	Create(task *domain.Task) error
	// Update applies a partial column update by primary key and returns the
	// updated row, or nil if the id matched nothing. No upsert.
	Update(id string, updates map[string]interface{}) (*domain.Task, error)
	// Delete removes one row and returns its prior representation, or nil
	// if nothing matched.
	Delete(id string) (*domain.Task, error)
}
