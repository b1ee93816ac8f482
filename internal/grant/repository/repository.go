package repository

import "donorhub-backend/internal/grant/domain"

// GrantFilters are combined with AND; nil fields are ignored.
type GrantFilters struct {
	UserID *string
	Status *domain.Status
}

// GrantRepository is the only layer allowed to query the grants table.
type GrantRepository interface {
	Find(filters GrantFilters) ([]*domain.Grant, error)
	FindByID(id string) (*domain.Grant, error)
	Create(grant *domain.Grant) error
	Update(id string, updates map[string]interface{}) (*domain.Grant, error)
	Delete(id string) (*domain.Grant, error)
}
