package repository

import "donorhub-backend/internal/donor/domain"

// DonorFilters are combined with AND; nil fields are ignored.
type DonorFilters struct {
	UserID  *string
	Segment *string
}

// DonorRepository is the only layer allowed to query the donors table.
type DonorRepository interface {
	Find(filters DonorFilters) ([]*domain.Donor, error)
	FindByID(id string) (*domain.Donor, error)
	Create(donor *domain.Donor) error
	Update(id string, updates map[string]interface{}) (*domain.Donor, error)
	Delete(id string) (*domain.Donor, error)
}
