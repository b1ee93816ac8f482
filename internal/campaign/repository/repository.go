package repository

import "donorhub-backend/internal/campaign/domain"

// CampaignFilters are combined with AND; nil fields are ignored.
type CampaignFilters struct {
	UserID *string
	Status *domain.Status
}

// CampaignRepository is the only layer allowed to query the campaigns table.
type CampaignRepository interface {
	Find(filters CampaignFilters) ([]*domain.Campaign, error)
	FindByID(id string) (*domain.Campaign, error)
	Create(campaign *domain.Campaign) error
	Update(id string, updates map[string]interface{}) (*domain.Campaign, error)
	Delete(id string) (*domain.Campaign, error)
}
