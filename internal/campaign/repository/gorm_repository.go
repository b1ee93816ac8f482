package repository

import (
	"time"

	"donorhub-backend/internal/campaign/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// gormCampaignRepository implements CampaignRepository using GORM
type gormCampaignRepository struct {
	db *gorm.DB
}

// NewGormCampaignRepository creates a new GORM-based CampaignRepository
func NewGormCampaignRepository(db *gorm.DB) CampaignRepository {
	return &gormCampaignRepository{db: db}
}

func (r *gormCampaignRepository) Find(filters CampaignFilters) ([]*domain.Campaign, error) {
	query := r.db.Model(&domain.Campaign{})

	if filters.UserID != nil {
		query = query.Where("user_id = ?", *filters.UserID)
	}
	if filters.Status != nil {
		query = query.Where("status = ?", *filters.Status)
	}

	var campaigns []*domain.Campaign
	err := query.Order("CASE WHEN start_date IS NULL THEN 1 ELSE 0 END, start_date DESC, created_at DESC").
		Find(&campaigns).Error
	return campaigns, err
}

func (r *gormCampaignRepository) FindByID(id string) (*domain.Campaign, error) {
	var campaign domain.Campaign
	err := r.db.Where("id = ?", id).First(&campaign).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &campaign, nil
}

func (r *gormCampaignRepository) Create(campaign *domain.Campaign) error {
	if campaign.ID == "" {
		campaign.ID = uuid.New().String()
	}
	campaign.CreatedAt = time.Now()
	campaign.UpdatedAt = time.Now()
	return r.db.Create(campaign).Error
}

func (r *gormCampaignRepository) Update(id string, updates map[string]interface{}) (*domain.Campaign, error) {
	updates["updated_at"] = time.Now()
	res := r.db.Model(&domain.Campaign{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}
	return r.FindByID(id)
}

func (r *gormCampaignRepository) Delete(id string) (*domain.Campaign, error) {
	campaign, err := r.FindByID(id)
	if err != nil {
		return nil, err
	}
	if campaign == nil {
		return nil, nil
	}
	if err := r.db.Delete(&domain.Campaign{}, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return campaign, nil
}
