package repository

import (
	"time"

	"donorhub-backend/internal/grant/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// gormGrantRepository implements GrantRepository using GORM
type gormGrantRepository struct {
	db *gorm.DB
}

// NewGormGrantRepository creates a new GORM-based GrantRepository
func NewGormGrantRepository(db *gorm.DB) GrantRepository {
	return &gormGrantRepository{db: db}
}

func (r *gormGrantRepository) Find(filters GrantFilters) ([]*domain.Grant, error) {
	query := r.db.Model(&domain.Grant{})

	if filters.UserID != nil {
		query = query.Where("user_id = ?", *filters.UserID)
	}
	if filters.Status != nil {
		query = query.Where("status = ?", *filters.Status)
	}

	var grants []*domain.Grant
	err := query.Order("CASE WHEN application_deadline IS NULL THEN 1 ELSE 0 END, application_deadline ASC, created_at DESC").
		Find(&grants).Error
	return grants, err
}

func (r *gormGrantRepository) FindByID(id string) (*domain.Grant, error) {
	var grant domain.Grant
	err := r.db.Where("id = ?", id).First(&grant).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &grant, nil
}

func (r *gormGrantRepository) Create(grant *domain.Grant) error {
	if grant.ID == "" {
		grant.ID = uuid.New().String()
	}
	grant.CreatedAt = time.Now()
	grant.UpdatedAt = time.Now()
	return r.db.Create(grant).Error
}

func (r *gormGrantRepository) Update(id string, updates map[string]interface{}) (*domain.Grant, error) {
	updates["updated_at"] = time.Now()
	res := r.db.Model(&domain.Grant{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}
	return r.FindByID(id)
}

func (r *gormGrantRepository) Delete(id string) (*domain.Grant, error) {
	grant, err := r.FindByID(id)
	if err != nil {
		return nil, err
	}
	if grant == nil {
		return nil, nil
	}
	if err := r.db.Delete(&domain.Grant{}, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return grant, nil
}
