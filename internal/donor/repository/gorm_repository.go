package repository

import (
	"time"

	"donorhub-backend/internal/donor/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// gormDonorRepository implements DonorRepository using GORM
type gormDonorRepository struct {
	db *gorm.DB
}

// NewGormDonorRepository creates a new GORM-based DonorRepository
func NewGormDonorRepository(db *gorm.DB) DonorRepository {
	return &gormDonorRepository{db: db}
}

func (r *gormDonorRepository) Find(filters DonorFilters) ([]*domain.Donor, error) {
	query := r.db.Model(&domain.Donor{})

	if filters.UserID != nil {
		query = query.Where("user_id = ?", *filters.UserID)
	}
	if filters.Segment != nil {
		query = query.Where("segment = ?", *filters.Segment)
	}

	var donors []*domain.Donor
	err := query.Order("name ASC").Find(&donors).Error
	return donors, err
}

func (r *gormDonorRepository) FindByID(id string) (*domain.Donor, error) {
	var donor domain.Donor
	err := r.db.Where("id = ?", id).First(&donor).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &donor, nil
}

func (r *gormDonorRepository) Create(donor *domain.Donor) error {
	if donor.ID == "" {
		donor.ID = uuid.New().String()
	}
	donor.CreatedAt = time.Now()
	donor.UpdatedAt = time.Now()
	return r.db.Create(donor).Error
}

func (r *gormDonorRepository) Update(id string, updates map[string]interface{}) (*domain.Donor, error) {
	updates["updated_at"] = time.Now()
	res := r.db.Model(&domain.Donor{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}
	return r.FindByID(id)
}

func (r *gormDonorRepository) Delete(id string) (*domain.Donor, error) {
	donor, err := r.FindByID(id)
	if err != nil {
		return nil, err
	}
	if donor == nil {
		return nil, nil
	}
	if err := r.db.Delete(&domain.Donor{}, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return donor, nil
}
