package repository

import (
	"time"

	"donorhub-backend/internal/calendar/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// gormEventRepository implements EventRepository using GORM
type gormEventRepository struct {
	db *gorm.DB
}

// NewGormEventRepository creates a new GORM-based EventRepository
func NewGormEventRepository(db *gorm.DB) EventRepository {
	return &gormEventRepository{db: db}
}

func (r *gormEventRepository) Find(filters EventFilters) ([]*domain.CalendarEvent, error) {
	query := r.db.Model(&domain.CalendarEvent{})

	if filters.UserID != nil {
		query = query.Where("user_id = ?", *filters.UserID)
	}
	if filters.StartDate != nil {
		query = query.Where("scheduled_at >= ?", *filters.StartDate)
	}
	if filters.EndDate != nil {
		query = query.Where("scheduled_at <= ?", *filters.EndDate)
	}
	if filters.Completed != nil {
		query = query.Where("completed = ?", *filters.Completed)
	}

	var events []*domain.CalendarEvent
	err := query.Order("scheduled_at ASC").Find(&events).Error
	return events, err
}

func (r *gormEventRepository) FindByID(id string) (*domain.CalendarEvent, error) {
	var event domain.CalendarEvent
	err := r.db.Where("id = ?", id).First(&event).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &event, nil
}

func (r *gormEventRepository) FindByPersonID(personID string) ([]*domain.CalendarEvent, error) {
	var events []*domain.CalendarEvent
	err := r.db.Where("person_id = ?", personID).Order("scheduled_at ASC").Find(&events).Error
	return events, err
}

func (r *gormEventRepository) Create(event *domain.CalendarEvent) error {
	if event.ID == "" {
		event.ID = uuid.New().String()
	}
	event.CreatedAt = time.Now()
	event.UpdatedAt = time.Now()
	return r.db.Create(event).Error
}

func (r *gormEventRepository) Update(id string, updates map[string]interface{}) (*domain.CalendarEvent, error) {
	updates["updated_at"] = time.Now()
	res := r.db.Model(&domain.CalendarEvent{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}
	return r.FindByID(id)
}

func (r *gormEventRepository) Delete(id string) (*domain.CalendarEvent, error) {
	event, err := r.FindByID(id)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, nil
	}
	if err := r.db.Delete(&domain.CalendarEvent{}, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return event, nil
}
