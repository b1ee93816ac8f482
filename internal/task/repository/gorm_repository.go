package repository

import (
	"time"

	"donorhub-backend/internal/task/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// taskOrder keeps list output stable: due date ascending with nulls last.
const taskOrder = "CASE WHEN due_date IS NULL THEN 1 ELSE 0 END, due_date ASC, created_at DESC"

// gormTaskRepository implements TaskRepository using GORM
type gormTaskRepository struct {
	db *gorm.DB
}

// NewGormTaskRepository creates a new GORM-based TaskRepository
func NewGormTaskRepository(db *gorm.DB) TaskRepository {
	return &gormTaskRepository{db: db}
}

func (r *gormTaskRepository) Find(filters TaskFilters) ([]*domain.Task, error) {
	query := r.db.Model(&domain.Task{})

	if filters.OwnerID != nil {
		query = query.Where("owner_id = ?", *filters.OwnerID)
	}
	if filters.Completed != nil {
		query = query.Where("completed = ?", *filters.Completed)
	}
	if filters.DueAfter != nil {
		query = query.Where("due_date >= ?", *filters.DueAfter)
	}
	if filters.DueBefore != nil {
		query = query.Where("due_date <= ?", *filters.DueBefore)
	}

	var tasks []*domain.Task
	err := query.Order(taskOrder).Find(&tasks).Error
	return tasks, err
}

func (r *gormTaskRepository) FindByID(id string) (*domain.Task, error) {
	var task domain.Task
	err := r.db.Where("id = ?", id).First(&task).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &task, nil
}

func (r *gormTaskRepository) FindByPersonID(personID string) ([]*domain.Task, error) {
	var tasks []*domain.Task
	err := r.db.Where("person_id = ?", personID).Order(taskOrder).Find(&tasks).Error
	return tasks, err
}

func (r *gormTaskRepository) Create(task *domain.Task) error {
	if task.ID == "" {
		task.ID = uuid.New().String()
	}
	task.CreatedAt = time.Now()
	task.UpdatedAt = time.Now()
	return r.db.Create(task).Error
}

func (r *gormTaskRepository) Update(id string, updates map[string]interface{}) (*domain.Task, error) {
	updates["updated_at"] = time.Now()
	res := r.db.Model(&domain.Task{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}
	return r.FindByID(id)
}

func (r *gormTaskRepository) Delete(id string) (*domain.Task, error) {
	task, err := r.FindByID(id)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, nil
	}
	if err := r.db.Delete(&domain.Task{}, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return task, nil
}
