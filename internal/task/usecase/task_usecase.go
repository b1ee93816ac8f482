package usecase

import (
	"strings"

	"donorhub-backend/internal/task/domain"
	"donorhub-backend/internal/task/dto"
	"donorhub-backend/internal/task/repository"
	"donorhub-backend/pkg/apperrors"
	"donorhub-backend/pkg/logger"
)

// taskUsecase implements TaskUsecase
type taskUsecase struct {
	taskRepo repository.TaskRepository
	l        logger.Logger
}

// NewTaskUsecase creates a new instance of taskUsecase
func NewTaskUsecase(taskRepo repository.TaskRepository, l logger.Logger) TaskUsecase {
	return &taskUsecase{
		taskRepo: taskRepo,
		l:        l,
	}
}

func (u *taskUsecase) List(filters repository.TaskFilters) ([]*domain.Task, error) {
	return u.taskRepo.Find(filters)
}

func (u *taskUsecase) ListByPerson(personID string) ([]*domain.Task, error) {
	return u.taskRepo.FindByPersonID(personID)
}

func (u *taskUsecase) GetByID(id string) (*domain.Task, error) {
	task, err := u.taskRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, apperrors.NewNotFound("task", id)
	}
	return task, nil
}

// Create re-checks rules the schema already coerced. The schema accepts any
// non-empty title; a whitespace-only title is type-valid but business-invalid.
func (u *taskUsecase) Create(data *dto.CreateTaskData) (*domain.Task, error) {
	if strings.TrimSpace(data.Title) == "" {
		return nil, apperrors.NewValidation("title is required")
	}
	if data.OwnerID == "" {
		return nil, apperrors.NewValidation("ownerId is required")
	}
	if !data.Priority.Valid() {
		return nil, apperrors.NewValidation("priority must be one of low, medium, high, urgent")
	}

	task := &domain.Task{
		Title:       data.Title,
		OwnerID:     data.OwnerID,
		PersonID:    data.PersonID,
		Description: data.Description,
		Reason:      data.Reason,
		Priority:    data.Priority,
		DueDate:     data.DueDate,
		Completed:   data.Completed,
	}

	if err := u.taskRepo.Create(task); err != nil {
		return nil, err
	}

	u.l.Infof("task created: %s (owner %s)", task.ID, task.OwnerID)
	return task, nil
}

func (u *taskUsecase) Update(id string, data *dto.UpdateTaskData) (*domain.Task, error) {
	existing, err := u.taskRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, apperrors.NewNotFound("task", id)
	}

	if data.Priority != nil && !data.Priority.Valid() {
		return nil, apperrors.NewValidation("priority must be one of low, medium, high, urgent")
	}

	// completed_at bookkeeping is managed at the database level; the service
	// never writes it.
	updates := map[string]interface{}{}
	if data.Title != nil {
		if strings.TrimSpace(*data.Title) == "" {
			return nil, apperrors.NewValidation("title is required")
		}
		updates["title"] = *data.Title
	}
	if data.PersonID != nil {
		updates["person_id"] = *data.PersonID
	}
	if data.Description != nil {
		updates["description"] = *data.Description
	}
	if data.Reason != nil {
		updates["reason"] = *data.Reason
	}
	if data.Priority != nil {
		updates["priority"] = *data.Priority
	}
	if data.DueDate != nil {
		updates["due_date"] = *data.DueDate
	} else if data.ClearDue {
		updates["due_date"] = nil
	}
	if data.Completed != nil {
		updates["completed"] = *data.Completed
	}

	if len(updates) == 0 {
		return existing, nil
	}

	updated, err := u.taskRepo.Update(id, updates)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, apperrors.NewNotFound("task", id)
	}
	return updated, nil
}

func (u *taskUsecase) Delete(id string) (*domain.Task, error) {
	deleted, err := u.taskRepo.Delete(id)
	if err != nil {
		return nil, err
	}
	if deleted == nil {
		return nil, apperrors.NewNotFound("task", id)
	}
	u.l.Infof("task deleted: %s", id)
	return deleted, nil
}
