package usecase

import (
	"donorhub-backend/internal/task/domain"
	"donorhub-backend/internal/task/dto"
	"donorhub-backend/internal/task/repository"
)

// TaskUsecase enforces task business rules; the only place they live.
type TaskUsecase interface {
	// List passes the filters through to the repository unchanged.
	List(filters repository.TaskFilters) ([]*domain.Task, error)
	ListByPerson(personID string) ([]*domain.Task, error)
	GetByID(id string) (*domain.Task, error)
	Create(data *dto.CreateTaskData) (*domain.Task, error)
	Update(id string, data *dto.UpdateTaskData) (*domain.Task, error)
	Delete(id string) (*domain.Task, error)
}
