package usecase

import (
	"errors"
	"testing"
	"time"

	"donorhub-backend/internal/task/domain"
	"donorhub-backend/internal/task/dto"
	"donorhub-backend/internal/task/repository"
	"donorhub-backend/pkg/apperrors"
	"donorhub-backend/pkg/logger"
)

// mockTaskRepository lets each test swap in just the methods it needs.
type mockTaskRepository struct {
	findFunc           func(filters repository.TaskFilters) ([]*domain.Task, error)
	findByIDFunc       func(id string) (*domain.Task, error)
	findByPersonIDFunc func(personID string) ([]*domain.Task, error)
	createFunc         func(task *domain.Task) error
	updateFunc         func(id string, updates map[string]interface{}) (*domain.Task, error)
	deleteFunc         func(id string) (*domain.Task, error)
}

func (m *mockTaskRepository) Find(filters repository.TaskFilters) ([]*domain.Task, error) {
	return m.findFunc(filters)
}

func (m *mockTaskRepository) FindByID(id string) (*domain.Task, error) {
	return m.findByIDFunc(id)
}

func (m *mockTaskRepository) FindByPersonID(personID string) ([]*domain.Task, error) {
	return m.findByPersonIDFunc(personID)
}

func (m *mockTaskRepository) Create(task *domain.Task) error {
	return m.createFunc(task)
}

func (m *mockTaskRepository) Update(id string, updates map[string]interface{}) (*domain.Task, error) {
	return m.updateFunc(id, updates)
}

func (m *mockTaskRepository) Delete(id string) (*domain.Task, error) {
	return m.deleteFunc(id)
}

func TestTaskUsecase_Create(t *testing.T) {
	t.Run("applies defaults from parsed data", func(t *testing.T) {
		var created *domain.Task
		repo := &mockTaskRepository{
			createFunc: func(task *domain.Task) error {
				task.ID = "t1"
				created = task
				return nil
			},
		}
		uc := NewTaskUsecase(repo, logger.NewNop())

		req := dto.CreateTaskRequest{Title: "Call the Hendersons", OwnerID: "u1"}
		data, vErr := req.Parse()
		if vErr != nil {
			t.Fatalf("unexpected parse error: %v", vErr)
		}

		task, err := uc.Create(data)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if task.Priority != domain.PriorityMedium {
			t.Errorf("priority = %q, want %q", task.Priority, domain.PriorityMedium)
		}
		if task.Completed != 0 {
			t.Errorf("completed = %d, want 0", task.Completed)
		}
		if created == nil || created.Title != "Call the Hendersons" {
			t.Errorf("repository did not receive the task")
		}
	})

	t.Run("rejects whitespace-only title", func(t *testing.T) {
		repo := &mockTaskRepository{
			createFunc: func(task *domain.Task) error {
				t.Fatal("Create should not reach the repository")
				return nil
			},
		}
		uc := NewTaskUsecase(repo, logger.NewNop())

		_, err := uc.Create(&dto.CreateTaskData{Title: "   ", OwnerID: "u1", Priority: domain.PriorityLow})
		var vErr *apperrors.ValidationError
		if !errors.As(err, &vErr) {
			t.Fatalf("want ValidationError, got %v", err)
		}
	})

	t.Run("rejects missing owner", func(t *testing.T) {
		repo := &mockTaskRepository{}
		uc := NewTaskUsecase(repo, logger.NewNop())

		_, err := uc.Create(&dto.CreateTaskData{Title: "Draft thank-you letters", Priority: domain.PriorityHigh})
		var vErr *apperrors.ValidationError
		if !errors.As(err, &vErr) {
			t.Fatalf("want ValidationError, got %v", err)
		}
	})

	t.Run("rejects unknown priority", func(t *testing.T) {
		repo := &mockTaskRepository{}
		uc := NewTaskUsecase(repo, logger.NewNop())

		_, err := uc.Create(&dto.CreateTaskData{Title: "x", OwnerID: "u1", Priority: domain.Priority("whenever")})
		var vErr *apperrors.ValidationError
		if !errors.As(err, &vErr) {
			t.Fatalf("want ValidationError, got %v", err)
		}
	})

	t.Run("propagates repository errors", func(t *testing.T) {
		repo := &mockTaskRepository{
			createFunc: func(task *domain.Task) error { return errors.New("connection reset") },
		}
		uc := NewTaskUsecase(repo, logger.NewNop())

		_, err := uc.Create(&dto.CreateTaskData{Title: "x", OwnerID: "u1", Priority: domain.PriorityLow})
		if err == nil {
			t.Fatal("want error, got nil")
		}
	})
}

func TestTaskUsecase_GetByID(t *testing.T) {
	t.Run("missing row becomes NotFoundError", func(t *testing.T) {
		repo := &mockTaskRepository{
			findByIDFunc: func(id string) (*domain.Task, error) { return nil, nil },
		}
		uc := NewTaskUsecase(repo, logger.NewNop())

		_, err := uc.GetByID("nope")
		var nf *apperrors.NotFoundError
		if !errors.As(err, &nf) {
			t.Fatalf("want NotFoundError, got %v", err)
		}
	})

	t.Run("returns the task when present", func(t *testing.T) {
		repo := &mockTaskRepository{
			findByIDFunc: func(id string) (*domain.Task, error) {
				return &domain.Task{ID: id, Title: "Major gift ask"}, nil
			},
		}
		uc := NewTaskUsecase(repo, logger.NewNop())

		task, err := uc.GetByID("t1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if task.ID != "t1" {
			t.Errorf("id = %q, want t1", task.ID)
		}
	})
}

func TestTaskUsecase_Update(t *testing.T) {
	existing := &domain.Task{ID: "t1", Title: "Prep board packet", OwnerID: "u1", Priority: domain.PriorityMedium}

	t.Run("unknown id is a NotFoundError", func(t *testing.T) {
		repo := &mockTaskRepository{
			findByIDFunc: func(id string) (*domain.Task, error) { return nil, nil },
		}
		uc := NewTaskUsecase(repo, logger.NewNop())

		_, err := uc.Update("nope", &dto.UpdateTaskData{})
		var nf *apperrors.NotFoundError
		if !errors.As(err, &nf) {
			t.Fatalf("want NotFoundError, got %v", err)
		}
	})

	t.Run("empty payload returns the row unchanged", func(t *testing.T) {
		repo := &mockTaskRepository{
			findByIDFunc: func(id string) (*domain.Task, error) { return existing, nil },
			updateFunc: func(id string, updates map[string]interface{}) (*domain.Task, error) {
				t.Fatal("Update should not reach the repository")
				return nil, nil
			},
		}
		uc := NewTaskUsecase(repo, logger.NewNop())

		task, err := uc.Update("t1", &dto.UpdateTaskData{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if task != existing {
			t.Error("want the existing row back")
		}
	})

	t.Run("completion writes only the completed column", func(t *testing.T) {
		var got map[string]interface{}
		repo := &mockTaskRepository{
			findByIDFunc: func(id string) (*domain.Task, error) { return existing, nil },
			updateFunc: func(id string, updates map[string]interface{}) (*domain.Task, error) {
				got = updates
				return existing, nil
			},
		}
		uc := NewTaskUsecase(repo, logger.NewNop())

		completed := 1
		if _, err := uc.Update("t1", &dto.UpdateTaskData{Completed: &completed}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 1 {
			t.Fatalf("updates = %v, want exactly one key", got)
		}
		if got["completed"] != 1 {
			t.Errorf("completed = %v, want 1", got["completed"])
		}
		if _, ok := got["completed_at"]; ok {
			t.Error("completed_at must never be written by the service")
		}
	})

	t.Run("empty dueDate clears the column", func(t *testing.T) {
		var got map[string]interface{}
		repo := &mockTaskRepository{
			findByIDFunc: func(id string) (*domain.Task, error) { return existing, nil },
			updateFunc: func(id string, updates map[string]interface{}) (*domain.Task, error) {
				got = updates
				return existing, nil
			},
		}
		uc := NewTaskUsecase(repo, logger.NewNop())

		if _, err := uc.Update("t1", &dto.UpdateTaskData{ClearDue: true}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		v, ok := got["due_date"]
		if !ok || v != nil {
			t.Errorf("due_date = %v (present=%v), want explicit nil", v, ok)
		}
	})

	t.Run("row vanishing mid-update is a NotFoundError", func(t *testing.T) {
		repo := &mockTaskRepository{
			findByIDFunc: func(id string) (*domain.Task, error) { return existing, nil },
			updateFunc: func(id string, updates map[string]interface{}) (*domain.Task, error) {
				return nil, nil
			},
		}
		uc := NewTaskUsecase(repo, logger.NewNop())

		title := "Renamed"
		_, err := uc.Update("t1", &dto.UpdateTaskData{Title: &title})
		var nf *apperrors.NotFoundError
		if !errors.As(err, &nf) {
			t.Fatalf("want NotFoundError, got %v", err)
		}
	})
}

func TestTaskUsecase_Delete(t *testing.T) {
	t.Run("returns the deleted row", func(t *testing.T) {
		due := time.Now()
		repo := &mockTaskRepository{
			deleteFunc: func(id string) (*domain.Task, error) {
				return &domain.Task{ID: id, Title: "Gala follow-up", DueDate: &due}, nil
			},
		}
		uc := NewTaskUsecase(repo, logger.NewNop())

		task, err := uc.Delete("t1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if task.ID != "t1" {
			t.Errorf("id = %q, want t1", task.ID)
		}
	})

	t.Run("second delete is a NotFoundError", func(t *testing.T) {
		repo := &mockTaskRepository{
			deleteFunc: func(id string) (*domain.Task, error) { return nil, nil },
		}
		uc := NewTaskUsecase(repo, logger.NewNop())

		_, err := uc.Delete("t1")
		var nf *apperrors.NotFoundError
		if !errors.As(err, &nf) {
			t.Fatalf("want NotFoundError, got %v", err)
		}
	})
}

func TestTaskUsecase_List(t *testing.T) {
	t.Run("passes filters through unchanged", func(t *testing.T) {
		owner := "u1"
		completed := 1
		var got repository.TaskFilters
		repo := &mockTaskRepository{
			findFunc: func(filters repository.TaskFilters) ([]*domain.Task, error) {
				got = filters
				return []*domain.Task{}, nil
			},
		}
		uc := NewTaskUsecase(repo, logger.NewNop())

		if _, err := uc.List(repository.TaskFilters{OwnerID: &owner, Completed: &completed}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.OwnerID == nil || *got.OwnerID != "u1" {
			t.Error("ownerId filter was not forwarded")
		}
		if got.Completed == nil || *got.Completed != 1 {
			t.Error("completed filter was not forwarded")
		}
	})
}
