package usecase

import (
	"errors"
	"testing"

	"donorhub-backend/internal/campaign/domain"
	"donorhub-backend/internal/campaign/dto"
	"donorhub-backend/internal/campaign/repository"
	"donorhub-backend/pkg/apperrors"
	"donorhub-backend/pkg/logger"
)

type mockCampaignRepository struct {
	findFunc     func(filters repository.CampaignFilters) ([]*domain.Campaign, error)
	findByIDFunc func(id string) (*domain.Campaign, error)
	createFunc   func(campaign *domain.Campaign) error
	updateFunc   func(id string, updates map[string]interface{}) (*domain.Campaign, error)
	deleteFunc   func(id string) (*domain.Campaign, error)
}

func (m *mockCampaignRepository) Find(filters repository.CampaignFilters) ([]*domain.Campaign, error) {
	return m.findFunc(filters)
}

func (m *mockCampaignRepository) FindByID(id string) (*domain.Campaign, error) {
	return m.findByIDFunc(id)
}

func (m *mockCampaignRepository) Create(campaign *domain.Campaign) error {
	return m.createFunc(campaign)
}

func (m *mockCampaignRepository) Update(id string, updates map[string]interface{}) (*domain.Campaign, error) {
	return m.updateFunc(id, updates)
}

func (m *mockCampaignRepository) Delete(id string) (*domain.Campaign, error) {
	return m.deleteFunc(id)
}

func TestCampaignUsecase_Create(t *testing.T) {
	t.Run("status defaults to draft through the schema", func(t *testing.T) {
		repo := &mockCampaignRepository{
			createFunc: func(campaign *domain.Campaign) error {
				campaign.ID = "c1"
				return nil
			},
		}
		uc := NewCampaignUsecase(repo, logger.NewNop())

		data, vErr := dto.CreateCampaignRequest{Name: "Spring Appeal", UserID: "u1"}.Parse()
		if vErr != nil {
			t.Fatalf("unexpected parse error: %v", vErr)
		}

		campaign, err := uc.Create(data)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if campaign.Status != domain.StatusDraft {
			t.Errorf("status = %q, want draft", campaign.Status)
		}
	})

	t.Run("rejects an unknown status", func(t *testing.T) {
		repo := &mockCampaignRepository{
			createFunc: func(campaign *domain.Campaign) error {
				t.Fatal("Create should not reach the repository")
				return nil
			},
		}
		uc := NewCampaignUsecase(repo, logger.NewNop())

		_, err := uc.Create(&dto.CreateCampaignData{Name: "Spring Appeal", UserID: "u1", Status: domain.Status("paused")})
		var vErr *apperrors.ValidationError
		if !errors.As(err, &vErr) {
			t.Fatalf("want ValidationError, got %v", err)
		}
	})

	t.Run("rejects whitespace-only name", func(t *testing.T) {
		repo := &mockCampaignRepository{}
		uc := NewCampaignUsecase(repo, logger.NewNop())

		_, err := uc.Create(&dto.CreateCampaignData{Name: "   ", UserID: "u1", Status: domain.StatusDraft})
		var vErr *apperrors.ValidationError
		if !errors.As(err, &vErr) {
			t.Fatalf("want ValidationError, got %v", err)
		}
	})

	t.Run("rejects missing user", func(t *testing.T) {
		repo := &mockCampaignRepository{}
		uc := NewCampaignUsecase(repo, logger.NewNop())

		_, err := uc.Create(&dto.CreateCampaignData{Name: "Spring Appeal", Status: domain.StatusActive})
		var vErr *apperrors.ValidationError
		if !errors.As(err, &vErr) {
			t.Fatalf("want ValidationError, got %v", err)
		}
	})
}

func TestCampaignUsecase_Update(t *testing.T) {
	existing := &domain.Campaign{ID: "c1", Name: "Spring Appeal", UserID: "u1", Status: domain.StatusDraft}

	t.Run("unknown id is a NotFoundError", func(t *testing.T) {
		repo := &mockCampaignRepository{
			findByIDFunc: func(id string) (*domain.Campaign, error) { return nil, nil },
		}
		uc := NewCampaignUsecase(repo, logger.NewNop())

		_, err := uc.Update("nope", &dto.UpdateCampaignData{})
		var nf *apperrors.NotFoundError
		if !errors.As(err, &nf) {
			t.Fatalf("want NotFoundError, got %v", err)
		}
	})

	t.Run("rejects an unknown status before touching the row", func(t *testing.T) {
		repo := &mockCampaignRepository{
			findByIDFunc: func(id string) (*domain.Campaign, error) { return existing, nil },
			updateFunc: func(id string, updates map[string]interface{}) (*domain.Campaign, error) {
				t.Fatal("Update should not reach the repository")
				return nil, nil
			},
		}
		uc := NewCampaignUsecase(repo, logger.NewNop())

		bad := domain.Status("archived")
		_, err := uc.Update("c1", &dto.UpdateCampaignData{Status: &bad})
		var vErr *apperrors.ValidationError
		if !errors.As(err, &vErr) {
			t.Fatalf("want ValidationError, got %v", err)
		}
	})

	t.Run("activation writes only the status column", func(t *testing.T) {
		var got map[string]interface{}
		repo := &mockCampaignRepository{
			findByIDFunc: func(id string) (*domain.Campaign, error) { return existing, nil },
			updateFunc: func(id string, updates map[string]interface{}) (*domain.Campaign, error) {
				got = updates
				return existing, nil
			},
		}
		uc := NewCampaignUsecase(repo, logger.NewNop())

		active := domain.StatusActive
		if _, err := uc.Update("c1", &dto.UpdateCampaignData{Status: &active}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 1 || got["status"] != domain.StatusActive {
			t.Errorf("updates = %v, want exactly status=active", got)
		}
	})

	t.Run("empty payload returns the row unchanged", func(t *testing.T) {
		repo := &mockCampaignRepository{
			findByIDFunc: func(id string) (*domain.Campaign, error) { return existing, nil },
			updateFunc: func(id string, updates map[string]interface{}) (*domain.Campaign, error) {
				t.Fatal("Update should not reach the repository")
				return nil, nil
			},
		}
		uc := NewCampaignUsecase(repo, logger.NewNop())

		campaign, err := uc.Update("c1", &dto.UpdateCampaignData{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if campaign != existing {
			t.Error("want the existing row back")
		}
	})
}

func TestCampaignUsecase_Delete(t *testing.T) {
	t.Run("second delete is a NotFoundError", func(t *testing.T) {
		repo := &mockCampaignRepository{
			deleteFunc: func(id string) (*domain.Campaign, error) { return nil, nil },
		}
		uc := NewCampaignUsecase(repo, logger.NewNop())

		_, err := uc.Delete("c1")
		var nf *apperrors.NotFoundError
		if !errors.As(err, &nf) {
			t.Fatalf("want NotFoundError, got %v", err)
		}
	})
}
