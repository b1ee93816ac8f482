package usecase

import (
	"strings"

	"donorhub-backend/internal/grant/domain"
	"donorhub-backend/internal/grant/dto"
	"donorhub-backend/internal/grant/repository"
	"donorhub-backend/pkg/apperrors"
	"donorhub-backend/pkg/logger"
)

// GrantUsecase enforces grant business rules.
type GrantUsecase interface {
	List(filters repository.GrantFilters) ([]*domain.Grant, error)
	GetByID(id string) (*domain.Grant, error)
	Create(data *dto.CreateGrantData) (*domain.Grant, error)
	Update(id string, data *dto.UpdateGrantData) (*domain.Grant, error)
	Delete(id string) (*domain.Grant, error)
}

type grantUsecase struct {
	grantRepo repository.GrantRepository
	l         logger.Logger
}

// NewGrantUsecase creates a new instance of grantUsecase
func NewGrantUsecase(grantRepo repository.GrantRepository, l logger.Logger) GrantUsecase {
	return &grantUsecase{
		grantRepo: grantRepo,
		l:         l,
	}
}

func (u *grantUsecase) List(filters repository.GrantFilters) ([]*domain.Grant, error) {
	return u.grantRepo.Find(filters)
}

func (u *grantUsecase) GetByID(id string) (*domain.Grant, error) {
	grant, err := u.grantRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if grant == nil {
		return nil, apperrors.NewNotFound("grant", id)
	}
	return grant, nil
}

func (u *grantUsecase) Create(data *dto.CreateGrantData) (*domain.Grant, error) {
	if strings.TrimSpace(data.Funder) == "" {
		return nil, apperrors.NewValidation("funder is required")
	}
	if data.UserID == "" {
		return nil, apperrors.NewValidation("userId is required")
	}
	if !data.Status.Valid() {
		return nil, apperrors.NewValidation("status must be one of prospect, applied, awarded, declined")
	}

	grant := &domain.Grant{
		UserID:              data.UserID,
		Funder:              data.Funder,
		Title:               data.Title,
		Amount:              data.Amount,
		Status:              data.Status,
		ApplicationDeadline: data.ApplicationDeadline,
		ReportDeadline:      data.ReportDeadline,
		Notes:               data.Notes,
	}

	if err := u.grantRepo.Create(grant); err != nil {
		return nil, err
	}

	u.l.Infof("grant created: %s (user %s)", grant.ID, grant.UserID)
	return grant, nil
}

func (u *grantUsecase) Update(id string, data *dto.UpdateGrantData) (*domain.Grant, error) {
	existing, err := u.grantRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, apperrors.NewNotFound("grant", id)
	}

	if data.Status != nil && !data.Status.Valid() {
		return nil, apperrors.NewValidation("status must be one of prospect, applied, awarded, declined")
	}

	updates := map[string]interface{}{}
	if data.Funder != nil {
		if strings.TrimSpace(*data.Funder) == "" {
			return nil, apperrors.NewValidation("funder is required")
		}
		updates["funder"] = *data.Funder
	}
	if data.Title != nil {
		updates["title"] = *data.Title
	}
	if data.Amount != nil {
		updates["amount"] = *data.Amount
	}
	if data.Status != nil {
		updates["status"] = *data.Status
	}
	if data.ApplicationDeadline != nil {
		updates["application_deadline"] = *data.ApplicationDeadline
	}
	if data.ReportDeadline != nil {
		updates["report_deadline"] = *data.ReportDeadline
	}
	if data.Notes != nil {
		updates["notes"] = *data.Notes
	}

	if len(updates) == 0 {
		return existing, nil
	}

	updated, err := u.grantRepo.Update(id, updates)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, apperrors.NewNotFound("grant", id)
	}
	return updated, nil
}

func (u *grantUsecase) Delete(id string) (*domain.Grant, error) {
	deleted, err := u.grantRepo.Delete(id)
	if err != nil {
		return nil, err
	}
	if deleted == nil {
		return nil, apperrors.NewNotFound("grant", id)
	}
	u.l.Infof("grant deleted: %s", id)
	return deleted, nil
}
