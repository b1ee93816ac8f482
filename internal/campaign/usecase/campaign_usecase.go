package usecase

import (
	"strings"

	"donorhub-backend/internal/campaign/domain"
	"donorhub-backend/internal/campaign/dto"
	"donorhub-backend/internal/campaign/repository"
	"donorhub-backend/pkg/apperrors"
	"donorhub-backend/pkg/logger"
)

// CampaignUsecase enforces campaign business rules.
type CampaignUsecase interface {
	List(filters repository.CampaignFilters) ([]*domain.Campaign, error)
	GetByID(id string) (*domain.Campaign, error)
	Create(data *dto.CreateCampaignData) (*domain.Campaign, error)
	Update(id string, data *dto.UpdateCampaignData) (*domain.Campaign, error)
	Delete(id string) (*domain.Campaign, error)
}

type campaignUsecase struct {
	campaignRepo repository.CampaignRepository
	l            logger.Logger
}

// NewCampaignUsecase creates a new instance of campaignUsecase
func NewCampaignUsecase(campaignRepo repository.CampaignRepository, l logger.Logger) CampaignUsecase {
	return &campaignUsecase{
		campaignRepo: campaignRepo,
		l:            l,
	}
}

func (u *campaignUsecase) List(filters repository.CampaignFilters) ([]*domain.Campaign, error) {
	return u.campaignRepo.Find(filters)
}

func (u *campaignUsecase) GetByID(id string) (*domain.Campaign, error) {
	campaign, err := u.campaignRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if campaign == nil {
		return nil, apperrors.NewNotFound("campaign", id)
	}
	return campaign, nil
}

func (u *campaignUsecase) Create(data *dto.CreateCampaignData) (*domain.Campaign, error) {
	if strings.TrimSpace(data.Name) == "" {
		return nil, apperrors.NewValidation("name is required")
	}
	if data.UserID == "" {
		return nil, apperrors.NewValidation("userId is required")
	}
	if !data.Status.Valid() {
		return nil, apperrors.NewValidation("status must be one of draft, active, completed")
	}

	campaign := &domain.Campaign{
		UserID:       data.UserID,
		Name:         data.Name,
		Description:  data.Description,
		GoalAmount:   data.GoalAmount,
		RaisedAmount: data.RaisedAmount,
		Status:       data.Status,
		StartDate:    data.StartDate,
		EndDate:      data.EndDate,
	}

	if err := u.campaignRepo.Create(campaign); err != nil {
		return nil, err
	}

	u.l.Infof("campaign created: %s (user %s)", campaign.ID, campaign.UserID)
	return campaign, nil
}

func (u *campaignUsecase) Update(id string, data *dto.UpdateCampaignData) (*domain.Campaign, error) {
	existing, err := u.campaignRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, apperrors.NewNotFound("campaign", id)
	}

	if data.Status != nil && !data.Status.Valid() {
		return nil, apperrors.NewValidation("status must be one of draft, active, completed")
	}

	updates := map[string]interface{}{}
	if data.Name != nil {
		if strings.TrimSpace(*data.Name) == "" {
			return nil, apperrors.NewValidation("name is required")
		}
		updates["name"] = *data.Name
	}
	if data.Description != nil {
		updates["description"] = *data.Description
	}
	if data.GoalAmount != nil {
		updates["goal_amount"] = *data.GoalAmount
	}
	if data.RaisedAmount != nil {
		updates["raised_amount"] = *data.RaisedAmount
	}
	if data.Status != nil {
		updates["status"] = *data.Status
	}
	if data.StartDate != nil {
		updates["start_date"] = *data.StartDate
	}
	if data.EndDate != nil {
		updates["end_date"] = *data.EndDate
	}

	if len(updates) == 0 {
		return existing, nil
	}

	updated, err := u.campaignRepo.Update(id, updates)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, apperrors.NewNotFound("campaign", id)
	}
	return updated, nil
}

func (u *campaignUsecase) Delete(id string) (*domain.Campaign, error) {
	deleted, err := u.campaignRepo.Delete(id)
	if err != nil {
		return nil, err
	}
	if deleted == nil {
		return nil, apperrors.NewNotFound("campaign", id)
	}
	u.l.Infof("campaign deleted: %s", id)
	return deleted, nil
}
