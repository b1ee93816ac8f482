package usecase

import (
	"sort"
	"strings"

	"donorhub-backend/internal/donor/domain"
	"donorhub-backend/internal/donor/dto"
	"donorhub-backend/internal/donor/repository"
	"donorhub-backend/pkg/apperrors"
	"donorhub-backend/pkg/fuzzy"
	"donorhub-backend/pkg/logger"
)

// DonorUsecase enforces donor business rules.
type DonorUsecase interface {
	List(filters repository.DonorFilters) ([]*domain.Donor, error)
	GetByID(id string) (*domain.Donor, error)
	Create(data *dto.CreateDonorData) (*domain.Donor, error)
	Update(id string, data *dto.UpdateDonorData) (*domain.Donor, error)
	Delete(id string) (*domain.Donor, error)
	// Placement derives the donor's quadrant position from its scores.
	Placement(id string) (*domain.Placement, error)
	// Search fuzzy-matches donors by name, email and notes, best match first.
	Search(userID, query string) ([]*domain.Donor, error)
}

// donorUsecase implements DonorUsecase
type donorUsecase struct {
	donorRepo repository.DonorRepository
	l         logger.Logger
}

// NewDonorUsecase creates a new instance of donorUsecase
func NewDonorUsecase(donorRepo repository.DonorRepository, l logger.Logger) DonorUsecase {
	return &donorUsecase{
		donorRepo: donorRepo,
		l:         l,
	}
}

func (u *donorUsecase) List(filters repository.DonorFilters) ([]*domain.Donor, error) {
	return u.donorRepo.Find(filters)
}

func (u *donorUsecase) GetByID(id string) (*domain.Donor, error) {
	donor, err := u.donorRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if donor == nil {
		return nil, apperrors.NewNotFound("donor", id)
	}
	return donor, nil
}

func (u *donorUsecase) Create(data *dto.CreateDonorData) (*domain.Donor, error) {
	if strings.TrimSpace(data.Name) == "" {
		return nil, apperrors.NewValidation("name is required")
	}
	if data.UserID == "" {
		return nil, apperrors.NewValidation("userId is required")
	}
	if !domain.ValidScore(data.EnergyScore) || !domain.ValidScore(data.StructureScore) {
		return nil, apperrors.NewValidation("scores must be between 0 and 100")
	}

	donor := &domain.Donor{
		UserID:         data.UserID,
		Name:           data.Name,
		Email:          data.Email,
		Phone:          data.Phone,
		Segment:        data.Segment,
		EnergyScore:    data.EnergyScore,
		StructureScore: data.StructureScore,
		GivingCapacity: data.GivingCapacity,
		Notes:          data.Notes,
		LastContactAt:  data.LastContactAt,
	}

	if err := u.donorRepo.Create(donor); err != nil {
		return nil, err
	}

	u.l.Infof("donor created: %s (user %s)", donor.ID, donor.UserID)
	return donor, nil
}

func (u *donorUsecase) Update(id string, data *dto.UpdateDonorData) (*domain.Donor, error) {
	existing, err := u.donorRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, apperrors.NewNotFound("donor", id)
	}

	updates := map[string]interface{}{}
	if data.Name != nil {
		if strings.TrimSpace(*data.Name) == "" {
			return nil, apperrors.NewValidation("name is required")
		}
		updates["name"] = *data.Name
	}
	if data.Email != nil {
		updates["email"] = *data.Email
	}
	if data.Phone != nil {
		updates["phone"] = *data.Phone
	}
	if data.Segment != nil {
		updates["segment"] = *data.Segment
	}
	if data.EnergyScore != nil {
		if !domain.ValidScore(*data.EnergyScore) {
			return nil, apperrors.NewValidation("energyScore must be between 0 and 100")
		}
		updates["energy_score"] = *data.EnergyScore
	}
	if data.StructureScore != nil {
		if !domain.ValidScore(*data.StructureScore) {
			return nil, apperrors.NewValidation("structureScore must be between 0 and 100")
		}
		updates["structure_score"] = *data.StructureScore
	}
	if data.GivingCapacity != nil {
		updates["giving_capacity"] = *data.GivingCapacity
	}
	if data.Notes != nil {
		updates["notes"] = *data.Notes
	}
	if data.LastContactAt != nil {
		updates["last_contact_at"] = *data.LastContactAt
	}

	if len(updates) == 0 {
		return existing, nil
	}

	updated, err := u.donorRepo.Update(id, updates)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, apperrors.NewNotFound("donor", id)
	}
	return updated, nil
}

func (u *donorUsecase) Delete(id string) (*domain.Donor, error) {
	deleted, err := u.donorRepo.Delete(id)
	if err != nil {
		return nil, err
	}
	if deleted == nil {
		return nil, apperrors.NewNotFound("donor", id)
	}
	u.l.Infof("donor deleted: %s", id)
	return deleted, nil
}

func (u *donorUsecase) Placement(id string) (*domain.Placement, error) {
	donor, err := u.GetByID(id)
	if err != nil {
		return nil, err
	}
	placement := domain.Place(donor.EnergyScore, donor.StructureScore)
	return &placement, nil
}

func (u *donorUsecase) Search(userID, query string) ([]*domain.Donor, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, apperrors.NewValidation("query is required")
	}

	filters := repository.DonorFilters{}
	if userID != "" {
		filters.UserID = &userID
	}
	donors, err := u.donorRepo.Find(filters)
	if err != nil {
		return nil, err
	}

	var matched []*domain.Donor
	for _, d := range donors {
		if fuzzy.MatchDonor(query, d.Name, d.Email, d.Notes) {
			matched = append(matched, d)
		}
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return fuzzy.RelevanceScore(query, matched[i].Name, matched[i].Email) >
			fuzzy.RelevanceScore(query, matched[j].Name, matched[j].Email)
	})

	return matched, nil
}
