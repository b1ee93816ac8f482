package dto

import (
	"strings"
	"time"

	"donorhub-backend/internal/donor/domain"
	"donorhub-backend/pkg/apperrors"
)

// CreateDonorRequest is the raw JSON body for POST /api/donors.
type CreateDonorRequest struct {
	UserID         string  `json:"userId"`
	Name           string  `json:"name"`
	Email          string  `json:"email"`
	Phone          string  `json:"phone"`
	Segment        string  `json:"segment"`
	EnergyScore    *int    `json:"energyScore"`
	StructureScore *int    `json:"structureScore"`
	GivingCapacity string  `json:"givingCapacity"`
	Notes          string  `json:"notes"`
	LastContactAt  *string `json:"lastContactAt"`
}

// CreateDonorData is the coerced, validated form of CreateDonorRequest.
type CreateDonorData struct {
	UserID         string
	Name           string
	Email          string
	Phone          string
	Segment        string
	EnergyScore    int
	StructureScore int
	GivingCapacity string
	Notes          string
	LastContactAt  *time.Time
}

func (r CreateDonorRequest) Parse() (*CreateDonorData, *apperrors.ValidationError) {
	var fields []apperrors.FieldError

	if r.Name == "" {
		fields = append(fields, apperrors.FieldError{Field: "name", Message: "name is required"})
	} else if len(r.Name) > 255 {
		fields = append(fields, apperrors.FieldError{Field: "name", Message: "name must be at most 255 characters"})
	}
	if r.UserID == "" {
		fields = append(fields, apperrors.FieldError{Field: "userId", Message: "userId is required"})
	}

	// Scores default to the quadrant midpoint.
	energy := 50
	if r.EnergyScore != nil {
		if !domain.ValidScore(*r.EnergyScore) {
			fields = append(fields, apperrors.FieldError{Field: "energyScore", Message: "energyScore must be between 0 and 100"})
		} else {
			energy = *r.EnergyScore
		}
	}
	structure := 50
	if r.StructureScore != nil {
		if !domain.ValidScore(*r.StructureScore) {
			fields = append(fields, apperrors.FieldError{Field: "structureScore", Message: "structureScore must be between 0 and 100"})
		} else {
			structure = *r.StructureScore
		}
	}

	var lastContact *time.Time
	if r.LastContactAt != nil && *r.LastContactAt != "" {
		t, err := parseDate(*r.LastContactAt)
		if err != nil {
			fields = append(fields, apperrors.FieldError{Field: "lastContactAt", Message: "lastContactAt must be a valid date"})
		} else {
			lastContact = &t
		}
	}

	if len(fields) > 0 {
		return nil, apperrors.NewFieldValidation(fields)
	}

	return &CreateDonorData{
		UserID:         r.UserID,
		Name:           r.Name,
		Email:          r.Email,
		Phone:          r.Phone,
		Segment:        r.Segment,
		EnergyScore:    energy,
		StructureScore: structure,
		GivingCapacity: r.GivingCapacity,
		Notes:          r.Notes,
		LastContactAt:  lastContact,
	}, nil
}

// UpdateDonorRequest is the raw JSON body for PATCH /api/donors/:id.
type UpdateDonorRequest struct {
	Name           *string `json:"name"`
	Email          *string `json:"email"`
	Phone          *string `json:"phone"`
	Segment        *string `json:"segment"`
	EnergyScore    *int    `json:"energyScore"`
	StructureScore *int    `json:"structureScore"`
	GivingCapacity *string `json:"givingCapacity"`
	Notes          *string `json:"notes"`
	LastContactAt  *string `json:"lastContactAt"`
}

// UpdateDonorData carries only the fields present in the request.
type UpdateDonorData struct {
	Name           *string
	Email          *string
	Phone          *string
	Segment        *string
	EnergyScore    *int
	StructureScore *int
	GivingCapacity *string
	Notes          *string
	LastContactAt  *time.Time
}

func (r UpdateDonorRequest) Parse() (*UpdateDonorData, *apperrors.ValidationError) {
	var fields []apperrors.FieldError
	data := &UpdateDonorData{
		Name:           r.Name,
		Email:          r.Email,
		Phone:          r.Phone,
		Segment:        r.Segment,
		GivingCapacity: r.GivingCapacity,
		Notes:          r.Notes,
	}

	if r.Name != nil {
		if strings.TrimSpace(*r.Name) == "" {
			fields = append(fields, apperrors.FieldError{Field: "name", Message: "name is required"})
		} else if len(*r.Name) > 255 {
			fields = append(fields, apperrors.FieldError{Field: "name", Message: "name must be at most 255 characters"})
		}
	}

	if r.EnergyScore != nil {
		if !domain.ValidScore(*r.EnergyScore) {
			fields = append(fields, apperrors.FieldError{Field: "energyScore", Message: "energyScore must be between 0 and 100"})
		} else {
			data.EnergyScore = r.EnergyScore
		}
	}
	if r.StructureScore != nil {
		if !domain.ValidScore(*r.StructureScore) {
			fields = append(fields, apperrors.FieldError{Field: "structureScore", Message: "structureScore must be between 0 and 100"})
		} else {
			data.StructureScore = r.StructureScore
		}
	}

	if r.LastContactAt != nil && *r.LastContactAt != "" {
		t, err := parseDate(*r.LastContactAt)
		if err != nil {
			fields = append(fields, apperrors.FieldError{Field: "lastContactAt", Message: "lastContactAt must be a valid date"})
		} else {
			data.LastContactAt = &t
		}
	}

	if len(fields) > 0 {
		return nil, apperrors.NewFieldValidation(fields)
	}
	return data, nil
}

// parseDate accepts RFC3339 timestamps and bare dates.
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}
