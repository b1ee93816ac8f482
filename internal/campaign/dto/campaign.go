package dto

import (
	"strings"
	"time"

	"donorhub-backend/internal/campaign/domain"
	"donorhub-backend/pkg/apperrors"
)

// CreateCampaignRequest is the raw JSON body for POST /api/campaigns.
type CreateCampaignRequest struct {
	UserID       string  `json:"userId"`
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	GoalAmount   string  `json:"goalAmount"`
	RaisedAmount string  `json:"raisedAmount"`
	Status       string  `json:"status"`
	StartDate    *string `json:"startDate"`
	EndDate      *string `json:"endDate"`
}

// CreateCampaignData is the coerced, validated form of CreateCampaignRequest.
type CreateCampaignData struct {
	UserID       string
	Name         string
	Description  string
	GoalAmount   string
	RaisedAmount string
	Status       domain.Status
	StartDate    *time.Time
	EndDate      *time.Time
}

func (r CreateCampaignRequest) Parse() (*CreateCampaignData, *apperrors.ValidationError) {
	var fields []apperrors.FieldError

	if r.Name == "" {
		fields = append(fields, apperrors.FieldError{Field: "name", Message: "name is required"})
	} else if len(r.Name) > 255 {
		fields = append(fields, apperrors.FieldError{Field: "name", Message: "name must be at most 255 characters"})
	}
	if r.UserID == "" {
		fields = append(fields, apperrors.FieldError{Field: "userId", Message: "userId is required"})
	}

	status := domain.StatusDraft
	if r.Status != "" {
		status = domain.Status(r.Status)
		if !status.Valid() {
			fields = append(fields, apperrors.FieldError{Field: "status", Message: "status must be one of draft, active, completed"})
		}
	}

	startDate, startErr := parseOptionalDate(r.StartDate)
	if startErr != nil {
		fields = append(fields, apperrors.FieldError{Field: "startDate", Message: "startDate must be a valid date"})
	}
	endDate, endErr := parseOptionalDate(r.EndDate)
	if endErr != nil {
		fields = append(fields, apperrors.FieldError{Field: "endDate", Message: "endDate must be a valid date"})
	}

	if len(fields) > 0 {
		return nil, apperrors.NewFieldValidation(fields)
	}

	return &CreateCampaignData{
		UserID:       r.UserID,
		Name:         r.Name,
		Description:  r.Description,
		GoalAmount:   r.GoalAmount,
		RaisedAmount: r.RaisedAmount,
		Status:       status,
		StartDate:    startDate,
		EndDate:      endDate,
	}, nil
}

// UpdateCampaignRequest is the raw JSON body for PATCH /api/campaigns/:id.
type UpdateCampaignRequest struct {
	Name         *string `json:"name"`
	Description  *string `json:"description"`
	GoalAmount   *string `json:"goalAmount"`
	RaisedAmount *string `json:"raisedAmount"`
	Status       *string `json:"status"`
	StartDate    *string `json:"startDate"`
	EndDate      *string `json:"endDate"`
}

// UpdateCampaignData carries only the fields present in the request.
type UpdateCampaignData struct {
	Name         *string
	Description  *string
	GoalAmount   *string
	RaisedAmount *string
	Status       *domain.Status
	StartDate    *time.Time
	EndDate      *time.Time
}

func (r UpdateCampaignRequest) Parse() (*UpdateCampaignData, *apperrors.ValidationError) {
	var fields []apperrors.FieldError
	data := &UpdateCampaignData{
		Name:         r.Name,
		Description:  r.Description,
		GoalAmount:   r.GoalAmount,
		RaisedAmount: r.RaisedAmount,
	}

	if r.Name != nil {
		if strings.TrimSpace(*r.Name) == "" {
			fields = append(fields, apperrors.FieldError{Field: "name", Message: "name is required"})
		} else if len(*r.Name) > 255 {
			fields = append(fields, apperrors.FieldError{Field: "name", Message: "name must be at most 255 characters"})
		}
	}

	if r.Status != nil {
		s := domain.Status(*r.Status)
		if !s.Valid() {
			fields = append(fields, apperrors.FieldError{Field: "status", Message: "status must be one of draft, active, completed"})
		} else {
			data.Status = &s
		}
	}

	if start, err := parseOptionalDate(r.StartDate); err != nil {
		fields = append(fields, apperrors.FieldError{Field: "startDate", Message: "startDate must be a valid date"})
	} else {
		data.StartDate = start
	}
	if end, err := parseOptionalDate(r.EndDate); err != nil {
		fields = append(fields, apperrors.FieldError{Field: "endDate", Message: "endDate must be a valid date"})
	} else {
		data.EndDate = end
	}

	if len(fields) > 0 {
		return nil, apperrors.NewFieldValidation(fields)
	}
	return data, nil
}

func parseOptionalDate(s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339, *s); err == nil {
		return &t, nil
	}
	t, err := time.Parse("2006-01-02", *s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
