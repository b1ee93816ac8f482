package dto

import (
	"strings"
	"time"

	"donorhub-backend/internal/grant/domain"
	"donorhub-backend/pkg/apperrors"
)

// CreateGrantRequest is the raw JSON body for POST /api/grants.
type CreateGrantRequest struct {
	UserID              string  `json:"userId"`
	Funder              string  `json:"funder"`
	Title               string  `json:"title"`
	Amount              string  `json:"amount"`
	Status              string  `json:"status"`
	ApplicationDeadline *string `json:"applicationDeadline"`
	ReportDeadline      *string `json:"reportDeadline"`
	Notes               string  `json:"notes"`
}

// CreateGrantData is the coerced, validated form of CreateGrantRequest.
type CreateGrantData struct {
	UserID              string
	Funder              string
	Title               string
	Amount              string
	Status              domain.Status
	ApplicationDeadline *time.Time
	ReportDeadline      *time.Time
	Notes               string
}

func (r CreateGrantRequest) Parse() (*CreateGrantData, *apperrors.ValidationError) {
	var fields []apperrors.FieldError

	if r.Funder == "" {
		fields = append(fields, apperrors.FieldError{Field: "funder", Message: "funder is required"})
	} else if len(r.Funder) > 255 {
		fields = append(fields, apperrors.FieldError{Field: "funder", Message: "funder must be at most 255 characters"})
	}
	if r.UserID == "" {
		fields = append(fields, apperrors.FieldError{Field: "userId", Message: "userId is required"})
	}

	status := domain.StatusProspect
	if r.Status != "" {
		status = domain.Status(r.Status)
		if !status.Valid() {
			fields = append(fields, apperrors.FieldError{Field: "status", Message: "status must be one of prospect, applied, awarded, declined"})
		}
	}

	appDeadline, appErr := parseOptionalDate(r.ApplicationDeadline)
	if appErr != nil {
		fields = append(fields, apperrors.FieldError{Field: "applicationDeadline", Message: "applicationDeadline must be a valid date"})
	}
	reportDeadline, reportErr := parseOptionalDate(r.ReportDeadline)
	if reportErr != nil {
		fields = append(fields, apperrors.FieldError{Field: "reportDeadline", Message: "reportDeadline must be a valid date"})
	}

	if len(fields) > 0 {
		return nil, apperrors.NewFieldValidation(fields)
	}

	return &CreateGrantData{
		UserID:              r.UserID,
		Funder:              r.Funder,
		Title:               r.Title,
		Amount:              r.Amount,
		Status:              status,
		ApplicationDeadline: appDeadline,
		ReportDeadline:      reportDeadline,
		Notes:               r.Notes,
	}, nil
}

// UpdateGrantRequest is the raw JSON body for PATCH /api/grants/:id.
type UpdateGrantRequest struct {
	Funder              *string `json:"funder"`
	Title               *string `json:"title"`
	Amount              *string `json:"amount"`
	Status              *string `json:"status"`
	ApplicationDeadline *string `json:"applicationDeadline"`
	ReportDeadline      *string `json:"reportDeadline"`
	Notes               *string `json:"notes"`
}

// UpdateGrantData carries only the fields present in the request.
type UpdateGrantData struct {
	Funder              *string
	Title               *string
	Amount              *string
	Status              *domain.Status
	ApplicationDeadline *time.Time
	ReportDeadline      *time.Time
	Notes               *string
}

func (r UpdateGrantRequest) Parse() (*UpdateGrantData, *apperrors.ValidationError) {
	var fields []apperrors.FieldError
	data := &UpdateGrantData{
		Funder: r.Funder,
		Title:  r.Title,
		Amount: r.Amount,
		Notes:  r.Notes,
	}

	if r.Funder != nil {
		if strings.TrimSpace(*r.Funder) == "" {
			fields = append(fields, apperrors.FieldError{Field: "funder", Message: "funder is required"})
		} else if len(*r.Funder) > 255 {
			fields = append(fields, apperrors.FieldError{Field: "funder", Message: "funder must be at most 255 characters"})
		}
	}

	if r.Status != nil {
		s := domain.Status(*r.Status)
		if !s.Valid() {
			fields = append(fields, apperrors.FieldError{Field: "status", Message: "status must be one of prospect, applied, awarded, declined"})
		} else {
			data.Status = &s
		}
	}

	if app, err := parseOptionalDate(r.ApplicationDeadline); err != nil {
		fields = append(fields, apperrors.FieldError{Field: "applicationDeadline", Message: "applicationDeadline must be a valid date"})
	} else {
		data.ApplicationDeadline = app
	}
	if report, err := parseOptionalDate(r.ReportDeadline); err != nil {
		fields = append(fields, apperrors.FieldError{Field: "reportDeadline", Message: "reportDeadline must be a valid date"})
	} else {
		data.ReportDeadline = report
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
