package dto

import (
	"strings"
	"time"

	"donorhub-backend/internal/task/domain"
	"donorhub-backend/pkg/apperrors"
)

// CreateTaskRequest is the raw JSON body for POST /api/tasks.
type CreateTaskRequest struct {
	Title       string  `json:"title"`
	OwnerID     string  `json:"ownerId"`
	PersonID    *string `json:"personId"`
	Description string  `json:"description"`
	Reason      string  `json:"reason"`
	Priority    string  `json:"priority"`
	DueDate     *string `json:"dueDate"`
	Completed   *int    `json:"completed"`
}

// CreateTaskData is the coerced, validated form of CreateTaskRequest.
type CreateTaskData struct {
	Title       string
	OwnerID     string
	PersonID    *string
	Description string
	Reason      string
	Priority    domain.Priority
	DueDate     *time.Time
	Completed   int
}

// Parse coerces the raw request into typed values or returns the full list
// of field violations. Semantic rules (trimmed-empty title etc.) are the
// service's job; this layer only rejects structural problems.
func (r CreateTaskRequest) Parse() (*CreateTaskData, *apperrors.ValidationError) {
	var fields []apperrors.FieldError

	if r.Title == "" {
		fields = append(fields, apperrors.FieldError{Field: "title", Message: "title is required"})
	} else if len(r.Title) > 255 {
		fields = append(fields, apperrors.FieldError{Field: "title", Message: "title must be at most 255 characters"})
	}

	if r.OwnerID == "" {
		fields = append(fields, apperrors.FieldError{Field: "ownerId", Message: "ownerId is required"})
	}

	priority := domain.PriorityMedium
	if r.Priority != "" {
		priority = domain.Priority(r.Priority)
		if !priority.Valid() {
			fields = append(fields, apperrors.FieldError{Field: "priority", Message: "priority must be one of low, medium, high, urgent"})
		}
	}

	var dueDate *time.Time
	if r.DueDate != nil && *r.DueDate != "" {
		t, err := parseDate(*r.DueDate)
		if err != nil {
			fields = append(fields, apperrors.FieldError{Field: "dueDate", Message: "dueDate must be a valid date"})
		} else {
			dueDate = &t
		}
	}

	completed := 0
	if r.Completed != nil {
		if *r.Completed != 0 && *r.Completed != 1 {
			fields = append(fields, apperrors.FieldError{Field: "completed", Message: "completed must be 0 or 1"})
		} else {
			completed = *r.Completed
		}
	}

	if len(fields) > 0 {
		return nil, apperrors.NewFieldValidation(fields)
	}

	return &CreateTaskData{
		Title:       r.Title,
		OwnerID:     r.OwnerID,
		PersonID:    r.PersonID,
		Description: r.Description,
		Reason:      r.Reason,
		Priority:    priority,
		DueDate:     dueDate,
		Completed:   completed,
	}, nil
}

// UpdateTaskRequest is the raw JSON body for PATCH /api/tasks/:id.
// Every field is optional; absent fields are left untouched.
type UpdateTaskRequest struct {
	Title       *string `json:"title"`
	PersonID    *string `json:"personId"`
	Description *string `json:"description"`
	Reason      *string `json:"reason"`
	Priority    *string `json:"priority"`
	DueDate     *string `json:"dueDate"`
	Completed   *int    `json:"completed"`
}

// UpdateTaskData carries only the fields present in the request.
type UpdateTaskData struct {
	Title       *string
	PersonID    *string
	Description *string
	Reason      *string
	Priority    *domain.Priority
	DueDate     *time.Time
	ClearDue    bool
	Completed   *int
}

// Parse coerces the partial update, keeping the same per-field constraints
// as the create schema.
func (r UpdateTaskRequest) Parse() (*UpdateTaskData, *apperrors.ValidationError) {
	var fields []apperrors.FieldError
	data := &UpdateTaskData{
		Title:       r.Title,
		PersonID:    r.PersonID,
		Description: r.Description,
		Reason:      r.Reason,
	}

	if r.Title != nil {
		if strings.TrimSpace(*r.Title) == "" {
			fields = append(fields, apperrors.FieldError{Field: "title", Message: "title is required"})
		} else if len(*r.Title) > 255 {
			fields = append(fields, apperrors.FieldError{Field: "title", Message: "title must be at most 255 characters"})
		}
	}

	if r.Priority != nil {
		p := domain.Priority(*r.Priority)
		if !p.Valid() {
			fields = append(fields, apperrors.FieldError{Field: "priority", Message: "priority must be one of low, medium, high, urgent"})
		} else {
			data.Priority = &p
		}
	}

	if r.DueDate != nil {
		if *r.DueDate == "" {
			data.ClearDue = true
		} else if t, err := parseDate(*r.DueDate); err != nil {
			fields = append(fields, apperrors.FieldError{Field: "dueDate", Message: "dueDate must be a valid date"})
		} else {
			data.DueDate = &t
		}
	}

	if r.Completed != nil {
		if *r.Completed != 0 && *r.Completed != 1 {
			fields = append(fields, apperrors.FieldError{Field: "completed", Message: "completed must be 0 or 1"})
		} else {
			data.Completed = r.Completed
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
