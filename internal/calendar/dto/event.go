package dto

import (
	"strings"
	"time"

	"donorhub-backend/pkg/apperrors"
)

// CreateEventRequest is the raw JSON body for POST /api/calendar-events.
type CreateEventRequest struct {
	UserID          string  `json:"userId"`
	PersonID        *string `json:"personId"`
	Title           string  `json:"title"`
	Description     string  `json:"description"`
	EventType       string  `json:"eventType"`
	ScheduledAt     string  `json:"scheduledAt"`
	DurationMinutes *int    `json:"durationMinutes"`
	Priority        string  `json:"priority"`
	EstimatedImpact string  `json:"estimatedImpact"`
	MeetingBriefID  *string `json:"meetingBriefId"`
	TaskID          *string `json:"taskId"`
	Completed       *int    `json:"completed"`
	Outcome         string  `json:"outcome"`
}

// CreateEventData is the coerced, validated form of CreateEventRequest.
type CreateEventData struct {
	UserID          string
	PersonID        *string
	Title           string
	Description     string
	EventType       string
	ScheduledAt     time.Time
	DurationMinutes *int
	Priority        string
	EstimatedImpact string
	MeetingBriefID  *string
	TaskID          *string
	Completed       int
	Outcome         string
}

func (r CreateEventRequest) Parse() (*CreateEventData, *apperrors.ValidationError) {
	var fields []apperrors.FieldError

	if r.Title == "" {
		fields = append(fields, apperrors.FieldError{Field: "title", Message: "title is required"})
	} else if len(r.Title) > 255 {
		fields = append(fields, apperrors.FieldError{Field: "title", Message: "title must be at most 255 characters"})
	}

	if r.UserID == "" {
		fields = append(fields, apperrors.FieldError{Field: "userId", Message: "userId is required"})
	}

	var scheduledAt time.Time
	if r.ScheduledAt == "" {
		fields = append(fields, apperrors.FieldError{Field: "scheduledAt", Message: "scheduledAt is required"})
	} else {
		t, err := parseDate(r.ScheduledAt)
		if err != nil {
			fields = append(fields, apperrors.FieldError{Field: "scheduledAt", Message: "scheduledAt must be a valid date"})
		} else {
			scheduledAt = t
		}
	}

	if r.DurationMinutes != nil && *r.DurationMinutes <= 0 {
		fields = append(fields, apperrors.FieldError{Field: "durationMinutes", Message: "durationMinutes must be a positive integer"})
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

	return &CreateEventData{
		UserID:          r.UserID,
		PersonID:        r.PersonID,
		Title:           r.Title,
		Description:     r.Description,
		EventType:       r.EventType,
		ScheduledAt:     scheduledAt,
		DurationMinutes: r.DurationMinutes,
		Priority:        r.Priority,
		EstimatedImpact: r.EstimatedImpact,
		MeetingBriefID:  r.MeetingBriefID,
		TaskID:          r.TaskID,
		Completed:       completed,
		Outcome:         r.Outcome,
	}, nil
}

// UpdateEventRequest is the raw JSON body for PATCH /api/calendar-events/:id.
type UpdateEventRequest struct {
	PersonID        *string `json:"personId"`
	Title           *string `json:"title"`
	Description     *string `json:"description"`
	EventType       *string `json:"eventType"`
	ScheduledAt     *string `json:"scheduledAt"`
	DurationMinutes *int    `json:"durationMinutes"`
	Priority        *string `json:"priority"`
	EstimatedImpact *string `json:"estimatedImpact"`
	MeetingBriefID  *string `json:"meetingBriefId"`
	TaskID          *string `json:"taskId"`
	Completed       *int    `json:"completed"`
	Outcome         *string `json:"outcome"`
}

// UpdateEventData carries only the fields present in the request.
type UpdateEventData struct {
	PersonID        *string
	Title           *string
	Description     *string
	EventType       *string
	ScheduledAt     *time.Time
	DurationMinutes *int
	Priority        *string
	EstimatedImpact *string
	MeetingBriefID  *string
	TaskID          *string
	Completed       *int
	Outcome         *string
}

func (r UpdateEventRequest) Parse() (*UpdateEventData, *apperrors.ValidationError) {
	var fields []apperrors.FieldError
	data := &UpdateEventData{
		PersonID:        r.PersonID,
		Title:           r.Title,
		Description:     r.Description,
		EventType:       r.EventType,
		Priority:        r.Priority,
		EstimatedImpact: r.EstimatedImpact,
		MeetingBriefID:  r.MeetingBriefID,
		TaskID:          r.TaskID,
		Outcome:         r.Outcome,
	}

	if r.Title != nil {
		if strings.TrimSpace(*r.Title) == "" {
			fields = append(fields, apperrors.FieldError{Field: "title", Message: "title is required"})
		} else if len(*r.Title) > 255 {
			fields = append(fields, apperrors.FieldError{Field: "title", Message: "title must be at most 255 characters"})
		}
	}

	if r.ScheduledAt != nil {
		t, err := parseDate(*r.ScheduledAt)
		if err != nil {
			fields = append(fields, apperrors.FieldError{Field: "scheduledAt", Message: "scheduledAt must be a valid date"})
		} else {
			data.ScheduledAt = &t
		}
	}

	if r.DurationMinutes != nil {
		if *r.DurationMinutes <= 0 {
			fields = append(fields, apperrors.FieldError{Field: "durationMinutes", Message: "durationMinutes must be a positive integer"})
		} else {
			data.DurationMinutes = r.DurationMinutes
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
