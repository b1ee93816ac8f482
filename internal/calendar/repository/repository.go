package repository

import (
	"time"

	"donorhub-backend/internal/calendar/domain"
)

// EventFilters are combined with AND; nil fields are ignored.
// StartDate and EndDate bound scheduled_at inclusively on both ends.
type EventFilters struct {
	UserID    *string
	StartDate *time.Time
	EndDate   *time.Time
	Completed *int
}

// EventRepository is the only layer allowed to query the calendar_events table.
// Lookups return (nil, nil) when nothing matches; the service decides 404.
type EventRepository interface {
	Find(filters EventFilters) ([]*domain.CalendarEvent, error)
	FindByID(id string) (*domain.CalendarEvent, error)
	FindByPersonID(personID string) ([]*domain.CalendarEvent, error)
	Create(event *domain.CalendarEvent) error
	Update(id string, updates map[string]interface{}) (*domain.CalendarEvent, error)
	Delete(id string) (*domain.CalendarEvent, error)
}
