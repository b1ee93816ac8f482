package usecase

import (
	"context"
	"time"

	"donorhub-backend/internal/calendar/domain"
	"donorhub-backend/internal/calendar/dto"
	"donorhub-backend/internal/calendar/repository"
)

// TimeSuggester asks an AI provider for an alternate slot for an event.
type TimeSuggester interface {
	SuggestEventTime(ctx context.Context, title string, scheduledAt time.Time) (*time.Time, error)
}

// CalendarExporter mirrors events into an external calendar.
type CalendarExporter interface {
	ExportEvent(ctx context.Context, event *domain.CalendarEvent) error
}

// EventUsecase enforces calendar-event business rules.
type EventUsecase interface {
	List(filters repository.EventFilters) ([]*domain.CalendarEvent, error)
	ListByPerson(personID string) ([]*domain.CalendarEvent, error)
	GetByID(id string) (*domain.CalendarEvent, error)
	Create(ctx context.Context, data *dto.CreateEventData) (*domain.CalendarEvent, error)
	Update(id string, data *dto.UpdateEventData) (*domain.CalendarEvent, error)
	Delete(id string) (*domain.CalendarEvent, error)

	SetTimeSuggester(s TimeSuggester)
	SetExporter(e CalendarExporter)
}
