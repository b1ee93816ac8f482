package usecase

import (
	"context"
	"strings"

	"donorhub-backend/internal/calendar/domain"
	"donorhub-backend/internal/calendar/dto"
	"donorhub-backend/internal/calendar/repository"
	"donorhub-backend/pkg/apperrors"
	"donorhub-backend/pkg/logger"
)

// eventUsecase implements EventUsecase
type eventUsecase struct {
	eventRepo repository.EventRepository
	l         logger.Logger
	suggester TimeSuggester
	exporter  CalendarExporter
}

// NewEventUsecase creates a new instance of eventUsecase
func NewEventUsecase(eventRepo repository.EventRepository, l logger.Logger) EventUsecase {
	return &eventUsecase{
		eventRepo: eventRepo,
		l:         l,
	}
}

func (u *eventUsecase) SetTimeSuggester(s TimeSuggester) {
	u.suggester = s
}

func (u *eventUsecase) SetExporter(e CalendarExporter) {
	u.exporter = e
}

func (u *eventUsecase) List(filters repository.EventFilters) ([]*domain.CalendarEvent, error) {
	return u.eventRepo.Find(filters)
}

func (u *eventUsecase) ListByPerson(personID string) ([]*domain.CalendarEvent, error) {
	return u.eventRepo.FindByPersonID(personID)
}

func (u *eventUsecase) GetByID(id string) (*domain.CalendarEvent, error) {
	event, err := u.eventRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, apperrors.NewNotFound("calendar event", id)
	}
	return event, nil
}

func (u *eventUsecase) Create(ctx context.Context, data *dto.CreateEventData) (*domain.CalendarEvent, error) {
	if strings.TrimSpace(data.Title) == "" {
		return nil, apperrors.NewValidation("title is required")
	}
	if data.UserID == "" {
		return nil, apperrors.NewValidation("userId is required")
	}
	if data.ScheduledAt.IsZero() {
		return nil, apperrors.NewValidation("scheduledAt is required")
	}

	event := &domain.CalendarEvent{
		UserID:          data.UserID,
		PersonID:        data.PersonID,
		Title:           data.Title,
		Description:     data.Description,
		EventType:       data.EventType,
		ScheduledAt:     data.ScheduledAt,
		DurationMinutes: data.DurationMinutes,
		Priority:        data.Priority,
		EstimatedImpact: data.EstimatedImpact,
		MeetingBriefID:  data.MeetingBriefID,
		TaskID:          data.TaskID,
		Completed:       data.Completed,
		Outcome:         data.Outcome,
	}

	// An AI suggestion is a nice-to-have; never fail the create over it.
	if u.suggester != nil {
		suggested, err := u.suggester.SuggestEventTime(ctx, event.Title, event.ScheduledAt)
		if err != nil {
			u.l.Warnf("time suggestion failed for %q: %v", event.Title, err)
		} else {
			event.AISuggestedTime = suggested
		}
	}

	if err := u.eventRepo.Create(event); err != nil {
		return nil, err
	}

	if u.exporter != nil {
		if err := u.exporter.ExportEvent(ctx, event); err != nil {
			u.l.Warnf("calendar export failed for event %s: %v", event.ID, err)
		}
	}

	u.l.Infof("calendar event created: %s (user %s)", event.ID, event.UserID)
	return event, nil
}

func (u *eventUsecase) Update(id string, data *dto.UpdateEventData) (*domain.CalendarEvent, error) {
	existing, err := u.eventRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, apperrors.NewNotFound("calendar event", id)
	}

	updates := map[string]interface{}{}
	if data.Title != nil {
		if strings.TrimSpace(*data.Title) == "" {
			return nil, apperrors.NewValidation("title is required")
		}
		updates["title"] = *data.Title
	}
	if data.PersonID != nil {
		updates["person_id"] = *data.PersonID
	}
	if data.Description != nil {
		updates["description"] = *data.Description
	}
	if data.EventType != nil {
		updates["event_type"] = *data.EventType
	}
	if data.ScheduledAt != nil {
		updates["scheduled_at"] = *data.ScheduledAt
	}
	if data.DurationMinutes != nil {
		updates["duration_minutes"] = *data.DurationMinutes
	}
	if data.Priority != nil {
		updates["priority"] = *data.Priority
	}
	if data.EstimatedImpact != nil {
		updates["estimated_impact"] = *data.EstimatedImpact
	}
	if data.MeetingBriefID != nil {
		updates["meeting_brief_id"] = *data.MeetingBriefID
	}
	if data.TaskID != nil {
		updates["task_id"] = *data.TaskID
	}
	if data.Completed != nil {
		updates["completed"] = *data.Completed
	}
	if data.Outcome != nil {
		updates["outcome"] = *data.Outcome
	}

	if len(updates) == 0 {
		return existing, nil
	}

	updated, err := u.eventRepo.Update(id, updates)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, apperrors.NewNotFound("calendar event", id)
	}
	return updated, nil
}

func (u *eventUsecase) Delete(id string) (*domain.CalendarEvent, error) {
	deleted, err := u.eventRepo.Delete(id)
	if err != nil {
		return nil, err
	}
	if deleted == nil {
		return nil, apperrors.NewNotFound("calendar event", id)
	}
	u.l.Infof("calendar event deleted: %s", id)
	return deleted, nil
}
