package delivery

import (
	"net/http"
	"time"

	"donorhub-backend/internal/calendar/dto"
	"donorhub-backend/internal/calendar/repository"
	"donorhub-backend/internal/calendar/usecase"
	"donorhub-backend/pkg/response"

	"github.com/gin-gonic/gin"
)

// EventHandler handles calendar-event HTTP requests
type EventHandler struct {
	eventUsecase usecase.EventUsecase
}

// NewEventHandler creates a new EventHandler
func NewEventHandler(eventUsecase usecase.EventUsecase) *EventHandler {
	return &EventHandler{
		eventUsecase: eventUsecase,
	}
}

// GetEvents returns calendar events matching the query filters
// GET /api/calendar-events?userId=u1&completed=false&startDate=2026-01-01&endDate=2026-01-31
func (h *EventHandler) GetEvents(c *gin.Context) {
	// A personId filter short-circuits to the secondary lookup.
	if personID := c.Query("personId"); personID != "" {
		events, err := h.eventUsecase.ListByPerson(personID)
		if err != nil {
			response.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, events)
		return
	}

	var filters repository.EventFilters

	if userID := c.Query("userId"); userID != "" {
		filters.UserID = &userID
	}
	if completed := c.Query("completed"); completed != "" {
		switch completed {
		case "true":
			one := 1
			filters.Completed = &one
		case "false":
			zero := 0
			filters.Completed = &zero
		default:
			response.BadRequest(c, "completed must be \"true\" or \"false\"")
			return
		}
	}
	if start := c.Query("startDate"); start != "" {
		t, err := parseQueryDate(start)
		if err != nil {
			response.BadRequest(c, "startDate must be an ISO-8601 date")
			return
		}
		filters.StartDate = &t
	}
	if end := c.Query("endDate"); end != "" {
		t, err := parseQueryDate(end)
		if err != nil {
			response.BadRequest(c, "endDate must be an ISO-8601 date")
			return
		}
		filters.EndDate = &t
	}

	events, err := h.eventUsecase.List(filters)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, events)
}

// GetEventByID returns a specific calendar event
// GET /api/calendar-events/:id
func (h *EventHandler) GetEventByID(c *gin.Context) {
	event, err := h.eventUsecase.GetByID(c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, event)
}

// CreateEvent creates a new calendar event
// POST /api/calendar-events
func (h *EventHandler) CreateEvent(c *gin.Context) {
	var req dto.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	data, vErr := req.Parse()
	if vErr != nil {
		response.Error(c, vErr)
		return
	}

	event, err := h.eventUsecase.Create(c.Request.Context(), data)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, event)
}

// UpdateEvent applies a partial update
// PATCH /api/calendar-events/:id
func (h *EventHandler) UpdateEvent(c *gin.Context) {
	var req dto.UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	data, vErr := req.Parse()
	if vErr != nil {
		response.Error(c, vErr)
		return
	}

	event, err := h.eventUsecase.Update(c.Param("id"), data)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, event)
}

// DeleteEvent deletes a calendar event and returns its prior representation
// DELETE /api/calendar-events/:id
func (h *EventHandler) DeleteEvent(c *gin.Context) {
	event, err := h.eventUsecase.Delete(c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, event)
}

// parseQueryDate accepts RFC3339 timestamps and bare dates.
func parseQueryDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}
