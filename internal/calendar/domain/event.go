package domain

import "time"

// CalendarEvent represents a scheduled donor touchpoint (call, email,
// meeting...) owned by a user.
type CalendarEvent struct {
	ID              string     `json:"id" gorm:"primaryKey"`
	UserID          string     `json:"userId" gorm:"index;not null"`
	PersonID        *string    `json:"personId,omitempty" gorm:"index"` // Optional link to a donor record
	Title           string     `json:"title" gorm:"size:255;not null"`
	Description     string     `json:"description,omitempty"`
	EventType       string     `json:"eventType,omitempty"` // call, email, meeting, task...
	ScheduledAt     time.Time  `json:"scheduledAt" gorm:"index;not null"`
	DurationMinutes *int       `json:"durationMinutes,omitempty"`
	AISuggestedTime *time.Time `json:"aiSuggestedTime,omitempty"`
	Priority        string     `json:"priority,omitempty"`
	EstimatedImpact string     `json:"estimatedImpact,omitempty"` // decimal-as-string
	MeetingBriefID  *string    `json:"meetingBriefId,omitempty"`
	TaskID          *string    `json:"taskId,omitempty"`
	Completed       int        `json:"completed" gorm:"default:0"` // 0 or 1
	Outcome         string     `json:"outcome,omitempty"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
}
