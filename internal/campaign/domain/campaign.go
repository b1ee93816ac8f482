package domain

import "time"

// Status represents a campaign lifecycle stage
type Status string

const (
	StatusDraft     Status = "draft"
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
)

// Valid reports whether s is a known campaign status.
func (s Status) Valid() bool {
	switch s {
	case StatusDraft, StatusActive, StatusCompleted:
		return true
	}
	return false
}

// Campaign represents a fundraising campaign
type Campaign struct {
	ID           string     `json:"id" gorm:"primaryKey"`
	UserID       string     `json:"userId" gorm:"index;not null"`
	Name         string     `json:"name" gorm:"size:255;not null"`
	Description  string     `json:"description,omitempty"`
	GoalAmount   string     `json:"goalAmount,omitempty"`   // decimal-as-string
	RaisedAmount string     `json:"raisedAmount,omitempty"` // decimal-as-string
	Status       Status     `json:"status" gorm:"default:draft"`
	StartDate    *time.Time `json:"startDate,omitempty"`
	EndDate      *time.Time `json:"endDate,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}
