package domain

import "time"

// Status represents a grant application stage
type Status string

const (
	StatusProspect Status = "prospect"
	StatusApplied  Status = "applied"
	StatusAwarded  Status = "awarded"
	StatusDeclined Status = "declined"
)

// Valid reports whether s is a known grant status.
func (s Status) Valid() bool {
	switch s {
	case StatusProspect, StatusApplied, StatusAwarded, StatusDeclined:
		return true
	}
	return false
}

// Grant represents a grant opportunity and its application lifecycle
type Grant struct {
	ID                  string     `json:"id" gorm:"primaryKey"`
	UserID              string     `json:"userId" gorm:"index;not null"`
	Funder              string     `json:"funder" gorm:"size:255;not null"`
	Title               string     `json:"title,omitempty"`
	Amount              string     `json:"amount,omitempty"` // decimal-as-string
	Status              Status     `json:"status" gorm:"default:prospect"`
	ApplicationDeadline *time.Time `json:"applicationDeadline,omitempty"`
	ReportDeadline      *time.Time `json:"reportDeadline,omitempty"`
	Notes               string     `json:"notes,omitempty"`
	CreatedAt           time.Time  `json:"createdAt"`
	UpdatedAt           time.Time  `json:"updatedAt"`
}
