package domain

import "time"

// Priority represents task priority level
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

// Valid reports whether p is one of the four known priority levels.
func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}

// Task represents a follow-up item owned by a user, optionally tied to a donor
type Task struct {
	ID          string     `json:"id" gorm:"primaryKey"`
	OwnerID     string     `json:"ownerId" gorm:"index;not null"`
	PersonID    *string    `json:"personId,omitempty" gorm:"index"` // Optional link to a donor record
	Title       string     `json:"title" gorm:"size:255;not null"`
	Description string     `json:"description,omitempty"`
	Reason      string     `json:"reason,omitempty"`
	Priority    Priority   `json:"priority" gorm:"default:medium"`
	DueDate     *time.Time `json:"dueDate,omitempty"`
	Completed   int        `json:"completed" gorm:"default:0"` // 0 or 1
	CompletedAt *time.Time `json:"completedAt,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}
