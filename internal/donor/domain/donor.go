package domain

import "time"

// Donor represents a donor (person) record in the relationship pipeline
type Donor struct {
	ID             string     `json:"id" gorm:"primaryKey"`
	UserID         string     `json:"userId" gorm:"index;not null"`
	Name           string     `json:"name" gorm:"size:255;not null"`
	Email          string     `json:"email,omitempty" gorm:"index"`
	Phone          string     `json:"phone,omitempty"`
	Segment        string     `json:"segment,omitempty"` // major, recurring, lapsed, prospect...
	EnergyScore    int        `json:"energyScore" gorm:"default:50"`
	StructureScore int        `json:"structureScore" gorm:"default:50"`
	GivingCapacity string     `json:"givingCapacity,omitempty"` // decimal-as-string
	Notes          string     `json:"notes,omitempty"`
	LastContactAt  *time.Time `json:"lastContactAt,omitempty"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt"`
}
