package domain

import "time"

// TranscriptionStatus tracks whether a note's transcript is ready
type TranscriptionStatus string

const (
	StatusPending     TranscriptionStatus = "pending"
	StatusTranscribed TranscriptionStatus = "transcribed"
	StatusFailed      TranscriptionStatus = "failed"
)

// VoiceNote represents a recorded note about a donor, transcribed by AI
type VoiceNote struct {
	ID          string              `json:"id" gorm:"primaryKey"`
	UserID      string              `json:"userId" gorm:"index;not null"`
	DonorID     *string             `json:"donorId,omitempty" gorm:"index"`
	AudioBase64 string              `json:"-" gorm:"type:text"` // raw payload, never echoed back
	MimeType    string              `json:"mimeType"`
	Transcript  string              `json:"transcript,omitempty"`
	Status      TranscriptionStatus `json:"status" gorm:"default:pending"`
	CreatedAt   time.Time           `json:"createdAt"`
	UpdatedAt   time.Time           `json:"updatedAt"`
}
