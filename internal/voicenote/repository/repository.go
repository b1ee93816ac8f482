package repository

import "donorhub-backend/internal/voicenote/domain"

// VoiceNoteFilters are combined with AND; nil fields are ignored.
type VoiceNoteFilters struct {
	UserID  *string
	DonorID *string
}

// VoiceNoteRepository is the only layer allowed to query the voice_notes table.
type VoiceNoteRepository interface {
	Find(filters VoiceNoteFilters) ([]*domain.VoiceNote, error)
	FindByID(id string) (*domain.VoiceNote, error)
	Create(note *domain.VoiceNote) error
	Update(id string, updates map[string]interface{}) (*domain.VoiceNote, error)
	Delete(id string) (*domain.VoiceNote, error)
}
