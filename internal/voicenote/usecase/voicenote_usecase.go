package usecase

import (
	"context"

	"donorhub-backend/internal/voicenote/domain"
	"donorhub-backend/internal/voicenote/dto"
	"donorhub-backend/internal/voicenote/repository"
	"donorhub-backend/pkg/apperrors"
	"donorhub-backend/pkg/logger"
)

// Transcriber turns audio into text.
type Transcriber interface {
	TranscribeAudio(ctx context.Context, audioBase64, mimeType string) (string, error)
}

// VoiceNoteUsecase enforces voice-note business rules.
type VoiceNoteUsecase interface {
	List(filters repository.VoiceNoteFilters) ([]*domain.VoiceNote, error)
	GetByID(id string) (*domain.VoiceNote, error)
	// Create stores the note and transcribes it in-line. A transcription
	// failure marks the note failed but still returns it.
	Create(ctx context.Context, data *dto.CreateVoiceNoteData) (*domain.VoiceNote, error)
	// Retranscribe retries transcription for a pending or failed note.
	Retranscribe(ctx context.Context, id string) (*domain.VoiceNote, error)
	Delete(id string) (*domain.VoiceNote, error)

	SetTranscriber(t Transcriber)
}

type voiceNoteUsecase struct {
	noteRepo    repository.VoiceNoteRepository
	l           logger.Logger
	transcriber Transcriber
}

// NewVoiceNoteUsecase creates a new instance of voiceNoteUsecase
func NewVoiceNoteUsecase(noteRepo repository.VoiceNoteRepository, l logger.Logger) VoiceNoteUsecase {
	return &voiceNoteUsecase{
		noteRepo: noteRepo,
		l:        l,
	}
}

func (u *voiceNoteUsecase) SetTranscriber(t Transcriber) {
	u.transcriber = t
}

func (u *voiceNoteUsecase) List(filters repository.VoiceNoteFilters) ([]*domain.VoiceNote, error) {
	return u.noteRepo.Find(filters)
}

func (u *voiceNoteUsecase) GetByID(id string) (*domain.VoiceNote, error) {
	note, err := u.noteRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if note == nil {
		return nil, apperrors.NewNotFound("voice note", id)
	}
	return note, nil
}

func (u *voiceNoteUsecase) Create(ctx context.Context, data *dto.CreateVoiceNoteData) (*domain.VoiceNote, error) {
	if data.UserID == "" {
		return nil, apperrors.NewValidation("userId is required")
	}
	if data.Audio == "" {
		return nil, apperrors.NewValidation("audio is required")
	}

	note := &domain.VoiceNote{
		UserID:      data.UserID,
		DonorID:     data.DonorID,
		AudioBase64: data.Audio,
		MimeType:    data.MimeType,
		Status:      domain.StatusPending,
	}

	if err := u.noteRepo.Create(note); err != nil {
		return nil, err
	}

	return u.transcribe(ctx, note)
}

func (u *voiceNoteUsecase) Retranscribe(ctx context.Context, id string) (*domain.VoiceNote, error) {
	note, err := u.GetByID(id)
	if err != nil {
		return nil, err
	}
	return u.transcribe(ctx, note)
}

func (u *voiceNoteUsecase) transcribe(ctx context.Context, note *domain.VoiceNote) (*domain.VoiceNote, error) {
	if u.transcriber == nil {
		u.l.Warnf("no transcriber configured, voice note %s stays pending", note.ID)
		return note, nil
	}

	transcript, err := u.transcriber.TranscribeAudio(ctx, note.AudioBase64, note.MimeType)
	if err != nil {
		u.l.Errorf("transcription failed for voice note %s: %v", note.ID, err)
		failed, uerr := u.noteRepo.Update(note.ID, map[string]interface{}{
			"status": domain.StatusFailed,
		})
		if uerr != nil {
			return nil, uerr
		}
		return failed, nil
	}

	updated, err := u.noteRepo.Update(note.ID, map[string]interface{}{
		"transcript": transcript,
		"status":     domain.StatusTranscribed,
	})
	if err != nil {
		return nil, err
	}
	u.l.Infof("voice note transcribed: %s", note.ID)
	return updated, nil
}

func (u *voiceNoteUsecase) Delete(id string) (*domain.VoiceNote, error) {
	deleted, err := u.noteRepo.Delete(id)
	if err != nil {
		return nil, err
	}
	if deleted == nil {
		return nil, apperrors.NewNotFound("voice note", id)
	}
	return deleted, nil
}
