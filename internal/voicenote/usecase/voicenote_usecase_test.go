package usecase

import (
	"context"
	"errors"
	"testing"

	"donorhub-backend/internal/voicenote/domain"
	"donorhub-backend/internal/voicenote/dto"
	"donorhub-backend/internal/voicenote/repository"
	"donorhub-backend/pkg/apperrors"
	"donorhub-backend/pkg/logger"
)

type mockVoiceNoteRepository struct {
	findFunc     func(filters repository.VoiceNoteFilters) ([]*domain.VoiceNote, error)
	findByIDFunc func(id string) (*domain.VoiceNote, error)
	createFunc   func(note *domain.VoiceNote) error
	updateFunc   func(id string, updates map[string]interface{}) (*domain.VoiceNote, error)
	deleteFunc   func(id string) (*domain.VoiceNote, error)
}

func (m *mockVoiceNoteRepository) Find(filters repository.VoiceNoteFilters) ([]*domain.VoiceNote, error) {
	return m.findFunc(filters)
}

func (m *mockVoiceNoteRepository) FindByID(id string) (*domain.VoiceNote, error) {
	return m.findByIDFunc(id)
}

func (m *mockVoiceNoteRepository) Create(note *domain.VoiceNote) error {
	return m.createFunc(note)
}

func (m *mockVoiceNoteRepository) Update(id string, updates map[string]interface{}) (*domain.VoiceNote, error) {
	return m.updateFunc(id, updates)
}

func (m *mockVoiceNoteRepository) Delete(id string) (*domain.VoiceNote, error) {
	return m.deleteFunc(id)
}

type stubTranscriber struct {
	transcript string
	err        error
}

func (s *stubTranscriber) TranscribeAudio(ctx context.Context, audioBase64, mimeType string) (string, error) {
	return s.transcript, s.err
}

func TestVoiceNoteUsecase_Create(t *testing.T) {
	data := &dto.CreateVoiceNoteData{UserID: "u1", Audio: "Zm9v", MimeType: "audio/webm"}

	t.Run("without a transcriber the note stays pending", func(t *testing.T) {
		repo := &mockVoiceNoteRepository{
			createFunc: func(note *domain.VoiceNote) error {
				note.ID = "v1"
				return nil
			},
			updateFunc: func(id string, updates map[string]interface{}) (*domain.VoiceNote, error) {
				t.Fatal("no update expected without a transcriber")
				return nil, nil
			},
		}
		uc := NewVoiceNoteUsecase(repo, logger.NewNop())

		note, err := uc.Create(context.Background(), data)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if note.Status != domain.StatusPending {
			t.Errorf("status = %q, want pending", note.Status)
		}
	})

	t.Run("successful transcription stores the transcript", func(t *testing.T) {
		var got map[string]interface{}
		repo := &mockVoiceNoteRepository{
			createFunc: func(note *domain.VoiceNote) error {
				note.ID = "v1"
				return nil
			},
			updateFunc: func(id string, updates map[string]interface{}) (*domain.VoiceNote, error) {
				got = updates
				return &domain.VoiceNote{ID: id, Transcript: updates["transcript"].(string), Status: domain.StatusTranscribed}, nil
			},
		}
		uc := NewVoiceNoteUsecase(repo, logger.NewNop())
		uc.SetTranscriber(&stubTranscriber{transcript: "Met the Parkers at the gala, very warm on the scholarship fund."})

		note, err := uc.Create(context.Background(), data)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if note.Status != domain.StatusTranscribed {
			t.Errorf("status = %q, want transcribed", note.Status)
		}
		if got["status"] != domain.StatusTranscribed {
			t.Errorf("persisted status = %v, want transcribed", got["status"])
		}
	})

	t.Run("transcription failure marks the note failed but still returns it", func(t *testing.T) {
		repo := &mockVoiceNoteRepository{
			createFunc: func(note *domain.VoiceNote) error {
				note.ID = "v1"
				return nil
			},
			updateFunc: func(id string, updates map[string]interface{}) (*domain.VoiceNote, error) {
				if updates["status"] != domain.StatusFailed {
					t.Errorf("persisted status = %v, want failed", updates["status"])
				}
				return &domain.VoiceNote{ID: id, Status: domain.StatusFailed}, nil
			},
		}
		uc := NewVoiceNoteUsecase(repo, logger.NewNop())
		uc.SetTranscriber(&stubTranscriber{err: errors.New("audio not supported")})

		note, err := uc.Create(context.Background(), data)
		if err != nil {
			t.Fatalf("a transcription failure must not fail the create: %v", err)
		}
		if note.Status != domain.StatusFailed {
			t.Errorf("status = %q, want failed", note.Status)
		}
	})
}

func TestVoiceNoteUsecase_Retranscribe(t *testing.T) {
	t.Run("unknown id is a NotFoundError", func(t *testing.T) {
		repo := &mockVoiceNoteRepository{
			findByIDFunc: func(id string) (*domain.VoiceNote, error) { return nil, nil },
		}
		uc := NewVoiceNoteUsecase(repo, logger.NewNop())

		_, err := uc.Retranscribe(context.Background(), "nope")
		var nf *apperrors.NotFoundError
		if !errors.As(err, &nf) {
			t.Fatalf("want NotFoundError, got %v", err)
		}
	})

	t.Run("retries a failed note", func(t *testing.T) {
		repo := &mockVoiceNoteRepository{
			findByIDFunc: func(id string) (*domain.VoiceNote, error) {
				return &domain.VoiceNote{ID: id, AudioBase64: "Zm9v", MimeType: "audio/webm", Status: domain.StatusFailed}, nil
			},
			updateFunc: func(id string, updates map[string]interface{}) (*domain.VoiceNote, error) {
				return &domain.VoiceNote{ID: id, Transcript: updates["transcript"].(string), Status: domain.StatusTranscribed}, nil
			},
		}
		uc := NewVoiceNoteUsecase(repo, logger.NewNop())
		uc.SetTranscriber(&stubTranscriber{transcript: "Second pass worked."})

		note, err := uc.Retranscribe(context.Background(), "v1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if note.Status != domain.StatusTranscribed {
			t.Errorf("status = %q, want transcribed", note.Status)
		}
	})
}
