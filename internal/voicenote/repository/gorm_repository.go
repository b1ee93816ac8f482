package repository

import (
	"time"

	"donorhub-backend/internal/voicenote/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// gormVoiceNoteRepository implements VoiceNoteRepository using GORM
type gormVoiceNoteRepository struct {
	db *gorm.DB
}

// NewGormVoiceNoteRepository creates a new GORM-based VoiceNoteRepository
func NewGormVoiceNoteRepository(db *gorm.DB) VoiceNoteRepository {
	return &gormVoiceNoteRepository{db: db}
}

func (r *gormVoiceNoteRepository) Find(filters VoiceNoteFilters) ([]*domain.VoiceNote, error) {
	query := r.db.Model(&domain.VoiceNote{})

	if filters.UserID != nil {
		query = query.Where("user_id = ?", *filters.UserID)
	}
	if filters.DonorID != nil {
		query = query.Where("donor_id = ?", *filters.DonorID)
	}

	var notes []*domain.VoiceNote
	err := query.Order("created_at DESC").Find(&notes).Error
	return notes, err
}

func (r *gormVoiceNoteRepository) FindByID(id string) (*domain.VoiceNote, error) {
	var note domain.VoiceNote
	err := r.db.Where("id = ?", id).First(&note).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &note, nil
}

func (r *gormVoiceNoteRepository) Create(note *domain.VoiceNote) error {
	if note.ID == "" {
		note.ID = uuid.New().String()
	}
	note.CreatedAt = time.Now()
	note.UpdatedAt = time.Now()
	return r.db.Create(note).Error
}

func (r *gormVoiceNoteRepository) Update(id string, updates map[string]interface{}) (*domain.VoiceNote, error) {
	updates["updated_at"] = time.Now()
	res := r.db.Model(&domain.VoiceNote{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}
	return r.FindByID(id)
}

func (r *gormVoiceNoteRepository) Delete(id string) (*domain.VoiceNote, error) {
	note, err := r.FindByID(id)
	if err != nil {
		return nil, err
	}
	if note == nil {
		return nil, nil
	}
	if err := r.db.Delete(&domain.VoiceNote{}, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return note, nil
}
