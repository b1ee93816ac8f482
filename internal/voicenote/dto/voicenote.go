package dto

import (
	"donorhub-backend/pkg/apperrors"
)

// CreateVoiceNoteRequest is the raw JSON body for POST /api/voice-notes.
type CreateVoiceNoteRequest struct {
	UserID   string  `json:"userId"`
	DonorID  *string `json:"donorId"`
	Audio    string  `json:"audio"` // base64
	MimeType string  `json:"mimeType"`
}

// CreateVoiceNoteData is the validated form of CreateVoiceNoteRequest.
type CreateVoiceNoteData struct {
	UserID   string
	DonorID  *string
	Audio    string
	MimeType string
}

func (r CreateVoiceNoteRequest) Parse() (*CreateVoiceNoteData, *apperrors.ValidationError) {
	var fields []apperrors.FieldError

	if r.UserID == "" {
		fields = append(fields, apperrors.FieldError{Field: "userId", Message: "userId is required"})
	}
	if r.Audio == "" {
		fields = append(fields, apperrors.FieldError{Field: "audio", Message: "audio is required"})
	}
	if r.MimeType == "" {
		fields = append(fields, apperrors.FieldError{Field: "mimeType", Message: "mimeType is required"})
	}

	if len(fields) > 0 {
		return nil, apperrors.NewFieldValidation(fields)
	}

	return &CreateVoiceNoteData{
		UserID:   r.UserID,
		DonorID:  r.DonorID,
		Audio:    r.Audio,
		MimeType: r.MimeType,
	}, nil
}
