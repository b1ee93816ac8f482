package delivery

import (
	"net/http"

	"donorhub-backend/internal/voicenote/dto"
	"donorhub-backend/internal/voicenote/repository"
	"donorhub-backend/internal/voicenote/usecase"
	"donorhub-backend/pkg/response"

	"github.com/gin-gonic/gin"
)

// VoiceNoteHandler handles voice-note HTTP requests
type VoiceNoteHandler struct {
	noteUsecase usecase.VoiceNoteUsecase
}

// NewVoiceNoteHandler creates a new VoiceNoteHandler
func NewVoiceNoteHandler(noteUsecase usecase.VoiceNoteUsecase) *VoiceNoteHandler {
	return &VoiceNoteHandler{
		noteUsecase: noteUsecase,
	}
}

// GetVoiceNotes returns voice notes matching the query filters
// GET /api/voice-notes?userId=u1&donorId=d1
func (h *VoiceNoteHandler) GetVoiceNotes(c *gin.Context) {
	var filters repository.VoiceNoteFilters

	if userID := c.Query("userId"); userID != "" {
		filters.UserID = &userID
	}
	if donorID := c.Query("donorId"); donorID != "" {
		filters.DonorID = &donorID
	}

	notes, err := h.noteUsecase.List(filters)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, notes)
}

// GetVoiceNoteByID returns a specific voice note
// GET /api/voice-notes/:id
func (h *VoiceNoteHandler) GetVoiceNoteByID(c *gin.Context) {
	note, err := h.noteUsecase.GetByID(c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, note)
}

// CreateVoiceNote stores a recording and transcribes it
// POST /api/voice-notes
func (h *VoiceNoteHandler) CreateVoiceNote(c *gin.Context) {
	var req dto.CreateVoiceNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	data, vErr := req.Parse()
	if vErr != nil {
		response.Error(c, vErr)
		return
	}

	note, err := h.noteUsecase.Create(c.Request.Context(), data)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, note)
}

// RetranscribeVoiceNote retries transcription
// POST /api/voice-notes/:id/transcribe
func (h *VoiceNoteHandler) RetranscribeVoiceNote(c *gin.Context) {
	note, err := h.noteUsecase.Retranscribe(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, note)
}

// DeleteVoiceNote deletes a voice note
// DELETE /api/voice-notes/:id
func (h *VoiceNoteHandler) DeleteVoiceNote(c *gin.Context) {
	note, err := h.noteUsecase.Delete(c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, note)
}
