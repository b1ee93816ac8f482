package delivery

import (
	"net/http"

	"donorhub-backend/internal/campaign/domain"
	"donorhub-backend/internal/campaign/dto"
	"donorhub-backend/internal/campaign/repository"
	"donorhub-backend/internal/campaign/usecase"
	"donorhub-backend/pkg/response"

	"github.com/gin-gonic/gin"
)

// CampaignHandler handles campaign-related HTTP requests
type CampaignHandler struct {
	campaignUsecase usecase.CampaignUsecase
}

// NewCampaignHandler creates a new CampaignHandler
func NewCampaignHandler(campaignUsecase usecase.CampaignUsecase) *CampaignHandler {
	return &CampaignHandler{
		campaignUsecase: campaignUsecase,
	}
}

// GetCampaigns returns campaigns matching the query filters
// GET /api/campaigns?userId=u1&status=active
func (h *CampaignHandler) GetCampaigns(c *gin.Context) {
	var filters repository.CampaignFilters

	if userID := c.Query("userId"); userID != "" {
		filters.UserID = &userID
	}
	if status := c.Query("status"); status != "" {
		s := domain.Status(status)
		if !s.Valid() {
			response.BadRequest(c, "status must be one of draft, active, completed")
			return
		}
		filters.Status = &s
	}

	campaigns, err := h.campaignUsecase.List(filters)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, campaigns)
}

// GetCampaignByID returns a specific campaign
// GET /api/campaigns/:id
func (h *CampaignHandler) GetCampaignByID(c *gin.Context) {
	campaign, err := h.campaignUsecase.GetByID(c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, campaign)
}

// CreateCampaign creates a new campaign
// POST /api/campaigns
func (h *CampaignHandler) CreateCampaign(c *gin.Context) {
	var req dto.CreateCampaignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	data, vErr := req.Parse()
	if vErr != nil {
		response.Error(c, vErr)
		return
	}

	campaign, err := h.campaignUsecase.Create(data)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, campaign)
}

// UpdateCampaign applies a partial update
// PATCH /api/campaigns/:id
func (h *CampaignHandler) UpdateCampaign(c *gin.Context) {
	var req dto.UpdateCampaignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	data, vErr := req.Parse()
	if vErr != nil {
		response.Error(c, vErr)
		return
	}

	campaign, err := h.campaignUsecase.Update(c.Param("id"), data)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, campaign)
}

// DeleteCampaign deletes a campaign and returns its prior representation
// DELETE /api/campaigns/:id
func (h *CampaignHandler) DeleteCampaign(c *gin.Context) {
	campaign, err := h.campaignUsecase.Delete(c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, campaign)
}
