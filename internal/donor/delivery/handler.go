package delivery

import (
	"net/http"

	"donorhub-backend/internal/donor/dto"
	"donorhub-backend/internal/donor/repository"
	"donorhub-backend/internal/donor/usecase"
	"donorhub-backend/pkg/response"

	"github.com/gin-gonic/gin"
)

// DonorHandler handles donor-related HTTP requests
type DonorHandler struct {
	donorUsecase usecase.DonorUsecase
}

// NewDonorHandler creates a new DonorHandler
func NewDonorHandler(donorUsecase usecase.DonorUsecase) *DonorHandler {
	return &DonorHandler{
		donorUsecase: donorUsecase,
	}
}

// GetDonors returns donors matching the query filters
// GET /api/donors?userId=u1&segment=major
func (h *DonorHandler) GetDonors(c *gin.Context) {
	var filters repository.DonorFilters

	if userID := c.Query("userId"); userID != "" {
		filters.UserID = &userID
	}
	if segment := c.Query("segment"); segment != "" {
		filters.Segment = &segment
	}

	donors, err := h.donorUsecase.List(filters)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, donors)
}

// SearchDonors fuzzy-searches donors by name, email and notes
// GET /api/donors/search?q=margaret&userId=u1
func (h *DonorHandler) SearchDonors(c *gin.Context) {
	donors, err := h.donorUsecase.Search(c.Query("userId"), c.Query("q"))
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, donors)
}

// GetDonorByID returns a specific donor
// GET /api/donors/:id
func (h *DonorHandler) GetDonorByID(c *gin.Context) {
	donor, err := h.donorUsecase.GetByID(c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, donor)
}

// GetDonorPlacement returns the donor's quadrant placement
// GET /api/donors/:id/placement
func (h *DonorHandler) GetDonorPlacement(c *gin.Context) {
	placement, err := h.donorUsecase.Placement(c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, placement)
}

// CreateDonor creates a new donor record
// POST /api/donors
func (h *DonorHandler) CreateDonor(c *gin.Context) {
	var req dto.CreateDonorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	data, vErr := req.Parse()
	if vErr != nil {
		response.Error(c, vErr)
		return
	}

	donor, err := h.donorUsecase.Create(data)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, donor)
}

// UpdateDonor applies a partial update
// PATCH /api/donors/:id
func (h *DonorHandler) UpdateDonor(c *gin.Context) {
	var req dto.UpdateDonorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	data, vErr := req.Parse()
	if vErr != nil {
		response.Error(c, vErr)
		return
	}

	donor, err := h.donorUsecase.Update(c.Param("id"), data)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, donor)
}

// DeleteDonor deletes a donor and returns its prior representation
// DELETE /api/donors/:id
func (h *DonorHandler) DeleteDonor(c *gin.Context) {
	donor, err := h.donorUsecase.Delete(c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, donor)
}
