package delivery

import (
	"net/http"

	"donorhub-backend/internal/grant/domain"
	"donorhub-backend/internal/grant/dto"
	"donorhub-backend/internal/grant/repository"
	"donorhub-backend/internal/grant/usecase"
	"donorhub-backend/pkg/response"

	"github.com/gin-gonic/gin"
)

// GrantHandler handles grant-related HTTP requests
type GrantHandler struct {
	grantUsecase usecase.GrantUsecase
}

// NewGrantHandler creates a new GrantHandler
func NewGrantHandler(grantUsecase usecase.GrantUsecase) *GrantHandler {
	return &GrantHandler{
		grantUsecase: grantUsecase,
	}
}

// GetGrants returns grants matching the query filters
// GET /api/grants?userId=u1&status=applied
func (h *GrantHandler) GetGrants(c *gin.Context) {
	var filters repository.GrantFilters

	if userID := c.Query("userId"); userID != "" {
		filters.UserID = &userID
	}
	if status := c.Query("status"); status != "" {
		s := domain.Status(status)
		if !s.Valid() {
			response.BadRequest(c, "status must be one of prospect, applied, awarded, declined")
			return
		}
		filters.Status = &s
	}

	grants, err := h.grantUsecase.List(filters)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, grants)
}

// GetGrantByID returns a specific grant
// GET /api/grants/:id
func (h *GrantHandler) GetGrantByID(c *gin.Context) {
	grant, err := h.grantUsecase.GetByID(c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, grant)
}

// CreateGrant creates a new grant record
// POST /api/grants
func (h *GrantHandler) CreateGrant(c *gin.Context) {
	var req dto.CreateGrantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	data, vErr := req.Parse()
	if vErr != nil {
		response.Error(c, vErr)
		return
	}

	grant, err := h.grantUsecase.Create(data)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, grant)
}

// UpdateGrant applies a partial update
// PATCH /api/grants/:id
func (h *GrantHandler) UpdateGrant(c *gin.Context) {
	var req dto.UpdateGrantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	data, vErr := req.Parse()
	if vErr != nil {
		response.Error(c, vErr)
		return
	}

	grant, err := h.grantUsecase.Update(c.Param("id"), data)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, grant)
}

// DeleteGrant deletes a grant and returns its prior representation
// DELETE /api/grants/:id
func (h *GrantHandler) DeleteGrant(c *gin.Context) {
	grant, err := h.grantUsecase.Delete(c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, grant)
}
