package delivery

import (
	"net/http"

	authdomain "donorhub-backend/internal/auth/domain"
	authdto "donorhub-backend/internal/auth/dto"
	"donorhub-backend/internal/auth/usecase"
	"donorhub-backend/pkg/response"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles authentication HTTP requests
type AuthHandler struct {
	authUsecase usecase.AuthUsecase
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authUsecase usecase.AuthUsecase) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUsecase,
	}
}

// Register creates an account and signs the user in
// POST /api/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req authdto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "email, password and name are required")
		return
	}

	tokens, err := h.authUsecase.Register(&req)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	c.JSON(http.StatusCreated, tokens)
}

// Login exchanges credentials for a token pair
// POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req authdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "email and password are required")
		return
	}

	tokens, err := h.authUsecase.Login(&req)
	if err != nil {
		response.Unauthorized(c, err.Error())
		return
	}
	c.JSON(http.StatusOK, tokens)
}

// RefreshToken rotates the refresh token and issues a new access token
// POST /api/auth/refresh
func (h *AuthHandler) RefreshToken(c *gin.Context) {
	var req authdto.RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "refreshToken is required")
		return
	}

	tokens, err := h.authUsecase.RefreshToken(req.RefreshToken)
	if err != nil {
		response.Unauthorized(c, err.Error())
		return
	}
	c.JSON(http.StatusOK, tokens)
}

// Logout invalidates a refresh token
// POST /api/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	var req authdto.RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "refreshToken is required")
		return
	}

	if err := h.authUsecase.Logout(req.RefreshToken); err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}

// LogoutAll invalidates every refresh token of the authenticated user
// POST /api/auth/logout-all
func (h *AuthHandler) LogoutAll(c *gin.Context) {
	user, ok := c.MustGet("user").(*authdomain.User)
	if !ok {
		response.Unauthorized(c, "not authenticated")
		return
	}

	if err := h.authUsecase.LogoutAll(user.ID); err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "logged out everywhere"})
}

// UpdateMe updates the authenticated user's profile
// PATCH /api/auth/me
func (h *AuthHandler) UpdateMe(c *gin.Context) {
	user, ok := c.MustGet("user").(*authdomain.User)
	if !ok {
		response.Unauthorized(c, "not authenticated")
		return
	}

	var req authdto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "name is required")
		return
	}

	updated, err := h.authUsecase.UpdateProfile(user.ID, &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// Me returns the authenticated user
// GET /api/auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	user, ok := c.MustGet("user").(*authdomain.User)
	if !ok {
		response.Unauthorized(c, "not authenticated")
		return
	}
	c.JSON(http.StatusOK, user)
}
