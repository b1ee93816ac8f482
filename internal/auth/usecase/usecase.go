package usecase

import (
	authdomain "donorhub-backend/internal/auth/domain"
	authdto "donorhub-backend/internal/auth/dto"
)

// AuthUsecase handles registration, login and token lifecycle.
type AuthUsecase interface {
	Register(req *authdto.RegisterRequest) (*authdto.TokenResponse, error)
	Login(req *authdto.LoginRequest) (*authdto.TokenResponse, error)
	RefreshToken(refreshToken string) (*authdto.TokenResponse, error)
	Logout(refreshToken string) error
	LogoutAll(userID string) error
	UpdateProfile(userID string, req *authdto.UpdateProfileRequest) (*authdomain.User, error)
	ValidateToken(tokenString string) (*authdomain.User, error)
}
