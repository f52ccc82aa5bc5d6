// internal/services/auth_service.go
package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/regzone/compliance-backend/internal/apperrors"
	"github.com/regzone/compliance-backend/internal/config"
	"github.com/regzone/compliance-backend/internal/models"
	"github.com/regzone/compliance-backend/internal/utils"
)

// ErrInvalidCredentials is returned for both unknown usernames and wrong
// passwords so the two cases are indistinguishable to a caller.
var ErrInvalidCredentials = errors.New("invalid credentials")

type AuthService struct {
	db  *gorm.DB
	cfg *config.Config
}

type SignupRequest struct {
	Username string          `json:"username" validate:"required,username"`
	Password string          `json:"password" validate:"required,min=8"`
	Role     models.UserRole `json:"role" validate:"omitempty,oneof=user admin"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type AuthResponse struct {
	User        *models.User `json:"user"`
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"`
	ExpiresIn   int          `json:"expires_in"` // in seconds
}

func NewAuthService(db *gorm.DB, cfg *config.Config) *AuthService {
	return &AuthService{
		db:  db,
		cfg: cfg,
	}
}

func (s *AuthService) Signup(req *SignupRequest) (*models.User, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, apperrors.Validation("invalid signup request")
	}

	// Check if user already exists
	var existingUser models.User
	if err := s.db.Where("username = ?", req.Username).First(&existingUser).Error; err == nil {
		return nil, apperrors.Conflict("username already exists")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.Persistence("failed to check username", err)
	}

	role := req.Role
	if role == "" {
		role = models.UserRoleUser
	}

	user := &models.User{
		Username: req.Username,
		Role:     role,
	}

	// Passwords are stored as bcrypt hashes only.
	if err := user.SetPassword(req.Password); err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	if err := s.db.Create(user).Error; err != nil {
		return nil, apperrors.FromDB("failed to create user", err)
	}

	return user, nil
}

func (s *AuthService) Login(req *LoginRequest) (*AuthResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, apperrors.Validation("username and password are required")
	}

	var user models.User
	if err := s.db.Where("username = ?", req.Username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, apperrors.Persistence("failed to fetch user", err)
	}

	// Constant-time comparison against the stored hash.
	if err := user.CheckPassword(req.Password); err != nil {
		return nil, ErrInvalidCredentials
	}

	accessToken, err := utils.GenerateJWT(user.ID, user.Username, string(user.Role), s.cfg.JWT.AccessTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	return &AuthResponse{
		User:        &user,
		AccessToken: accessToken,
		TokenType:   "Bearer",
		ExpiresIn:   s.cfg.JWT.AccessTokenTTL * 3600, // Convert hours to seconds
	}, nil
}
