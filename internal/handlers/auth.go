// internal/handlers/auth.go
package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/regzone/compliance-backend/internal/services"
	"github.com/regzone/compliance-backend/internal/utils"
)

type AuthHandler struct {
	authService *services.AuthService
}

func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// POST /api/signup
func (h *AuthHandler) Signup(c *gin.Context) {
	var req services.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body", err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	user, err := h.authService.Signup(&req)
	if err != nil {
		utils.AppErrorResponse(c, err)
		return
	}

	utils.CreatedResponse(c, gin.H{
		"message": "User created successfully",
		"userId":  user.ID,
	})
}

// POST /api/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req services.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body", err.Error())
		return
	}

	resp, err := h.authService.Login(&req)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			utils.UnauthorizedResponse(c, "Invalid credentials")
			return
		}
		utils.AppErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message":      "Login successful",
		"access_token": resp.AccessToken,
		"token_type":   resp.TokenType,
		"expires_in":   resp.ExpiresIn,
		"user": gin.H{
			"username": resp.User.Username,
			"role":     resp.User.Role,
		},
	})
}

// GET /api/profile
func (h *AuthHandler) GetProfile(c *gin.Context) {
	username, _ := c.Get("username")
	role, exists := utils.GetUserRoleFromContext(c)
	if !exists {
		utils.UnauthorizedResponse(c, "")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"username": username,
		"role":     role,
	})
}
