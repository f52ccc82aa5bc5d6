// internal/utils/response.go
package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/regzone/compliance-backend/internal/apperrors"
)

type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *APIError   `json:"error,omitempty"`
	Meta    interface{} `json:"meta,omitempty"`
}

type APIError struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

func SuccessResponse(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, APIResponse{
		Success: true,
		Data:    data,
	})
}

func SuccessResponseWithMeta(c *gin.Context, data interface{}, meta interface{}) {
	c.JSON(http.StatusOK, APIResponse{
		Success: true,
		Data:    data,
		Meta:    meta,
	})
}

func CreatedResponse(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, APIResponse{
		Success: true,
		Data:    data,
	})
}

func ErrorResponse(c *gin.Context, statusCode int, code, message string, details interface{}) {
	c.JSON(statusCode, APIResponse{
		Success: false,
		Error: &APIError{
			Code:    code,
			Message: message,
			Details: details,
		},
	})
}

func BadRequestResponse(c *gin.Context, message string, details interface{}) {
	if message == "" {
		message = "Invalid request"
	}
	ErrorResponse(c, http.StatusBadRequest, "BAD_REQUEST", message, details)
}

func UnauthorizedResponse(c *gin.Context, message string) {
	if message == "" {
		message = "Authentication required"
	}
	ErrorResponse(c, http.StatusUnauthorized, "UNAUTHORIZED", message, nil)
}

func ForbiddenResponse(c *gin.Context, message string) {
	if message == "" {
		message = "Access denied"
	}
	ErrorResponse(c, http.StatusForbidden, "FORBIDDEN", message, nil)
}

func NotFoundResponse(c *gin.Context, message string) {
	if message == "" {
		message = "Resource not found"
	}
	ErrorResponse(c, http.StatusNotFound, "NOT_FOUND", message, nil)
}

func ConflictResponse(c *gin.Context, message string) {
	ErrorResponse(c, http.StatusConflict, "CONFLICT", message, nil)
}

func InternalErrorResponse(c *gin.Context, message string) {
	if message == "" {
		message = "Internal server error"
	}
	ErrorResponse(c, http.StatusInternalServerError, "INTERNAL_ERROR", message, nil)
}

func ValidationErrorResponse(c *gin.Context, errors []ValidationError) {
	ErrorResponse(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", errors)
}

// AppErrorResponse maps the error taxonomy onto HTTP status codes.
// Underlying storage errors are never exposed to clients.
func AppErrorResponse(c *gin.Context, err error) {
	switch apperrors.KindOf(err) {
	case apperrors.KindValidation:
		BadRequestResponse(c, userMessage(err, "Invalid request"), nil)
	case apperrors.KindNotFound:
		NotFoundResponse(c, userMessage(err, "Resource not found"))
	case apperrors.KindConflict:
		ConflictResponse(c, userMessage(err, "Conflict"))
	default:
		InternalErrorResponse(c, "")
	}
}

func userMessage(err error, fallback string) string {
	var appErr *apperrors.Error
	if errors.As(err, &appErr) && appErr.Message != "" {
		return appErr.Message
	}
	return fallback
}

func PaginatedResponse(c *gin.Context, result PaginationResult) {
	SetPaginationHeaders(c, result)
	SuccessResponseWithMeta(c, result.Data, gin.H{
		"pagination": gin.H{
			"page":        result.Page,
			"limit":       result.Limit,
			"total":       result.Total,
			"total_pages": result.TotalPages,
		},
	})
}

func GetUserIDFromContext(c *gin.Context) (string, bool) {
	if userID, exists := c.Get("user_id"); exists {
		if userIDStr, ok := userID.(string); ok {
			return userIDStr, true
		}
	}
	return "", false
}

func GetUserRoleFromContext(c *gin.Context) (string, bool) {
	if role, exists := c.Get("role"); exists {
		if roleStr, ok := role.(string); ok {
			return roleStr, true
		}
	}
	return "", false
}
