// internal/handlers/notification.go
package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/regzone/compliance-backend/internal/services"
	"github.com/regzone/compliance-backend/internal/utils"
)

type NotificationHandler struct {
	notificationService *services.NotificationService
}

func NewNotificationHandler(notificationService *services.NotificationService) *NotificationHandler {
	return &NotificationHandler{
		notificationService: notificationService,
	}
}

// GET /api/notifications
func (h *NotificationHandler) GetNotifications(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.UnauthorizedResponse(c, "")
		return
	}

	notifications, err := h.notificationService.GetUserNotifications(userID)
	if err != nil {
		utils.AppErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, notifications)
}

// PUT /api/notifications/:id/read
func (h *NotificationHandler) MarkAsRead(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.UnauthorizedResponse(c, "")
		return
	}

	notificationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid notification ID", nil)
		return
	}

	if err := h.notificationService.MarkAsRead(notificationID, userID); err != nil {
		utils.AppErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": "Notification marked as read",
	})
}
