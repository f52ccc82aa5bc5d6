// internal/services/notification_service.go
package services

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/regzone/compliance-backend/internal/apperrors"
	"github.com/regzone/compliance-backend/internal/models"
)

type NotificationService struct {
	db *gorm.DB
}

func NewNotificationService(db *gorm.DB) *NotificationService {
	return &NotificationService{db: db}
}

// GetUserNotifications returns a user's notifications, newest first.
func (s *NotificationService) GetUserNotifications(userID uuid.UUID) ([]models.Notification, error) {
	var notifications []models.Notification
	if err := s.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&notifications).Error; err != nil {
		return nil, apperrors.Persistence("failed to fetch notifications", err)
	}
	return notifications, nil
}

// MarkAsRead flips a notification's is_read flag. Only the addressee can
// mark it; anyone else sees not-found.
func (s *NotificationService) MarkAsRead(notificationID, userID uuid.UUID) error {
	var notification models.Notification
	if err := s.db.First(&notification, "id = ? AND user_id = ?", notificationID, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NotFound("notification not found")
		}
		return apperrors.Persistence("failed to fetch notification", err)
	}

	if err := s.db.Model(&notification).Update("is_read", true).Error; err != nil {
		return apperrors.Persistence("failed to update notification", err)
	}
	return nil
}
