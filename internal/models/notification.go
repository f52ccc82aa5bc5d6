// internal/models/notification.go
package models

import (
	"github.com/google/uuid"
)

type Notification struct {
	BaseModel
	UserID    uuid.UUID        `json:"user_id" gorm:"type:uuid;not null;index"`
	Type      NotificationType `json:"type" gorm:"type:varchar(50);not null"`
	Message   string           `json:"message" gorm:"type:text;not null"`
	RelatedID *uuid.UUID       `json:"related_id" gorm:"type:uuid"`
	IsRead    bool             `json:"is_read" gorm:"default:false"`

	User *User `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}
