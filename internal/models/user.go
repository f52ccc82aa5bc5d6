// internal/models/user.go
package models

import (
	"golang.org/x/crypto/bcrypt"
)

type User struct {
	BaseModel
	Username     string   `json:"username" gorm:"uniqueIndex;size:255;not null"`
	PasswordHash string   `json:"-" gorm:"size:255;not null"`
	Role         UserRole `json:"role" gorm:"type:varchar(50);default:'user'"`

	// Relationships
	Forms         []ComplianceForm `json:"forms,omitempty" gorm:"foreignKey:UserID"`
	Notifications []Notification   `json:"notifications,omitempty" gorm:"foreignKey:UserID"`
}

func (u *User) SetPassword(password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PasswordHash = string(hashedPassword)
	return nil
}

func (u *User) CheckPassword(password string) error {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password))
}
