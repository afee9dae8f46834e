package models

import "time"

const (
	RoleAdmin    = "admin"
	RoleResident = "resident"
)

type User struct {
	ID                 uint      `gorm:"primaryKey"`
	Email              string    `gorm:"uniqueIndex;not null"`
	PasswordHash       string    `gorm:"not null"`
	FullName           string    `gorm:"not null"`
	Phone              string
	Role               string `gorm:"not null;default:resident"`
	MustChangePassword bool   `gorm:"not null;default:false"`
	CreatedAt          time.Time `gorm:"not null"`
}

// DisplayName is what the roster shows for this user.
func (user User) DisplayName() string {
	if user.FullName != "" {
		return user.FullName
	}
	return user.Email
}
