package models

import (
	"strings"

	"gorm.io/gorm"
)

// User is the owner of entries and templates.
type User struct {
	DefaultModel
	Name         string `json:"name" example:"Somchai"`
	Email        string `json:"email" gorm:"uniqueIndex" example:"somchai@example.com"`
	PasswordHash string `json:"-"`
}

// BeforeSave normalizes the e-mail address so that lookups
// are case insensitive.
func (u *User) BeforeSave(_ *gorm.DB) error {
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))
	return nil
}
