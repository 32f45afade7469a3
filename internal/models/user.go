package models

import "gorm.io/gorm"

// User is the login identity. The phone number doubles as the username.
type User struct {
	gorm.Model
	Phone    string `gorm:"uniqueIndex;not null" json:"phone_number"`
	Name     string `gorm:"not null" json:"name"`
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Password string `gorm:"not null" json:"-"`
}
