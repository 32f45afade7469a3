package models

import "gorm.io/gorm"

// Profile tracks per-user verification state. One per user, created at
// registration. IsVerified drops back to false whenever the phone number
// changes and is only raised again by a verification submission.
type Profile struct {
	gorm.Model
	UserID     uint `gorm:"uniqueIndex;not null" json:"-"`
	IsVerified bool `gorm:"default:false" json:"is_verified"`
}
