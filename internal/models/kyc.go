package models

import "gorm.io/gorm"

// KYC holds a user's PAN and optional photo reference. The PAN is unique
// across all users, not per user. Rows are owned by the user and go with
// it on delete, though no delete surface exists in this API.
type KYC struct {
	gorm.Model
	UserID    uint   `gorm:"uniqueIndex;not null" json:"-"`
	PANNumber string `gorm:"uniqueIndex;not null;size:10" json:"pan_number"`
	ImageURL  string `json:"user_image,omitempty"`
}
