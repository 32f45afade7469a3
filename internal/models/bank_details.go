package models

import "gorm.io/gorm"

// BankDetails is one bank account discovered for a user via the lookup
// provider. Rows are upserted keyed by (UserID, VPA); the VPA itself is
// globally unique. Owned by the user, cascade on delete.
type BankDetails struct {
	gorm.Model
	UserID       uint       `gorm:"index;not null" json:"-"`
	Name         string     `gorm:"not null" json:"name"`
	VPA          string     `gorm:"uniqueIndex;not null" json:"vpa"`
	MerchantIFSC string     `gorm:"size:20" json:"merchant_ifsc"`
	TPAP         StringList `gorm:"type:jsonb" json:"tpap"`
}
