package models

import "gorm.io/gorm"

// Address types
const (
	AddressTypeHome  = "home"
	AddressTypeWork  = "work"
	AddressTypeOther = "other"
)

// Address is a postal address owned by a user. A user may hold any number
// of addresses; they cascade with the owning user on delete.
type Address struct {
	gorm.Model
	UserID             uint   `gorm:"index;not null" json:"-"`
	HouseFlatApartment string `gorm:"not null" json:"house_flat_apartment"`
	RoadStreet         string `gorm:"not null" json:"road_street"`
	Landmark           string `json:"landmark,omitempty"`
	City               string `gorm:"not null" json:"city"`
	Pincode            string `gorm:"not null;size:10" json:"pincode"`
	State              string `gorm:"not null" json:"state"`
	AddressType        string `gorm:"default:'home';size:10" json:"address_type"`
}

// indianStates is the fixed set of Indian states and union territories an
// address may name. Keys are lowercase, matching the stored values.
var indianStates = map[string]struct{}{
	"andhra pradesh":                           {},
	"arunachal pradesh":                        {},
	"assam":                                    {},
	"bihar":                                    {},
	"chhattisgarh":                             {},
	"goa":                                      {},
	"gujarat":                                  {},
	"haryana":                                  {},
	"himachal pradesh":                         {},
	"jharkhand":                                {},
	"karnataka":                                {},
	"kerala":                                   {},
	"madhya pradesh":                           {},
	"maharashtra":                              {},
	"manipur":                                  {},
	"meghalaya":                                {},
	"mizoram":                                  {},
	"nagaland":                                 {},
	"odisha":                                   {},
	"punjab":                                   {},
	"rajasthan":                                {},
	"sikkim":                                   {},
	"tamil nadu":                               {},
	"telangana":                                {},
	"tripura":                                  {},
	"uttar pradesh":                            {},
	"uttarakhand":                              {},
	"west bengal":                              {},
	"andaman and nicobar islands":              {},
	"chandigarh":                               {},
	"dadra and nagar haveli and daman and diu": {},
	"lakshadweep":                              {},
	"delhi":                                    {},
	"puducherry":                               {},
	"jammu & kashmir":                          {},
	"ladakh":                                   {},
}

// IsValidState reports whether state names a known Indian state or union
// territory.
func IsValidState(state string) bool {
	_, ok := indianStates[state]
	return ok
}

// IsValidAddressType reports whether t is one of home, work or other.
func IsValidAddressType(t string) bool {
	return t == AddressTypeHome || t == AddressTypeWork || t == AddressTypeOther
}
