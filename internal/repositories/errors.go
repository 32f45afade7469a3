package repositories

import "errors"

var (
	ErrUserNotFound        = errors.New("user not found")
	ErrPhoneTaken          = errors.New("phone number already registered")
	ErrEmailTaken          = errors.New("email already in use")
	ErrProfileNotFound     = errors.New("profile not found")
	ErrKYCNotFound         = errors.New("kyc record not found")
	ErrPANTaken            = errors.New("pan number already in use")
	ErrBankDetailsNotFound = errors.New("bank details not found")
	ErrDatabaseOperation   = errors.New("database operation failed")
)
