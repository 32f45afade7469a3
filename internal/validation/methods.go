// Package validation holds the stateless format rules for account and KYC
// fields. Uniqueness checks live in the services, next to the repositories
// that answer them.
package validation

import (
	"sort"
	"strings"

	"paisa/internal/models"
)

// Errors is a field-itemized validation failure. It satisfies the error
// interface so services can hand it back through their normal error return.
type Errors map[string]string

func (e Errors) Error() string {
	parts := make([]string, 0, len(e))
	for field, msg := range e {
		parts = append(parts, field+": "+msg)
	}
	sort.Strings(parts)
	return strings.Join(parts, "; ")
}

// Validator accumulates per-field errors.
type Validator struct {
	Errors Errors
}

// New creates a new validator
func New() *Validator {
	return &Validator{Errors: make(Errors)}
}

// Valid checks if there are any validation errors
func (v *Validator) Valid() bool {
	return len(v.Errors) == 0
}

// Err returns the accumulated errors, or nil when everything passed.
func (v *Validator) Err() error {
	if v.Valid() {
		return nil
	}
	return v.Errors
}

// AddError adds an error to the validator
func (v *Validator) AddError(field, message string) {
	if _, exists := v.Errors[field]; !exists {
		v.Errors[field] = message
	}
}

// Check adds an error if the condition is false
func (v *Validator) Check(ok bool, field, message string) {
	if !ok {
		v.AddError(field, message)
	}
}

// Required checks that a string is not empty.
func (v *Validator) Required(field, value string) {
	v.Check(strings.TrimSpace(value) != "", field, "This field is required.")
}

// Phone validates phone number format: optional leading +, 10-15 digits.
func (v *Validator) Phone(field, phone string) {
	v.Check(phoneRegex.MatchString(phone), field,
		"Invalid phone number format. It should be 10-15 digits.")
}

// Email validates email format.
func (v *Validator) Email(field, email string) {
	v.Check(emailRegex.MatchString(email), field, "Invalid email format.")
}

// PAN validates PAN format: 5 uppercase letters, 4 digits, 1 uppercase letter.
func (v *Validator) PAN(field, pan string) {
	v.Check(panRegex.MatchString(pan), field,
		"Invalid PAN number format. It should be in the format: ABCDE1234F")
}

// Pincode validates that a pincode is exactly 6 digits.
func (v *Validator) Pincode(field, pincode string) {
	v.Check(pincodeRegex.MatchString(pincode), field,
		"Pincode must be exactly 6 digits.")
}

// State validates membership in the Indian state/union territory set.
func (v *Validator) State(field, state string) {
	v.Check(models.IsValidState(state), field, "Invalid state.")
}

// AddressType validates the address type tag.
func (v *Validator) AddressType(field, t string) {
	v.Check(models.IsValidAddressType(t), field,
		"Address type must be home, work or other.")
}

// PasswordMatch checks that a password and its confirmation are identical.
func (v *Validator) PasswordMatch(field, password, confirm string) {
	v.Check(password == confirm, field, "The passwords do not match.")
}
