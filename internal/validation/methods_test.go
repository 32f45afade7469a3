package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPhone(t *testing.T) {
	tests := []struct {
		name  string
		phone string
		valid bool
	}{
		{"ten digits", "9876543210", true},
		{"with country code", "+919876543210", true},
		{"fifteen digits", "123456789012345", true},
		{"too short", "123456789", false},
		{"too long", "1234567890123456", false},
		{"letters", "98765abcde", false},
		{"plus in the middle", "98765+43210", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := New()
			v.Phone("phone_number", tt.phone)
			assert.Equal(t, tt.valid, v.Valid())
		})
	}
}

func TestEmail(t *testing.T) {
	tests := []struct {
		name  string
		email string
		valid bool
	}{
		{"plain", "user@example.com", true},
		{"subdomain", "user@mail.example.co.in", true},
		{"plus tag", "user+tag@example.com", true},
		{"no at", "userexample.com", false},
		{"no tld", "user@example", false},
		{"single letter tld", "user@example.c", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := New()
			v.Email("email", tt.email)
			assert.Equal(t, tt.valid, v.Valid())
		})
	}
}

func TestPAN(t *testing.T) {
	tests := []struct {
		name  string
		pan   string
		valid bool
	}{
		{"well formed", "ABCDE1234F", true},
		{"lowercase", "abcde1234f", false},
		{"missing digit", "ABCDE123F", false},
		{"too many digits", "ABCDE12345F", false},
		{"trailing digit", "ABCDE12345", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := New()
			v.PAN("pan_number", tt.pan)
			assert.Equal(t, tt.valid, v.Valid())
		})
	}
}

func TestPincode(t *testing.T) {
	tests := []struct {
		name    string
		pincode string
		valid   bool
	}{
		{"six digits", "560001", true},
		{"seven digits", "5600011", false},
		{"letter inside", "56A001", false},
		{"five digits", "56001", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := New()
			v.Pincode("pincode", tt.pincode)
			assert.Equal(t, tt.valid, v.Valid())
		})
	}
}

func TestState(t *testing.T) {
	v := New()
	v.State("state", "karnataka")
	assert.True(t, v.Valid())

	v = New()
	v.State("state", "atlantis")
	assert.False(t, v.Valid())

	// values are stored lowercase; title case is not accepted
	v = New()
	v.State("state", "Karnataka")
	assert.False(t, v.Valid())
}

func TestPasswordMatch(t *testing.T) {
	v := New()
	v.PasswordMatch("confirm_password", "hunter22!", "hunter22!")
	assert.True(t, v.Valid())

	v = New()
	v.PasswordMatch("confirm_password", "hunter22!", "hunter23!")
	assert.False(t, v.Valid())
	assert.Equal(t, "The passwords do not match.", v.Errors["confirm_password"])
}

func TestErrKeepsFirstMessagePerField(t *testing.T) {
	v := New()
	v.AddError("phone_number", "first")
	v.AddError("phone_number", "second")
	assert.Equal(t, "first", v.Errors["phone_number"])

	err := v.Err()
	assert.Error(t, err)
	assert.IsType(t, Errors{}, err)
}
