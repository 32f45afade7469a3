package validation

import "regexp"

var (
	phoneRegex   = regexp.MustCompile(`^\+?\d{10,15}$`)
	emailRegex   = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	panRegex     = regexp.MustCompile(`^[A-Z]{5}[0-9]{4}[A-Z]{1}$`)
	pincodeRegex = regexp.MustCompile(`^\d{6}$`)
)
