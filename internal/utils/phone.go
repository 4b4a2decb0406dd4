package utils

import (
	"fmt"
	"regexp"
)

// phonePattern matches the supported national format, e.g. +91-9000000001
var phonePattern = regexp.MustCompile(`^\+91-\d{8,10}$`)

// ValidatePhone checks a phone number against the supported national format
func ValidatePhone(phone string) error {
	if !phonePattern.MatchString(phone) {
		return fmt.Errorf("invalid phone number %q, expected format +91-XXXXXXXXXX", phone)
	}
	return nil
}

// emailPattern is a light sanity check, not a full RFC 5322 validation
var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// ValidateEmail checks the basic shape of an email address
func ValidateEmail(email string) error {
	if !emailPattern.MatchString(email) {
		return fmt.Errorf("invalid email address %q", email)
	}
	return nil
}
