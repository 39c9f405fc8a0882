// Package validation provides input validation utilities
package validation

import (
	"fmt"
	"regexp"
	"strings"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// ValidateEmail checks basic email format
func ValidateEmail(email string) error {
	if !emailRegex.MatchString(email) {
		return fmt.Errorf("invalid email format")
	}

	if len(email) > 254 {
		return fmt.Errorf("email must not exceed 254 characters")
	}

	return nil
}

// ValidatePassword checks if a password meets the minimum requirements.
func ValidatePassword(password string) error {
	if len(password) < 6 {
		return fmt.Errorf("password must be at least 6 characters long")
	}

	// Prevent unreasonable inputs (bcrypt also truncates beyond 72 bytes)
	if len(password) > 128 {
		return fmt.Errorf("password must not exceed 128 characters")
	}

	return nil
}

// ValidateFullName checks display name length bounds.
func ValidateFullName(name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return fmt.Errorf("full name is required")
	}
	if len(trimmed) > 100 {
		return fmt.Errorf("full name must not exceed 100 characters")
	}
	return nil
}

// OnboardingInput carries the profile fields required to complete onboarding.
type OnboardingInput struct {
	FullName         string
	Bio              string
	NativeLanguage   string
	LearningLanguage string
	Location         string
}

// MissingOnboardingFields returns the names of required onboarding fields that
// are empty, in a stable order. An empty result means the input is complete.
func MissingOnboardingFields(in OnboardingInput) []string {
	var missing []string
	if strings.TrimSpace(in.FullName) == "" {
		missing = append(missing, "fullName")
	}
	if strings.TrimSpace(in.Bio) == "" {
		missing = append(missing, "bio")
	}
	if strings.TrimSpace(in.NativeLanguage) == "" {
		missing = append(missing, "nativeLanguage")
	}
	if strings.TrimSpace(in.LearningLanguage) == "" {
		missing = append(missing, "learningLanguage")
	}
	if strings.TrimSpace(in.Location) == "" {
		missing = append(missing, "location")
	}
	return missing
}
