package utils

import (
	"regexp"
	"strings"
)

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern = regexp.MustCompile(`^(08|62)[0-9]{8,13}$`)
	invalidFile  = regexp.MustCompile(`[<>:"/\\|?*]`)
	multiSpace   = regexp.MustCompile(`\s+`)
)

// IsValidEmail reports whether s looks like an email address.
func IsValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// IsValidPhone reports whether s is an Indonesian phone number, ignoring
// whitespace.
func IsValidPhone(s string) bool {
	return phonePattern.MatchString(multiSpace.ReplaceAllString(s, ""))
}

// StripSpaces removes all whitespace from s.
func StripSpaces(s string) string {
	return multiSpace.ReplaceAllString(s, "")
}

// CleanFileName removes invalid characters from a download filename.
func CleanFileName(filename string) string {
	cleaned := invalidFile.ReplaceAllString(filename, "_")
	cleaned = strings.TrimSpace(cleaned)
	return multiSpace.ReplaceAllString(cleaned, "_")
}
