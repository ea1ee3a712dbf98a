package core

import "regexp"

var (
	// emailPattern accepts lowercase alphanumerics with at most one '.' or
	// '_' separator before the '@', followed by a word-character domain and
	// suffix. Uppercase letters are rejected.
	emailPattern = regexp.MustCompile(`^[a-z0-9]+[._]?[a-z0-9]+@\w+\.\w+$`)

	// phonePattern accepts an optional leading '+' followed by digits and
	// whitespace only.
	phonePattern = regexp.MustCompile(`^\+?[\d\s]+$`)
)

// ValidEmail reports whether s is an acceptable email address.
func ValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// ValidPhone reports whether s is an acceptable phone number.
func ValidPhone(s string) bool {
	return phonePattern.MatchString(s)
}
