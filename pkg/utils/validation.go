package utils

import "regexp"

var emailRegex = regexp.MustCompile(`(?i)^[\w+\-.]+@[a-z\d-]+(\.[a-z]+)*\.[a-z]+$`)

// IsValidEmail reports whether email has the shape local@domain.tld
func IsValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}
