package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidEmail(t *testing.T) {
	testCases := []struct {
		email string
		want  bool
	}{
		{"a@b.com", true},
		{"first.last+tag@example.co.uk", true},
		{"UPPER@EXAMPLE.COM", true},
		{"under_score-dash@sub-domain.org", true},
		{"", false},
		{"plainaddress", false},
		{"@example.com", false},
		{"user@", false},
		{"user@example", false},
		{"user@exa_mple.com", false},
		{"user@example.c0m", false},
		{"user name@example.com", false},
		{"user@example.com ", false},
		{"a@b.com\nevil", false},
	}

	for _, tc := range testCases {
		t.Run(tc.email, func(t *testing.T) {
			assert.Equal(t, tc.want, IsValidEmail(tc.email))
			// pure: same answer twice
			assert.Equal(t, tc.want, IsValidEmail(tc.email))
		})
	}
}
