package utils

import "time"

// KeyTimeLayout is how key timestamps are shown to users
const KeyTimeLayout = "2006-01-02 15:04 MST"

// FormatTimestamp formats t in UTC for display
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(KeyTimeLayout)
}
