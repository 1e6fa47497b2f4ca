package models

import "time"

// APIKey is a key record without its secret.
type APIKey struct {
	ID        string     `json:"id"`
	CreatedAt time.Time  `json:"created_at"`
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
}

// IsActive returns true if the key has not been deleted.
func (k APIKey) IsActive() bool {
	return k.DeletedAt == nil
}

// ActiveKey returns the first active key in keys.
func ActiveKey(keys []APIKey) (APIKey, bool) {
	for _, k := range keys {
		if k.IsActive() {
			return k, true
		}
	}
	return APIKey{}, false
}

// IssuedKey carries the plaintext token of a newly minted key.
// It is shown once and never stored.
type IssuedKey struct {
	Token string `json:"token"`
}
