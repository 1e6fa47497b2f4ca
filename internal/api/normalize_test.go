package api

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSnakeCase(t *testing.T) {
	testCases := map[string]string{
		"email":      "email",
		"apiKeys":    "api_keys",
		"ApiKeys":    "api_keys",
		"APIKeys":    "api_keys",
		"createdAt":  "created_at",
		"deleted_at": "deleted_at",
		"ID":         "id",
		"userID":     "user_id",
		"key-id":     "key_id",
		"sha256Sum":  "sha256_sum",
	}

	for in, want := range testCases {
		t.Run(in, func(t *testing.T) {
			assert.Equal(t, want, SnakeCase(in))
		})
	}
}

func TestNormalizeKeys_Nested(t *testing.T) {
	in := map[string]interface{}{
		"user": map[string]interface{}{
			"email": "a@b.com",
			"apiKeys": []interface{}{
				map[string]interface{}{"id": "k1", "createdAt": "2024-01-01T00:00:00Z", "deletedAt": nil},
			},
		},
	}

	got := NormalizeKeys(in).(map[string]interface{})
	user := got["user"].(map[string]interface{})
	keys := user["api_keys"].([]interface{})
	key := keys[0].(map[string]interface{})

	assert.Equal(t, "a@b.com", user["email"])
	assert.Equal(t, "k1", key["id"])
	assert.Equal(t, "2024-01-01T00:00:00Z", key["created_at"])
	assert.Contains(t, key, "deleted_at")
	assert.Nil(t, key["deleted_at"])
}
