package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestT_KnownMessage(t *testing.T) {
	Init("en")
	assert.Equal(t, "Unable to login. Please try again.", T("error_login"))
	assert.Equal(t, "Shutting down...", T("shutting_down"))
}

func TestT_UnknownMessageReturnsID(t *testing.T) {
	Init("en")
	assert.Equal(t, "no_such_message", T("no_such_message"))
}

func TestTf_TemplateData(t *testing.T) {
	Init("en")
	got := Tf("account_created", map[string]interface{}{"Email": "a@b.com"})
	assert.Equal(t, "Created an account for a@b.com", got)
}

func TestInit_UnsupportedLanguageFallsBackToEnglish(t *testing.T) {
	Init("fr")
	defer Init("en")
	assert.Equal(t, "Password cannot be blank", T("error_blank_password"))
}
