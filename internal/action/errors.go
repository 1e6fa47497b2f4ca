package action

import (
	"errors"
	"fmt"

	"foodnetwork/internal/i18n"
	"foodnetwork/internal/prompt"
)

// Workflow errors. Validation errors are recovered inside the form loop;
// the remote ones end their sub-flow.
var (
	ErrInvalidEmailFormat        = errors.New("invalid email format")
	ErrEmptyOrMismatchedPassword = errors.New("empty or mismatched password")
	ErrAccountCreationFailed     = errors.New("account creation failed")
	ErrAuthenticationFailed      = errors.New("authentication failed")
	ErrKeyCreationFailed         = errors.New("key creation failed")
	ErrKeyRotationFailed         = errors.New("key rotation failed")
	ErrNoActiveKey               = errors.New("no active key to rotate")
)

var (
	errBlankPassword    = fmt.Errorf("%w: password is blank", ErrEmptyOrMismatchedPassword)
	errPasswordMismatch = fmt.Errorf("%w: confirmation does not match", ErrEmptyOrMismatchedPassword)
)

// remote tags a client error with its workflow error
func remote(kind, cause error) error {
	return fmt.Errorf("%w: %w", kind, cause)
}

// Message returns the text shown to the user for err
func Message(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrInvalidEmailFormat):
		return i18n.T("error_invalid_email")
	case errors.Is(err, errBlankPassword):
		return i18n.T("error_blank_password")
	case errors.Is(err, errPasswordMismatch):
		return i18n.T("error_password_mismatch")
	case errors.Is(err, ErrAccountCreationFailed):
		return i18n.T("error_account_creation")
	case errors.Is(err, ErrAuthenticationFailed):
		return i18n.T("error_login")
	case errors.Is(err, ErrKeyCreationFailed):
		return i18n.T("error_key_creation")
	case errors.Is(err, ErrKeyRotationFailed):
		return i18n.T("error_key_rotation")
	case errors.Is(err, ErrNoActiveKey):
		return i18n.T("error_no_active_key")
	case errors.Is(err, prompt.ErrAborted):
		return i18n.T("error_input_closed")
	default:
		return err.Error()
	}
}

// Reported reports whether err has already been shown by a workflow
func Reported(err error) bool {
	for _, kind := range []error{
		ErrAccountCreationFailed,
		ErrKeyCreationFailed,
		ErrKeyRotationFailed,
		ErrNoActiveKey,
	} {
		if errors.Is(err, kind) {
			return true
		}
	}
	return false
}
