package action

import "foodnetwork/pkg/utils"

// ValidateEmail checks the email format
func ValidateEmail(email string) error {
	if !utils.IsValidEmail(email) {
		return ErrInvalidEmailFormat
	}
	return nil
}

// ValidatePassword checks that both fields are present and equal
func ValidatePassword(password, confirmation string) error {
	if password == "" || confirmation == "" {
		return errBlankPassword
	}
	if password != confirmation {
		return errPasswordMismatch
	}
	return nil
}
