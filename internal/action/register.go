package action

import (
	"context"

	"foodnetwork/internal/i18n"
	"foodnetwork/internal/styles"
	"foodnetwork/pkg/logger"
)

// Register runs the sign-up form until it validates, submits it once and
// then offers to create an API key.
func (c *Controller) Register(ctx context.Context) error {
	c.reset()

	for c.state != StateValidated {
		if err := c.registrationForm(); err != nil {
			return err
		}
	}

	c.transition(StateSubmitted)
	user, err := c.client.CreateAccount(ctx, c.creds.Email, c.creds.Password)
	c.println("")
	if err != nil {
		logger.Warnf("account creation failed: %v", err)
		c.fail(remote(ErrAccountCreationFailed, err))
		c.showError()
		return c.err
	}

	email := user.Email
	if email == "" {
		email = c.creds.Email
	}
	c.session = &Session{Email: email}
	c.transition(StateComplete)
	c.clearPasswords()

	c.println(styles.SuccessStyle.Render(i18n.Tf("account_created", map[string]interface{}{"Email": email})))
	return c.createKey(ctx)
}

// registrationForm is one pass of the sign-up form
func (c *Controller) registrationForm() error {
	c.showError()

	email, err := c.prompt.Ask(i18n.T("ask_email"))
	if err != nil {
		return err
	}
	c.creds.Email = email
	if err := ValidateEmail(email); err != nil {
		c.fail(err)
		return nil
	}

	password, err := c.prompt.Mask(i18n.T("ask_password"))
	if err != nil {
		return err
	}
	confirmation, err := c.prompt.Mask(i18n.T("ask_password_confirmation"))
	if err != nil {
		return err
	}
	c.creds.Password = password
	c.creds.PasswordConfirmation = confirmation
	if err := ValidatePassword(password, confirmation); err != nil {
		c.fail(err)
		return nil
	}

	c.err = nil
	c.transition(StateValidated)
	return nil
}

// clearPasswords drops the password fields; the email stays for display
func (c *Controller) clearPasswords() {
	c.creds.Password = ""
	c.creds.PasswordConfirmation = ""
}

// createKey offers a single attempt at minting the first API key
func (c *Controller) createKey(ctx context.Context) error {
	c.println("")
	yes, err := c.prompt.YesNo(i18n.T("ask_create_key"))
	if err != nil {
		return err
	}
	if !yes {
		c.println(i18n.T("skip_key_creation"))
		return nil
	}

	c.println("")
	password, err := c.prompt.Mask(i18n.T("ask_reenter_password"))
	if err != nil {
		return err
	}
	c.session.password = password

	token, err := c.client.CreateKey(ctx, c.session.Email, c.session.password)
	if err != nil {
		logger.Warnf("key creation failed: %v", err)
		c.err = remote(ErrKeyCreationFailed, err)
		c.showError()
		return c.err
	}

	c.println(KeyRevealMessage(token))
	return nil
}
