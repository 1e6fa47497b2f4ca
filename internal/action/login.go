package action

import (
	"context"

	"foodnetwork/internal/i18n"
	"foodnetwork/internal/styles"
	"foodnetwork/pkg/logger"
	"foodnetwork/pkg/models"
)

// Login repeats the login form until the account service accepts it, shows
// the user's keys and offers to rotate the active one.
//
// Any failed submission restarts the whole form, including the email prompt.
func (c *Controller) Login(ctx context.Context) error {
	c.reset()

	for c.state != StateComplete {
		if err := c.loginForm(ctx); err != nil {
			return err
		}
	}

	c.println("")
	c.println(styles.SuccessStyle.Render(i18n.Tf("logged_in", map[string]interface{}{"Email": c.session.Email})))
	c.println(RenderKeyTable(c.keys))
	return c.rotateKey(ctx)
}

// loginForm is one pass of the login form, including its submission
func (c *Controller) loginForm(ctx context.Context) error {
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

	password, err := c.prompt.Mask(i18n.T("ask_login_password"))
	if err != nil {
		return err
	}
	c.creds.Password = password
	if password == "" {
		c.fail(errBlankPassword)
		return nil
	}

	c.transition(StateValidated)
	c.transition(StateSubmitted)
	user, err := c.client.Authenticate(ctx, c.creds.Email, c.creds.Password)
	if err != nil {
		logger.Warnf("login failed: %v", err)
		c.fail(remote(ErrAuthenticationFailed, err))
		return nil
	}

	email = user.Email
	if email == "" {
		email = c.creds.Email
	}
	c.session = &Session{Email: email, password: c.creds.Password}
	c.keys = user.APIKeys
	c.creds = Credentials{}
	c.err = nil
	c.transition(StateComplete)
	return nil
}

// rotateKey offers to delete the active key and receive a new one
func (c *Controller) rotateKey(ctx context.Context) error {
	c.println("")
	yes, err := c.prompt.YesNo(i18n.T("ask_rotate_key"))
	if err != nil {
		return err
	}
	if !yes {
		c.println(i18n.T("shutting_down"))
		return nil
	}

	active, ok := models.ActiveKey(c.keys)
	if !ok {
		c.err = ErrNoActiveKey
		c.showError()
		return c.err
	}

	token, err := c.client.DeleteAndReissueKey(ctx, active.ID, c.session.Email, c.session.password)
	if err != nil {
		logger.Warnf("key rotation failed for key %s: %v", active.ID, err)
		c.err = remote(ErrKeyRotationFailed, err)
		c.showError()
		return c.err
	}

	c.println(KeyRevealMessage(token))
	return nil
}
