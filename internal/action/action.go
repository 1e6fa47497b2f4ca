// Package action runs the register and login workflows: a prompt loop that
// validates input locally, submits it once to the account service and then
// drives key creation or rotation from the result.
package action

import (
	"context"
	"fmt"
	"io"

	"foodnetwork/internal/prompt"
	"foodnetwork/internal/styles"
	"foodnetwork/pkg/logger"
	"foodnetwork/pkg/models"
)

// AccountClient is the remote account service contract.
type AccountClient interface {
	CreateAccount(ctx context.Context, email, password string) (*models.User, error)
	Authenticate(ctx context.Context, email, password string) (*models.User, error)
	CreateKey(ctx context.Context, email, password string) (string, error)
	DeleteAndReissueKey(ctx context.Context, keyID, email, password string) (string, error)
}

// State is the position of a workflow in its form loop
type State int

const (
	StateCollecting State = iota
	StateValidated
	StateSubmitted
	StateComplete
)

func (s State) String() string {
	switch s {
	case StateCollecting:
		return "collecting"
	case StateValidated:
		return "validated"
	case StateSubmitted:
		return "submitted"
	case StateComplete:
		return "complete"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Credentials are the values typed into the current form
type Credentials struct {
	Email                string
	Password             string
	PasswordConfirmation string
}

// Session is the authenticated identity for follow-up calls.
// The password is kept in memory only, for basic auth.
type Session struct {
	Email    string
	password string
}

// Controller owns the state of one workflow run
type Controller struct {
	client AccountClient
	prompt prompt.Prompter
	out    io.Writer

	state   State
	err     error
	creds   Credentials
	session *Session
	keys    []models.APIKey
}

// New creates a controller writing its transcript to out
func New(client AccountClient, p prompt.Prompter, out io.Writer) *Controller {
	return &Controller{
		client: client,
		prompt: p,
		out:    out,
	}
}

// State returns the current workflow state
func (c *Controller) State() State {
	return c.state
}

// Err returns the error attached to the current state, if any
func (c *Controller) Err() error {
	return c.err
}

// Session returns the authenticated session, nil before a successful submit
func (c *Controller) Session() *Session {
	return c.session
}

// Keys returns the keys received at login
func (c *Controller) Keys() []models.APIKey {
	return c.keys
}

func (c *Controller) reset() {
	c.state = StateCollecting
	c.err = nil
	c.creds = Credentials{}
	c.session = nil
	c.keys = nil
}

func (c *Controller) transition(next State) {
	logger.Debugf("workflow %s -> %s", c.state, next)
	c.state = next
}

// fail returns the form to collecting with err attached
func (c *Controller) fail(err error) {
	c.transition(StateCollecting)
	c.err = err
}

// showError prints the attached error, if any
func (c *Controller) showError() {
	if c.err != nil {
		fmt.Fprintln(c.out, styles.ErrorStyle.Render(Message(c.err)))
	}
}

func (c *Controller) println(s string) {
	fmt.Fprintln(c.out, s)
}
