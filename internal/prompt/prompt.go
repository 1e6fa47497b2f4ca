// Package prompt asks the user for input on a terminal.
package prompt

import "errors"

// ErrAborted is returned when the user cancels a prompt or input ends.
var ErrAborted = errors.New("prompt aborted")

// Prompter is the input surface a workflow needs.
type Prompter interface {
	// Ask reads a line of visible input.
	Ask(question string) (string, error)
	// Mask reads a line without echoing it.
	Mask(question string) (string, error)
	// YesNo asks a confirmation question; an empty answer means yes.
	YesNo(question string) (bool, error)
	// Select returns one of options.
	Select(question string, options []string) (string, error)
}
