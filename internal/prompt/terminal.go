package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"

	"foodnetwork/internal/i18n"
	"foodnetwork/internal/styles"
)

// Terminal prompts on a reader/writer pair. When in is a terminal, masked input
// and the interactive selector are used; otherwise plain line reads.
type Terminal struct {
	in     *bufio.Reader
	out    io.Writer
	fd     int
	tty    bool
	rawIn  io.Reader
	runner selectRunner
	state  *term.State
}

type selectRunner func(in io.Reader, out io.Writer, question string, options []string) (string, error)

// NewTerminal creates a prompter bound to in and out
func NewTerminal(in io.Reader, out io.Writer) *Terminal {
	t := &Terminal{
		in:     bufio.NewReader(in),
		out:    out,
		fd:     -1,
		rawIn:  in,
		runner: runSelector,
	}
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		t.fd = int(f.Fd())
		t.tty = true
		if st, err := term.GetState(t.fd); err == nil {
			t.state = st
		}
	}
	return t
}

// Restore puts the terminal back into the mode it had when the prompter was created
func (t *Terminal) Restore() error {
	if t.state == nil {
		return nil
	}
	return term.Restore(t.fd, t.state)
}

// Stdio creates a prompter on the process's standard streams
func Stdio() *Terminal {
	return NewTerminal(os.Stdin, os.Stdout)
}

func (t *Terminal) question(q string) {
	fmt.Fprint(t.out, styles.PromptStyle.Render(q)+" ")
}

func (t *Terminal) readLine() (string, error) {
	line, err := t.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		if errors.Is(err, io.EOF) {
			return "", ErrAborted
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// Ask reads a line of visible input
func (t *Terminal) Ask(question string) (string, error) {
	t.question(question)
	line, err := t.readLine()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// Mask reads a line without echo when attached to a terminal
func (t *Terminal) Mask(question string) (string, error) {
	t.question(question)
	if !t.tty {
		return t.readLine()
	}
	b, err := term.ReadPassword(t.fd)
	fmt.Fprintln(t.out)
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}
	return string(b), nil
}

// YesNo asks until the answer is y, yes, n, no or empty (yes)
func (t *Terminal) YesNo(question string) (bool, error) {
	for {
		t.question(question + " " + styles.HelpStyle.Render("(Y/n)"))
		line, err := t.readLine()
		if err != nil {
			return false, err
		}
		if answer, ok := ParseYesNo(line); ok {
			return answer, nil
		}
		fmt.Fprintln(t.out, styles.ErrorStyle.Render(i18n.T("answer_yes_no")))
	}
}

// ParseYesNo interprets a confirmation answer. Empty input means yes.
func ParseYesNo(s string) (answer bool, ok bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "y", "yes":
		return true, true
	case "n", "no":
		return false, true
	default:
		return false, false
	}
}

// Select shows the interactive selector on a terminal, a numbered list otherwise
func (t *Terminal) Select(question string, options []string) (string, error) {
	if len(options) == 0 {
		return "", errors.New("select: no options")
	}
	if t.tty {
		return t.runner(t.rawIn, t.out, question, options)
	}

	fmt.Fprintln(t.out, styles.PromptStyle.Render(question))
	for i, opt := range options {
		fmt.Fprintf(t.out, "  %d) %s\n", i+1, opt)
	}
	for {
		t.question(">")
		line, err := t.readLine()
		if err != nil {
			return "", err
		}
		if choice, ok := matchOption(line, options); ok {
			return choice, nil
		}
	}
}

// matchOption accepts a 1-based index or the option text itself
func matchOption(input string, options []string) (string, bool) {
	input = strings.TrimSpace(input)
	if n, err := strconv.Atoi(input); err == nil {
		if n >= 1 && n <= len(options) {
			return options[n-1], true
		}
		return "", false
	}
	for _, opt := range options {
		if strings.EqualFold(opt, input) {
			return opt, true
		}
	}
	return "", false
}
