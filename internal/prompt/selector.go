package prompt

import (
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"foodnetwork/internal/styles"
)

type selectKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Choose key.Binding
	Quit   key.Binding
}

var selectKeys = selectKeyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	),
	Choose: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "choose"),
	),
	Quit: key.NewBinding(
		key.WithKeys("ctrl+c", "esc", "q"),
		key.WithHelp("esc", "quit"),
	),
}

// selectModel is a single-choice list
type selectModel struct {
	question string
	options  []string
	cursor   int
	chosen   string
	aborted  bool
}

func newSelectModel(question string, options []string) selectModel {
	return selectModel{question: question, options: options}
}

func (m selectModel) Init() tea.Cmd {
	return nil
}

func (m selectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, selectKeys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(keyMsg, selectKeys.Down):
		if m.cursor < len(m.options)-1 {
			m.cursor++
		}
	case key.Matches(keyMsg, selectKeys.Choose):
		m.chosen = m.options[m.cursor]
		return m, tea.Quit
	case key.Matches(keyMsg, selectKeys.Quit):
		m.aborted = true
		return m, tea.Quit
	}
	return m, nil
}

func (m selectModel) View() string {
	if m.chosen != "" {
		return styles.PromptStyle.Render(m.question) + " " + styles.SelectedStyle.Render(m.chosen) + "\n"
	}
	if m.aborted {
		return ""
	}

	var b strings.Builder
	b.WriteString(styles.PromptStyle.Render(m.question))
	b.WriteString(" ")
	b.WriteString(styles.HelpStyle.Render("(" + selectKeys.Up.Help().Key + " " + selectKeys.Down.Help().Key + ", " + selectKeys.Choose.Help().Key + ")"))
	b.WriteString("\n")
	for i, opt := range m.options {
		if i == m.cursor {
			b.WriteString(styles.SelectedStyle.Render("‣ " + opt))
		} else {
			b.WriteString(styles.OptionStyle.Render(opt))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// runSelector drives selectModel as a Bubble Tea program
func runSelector(in io.Reader, out io.Writer, question string, options []string) (string, error) {
	p := tea.NewProgram(
		newSelectModel(question, options),
		tea.WithInput(in),
		tea.WithOutput(out),
	)

	final, err := p.Run()
	if err != nil {
		return "", err
	}
	m, ok := final.(selectModel)
	if !ok || m.aborted || m.chosen == "" {
		return "", ErrAborted
	}
	return m.chosen, nil
}
