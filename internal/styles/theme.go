package styles

import "github.com/charmbracelet/lipgloss"

// Dracula color palette
const (
	Background  = "#282a36"
	CurrentLine = "#44475a"
	Foreground  = "#f8f8f2"
	Comment     = "#6272a4"
	Cyan        = "#8be9fd"
	Green       = "#50fa7b"
	Orange      = "#ffb86c"
	Pink        = "#ff79c6"
	Purple      = "#bd93f9"
	Red         = "#ff5555"
	Yellow      = "#f1fa8c"
)

var (
	// Title styles
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(Purple))

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(Cyan))

	// Prompt styles
	PromptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(Purple)).
			Bold(true)

	SelectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(Pink)).
			Bold(true)

	OptionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(Foreground)).
			PaddingLeft(2)

	// Info/Alert styles
	InfoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(Cyan)).
			Bold(true)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(Green)).
			Bold(true)

	WarningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(Yellow)).
			Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(Red)).
			Bold(true)

	// Token box shown once after a key is minted
	TokenStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(Purple)).
			Foreground(lipgloss.Color(Orange)).
			Bold(true).
			Padding(0, 2)

	// Help/Hints styles
	HelpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(Comment)).
			Italic(true)

	// Table styles
	TableBorderStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color(Purple))

	TableHeaderStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color(Pink)).
				Bold(true).
				Padding(0, 1).
				Align(lipgloss.Center)

	TableCellStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(Foreground)).
			Padding(0, 1)

	TableActiveCellStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color(Green)).
				Padding(0, 1)

	TableDeletedCellStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color(Comment)).
				Padding(0, 1)
)
