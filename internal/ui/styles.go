package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// Color Palette - Monokai-inspired theme
var (
	ColorPrimary   = lipgloss.Color("#A6E22E") // Green
	ColorSecondary = lipgloss.Color("#66D9EF") // Cyan
	ColorAccent    = lipgloss.Color("#F92672") // Magenta/Pink
	ColorWarning   = lipgloss.Color("#FD971F") // Orange
	ColorError     = lipgloss.Color("#F92672") // Red/Pink
	ColorMuted     = lipgloss.Color("#75715E") // Gray
	ColorHighlight = lipgloss.Color("#E6DB74") // Yellow
	ColorWhite     = lipgloss.Color("#F8F8F2") // White
	ColorDark      = lipgloss.Color("#272822") // Dark background
)

// Base Styles
var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorSecondary).
			MarginBottom(1)

	// Section header
	SectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorHighlight).
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(ColorMuted)

	SuccessStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	WarningStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorWarning)

	ErrorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorError)

	InfoStyle = lipgloss.NewStyle().
			Foreground(ColorSecondary)

	MutedStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	// Operator input and prompts
	PromptStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorHighlight)

	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorHighlight)

	FilePathStyle = lipgloss.NewStyle().
			Foreground(ColorWhite)

	NewNameStyle = lipgloss.NewStyle().
			Foreground(ColorSecondary).
			Bold(true)

	ArrowStyle = lipgloss.NewStyle().
			Foreground(ColorAccent).
			Bold(true)

	CountStyle = lipgloss.NewStyle().
			Foreground(ColorHighlight).
			Bold(true)

	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorMuted).
			Padding(1, 2)

	BadgeWarning = lipgloss.NewStyle().
			Background(ColorWarning).
			Foreground(ColorDark).
			Bold(true).
			Padding(0, 1)
)

// Style is the meaning of a piece of output
type Style int

const (
	Plain Style = iota
	Title
	Section
	Success
	Warning
	Error
	Info
	Muted
	Prompt
	Help
	FilePath
	NewName
	Arrow
	Count
)

var styles = map[Style]lipgloss.Style{
	Title:    TitleStyle,
	Section:  SectionStyle,
	Success:  SuccessStyle,
	Warning:  WarningStyle,
	Error:    ErrorStyle,
	Info:     InfoStyle,
	Muted:    MutedStyle,
	Prompt:   PromptStyle,
	Help:     HelpStyle,
	FilePath: FilePathStyle,
	NewName:  NewNameStyle,
	Arrow:    ArrowStyle,
	Count:    CountStyle,
}

// Styled renders text in the given style. Styles are values, so no
// terminal color state is saved or restored between writes.
func Styled(text string, s Style) string {
	style, ok := styles[s]
	if !ok {
		return text
	}
	return style.Render(text)
}

// Icons
const (
	IconSuccess    = "✓"
	IconError      = "✗"
	IconWarning    = "⚠"
	IconInfo       = "ℹ"
	IconFolder     = "📁"
	IconRename     = "✏️"
	IconSearch     = "🔍"
	IconArrowRight = "→"
	IconDot        = "•"
)

// Helper functions
func RenderSuccess(msg string) string {
	return Styled(IconSuccess+" ", Success) + msg
}

func RenderError(msg string) string {
	return Styled(IconError+" ", Error) + msg
}

func RenderWarning(msg string) string {
	return Styled(IconWarning+" ", Warning) + msg
}

func RenderInfo(msg string) string {
	return Styled(IconInfo+" ", Info) + msg
}

func RenderFileRename(oldName, newName string) string {
	return Styled(oldName, FilePath) + " " +
		Styled(IconArrowRight, Arrow) + " " +
		Styled(newName, NewName)
}

func RenderCount(count int) string {
	return Styled(fmt.Sprintf("%d", count), Count)
}
