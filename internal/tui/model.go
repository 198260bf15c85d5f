package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/file-renamer/go/internal/session"
	"github.com/file-renamer/go/internal/ui"
	"github.com/rs/zerolog/log"
)

// lines kept for the header, prompt and status below the list
const chromeHeight = 9

var stepTitles = []string{"Path", "Files", "Select", "Format", "Confirm", "Rename"}

// Model is the interactive session. Every session change happens in
// Update, except the rename itself, which runs as a command while the
// model only animates the spinner.
type Model struct {
	session  *session.Session
	input    textinput.Model
	spinner  spinner.Model
	viewport viewport.Model

	status   string
	ack      bool
	running  bool
	renaming int
	quitting bool
}

type executeMsg struct {
	count int
	err   error
}

// NewModel creates the model. A non-empty initialPath answers the first
// path prompt.
func NewModel(s *session.Session, initialPath string) Model {
	in := textinput.New()
	in.Prompt = ""
	in.Focus()
	in.CharLimit = 4096
	in.TextStyle = ui.PromptStyle

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(ui.ColorSecondary)

	vp := viewport.New(80, 10)

	m := Model{
		session:  s,
		input:    in,
		spinner:  sp,
		viewport: vp,
	}
	if initialPath != "" {
		m.submit(initialPath)
	}
	m.refresh()
	return m
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.spinner.Tick)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.viewport.Width = msg.Width
		m.viewport.Height = max(msg.Height-chromeHeight, 3)

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit
		case "pgup", "pgdown":
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}

		if m.running {
			return m, nil
		}
		if m.ack {
			m.ack = false
			m.status = ""
			m.refresh()
			return m, nil
		}

		if m.session.Step() == session.StepPreviewAndConfirm {
			var key rune
			if msg.Type == tea.KeyRunes && len(msg.Runes) == 1 {
				key = msg.Runes[0]
			}
			if err := m.session.Confirm(key); err != nil {
				m.fail(err)
				m.refresh()
				return m, nil
			}
			m.running = true
			m.renaming = m.session.Plan().Len()
			m.status = ""
			return m, tea.Batch(m.spinner.Tick, m.executeCmd)
		}

		if msg.Type == tea.KeyEnter {
			value := m.input.Value()
			m.input.Reset()
			m.submit(value)
			m.refresh()
			return m, nil
		}

	case spinner.TickMsg:
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case executeMsg:
		m.running = false
		if msg.err != nil {
			m.fail(msg.err)
		} else {
			log.Info().Int("count", msg.count).Msg("Files renamed")
			m.status = ui.RenderSuccess("Files successfully renamed.")
			m.ack = true
		}
		m.refresh()
		return m, nil
	}

	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)
	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// submit feeds a line of input to the current step. An accepted path is
// followed straight away by the file listing.
func (m *Model) submit(value string) {
	var err error
	switch m.session.Step() {
	case session.StepAcquirePath:
		err = m.session.SubmitPath(value)
		if err == nil {
			err = m.session.LoadFiles()
		}
	case session.StepAcquireSelection:
		err = m.session.SubmitSelection(value)
	case session.StepAcquireFormat:
		err = m.session.SubmitFormat(value)
	}

	if err != nil {
		m.fail(err)
		return
	}
	m.status = ""
}

func (m *Model) fail(err error) {
	msg := session.Message(err)
	kind := session.Classify(err)
	switch {
	case kind == session.KindExecution:
		log.Error().Err(err).Msg("Renaming failed")
		m.status = ui.RenderError(msg)
	case kind.Restarts():
		m.status = ui.RenderWarning(msg)
	default:
		m.status = ui.RenderError(msg)
	}
	m.ack = kind.Restarts()
}

// refresh puts the list for the current step into the viewport
func (m *Model) refresh() {
	var content string
	switch m.session.Step() {
	case session.StepAcquireSelection:
		content = ui.FileListView(m.session.Files()) + "\n" + ui.HelpView(ui.SelectionHelp)
	case session.StepAcquireFormat:
		content = ui.FileListView(m.session.Selected()) + "\n" + ui.HelpView(ui.FormatHelp)
	case session.StepPreviewAndConfirm:
		content = ui.PreviewView(m.session.Plan())
	}
	m.viewport.SetContent(content)
	m.viewport.GotoTop()
}

func (m Model) executeCmd() tea.Msg {
	count := m.renaming
	err := m.session.Execute()
	return executeMsg{count: count, err: err}
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var sb strings.Builder
	sb.WriteString("\n" + ui.Styled("Extended File Renamer", ui.Title) + "\n")

	if m.running {
		sb.WriteString(m.steps(session.StepExecute) + "\n\n")
		fmt.Fprintf(&sb, " %s Renaming %s files...\n", m.spinner.View(), ui.RenderCount(m.renaming))
		return sb.String()
	}

	step := m.session.Step()
	sb.WriteString(m.steps(step) + "\n\n")

	if content := m.listView(); content != "" {
		sb.WriteString(content + "\n")
	}

	if m.ack {
		sb.WriteString(" " + m.status + "\n\n")
		sb.WriteString(ui.Styled(" "+ui.PromptContinue, ui.Muted) + "\n")
		return sb.String()
	}

	switch step {
	case session.StepAcquirePath:
		sb.WriteString(" " + ui.Styled(ui.PromptPath, ui.Prompt) + " " + m.input.View() + "\n")
	case session.StepAcquireSelection:
		sb.WriteString(" " + ui.Styled(ui.PromptSelection, ui.Prompt) + " " + m.input.View() + "\n")
	case session.StepAcquireFormat:
		sb.WriteString(" " + ui.Styled(ui.PromptFormat, ui.Prompt) + " " + m.input.View() + "\n")
	case session.StepPreviewAndConfirm:
		sb.WriteString(" " + ui.Styled(ui.PromptConfirm, ui.Prompt) + "\n")
	}

	if m.status != "" {
		sb.WriteString("\n " + m.status + "\n")
	}
	sb.WriteString("\n" + ui.Styled(" pgup/pgdown scroll • esc quit", ui.Muted) + "\n")

	return sb.String()
}

func (m Model) listView() string {
	switch m.session.Step() {
	case session.StepAcquireSelection, session.StepAcquireFormat, session.StepPreviewAndConfirm:
		return m.viewport.View()
	}
	return ""
}

// steps renders the progress through the session steps
func (m Model) steps(current session.Step) string {
	var parts []string
	for i, title := range stepTitles {
		switch {
		case session.Step(i) < current:
			parts = append(parts, ui.Styled(ui.IconSuccess+" "+title, ui.Success))
		case session.Step(i) == current:
			parts = append(parts, ui.Styled(ui.IconArrowRight+" "+title, ui.NewName))
		default:
			parts = append(parts, ui.Styled(title, ui.Muted))
		}
	}
	return " " + strings.Join(parts, ui.Styled("  ", ui.Muted))
}

// Run starts the interactive program on the terminal
func Run(s *session.Session, initialPath string) error {
	p := tea.NewProgram(NewModel(s, initialPath), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
