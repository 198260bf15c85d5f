// Package prompt drives a rename session through plain line-oriented
// prompts. It is used when stdin is not a terminal or when the full-screen
// interface is turned off.
package prompt

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/file-renamer/go/internal/session"
	"github.com/file-renamer/go/internal/ui"
	"github.com/rs/zerolog/log"
	"golang.org/x/term"
)

// errInterrupted is returned by readKey on ctrl+c in raw mode
var errInterrupted = errors.New("interrupted")

// Prompter runs the session loop over a reader and a writer
type Prompter struct {
	in      *bufio.Reader
	fd      int
	raw     bool
	out     io.Writer
	printer *ui.Printer
	session *session.Session
	bar     *ui.ProgressBar
}

// New creates a Prompter. When in is a terminal the confirmation is read
// as a single keypress.
func New(in io.Reader, out io.Writer, s *session.Session) *Prompter {
	p := &Prompter{
		in:      bufio.NewReader(in),
		out:     out,
		printer: ui.NewPrinter(out, false, false),
		session: s,
	}
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		p.fd = int(f.Fd())
		p.raw = true
	}
	return p
}

// Run loops over the session steps until input ends or ctx is done.
// initialPath, when set, answers the first path prompt.
func (p *Prompter) Run(ctx context.Context, initialPath string) error {
	p.printer.Banner()

	for {
		if ctx.Err() != nil {
			return nil
		}

		err := p.step(&initialPath)
		if errors.Is(err, io.EOF) || errors.Is(err, errInterrupted) {
			fmt.Fprintln(p.out)
			return nil
		}
		if err == nil {
			continue
		}
		if session.Classify(err) == session.KindInternal {
			return err
		}
		p.report(err)
	}
}

// step performs the work of the current session step once
func (p *Prompter) step(initialPath *string) error {
	s := p.session

	switch s.Step() {
	case session.StepAcquirePath:
		path := *initialPath
		*initialPath = ""
		if path == "" {
			p.printer.Prompt(ui.PromptPath)
			line, err := p.readLine()
			if err != nil {
				return err
			}
			path = line
		}
		return s.SubmitPath(path)

	case session.StepAcquireFiles:
		return s.LoadFiles()

	case session.StepAcquireSelection:
		p.printer.PrintFiles(s.Files())
		p.printer.Help(ui.SelectionHelp)
		p.printer.Prompt(ui.PromptSelection)
		line, err := p.readLine()
		if err != nil {
			return err
		}
		return s.SubmitSelection(line)

	case session.StepAcquireFormat:
		p.printer.PrintFiles(s.Selected())
		p.printer.Help(ui.FormatHelp)
		p.printer.Prompt(ui.PromptFormat)
		line, err := p.readLine()
		if err != nil {
			return err
		}
		return s.SubmitFormat(line)

	case session.StepPreviewAndConfirm:
		p.printer.PrintPreview(s.Plan())
		p.printer.Prompt(ui.PromptConfirm)
		key, err := p.readKey()
		if err != nil {
			return err
		}
		fmt.Fprintln(p.out)
		return s.Confirm(key)

	case session.StepExecute:
		total := s.Plan().Len()
		p.bar = ui.NewProgressBar(total, "Renaming")
		err := s.Execute()
		p.bar = nil
		fmt.Fprintln(p.out)
		if err != nil {
			return err
		}
		p.printer.Success("Files successfully renamed.")
		return nil
	}

	return fmt.Errorf("%w: %s", session.ErrWrongStep, s.Step())
}

// Progress renders execution progress on a single line
func (p *Prompter) Progress(done, total int) {
	if p.bar == nil {
		p.bar = ui.NewProgressBar(total, "Renaming")
	}
	p.bar.SetCurrent(done)
	fmt.Fprint(p.out, "\r"+p.bar.View())
}

func (p *Prompter) report(err error) {
	msg := session.Message(err)
	switch session.Classify(err) {
	case session.KindNotice, session.KindDeclined:
		p.printer.Warning(msg)
	case session.KindExecution:
		log.Error().Err(err).Msg("Renaming failed")
		p.printer.Error(msg)
	default:
		p.printer.Error(msg)
	}
}

func (p *Prompter) readLine() (string, error) {
	line, err := p.in.ReadString('\n')
	if err != nil && (line == "" || !errors.Is(err, io.EOF)) {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// readKey reads the confirmation answer. On a terminal a single keypress is
// read in raw mode; otherwise a whole line must hold exactly one character.
func (p *Prompter) readKey() (rune, error) {
	if p.raw {
		state, err := term.MakeRaw(p.fd)
		if err != nil {
			return 0, err
		}
		defer term.Restore(p.fd, state)

		r, _, err := p.in.ReadRune()
		if err != nil {
			return 0, err
		}
		if r == 3 || r == 4 {
			return 0, errInterrupted
		}
		fmt.Fprint(p.out, string(r))
		return r, nil
	}

	line, err := p.readLine()
	if err != nil {
		return 0, err
	}
	runes := []rune(strings.TrimSpace(line))
	if len(runes) != 1 {
		return 0, nil
	}
	return runes[0], nil
}
