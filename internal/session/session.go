package session

import (
	"errors"
	"fmt"
	"strings"

	"github.com/file-renamer/go/internal/scanner"
	"github.com/file-renamer/go/internal/selector"
	"github.com/file-renamer/go/internal/template"
	"github.com/file-renamer/go/internal/types"
	"github.com/rs/zerolog/log"
)

// Step names the stage the session is waiting in
type Step int

const (
	StepAcquirePath Step = iota
	StepAcquireFiles
	StepAcquireSelection
	StepAcquireFormat
	StepPreviewAndConfirm
	StepExecute
)

func (s Step) String() string {
	switch s {
	case StepAcquirePath:
		return "AcquirePath"
	case StepAcquireFiles:
		return "AcquireFiles"
	case StepAcquireSelection:
		return "AcquireSelection"
	case StepAcquireFormat:
		return "AcquireFormat"
	case StepPreviewAndConfirm:
		return "PreviewAndConfirm"
	case StepExecute:
		return "Execute"
	default:
		return "Unknown"
	}
}

// Executor performs the planned moves
type Executor interface {
	Apply(sources, destinations []string) error
}

// ScanFunc lists the candidate files at a path
type ScanFunc func(path string) ([]*types.FileInfo, error)

// Session holds the state of one rename iteration. Each Submit method is
// valid only in its own step; on failure the session either stays in the
// step or restarts at StepAcquirePath, as reported by Classify.
type Session struct {
	step     Step
	executor Executor
	scan     ScanFunc

	path      string
	files     []*types.FileInfo
	selection string
	selected  []*types.FileInfo
	tmpl      *template.Template
	plan      *types.RenamePlan
}

// Option configures a Session.
type Option func(*Session)

// WithScanner replaces the directory scanner.
func WithScanner(scan ScanFunc) Option {
	return func(s *Session) {
		s.scan = scan
	}
}

// New creates a session waiting for a path
func New(executor Executor, opts ...Option) *Session {
	s := &Session{
		step:     StepAcquirePath,
		executor: executor,
		scan:     scanPath,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func scanPath(path string) ([]*types.FileInfo, error) {
	sc, err := scanner.New(path)
	if err != nil {
		return nil, err
	}
	return sc.Scan()
}

func (s *Session) Step() Step                  { return s.step }
func (s *Session) Path() string                { return s.path }
func (s *Session) Files() []*types.FileInfo    { return s.files }
func (s *Session) Selected() []*types.FileInfo { return s.selected }
func (s *Session) Selection() string           { return s.selection }
func (s *Session) Plan() *types.RenamePlan     { return s.plan }

// Format returns the accepted format, or "" before one was accepted
func (s *Session) Format() string {
	if s.tmpl == nil {
		return ""
	}
	return s.tmpl.String()
}

// Reset discards the iteration and waits for a new path.
func (s *Session) Reset() {
	*s = Session{step: StepAcquirePath, executor: s.executor, scan: s.scan}
}

func (s *Session) expect(step Step) error {
	if s.step != step {
		return fmt.Errorf("%w: in %s, expected %s", ErrWrongStep, s.step, step)
	}
	return nil
}

func (s *Session) moveTo(step Step) {
	log.Debug().Stringer("from", s.step).Stringer("to", step).Msg("Session step")
	s.step = step
}

// SubmitPath records the directory (or single file) to work on.
func (s *Session) SubmitPath(path string) error {
	if err := s.expect(StepAcquirePath); err != nil {
		return err
	}
	path = strings.TrimSpace(path)
	if path == "" {
		return ErrEmptyPath
	}
	s.path = path
	s.moveTo(StepAcquireFiles)
	return nil
}

// LoadFiles enumerates the candidates. With a single candidate the
// selection step is skipped.
func (s *Session) LoadFiles() error {
	if err := s.expect(StepAcquireFiles); err != nil {
		return err
	}

	files, err := s.scan(s.path)
	if err != nil {
		s.Reset()
		if errors.Is(err, scanner.ErrPathNotFound) {
			return err
		}
		return fmt.Errorf("%w: %w", ErrPathNotFound, err)
	}
	if len(files) == 0 {
		s.Reset()
		return ErrNoFiles
	}

	s.files = files
	if len(files) == 1 {
		s.selected = files
		s.moveTo(StepAcquireFormat)
		return nil
	}
	s.moveTo(StepAcquireSelection)
	return nil
}

// SubmitSelection resolves a selection expression against the candidates.
func (s *Session) SubmitSelection(expr string) error {
	if err := s.expect(StepAcquireSelection); err != nil {
		return err
	}

	selected, err := selector.Resolve(s.files, expr)
	if err != nil {
		log.Debug().Err(err).Str("selection", expr).Msg("Selection rejected")
		return err
	}
	if len(selected) == 0 {
		return ErrNothingSelected
	}

	s.selection = expr
	s.selected = selected
	s.moveTo(StepAcquireFormat)
	return nil
}

// SubmitFormat validates a format and computes the rename plan.
func (s *Session) SubmitFormat(format string) error {
	if err := s.expect(StepAcquireFormat); err != nil {
		return err
	}

	tmpl, err := template.Parse(format)
	if err != nil {
		log.Debug().Err(err).Str("format", format).Msg("Format rejected")
		return err
	}

	s.tmpl = tmpl
	s.plan = &types.RenamePlan{
		Files: s.selected,
		Names: tmpl.ExpandAll(types.Paths(s.selected)),
	}
	s.moveTo(StepPreviewAndConfirm)
	return nil
}

// Confirm answers the preview prompt. Only Y and N are accepted; N
// abandons the iteration.
func (s *Session) Confirm(key rune) error {
	if err := s.expect(StepPreviewAndConfirm); err != nil {
		return err
	}

	switch key {
	case 'y', 'Y':
		s.moveTo(StepExecute)
		return nil
	case 'n', 'N':
		s.Reset()
		return ErrDeclined
	default:
		return ErrUnknownCommand
	}
}

// Execute applies the plan and restarts the session whatever the outcome.
func (s *Session) Execute() error {
	if err := s.expect(StepExecute); err != nil {
		return err
	}
	plan := s.plan
	s.Reset()

	if err := s.executor.Apply(types.Paths(plan.Files), plan.Names); err != nil {
		return fmt.Errorf("%w: %w", ErrRenameFailed, err)
	}
	log.Info().Int("count", plan.Len()).Msg("Files renamed")
	return nil
}
