package session

import (
	"errors"

	"github.com/file-renamer/go/internal/scanner"
	"github.com/file-renamer/go/internal/selector"
	"github.com/file-renamer/go/internal/template"
)

var (
	ErrEmptyPath       = errors.New("empty path")
	ErrPathNotFound    = scanner.ErrPathNotFound
	ErrNoFiles         = errors.New("no files to rename")
	ErrNothingSelected = errors.New("selection is empty")
	ErrUnknownCommand  = errors.New("unknown command")
	ErrDeclined        = errors.New("renaming cancelled")
	ErrRenameFailed    = errors.New("renaming failed")
	ErrWrongStep       = errors.New("wrong session step")
)

// Kind classifies a session error for the front-end
type Kind int

const (
	// KindNone is returned for a nil error.
	KindNone Kind = iota
	// KindInput is missing input; the step is asked again.
	KindInput
	// KindValidation is rejected input; the step is asked again.
	KindValidation
	// KindNotice restarts at the path step with a warning.
	KindNotice
	// KindDeclined restarts at the path step with a warning.
	KindDeclined
	// KindExecution restarts at the path step with an error.
	KindExecution
	// KindInternal is a driver bug.
	KindInternal
)

// Restarts reports whether the session went back to StepAcquirePath
func (k Kind) Restarts() bool {
	return k == KindNotice || k == KindDeclined || k == KindExecution
}

// Classify maps an error returned by a Session method to its Kind
func Classify(err error) Kind {
	switch {
	case err == nil:
		return KindNone
	case errors.Is(err, ErrWrongStep):
		return KindInternal
	case errors.Is(err, ErrEmptyPath),
		errors.Is(err, selector.ErrEmptySelection),
		errors.Is(err, template.ErrEmptyFormat):
		return KindInput
	case errors.Is(err, ErrPathNotFound), errors.Is(err, ErrNoFiles):
		return KindNotice
	case errors.Is(err, ErrDeclined):
		return KindDeclined
	case errors.Is(err, ErrRenameFailed):
		return KindExecution
	default:
		return KindValidation
	}
}

// Message returns the text shown to the operator for err
func Message(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrEmptyPath):
		return "Path can't be empty."
	case errors.Is(err, ErrPathNotFound):
		return "Path doesn't exist."
	case errors.Is(err, ErrNoFiles):
		return "No files to rename."
	case errors.Is(err, selector.ErrEmptySelection), errors.Is(err, ErrNothingSelected):
		return "Select at least one file."
	case errors.Is(err, ErrUnknownCommand):
		return "Unknown command."
	case errors.Is(err, ErrDeclined):
		return "Renaming cancelled."
	case errors.Is(err, ErrRenameFailed):
		return "Renaming of files failed."
	default:
		return err.Error()
	}
}
