package renamer

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
)

var (
	ErrLengthMismatch     = errors.New("number of new names does not match number of files")
	ErrInvalidDestination = errors.New("destination is not a file name")
)

// FileSystem abstracts the move primitive for testability.
type FileSystem interface {
	Rename(oldpath, newpath string) error
}

// OSFileSystem implements FileSystem using the real OS filesystem.
type OSFileSystem struct{}

func (OSFileSystem) Rename(oldpath, newpath string) error {
	return os.Rename(oldpath, newpath)
}

// MoveError reports the move that stopped an Apply. Moves before Index
// have already been applied.
type MoveError struct {
	Index int
	From  string
	To    string
	Err   error
}

func (e *MoveError) Error() string {
	return fmt.Sprintf("rename %s -> %s: %v", e.From, e.To, e.Err)
}

func (e *MoveError) Unwrap() error { return e.Err }

// Executor moves files to their new names inside their own directories
type Executor struct {
	fs     FileSystem
	dryRun bool

	// Progress, when set, is called after each completed move.
	Progress func(done, total int)
}

// Option configures an Executor.
type Option func(*Executor)

// WithFileSystem replaces the OS filesystem.
func WithFileSystem(fs FileSystem) Option {
	return func(e *Executor) {
		e.fs = fs
	}
}

// WithDryRun logs moves without performing them.
func WithDryRun(dryRun bool) Option {
	return func(e *Executor) {
		e.dryRun = dryRun
	}
}

// New creates an Executor backed by the OS filesystem unless overridden
func New(opts ...Option) *Executor {
	e := &Executor{fs: OSFileSystem{}}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Apply renames sources[i] to destinations[i] in order. Nothing is moved when
// the lengths differ. A failed move stops the run; earlier moves stay applied.
func (e *Executor) Apply(sources, destinations []string) error {
	if len(sources) != len(destinations) {
		return fmt.Errorf("%w: %d files, %d names", ErrLengthMismatch, len(sources), len(destinations))
	}

	for i, src := range sources {
		dest := destinations[i]
		to := filepath.Join(filepath.Dir(src), dest)

		if filepath.Base(dest) != dest || dest == "." || dest == ".." {
			return &MoveError{Index: i, From: src, To: to, Err: ErrInvalidDestination}
		}

		if e.dryRun {
			log.Info().Str("from", src).Str("to", to).Msg("Would rename")
		} else {
			if err := e.fs.Rename(src, to); err != nil {
				log.Error().Err(err).Str("from", src).Str("to", to).Int("applied", i).Msg("Rename failed")
				return &MoveError{Index: i, From: src, To: to, Err: err}
			}
			log.Info().Str("from", src).Str("to", to).Msg("Renamed")
		}

		if e.Progress != nil {
			e.Progress(i+1, len(sources))
		}
	}

	return nil
}
