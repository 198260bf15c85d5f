package scanner

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/file-renamer/go/internal/types"
	"github.com/rs/zerolog/log"
)

var ErrPathNotFound = errors.New("path doesn't exist")

// Scanner lists the candidate files at a path
type Scanner struct {
	RootPath string
	single   bool
}

// New creates a Scanner for path. A path naming a regular file yields a
// scanner for that one file.
func New(path string) (*Scanner, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("invalid path: %w", err)
	}

	info, err := os.Stat(absPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrPathNotFound, path)
		}
		return nil, err
	}

	return &Scanner{
		RootPath: absPath,
		single:   !info.IsDir(),
	}, nil
}

// Scan returns the files directly inside the root directory, sorted by name.
// Subdirectories are not entered.
func (s *Scanner) Scan() ([]*types.FileInfo, error) {
	if s.single {
		info, err := os.Stat(s.RootPath)
		if err != nil {
			return nil, err
		}
		return []*types.FileInfo{createFileInfo(s.RootPath, info)}, nil
	}

	entries, err := os.ReadDir(s.RootPath)
	if err != nil {
		return nil, fmt.Errorf("read directory: %w", err)
	}

	var files []*types.FileInfo
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		path := filepath.Join(s.RootPath, entry.Name())
		info, err := entry.Info()
		if err != nil {
			log.Warn().Err(err).Str("path", path).Msg("Error accessing path")
			continue
		}
		if info.Mode()&os.ModeSymlink != 0 {
			target, err := os.Stat(path)
			if err == nil && target.IsDir() {
				log.Debug().Str("path", path).Msg("Skipping link to directory")
				continue
			}
		} else if !info.Mode().IsRegular() {
			continue
		}

		files = append(files, createFileInfo(path, info))
	}

	log.Debug().Int("count", len(files)).Str("path", s.RootPath).Msg("Scanner found files")
	return files, nil
}

func createFileInfo(path string, info os.FileInfo) *types.FileInfo {
	return &types.FileInfo{
		OriginalPath: path,
		OriginalName: info.Name(),
		Extension:    filepath.Ext(info.Name()),
		Size:         uint64(info.Size()),
		ModifiedTime: info.ModTime(),
	}
}
