package types

import (
	"path/filepath"
	"time"
)

// FileInfo represents a candidate file found at the session path
type FileInfo struct {
	OriginalPath string    `json:"original_path"`
	OriginalName string    `json:"original_name"`
	Extension    string    `json:"extension"`
	Size         uint64    `json:"size"`
	ModifiedTime time.Time `json:"modified_time"`
}

// Paths returns the original paths of files, in order
func Paths(files []*FileInfo) []string {
	paths := make([]string, len(files))
	for i, f := range files {
		paths[i] = f.OriginalPath
	}
	return paths
}

// RenamePlan pairs each selected file with its computed name
type RenamePlan struct {
	Files []*FileInfo
	Names []string
}

// Len returns the number of planned renames
func (p *RenamePlan) Len() int {
	return len(p.Files)
}

// Operations lists the plan as from/to pairs of full paths
func (p *RenamePlan) Operations() []RenameOperation {
	ops := make([]RenameOperation, 0, len(p.Files))
	for i, f := range p.Files {
		if i >= len(p.Names) {
			break
		}
		ops = append(ops, RenameOperation{
			From: f.OriginalPath,
			To:   filepath.Join(filepath.Dir(f.OriginalPath), p.Names[i]),
		})
	}
	return ops
}

// RenameOperation represents a file rename operation
type RenameOperation struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// OperationsOutput represents the complete JSON output
type OperationsOutput struct {
	Format    string            `json:"format"`
	Selection string            `json:"selection"`
	Renames   []RenameOperation `json:"renames"`
}

// Config holds the application configuration
type Config struct {
	Path      string
	Selection string
	Format    string
	DryRun    bool
	AssumeYes bool
	Plain     bool
	NoColor   bool
	LogFile   *string
	Verbose   bool
	Json      bool
}

// Batch reports whether the run is non-interactive
func (c *Config) Batch() bool {
	return c.Format != ""
}
