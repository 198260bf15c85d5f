package jsonoutput

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/file-renamer/go/internal/types"
)

// FromPlan creates an OperationsOutput from a rename plan. Renames keep the
// order of the selection, since counters depend on it.
func FromPlan(plan *types.RenamePlan, format, selection, targetDir string) *types.OperationsOutput {
	output := &types.OperationsOutput{
		Format:    format,
		Selection: selection,
		Renames:   []types.RenameOperation{},
	}

	for _, op := range plan.Operations() {
		output.Renames = append(output.Renames, types.RenameOperation{
			From: makeRelativePath(op.From, targetDir),
			To:   makeRelativePath(op.To, targetDir),
		})
	}

	return output
}

// ToJSON converts the OperationsOutput to a JSON string
func ToJSON(output *types.OperationsOutput) (string, error) {
	jsonBytes, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		return "", fmt.Errorf("JSON serialization failed: %w", err)
	}
	return string(jsonBytes), nil
}

// makeRelativePath converts an absolute path to a relative path using forward slashes
func makeRelativePath(path, targetDir string) string {
	relPath, err := filepath.Rel(targetDir, path)
	if err != nil {
		relPath = path
	}

	// POSIX-style separators for JSON output
	relPath = strings.ReplaceAll(relPath, "\\", "/")

	if relPath == "." {
		relPath = ""
	}

	return relPath
}
