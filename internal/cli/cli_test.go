package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/file-renamer/go/internal/session"
	"github.com/file-renamer/go/internal/types"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupDir(t *testing.T, names ...string) string {
	t.Helper()
	dir := t.TempDir()
	for _, n := range names {
		require.NoError(t, os.WriteFile(filepath.Join(dir, n), []byte(n), 0644))
	}
	return dir
}

func listDir(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}

func TestRunBatchRenames(t *testing.T) {
	dir := setupDir(t, "a.txt", "b.txt", "c.txt")
	var out bytes.Buffer

	err := runBatch(&types.Config{
		Path:      dir,
		Selection: "-2",
		Format:    "doc*I{1}**E*",
		AssumeYes: true,
	}, strings.NewReader(""), &out)
	require.NoError(t, err)

	assert.Equal(t, []string{"a.txt", "doc1.txt", "doc2.txt"}, listDir(t, dir))
	assert.Contains(t, out.String(), "Files successfully renamed.")
}

func TestRunBatchConfirmation(t *testing.T) {
	dir := setupDir(t, "a.txt")

	var out bytes.Buffer
	err := runBatch(&types.Config{Path: dir, Selection: "*", Format: "b*E*"}, strings.NewReader("n\n"), &out)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Renaming cancelled.")
	assert.Equal(t, []string{"a.txt"}, listDir(t, dir))

	out.Reset()
	err = runBatch(&types.Config{Path: dir, Selection: "*", Format: "b*E*"}, strings.NewReader("maybe\n"), &out)
	assert.ErrorIs(t, err, session.ErrUnknownCommand)
	assert.Equal(t, []string{"a.txt"}, listDir(t, dir))

	out.Reset()
	err = runBatch(&types.Config{Path: dir, Selection: "*", Format: "b*E*"}, strings.NewReader("Y\n"), &out)
	require.NoError(t, err)
	assert.Equal(t, []string{"b.txt"}, listDir(t, dir))
}

func TestRunBatchVerboseDetails(t *testing.T) {
	dir := setupDir(t, "a.txt", "b.txt", "c.txt")

	var out bytes.Buffer
	err := runBatch(&types.Config{Path: dir, Selection: "+2", Format: "x*I{1}*", DryRun: true, Verbose: true},
		strings.NewReader(""), &out)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "2 of 3 files selected in "+dir)

	out.Reset()
	err = runBatch(&types.Config{Path: dir, Selection: "+2", Format: "x*I{1}*", DryRun: true},
		strings.NewReader(""), &out)
	require.NoError(t, err)
	assert.NotContains(t, out.String(), "files selected in")
}

func TestRunBatchDryRun(t *testing.T) {
	dir := setupDir(t, "a.txt", "b.txt")
	var out bytes.Buffer

	err := runBatch(&types.Config{
		Path:      dir,
		Selection: "*",
		Format:    "x*I{1}*",
		DryRun:    true,
	}, strings.NewReader(""), &out)
	require.NoError(t, err)

	assert.Equal(t, []string{"a.txt", "b.txt"}, listDir(t, dir))
	assert.Contains(t, out.String(), "DRY RUN")
	assert.Contains(t, out.String(), "x1")
	assert.NotContains(t, out.String(), "Files successfully renamed.")
}

func TestRunBatchJSON(t *testing.T) {
	dir := setupDir(t, "a.txt", "b.txt")
	var out bytes.Buffer

	err := runBatch(&types.Config{
		Path:      dir,
		Selection: "2,1",
		Format:    "*I{5}**E*",
		DryRun:    true,
		Json:      true,
	}, strings.NewReader(""), &out)
	require.NoError(t, err)

	var decoded types.OperationsOutput
	require.NoError(t, json.Unmarshal(out.Bytes(), &decoded))
	assert.Equal(t, "2,1", decoded.Selection)
	assert.Equal(t, []types.RenameOperation{
		{From: "b.txt", To: "5.txt"},
		{From: "a.txt", To: "6.txt"},
	}, decoded.Renames)
}

func TestRunBatchJSONNeedsAnswer(t *testing.T) {
	dir := setupDir(t, "a.txt")
	err := runBatch(&types.Config{Path: dir, Selection: "*", Format: "b", Json: true}, strings.NewReader(""), &bytes.Buffer{})
	assert.ErrorIs(t, err, errJSONNeedsAnswer)
}

func TestRunBatchErrors(t *testing.T) {
	dir := setupDir(t, "a.txt", "b.txt")

	tests := []struct {
		name      string
		path      string
		selection string
		format    string
		message   string
	}{
		{"missing path", filepath.Join(dir, "missing"), "*", "x", "Path doesn't exist."},
		{"empty directory", t.TempDir(), "*", "x", "No files to rename."},
		{"bad selection", dir, "7", "x", "Index out of range in \"7\" (files 1-2)."},
		{"bad format", dir, "*", "a/b", "Format contains invalid symbols."},
		{"bad counter", dir, "*", "*I{x}*", "Marker *I{N}* must contain only an integer."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := runBatch(&types.Config{
				Path:      tt.path,
				Selection: tt.selection,
				Format:    tt.format,
				AssumeYes: true,
			}, strings.NewReader(""), &bytes.Buffer{})
			require.Error(t, err)
			assert.Equal(t, tt.message, err.Error())
		})
	}
}

func TestRunBatchExecutionFailure(t *testing.T) {
	dir := setupDir(t, "a.txt", "b.txt")
	var out bytes.Buffer

	err := runBatch(&types.Config{
		Path:      dir,
		Selection: "*",
		Format:    "*O**E{x/y}*",
		AssumeYes: true,
	}, strings.NewReader(""), &out)
	assert.ErrorIs(t, err, session.ErrRenameFailed)
	assert.Equal(t, "Renaming of files failed.", err.Error())
	assert.Contains(t, out.String(), "Renaming stopped on an error")
}

func TestSetupLoggingWritesFile(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "renamer.log")
	t.Cleanup(func() { log.Logger = zerolog.Nop() })
	closer, err := setupLogging(&types.Config{LogFile: &logFile}, &bytes.Buffer{})
	require.NoError(t, err)

	log.Info().Str("path", "x").Msg("hello")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"message":"hello"`)
	assert.Contains(t, string(data), `"path":"x"`)
}

func TestSetupLoggingVerbose(t *testing.T) {
	var stderr bytes.Buffer
	t.Cleanup(func() { log.Logger = zerolog.Nop() })
	closer, err := setupLogging(&types.Config{Verbose: true, NoColor: true}, &stderr)
	require.NoError(t, err)
	defer closer.Close()

	log.Debug().Msg("details")
	assert.Contains(t, stderr.String(), "details")
}

func TestRootCommandBatch(t *testing.T) {
	dir := setupDir(t, "a.txt", "b.txt")
	var out bytes.Buffer

	rootCmd.SetArgs([]string{dir, "--format", "n*I{1}**E*", "--yes", "--no-color"})
	rootCmd.SetOut(&out)
	rootCmd.SetIn(strings.NewReader(""))
	require.NoError(t, Execute())

	assert.Equal(t, []string{"n1.txt", "n2.txt"}, listDir(t, dir))
}
