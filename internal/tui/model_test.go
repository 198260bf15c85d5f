package tui

import (
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/file-renamer/go/internal/renamer"
	"github.com/file-renamer/go/internal/session"
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

func enter(t *testing.T, m Model, value string) Model {
	t.Helper()
	m.input.SetValue(value)
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	return updated.(Model)
}

func key(m Model, r rune) (Model, tea.Cmd) {
	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	return updated.(Model), cmd
}

func TestModelRenamesFiles(t *testing.T) {
	dir := setupDir(t, "a.txt", "b.txt")
	s := session.New(renamer.New())
	m := NewModel(s, "")

	m = enter(t, m, dir)
	assert.Equal(t, session.StepAcquireSelection, s.Step())
	assert.Contains(t, m.View(), "a.txt")

	m = enter(t, m, "2,1")
	assert.Equal(t, session.StepAcquireFormat, s.Step())

	m = enter(t, m, "f*I{1}**E*")
	assert.Equal(t, session.StepPreviewAndConfirm, s.Step())
	assert.Contains(t, m.View(), "f1.txt")

	m, cmd := key(m, 'y')
	require.NotNil(t, cmd)
	assert.True(t, m.running)
	assert.Contains(t, m.View(), "Renaming")

	// run the rename directly instead of through the batched spinner tick
	updated, _ := m.Update(m.executeCmd())
	m = updated.(Model)
	assert.False(t, m.running)
	assert.True(t, m.ack)
	assert.Contains(t, m.View(), "Files successfully renamed.")

	_, err := os.Stat(filepath.Join(dir, "f1.txt"))
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(dir, "f2.txt"))
	assert.NoError(t, err)

	m, _ = key(m, 'x')
	assert.False(t, m.ack)
	assert.Equal(t, session.StepAcquirePath, s.Step())
}

func TestModelShowsValidationErrors(t *testing.T) {
	dir := setupDir(t, "a.txt", "b.txt")
	s := session.New(renamer.New())
	m := NewModel(s, dir)
	require.Equal(t, session.StepAcquireSelection, s.Step())

	m = enter(t, m, "9")
	assert.Equal(t, session.StepAcquireSelection, s.Step())
	assert.Contains(t, m.View(), "Index out of range")
	assert.False(t, m.ack)

	m = enter(t, m, "*")
	m = enter(t, m, "*D{}*")
	assert.Equal(t, session.StepAcquireFormat, s.Step())
	assert.Contains(t, m.View(), "Marker *D{}* must contain an integer value.")
}

func TestModelDeclineNeedsAcknowledgement(t *testing.T) {
	dir := setupDir(t, "only.txt")
	s := session.New(renamer.New())
	m := NewModel(s, dir)
	require.Equal(t, session.StepAcquireFormat, s.Step())

	m = enter(t, m, "x")
	m, cmd := key(m, 'n')
	assert.Nil(t, cmd)
	assert.True(t, m.ack)
	assert.Contains(t, m.View(), "Renaming cancelled.")
	assert.Equal(t, session.StepAcquirePath, s.Step())

	m, _ = key(m, ' ')
	assert.Contains(t, m.View(), "PATH:")
}

func TestModelUnknownConfirmKey(t *testing.T) {
	dir := setupDir(t, "only.txt")
	s := session.New(renamer.New())
	m := NewModel(s, dir)

	m = enter(t, m, "x")
	m, _ = key(m, 'q')
	assert.Equal(t, session.StepPreviewAndConfirm, s.Step())
	assert.Contains(t, m.View(), "Unknown command.")
}

func TestModelMissingPath(t *testing.T) {
	s := session.New(renamer.New())
	m := NewModel(s, filepath.Join(t.TempDir(), "missing"))

	assert.True(t, m.ack)
	assert.Contains(t, m.View(), "Path doesn't exist.")
}

func TestModelQuit(t *testing.T) {
	m := NewModel(session.New(renamer.New()), "")
	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.Equal(t, "", updated.(Model).View())
}
