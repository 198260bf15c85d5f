package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
	"github.com/file-renamer/go/internal/types"
)

// ProgressBar tracks how many planned moves have completed
type ProgressBar struct {
	bar   progress.Model
	label string
	done  int
	total int
}

// NewProgressBar creates a bar for total moves
func NewProgressBar(total int, label string) *ProgressBar {
	bar := progress.New(
		progress.WithGradient(string(ColorSecondary), string(ColorPrimary)),
		progress.WithWidth(40),
		progress.WithoutPercentage(),
	)
	bar.EmptyColor = string(ColorMuted)

	return &ProgressBar{bar: bar, label: label, total: total}
}

// SetCurrent records done moves, clamped to the total
func (pb *ProgressBar) SetCurrent(done int) {
	pb.done = max(0, min(done, pb.total))
}

// Percent returns the completed fraction
func (pb *ProgressBar) Percent() float64 {
	if pb.total == 0 {
		return 0
	}
	return float64(pb.done) / float64(pb.total)
}

func (pb *ProgressBar) View() string {
	return Styled(pb.label, Info) + " " +
		pb.bar.ViewAs(pb.Percent()) + " " +
		Styled(fmt.Sprintf("%d/%d", pb.done, pb.total), Count)
}

// OperationSummary is the outcome of one batch run
type OperationSummary struct {
	Selected int
	Renamed  int
	DryRun   bool
	Failed   bool
}

func (s *OperationSummary) View() string {
	renamed := "Files renamed:"
	if s.DryRun {
		renamed = "Would rename:"
	}

	lines := []string{
		Styled("Summary", Title),
		fmt.Sprintf("%s %-15s %s", IconDot, "Files selected:", RenderCount(s.Selected)),
		fmt.Sprintf("%s %-15s %s", IconDot, renamed, RenderCount(s.Renamed)),
	}
	if s.Failed {
		lines = append(lines, Styled(IconError+" Renaming stopped on an error", Error))
	}

	return BoxStyle.Render(strings.Join(lines, "\n"))
}

const nameColumnMax = 60

var tableHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorSecondary)

// candidateTable renders files numbered from 1 with their size and
// modification time. Names wider than nameColumnMax are shortened.
func candidateTable(files []*types.FileInfo) string {
	if len(files) == 0 {
		return Styled("(no files)", Muted)
	}

	numWidth := len(fmt.Sprintf("%d)", len(files)))
	nameWidth := len("FILE")
	for _, f := range files {
		nameWidth = max(nameWidth, min(lipgloss.Width(f.OriginalName), nameColumnMax))
	}

	var sb strings.Builder
	sb.WriteString(tableHeaderStyle.Render(fmt.Sprintf("%*s  %-*s  %8s  %s",
		numWidth, "#", nameWidth, "FILE", "SIZE", "MODIFIED")))
	sb.WriteString("\n")

	for i, f := range files {
		name := truncate(f.OriginalName, nameWidth)
		pad := strings.Repeat(" ", max(0, nameWidth-lipgloss.Width(name)))
		fmt.Fprintf(&sb, "%s  %s%s  %s  %s\n",
			Styled(fmt.Sprintf("%*s", numWidth, fmt.Sprintf("%d)", i+1)), Muted),
			Styled(name, FilePath), pad,
			fmt.Sprintf("%8s", formatSize(f.Size)),
			Styled(formatTime(f.ModifiedTime), Muted))
	}

	return sb.String()
}

func formatSize(n uint64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := uint64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format("2006-01-02 15:04")
}

func truncate(s string, width int) string {
	runes := []rune(s)
	if len(runes) <= width || width < 4 {
		return s
	}
	return string(runes[:width-3]) + "..."
}
