package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/file-renamer/go/internal/types"
)

// Help texts for the two mini-languages
var (
	SelectionHelp = []string{
		"*     - all files",
		"1     - unique file",
		"1-3   - range of files",
		"+3    - first files",
		"-3    - last files",
	}

	FormatHelp = []string{
		"*O*    - original name",
		"*E*    - original extension",
		"*E{}*  - custom extension",
		"*I{}*  - incrementor",
		"*D{}*  - decrementor",
	}
)

// Prompt labels
const (
	PromptPath      = "PATH:"
	PromptSelection = "SELECT FILES (separated by commas):"
	PromptFormat    = "FORMAT:"
	PromptConfirm   = "Confirm renaming? (Y/N):"
	PromptContinue  = "Press any key to continue..."
)

// Printer handles all console output with rich styling
type Printer struct {
	out     io.Writer
	verbose bool
	json    bool
}

// NewPrinter creates a new printer writing to out
func NewPrinter(out io.Writer, verbose, json bool) *Printer {
	return &Printer{
		out:     out,
		verbose: verbose,
		json:    json,
	}
}

// Banner prints the application banner
func (p *Printer) Banner() {
	if p.json {
		return
	}
	fmt.Fprintln(p.out, BannerView())
}

// BannerView returns the rendered application banner
func BannerView() string {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorSecondary).
		Render(`
   ╔═══════════════════════════════════════╗
   ║      ✏️  Extended File Renamer         ║
   ║   Batch rename files with templates   ║
   ╚═══════════════════════════════════════╝
`)
}

// DryRunBanner prints the dry run mode banner
func (p *Printer) DryRunBanner() {
	if p.json {
		return
	}

	banner := BadgeWarning.Render(IconSearch + " DRY RUN MODE - No changes will be made")

	fmt.Fprintln(p.out)
	fmt.Fprintln(p.out, banner)
	fmt.Fprintln(p.out)
}

// Section prints a section header
func (p *Printer) Section(title string) {
	if p.json {
		return
	}
	fmt.Fprintln(p.out, Styled(title, Section))
}

// Help prints a help block
func (p *Printer) Help(lines []string) {
	if p.json {
		return
	}
	fmt.Fprintln(p.out, HelpView(lines))
}

// HelpView renders a help block
func HelpView(lines []string) string {
	var sb strings.Builder
	sb.WriteString(Styled("HELP", Section))
	sb.WriteString("\n")
	for _, line := range lines {
		sb.WriteString("  " + Styled(line, Help) + "\n")
	}
	return sb.String()
}

// PrintFiles prints the numbered candidate list
func (p *Printer) PrintFiles(files []*types.FileInfo) {
	if p.json {
		return
	}
	fmt.Fprintln(p.out, FileListView(files))
}

// FileListView renders candidates numbered from 1, as used by selections
func FileListView(files []*types.FileInfo) string {
	return Styled(fmt.Sprintf("%s Files (%d)", IconFolder, len(files)), Section) + "\n" + candidateTable(files)
}

// PrintPreview prints the planned renames
func (p *Printer) PrintPreview(plan *types.RenamePlan) {
	if p.json {
		return
	}
	fmt.Fprintln(p.out, PreviewView(plan))
}

// PreviewView renders each selected file next to its new name
func PreviewView(plan *types.RenamePlan) string {
	var sb strings.Builder
	sb.WriteString(Styled(fmt.Sprintf("%s Changes (%d)", IconRename, plan.Len()), Section))
	sb.WriteString("\n")
	for i, f := range plan.Files {
		fmt.Fprintf(&sb, "  %s %s\n",
			Styled(fmt.Sprintf("%3d.", i+1), Muted),
			RenderFileRename(f.OriginalName, plan.Names[i]))
	}
	return sb.String()
}

// Prompt prints a prompt label without a newline
func (p *Printer) Prompt(label string) {
	fmt.Fprint(p.out, " "+Styled(label, Prompt)+" ")
}

// PrintSummary prints the operation summary
func (p *Printer) PrintSummary(summary *OperationSummary) {
	if p.json {
		return
	}
	fmt.Fprintln(p.out, summary.View())
}

// Success prints a success message
func (p *Printer) Success(msg string) {
	if p.json {
		return
	}
	fmt.Fprintln(p.out, RenderSuccess(msg))
}

// Warning prints a warning message
func (p *Printer) Warning(msg string) {
	if p.json {
		return
	}
	fmt.Fprintln(p.out, RenderWarning(msg))
}

// Error prints an error message
func (p *Printer) Error(msg string) {
	if p.json {
		return
	}
	fmt.Fprintln(p.out, RenderError(msg))
}

// Info prints a detail message, shown only in verbose mode
func (p *Printer) Info(msg string) {
	if p.json || !p.verbose {
		return
	}
	fmt.Fprintln(p.out, RenderInfo(msg))
}
