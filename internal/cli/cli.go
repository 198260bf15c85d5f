package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/file-renamer/go/internal/jsonoutput"
	"github.com/file-renamer/go/internal/prompt"
	"github.com/file-renamer/go/internal/renamer"
	"github.com/file-renamer/go/internal/session"
	"github.com/file-renamer/go/internal/tui"
	"github.com/file-renamer/go/internal/types"
	"github.com/file-renamer/go/internal/ui"
	"github.com/muesli/termenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	formatFlag  string
	selectFlag  string
	yesFlag     bool
	dryRunFlag  bool
	jsonFlag    bool
	logFileFlag string
	verboseFlag bool
	noColorFlag bool
	plainFlag   bool
)

var errJSONNeedsAnswer = errors.New("--json needs --yes or --dry-run")

var rootCmd = &cobra.Command{
	Use:   "renamer [PATH]",
	Short: "Batch rename files with a format template",
	Long: `Batch rename files with a format template.

Without --format the renamer runs an interactive session: pick a directory,
select files by number, range or count, type a format and confirm the preview.
With --format the same steps run once from the flags.`,
	Args:         cobra.MaximumNArgs(1),
	SilenceUsage: true,
	RunE:         runRenamer,
}

func init() {
	rootCmd.Flags().StringVarP(&formatFlag, "format", "f", "", "Format template; runs once without prompts (e.g. \"*O*_*I{1}**E*\")")
	rootCmd.Flags().StringVarP(&selectFlag, "select", "s", "*", "Files to rename with --format (e.g. \"1,3-5,+2,-1\")")
	rootCmd.Flags().BoolVarP(&yesFlag, "yes", "y", false, "Rename without asking for confirmation")
	rootCmd.Flags().BoolVarP(&dryRunFlag, "dry-run", "d", false, "Show the preview without renaming anything")
	rootCmd.Flags().BoolVar(&jsonFlag, "json", false, "Print the rename plan as JSON")
	rootCmd.Flags().StringVar(&logFileFlag, "log-file", "", "Append a JSON log of every operation to this file")
	rootCmd.Flags().BoolVarP(&verboseFlag, "verbose", "v", false, "Log to stderr")
	rootCmd.Flags().BoolVar(&noColorFlag, "no-color", false, "Disable colored output")
	rootCmd.Flags().BoolVar(&plainFlag, "plain", false, "Use line prompts instead of the full-screen interface")
}

func Execute() error {
	return rootCmd.Execute()
}

func runRenamer(cmd *cobra.Command, args []string) error {
	config := &types.Config{
		Selection: selectFlag,
		Format:    formatFlag,
		DryRun:    dryRunFlag,
		AssumeYes: yesFlag,
		Plain:     plainFlag,
		NoColor:   noColorFlag,
		LogFile:   nilString(logFileFlag),
		Verbose:   verboseFlag,
		Json:      jsonFlag,
	}
	if len(args) > 0 {
		config.Path = args[0]
	}

	closer, err := setupLogging(config, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer closer.Close()

	if config.NoColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	log.Debug().Interface("config", config).Msg("Starting renamer")

	if config.Batch() {
		return runBatch(config, cmd.InOrStdin(), cmd.OutOrStdout())
	}
	return runInteractive(cmd, config)
}

func nilString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// setupLogging points the global logger at the log file and, with
// --verbose, at w. Without either, logging is discarded.
func setupLogging(config *types.Config, w io.Writer) (io.Closer, error) {
	var writers []io.Writer
	var closer io.Closer = io.NopCloser(nil)

	if config.LogFile != nil {
		f, err := os.OpenFile(*config.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file: %w", err)
		}
		writers = append(writers, f)
		closer = f
	}
	if config.Verbose {
		writers = append(writers, zerolog.ConsoleWriter{Out: w, NoColor: config.NoColor})
	}

	if len(writers) == 0 {
		log.Logger = zerolog.Nop()
		return closer, nil
	}

	level := zerolog.InfoLevel
	if config.Verbose {
		level = zerolog.DebugLevel
	}
	log.Logger = zerolog.New(zerolog.MultiLevelWriter(writers...)).
		Level(level).
		With().
		Timestamp().
		Logger()

	return closer, nil
}

func runInteractive(cmd *cobra.Command, config *types.Config) error {
	exec := renamer.New(renamer.WithDryRun(config.DryRun))
	s := session.New(exec)

	if !config.Plain && isTerminal(os.Stdin) && isTerminal(os.Stdout) {
		return tui.Run(s, config.Path)
	}

	p := prompt.New(cmd.InOrStdin(), cmd.OutOrStdout(), s)
	exec.Progress = p.Progress
	return p.Run(cmd.Context(), config.Path)
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// sessionError shows the operator message for a session error
type sessionError struct {
	err error
}

func (e *sessionError) Error() string { return session.Message(e.err) }
func (e *sessionError) Unwrap() error { return e.err }

// runBatch walks the session steps once using the flag values
func runBatch(config *types.Config, in io.Reader, out io.Writer) error {
	if config.Json && !config.AssumeYes && !config.DryRun {
		return errJSONNeedsAnswer
	}

	path := config.Path
	if path == "" {
		path = "."
	}

	exec := renamer.New(renamer.WithDryRun(config.DryRun))
	s := session.New(exec)
	printer := ui.NewPrinter(out, config.Verbose, config.Json)

	if err := prepare(s, path, config.Selection, config.Format); err != nil {
		return &sessionError{err: err}
	}
	plan := s.Plan()
	printer.Info(fmt.Sprintf("%d of %d files selected in %s", plan.Len(), len(s.Files()), targetDir(s.Path())))

	if config.Json {
		output := jsonoutput.FromPlan(plan, s.Format(), s.Selection(), targetDir(s.Path()))
		jsonStr, err := jsonoutput.ToJSON(output)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, jsonStr)
	} else {
		if config.DryRun {
			printer.DryRunBanner()
		}
		printer.Section("Preview")
		printer.PrintPreview(plan)
	}

	answer := 'y'
	if !config.AssumeYes && !config.DryRun {
		printer.Prompt(ui.PromptConfirm)
		line, err := bufio.NewReader(in).ReadString('\n')
		if err != nil && line == "" {
			return fmt.Errorf("failed to read confirmation: %w", err)
		}
		runes := []rune(strings.TrimSpace(line))
		answer = 0
		if len(runes) == 1 {
			answer = runes[0]
		}
	}

	if err := s.Confirm(answer); err != nil {
		if errors.Is(err, session.ErrDeclined) {
			printer.Warning(session.Message(err))
			return nil
		}
		return &sessionError{err: err}
	}

	summary := &ui.OperationSummary{Selected: plan.Len(), DryRun: config.DryRun}
	if !config.Json {
		bar := ui.NewProgressBar(plan.Len(), "Renaming")
		exec.Progress = func(done, total int) {
			bar.SetCurrent(done)
			fmt.Fprint(out, "\r"+bar.View())
		}
	}

	err := s.Execute()
	if !config.Json {
		fmt.Fprintln(out)
	}

	var moveErr *renamer.MoveError
	switch {
	case err == nil:
		summary.Renamed = plan.Len()
	case errors.As(err, &moveErr):
		summary.Renamed = moveErr.Index
		summary.Failed = true
	default:
		summary.Failed = true
	}
	printer.PrintSummary(summary)

	if err != nil {
		log.Error().Err(err).Msg("Renaming failed")
		return &sessionError{err: err}
	}
	if !config.DryRun {
		printer.Success("Files successfully renamed.")
	}
	return nil
}

// prepare takes the session from the path step to the confirmation step
func prepare(s *session.Session, path, selection, format string) error {
	if err := s.SubmitPath(path); err != nil {
		return err
	}
	if err := s.LoadFiles(); err != nil {
		return err
	}
	if s.Step() == session.StepAcquireSelection {
		if err := s.SubmitSelection(selection); err != nil {
			return err
		}
	}
	return s.SubmitFormat(format)
}

// targetDir is the directory holding the candidates for path
func targetDir(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	if info, err := os.Stat(abs); err == nil && !info.IsDir() {
		return filepath.Dir(abs)
	}
	return abs
}
