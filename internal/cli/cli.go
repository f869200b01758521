package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/r-ising/molzberg-monitor/internal/config"
	"github.com/r-ising/molzberg-monitor/internal/extractor"
	"github.com/r-ising/molzberg-monitor/internal/fetcher"
	"github.com/r-ising/molzberg-monitor/internal/logger"
	"github.com/r-ising/molzberg-monitor/internal/notifier"
	"github.com/r-ising/molzberg-monitor/internal/storage"
)

const (
	ExitSuccess = 0
	ExitError   = 1
)

var (
	flagURL       string
	flagStateFile string
	flagFormat    string
	flagSchedule  string
	flagDryRun    bool
	flagVerbose   bool
	flagJSONLogs  bool
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "molzberg-monitor",
		Short: "Check the Freizeitbad Molzberg page for new swim courses",
		Long: `Checks the Freizeitbad Molzberg course page for newly listed swim courses.
The page is fetched once, course listings are extracted with Gemini, compared
against the known-courses state file, and new findings are emailed via Mailjet.
Exits 0 whether or not new courses were found; any failure exits non-zero.`,
		SilenceUsage: true,
		RunE:         runCheck,
	}

	// Define flags
	cmd.Flags().StringVar(&flagURL, "url", "", "Course page URL (default: TARGET_URL env or built-in)")
	cmd.Flags().StringVar(&flagStateFile, "state-file", "", "Known-courses state file (default: STATE_FILE env or state/known_courses.json)")
	cmd.Flags().StringVar(&flagFormat, "format", "text", "Output format: text or json")
	cmd.Flags().StringVar(&flagSchedule, "schedule", "", "Cron expression to run repeatedly (e.g. \"0 6 * * *\"); default is run once")
	cmd.Flags().BoolVar(&flagDryRun, "dry-run", false, "Print the notification instead of sending it; skips the state write")
	cmd.Flags().BoolVar(&flagVerbose, "verbose", false, "Enable verbose logging")
	cmd.Flags().BoolVar(&flagJSONLogs, "json-logs", false, "Emit logs as JSON lines")

	return cmd
}

// runCheck is the main command logic
func runCheck(cmd *cobra.Command, args []string) error {
	format := OutputFormat(strings.ToLower(flagFormat))
	if format != FormatText && format != FormatJSON {
		return fmt.Errorf("invalid format: %s (must be 'text' or 'json')", flagFormat)
	}

	// Scheduled runs usually land in a log collector, so default them to JSON.
	logger.Init(os.Stderr, flagVerbose, flagJSONLogs || flagSchedule != "")

	cfg := config.Load()
	if flagURL != "" {
		cfg.TargetURL = flagURL
	}
	if flagStateFile != "" {
		cfg.StateFile = flagStateFile
	}

	// Fail on missing secrets before any network call.
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration: %w", err)
	}

	if flagSchedule != "" {
		return runSchedule(cfg, format)
	}

	return runOnce(cmd.Context(), cfg, format)
}

// runOnce executes one complete fetch→extract→diff→notify→persist run.
func runOnce(ctx context.Context, cfg config.Config, format OutputFormat) error {
	if ctx == nil {
		ctx = context.Background()
	}

	store, err := storage.New(cfg.StateFile)
	if err != nil {
		return fmt.Errorf("initializing storage: %w", err)
	}

	gemini, err := extractor.NewGemini(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
	if err != nil {
		return fmt.Errorf("initializing extractor: %w", err)
	}
	defer gemini.Close()

	var notify notifier.Notifier
	if flagDryRun {
		notify = notifier.NewDryRun(os.Stdout, cfg.TargetURL)
	} else {
		notify, err = notifier.NewMailjet(cfg.MailjetPublicKey, cfg.MailjetPrivateKey, cfg.SenderEmail, cfg.RecipientEmail, cfg.TargetURL)
		if err != nil {
			return fmt.Errorf("initializing notifier: %w", err)
		}
	}

	p := &pipeline{
		fetcher: fetcher.New(cfg.TargetURL),
		extract: gemini,
		notify:  notify,
		store:   store,
		persist: !flagDryRun,
	}

	result, err := p.run(ctx)
	if err != nil {
		return err
	}

	return WriteOutput(os.Stdout, result, format, flagVerbose)
}

// Execute runs the CLI
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitError)
	}
}
