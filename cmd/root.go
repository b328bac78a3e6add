package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"termsearch/internal/browser"
	"termsearch/internal/cli"
	"termsearch/internal/color"
	"termsearch/internal/config"
	"termsearch/internal/executor"
	"termsearch/internal/google"
	"termsearch/internal/outcome"
	"termsearch/internal/tui/controller"
	"termsearch/internal/tui/model"
	"termsearch/pkg/logging"
)

// envLookup resolves credentials from the environment and dotenv files.
// Tests replace it to stay independent of the host environment.
var envLookup = config.EnvironmentLookup

// rootOptions holds the values of the root command's flags.
type rootOptions struct {
	apiKey   string
	cx       string
	safe     bool
	endpoint string
	noTUI    bool
	output   string
	quiet    bool
	debug    bool
	logLevel string
	logFile  string
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:   "termsearch <query...>",
		Short: "Search Google and browse the results in your terminal",
		Long: `termsearch sends a single query to the Google Custom Search JSON API and
shows the results in an interactive terminal browser.

While the request is in flight a status line is shown. Once results arrive,
move through them with the arrow keys (or j/k), jump with home/end, and open
the selected result in your default browser with enter.

Credentials are read from flags, the GOOGLE_API_KEY and GOOGLE_CX environment
variables, ~/.config/termsearch/.env, ./.env, or the YAML configuration files
~/.config/termsearch/config.yaml and ./.termsearch/config.yaml.

With --no-tui the results are printed once as a table (or JSON/YAML with
--output) and the command exits.`,
		Example: `  termsearch golang generics
  termsearch --safe --no-tui -o json "rust vs go"`,
		Args: cobra.MinimumNArgs(1),
		// SilenceUsage is set to true to prevent printing usage message on errors
		// handled by us (e.g. missing credentials, failed searches)
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearch(cmd, args, opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.apiKey, "api-key", "a", "", "Google API key (env "+config.EnvAPIKey+")")
	flags.StringVarP(&opts.cx, "cx", "c", "", "Programmable Search Engine ID (env "+config.EnvCX+")")
	flags.BoolVarP(&opts.safe, "safe", "s", false, "Enable SafeSearch filtering")
	flags.StringVar(&opts.endpoint, "endpoint", "", "Override the Custom Search API endpoint")
	flags.BoolVar(&opts.noTUI, "no-tui", false, "Print the results and exit instead of starting the interactive browser")
	flags.StringVarP(&opts.output, "output", "o", string(cli.OutputFormatTable), "Output format with --no-tui (table, json, yaml)")
	flags.BoolVarP(&opts.quiet, "quiet", "q", false, "With --no-tui, print only the result links")
	flags.BoolVar(&opts.debug, "debug", false, "Enable debug logging")
	flags.StringVar(&opts.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	flags.StringVar(&opts.logFile, "log-file", "", "Write logs to this file (the interactive browser logs nowhere otherwise)")
	_ = flags.MarkHidden("endpoint")

	return cmd
}

// SetVersion sets the version for the root command
func SetVersion(v string) {
	rootCmd.Version = v
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "termsearch version %s\n" .Version}}`)

	err := rootCmd.Execute()
	if err != nil {
		// Cobra prints the error, we just exit non-zero
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newSelfUpdateCmd())
}

// resolveConfig layers defaults, config files, the environment and the
// flags that were set explicitly, then validates the result.
func resolveConfig(cmd *cobra.Command, opts *rootOptions, lookup config.Lookup) (config.TermsearchConfig, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return cfg, fmt.Errorf("failed to load configuration: %w", err)
	}
	cfg = config.ApplyEnvironment(cfg, lookup)

	flags := cmd.Flags()
	if flags.Changed("api-key") {
		cfg.Search.APIKey = opts.apiKey
	}
	if flags.Changed("cx") {
		cfg.Search.CX = opts.cx
	}
	if flags.Changed("safe") {
		cfg.Search.Safe = opts.safe
	}
	if flags.Changed("endpoint") {
		cfg.Search.Endpoint = opts.endpoint
	}
	if flags.Changed("log-level") {
		cfg.Logging.Level = opts.logLevel
	}
	if flags.Changed("log-file") {
		cfg.Logging.File = opts.logFile
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// setupLogging points the logger at stderr in plain mode. In interactive
// mode the terminal belongs to the browser, so logs go to the configured
// file or nowhere.
func setupLogging(cfg config.LoggingConfig, debug, interactive bool, stderr io.Writer) (func(), error) {
	level := logging.LevelDebug
	if !debug {
		var err error
		level, err = logging.ParseLogLevel(cfg.Level)
		if err != nil {
			return nil, err
		}
	}

	var out io.Writer
	closer := func() {}
	if cfg.File != "" {
		f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file: %w", err)
		}
		out = f
		closer = func() { _ = f.Close() }
	}

	if interactive {
		logging.InitForTUI(level, out)
	} else {
		if out == nil {
			out = stderr
		}
		logging.InitForCLI(level, out)
	}
	return closer, nil
}

func runSearch(cmd *cobra.Command, args []string, opts *rootOptions) error {
	query := strings.Join(args, " ")

	cfg, err := resolveConfig(cmd, opts, envLookup())
	if err != nil {
		return err
	}

	format, err := cli.ParseOutputFormat(opts.output)
	if err != nil {
		return err
	}

	closeLog, err := setupLogging(cfg.Logging, opts.debug, !opts.noTUI, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer closeLog()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	container := outcome.NewContainer()
	client := google.NewClient(google.Options{
		Endpoint: cfg.Search.Endpoint,
		Timeout:  cfg.Search.Timeout,
	})
	exec := executor.New(client, google.Query{
		Text:   query,
		APIKey: cfg.Search.APIKey,
		CX:     cfg.Search.CX,
		Safe:   cfg.Search.Safe,
	}, container)

	if opts.noTUI {
		ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
		defer stop()

		select {
		case <-exec.Dispatch(ctx):
		case <-ctx.Done():
			return fmt.Errorf("search interrupted: %w", ctx.Err())
		}
		printer := cli.NewPrinter(cli.PrinterOptions{
			Format: format,
			Quiet:  opts.quiet,
			Out:    cmd.OutOrStdout(),
		})
		return printer.Print(query, container.Read())
	}

	// The executor is abandoned if the user quits before it finishes.
	exec.Dispatch(ctx)

	color.Initialize(lipgloss.HasDarkBackground())
	return controller.Run(model.Options{
		Query:         query,
		Results:       container,
		PollInterval:  cfg.UI.PollInterval,
		SeparatorRows: cfg.UI.Separators(),
		Opener:        browser.System{},
		DebugMode:     opts.debug,
	})
}
