// Package cli implements the csvnorm command line interface.
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/csvnorm/internal/adapters/driving/styles"
	"github.com/custodia-labs/csvnorm/internal/core/domain"
	"github.com/custodia-labs/csvnorm/internal/core/ports/driven"
	"github.com/custodia-labs/csvnorm/internal/core/ports/driving"
	"github.com/custodia-labs/csvnorm/internal/core/services"
	"github.com/custodia-labs/csvnorm/internal/logger"
)

// version is set at build time with -ldflags "-X ...cli.version=...".
var version = "dev"

// Config holds the factories the root command uses to build its services.
// Both are called once per invocation, after flags are parsed.
type Config struct {
	// OpenConfig opens the configuration store at path.
	// An empty path selects the default location.
	OpenConfig func(path string) (driven.ConfigStore, error)

	// NewNormaliser builds the normaliser for the resolved settings.
	NewNormaliser func(settings domain.Settings) driving.CSVNormaliser
}

// cliConfig holds the current wiring.
var cliConfig *Config

// Flag values.
var (
	verbose    bool
	configPath string
)

// rootCmd represents the base command.
var rootCmd = &cobra.Command{
	Use:   "csvnorm [path]",
	Short: "Normalise a challenge CSV file in place",
	Long: `Normalises a challenge CSV file in place.

The file is first moved to <path>.bak.<unix-timestamp>. Every line is then
stripped of byte order marks and double quotes, each comma separated field is
trimmed, and the canonical header

  challenge_id,difficulty,no_pre_mine,no_pre_mine_hour,latest_submission

is added when missing or rewritten when recognisable. The result is written
back to <path>. If the write fails the backup is moved back.

If no path is given, getchallenge.csv in the working directory is used.`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runNormalise,
}

// SetConfig sets the wiring for the root command.
func SetConfig(config *Config) {
	cliConfig = config
}

func init() {
	rootCmd.Version = version
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print pipeline diagnostics to stderr")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "settings file (default ~/.csvnorm/config.toml)")
}

// reportedError marks a failure whose message has already been printed.
type reportedError struct {
	err error
}

func (e *reportedError) Error() string { return e.err.Error() }
func (e *reportedError) Unwrap() error { return e.err }

// Execute runs the root command and returns the process exit code.
func Execute() int {
	rootCmd.SetOut(os.Stdout)
	rootCmd.SetErr(os.Stderr)
	return execute()
}

func execute() int {
	err := rootCmd.Execute()
	if err == nil {
		return 0
	}

	var reported *reportedError
	if !errors.As(err, &reported) {
		rootCmd.PrintErrln("Error:", err)
	}
	return 1
}

func runNormalise(cmd *cobra.Command, args []string) error {
	if cliConfig == nil || cliConfig.NewNormaliser == nil {
		return errors.New("normaliser not configured")
	}

	logger.SetVerbose(verbose)

	settings, err := loadSettings()
	if err != nil {
		return err
	}
	if settings.Verbose {
		logger.SetVerbose(true)
	}

	var path string
	if len(args) > 0 {
		path = args[0]
	}

	normaliser := cliConfig.NewNormaliser(settings)
	report, err := normaliser.Normalise(cmd.Context(), path)
	printReport(cmd, outputStyles(cmd), report, err)
	if err != nil {
		return &reportedError{err: err}
	}
	return nil
}

// loadSettings reads the configuration file, if any. A missing default
// config is not an error; a broken explicit one is.
func loadSettings() (domain.Settings, error) {
	if cliConfig.OpenConfig == nil {
		return domain.DefaultSettings(), nil
	}

	store, err := cliConfig.OpenConfig(configPath)
	if err != nil {
		if configPath == "" {
			logger.Warn("ignoring default config: %v", err)
			return domain.DefaultSettings(), nil
		}
		return domain.Settings{}, fmt.Errorf("load config %s: %w", configPath, err)
	}
	logger.Debug("config: %s", store.Path())

	settings := services.LoadSettings(store)
	if err := settings.Validate(); err != nil {
		return domain.Settings{}, fmt.Errorf("config %s: %w", store.Path(), err)
	}
	return settings, nil
}

// outputStyles enables colour only when writing to a terminal.
func outputStyles(cmd *cobra.Command) *styles.Styles {
	f, ok := cmd.OutOrStdout().(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return styles.Plain()
	}
	return styles.New(nil, true)
}
