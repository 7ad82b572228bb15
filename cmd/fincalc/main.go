package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rpgo/fincalc/internal/config"
	"github.com/rpgo/fincalc/internal/format"
	"github.com/rpgo/fincalc/internal/logging"
)

// app carries state shared by every subcommand once PersistentPreRunE ran.
type app struct {
	configPath string
	envFile    string
	verbose    bool

	settings   *config.Settings
	preference *format.Preference
	logger     *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{preference: &format.Preference{}}

	rootCmd := &cobra.Command{
		Use:   "fincalc",
		Short: "Parse and display calculator amounts",
		Long: `fincalc normalizes numeric field input and renders amounts the way the
calculator pages display them.

Settings come from an optional YAML file (--config), then from FINCALC_*
environment variables, which may be supplied through a .env file.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	rootCmd.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "settings file (YAML)")
	rootCmd.PersistentFlags().StringVar(&a.envFile, "env-file", ".env", "dotenv file with FINCALC_* overrides")
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(
		newNormalizeCmd(a),
		newEditCmd(a),
		newCurrencyCmd(a),
		newPercentCmd(a),
		newCurrenciesCmd(a),
	)
	return rootCmd
}

func (a *app) setup(cmd *cobra.Command, args []string) error {
	logger, err := logging.New(a.verbose)
	if err != nil {
		return err
	}
	a.logger = logger

	parser := config.NewInputParser()
	settings := config.Default()
	if a.configPath != "" {
		settings, err = parser.LoadFromFile(a.configPath)
		if err != nil {
			return err
		}
	}
	if err := parser.ApplyEnv(settings, a.envFile); err != nil {
		return err
	}
	a.settings = settings
	a.preference.Set(settings.DefaultCurrency)

	logger.Debug("settings loaded",
		zap.String("config", a.configPath),
		zap.String("currency", settings.DefaultCurrency),
		zap.String("format", settings.OutputFormat),
		zap.Bool("keep_zero", settings.KeepZero),
	)
	return nil
}

// formatter binds the settings' registry to the user's currency preference.
func (a *app) formatter() *format.Formatter {
	return format.NewFormatter(a.settings.Registry(), a.preference, a.logger.Sugar())
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
