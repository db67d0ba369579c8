// Package root contains the root command for the application.
package root

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"clubdues/internal/config"
	"clubdues/internal/logging"
)

// CommonFlags holds the flags shared by multiple commands.
type CommonFlags struct {
	Input    string
	Output   string
	ClubFile string
}

var (
	// Log is the shared logger instance for commands.
	Log = logrus.New()

	// Cfg is the loaded application configuration, available after
	// PersistentPreRun.
	Cfg *config.Config

	// Cmd is the root command.
	Cmd = &cobra.Command{
		Use:   "clubdues",
		Short: "Reconcile bank deposit exports against club membership dues.",
		Long: `clubdues ingests a bank deposit spreadsheet, matches each deposit to a
club member, validates the amount against the club's fee rates and suggests
which unpaid months the payment should cover.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to clubdues!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.LoadEnv()
			Log = config.ConfigureLogging()
			logging.SetDefaultLogger(logging.NewLogrusAdapterFromLogger(Log))

			cfg, err := config.InitializeConfig()
			if err != nil {
				Log.WithError(err).Warn("Falling back to default configuration")
				cfg = &config.Config{}
				cfg.Log.Level = "info"
				cfg.Log.Format = "text"
				cfg.Club.DataFile = "club.yaml"
				cfg.Matching.MaxDistance = 1
				cfg.Report.Delimiter = ","
			}
			Cfg = cfg

			if SharedFlags.ClubFile == "" {
				SharedFlags.ClubFile = Cfg.Club.DataFile
			}
		},
	}

	// SharedFlags are the common flags accessible to all commands.
	SharedFlags = CommonFlags{}
)

// Init registers the persistent flags on the root command.
func Init() {
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Input, "input", "i", "", "Input deposit export file (xlsx or csv)")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Output, "output", "o", "", "Output report file (stdout when omitted)")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.ClubFile, "club", "c", "", "Club data YAML file")
}

// Logger returns the shared logger wrapped in the logging abstraction.
func Logger() logging.Logger {
	return logging.NewLogrusAdapterFromLogger(Log)
}
