package commands

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/kdnorth/salesreport/internal/buildinfo"
	"github.com/kdnorth/salesreport/internal/config"
	"github.com/kdnorth/salesreport/internal/logger"
	"github.com/kdnorth/salesreport/internal/session"
)

// app carries what every subcommand needs once flags are parsed.
type app struct {
	configPath string
	logLevel   string

	cfg *config.Config
	log zerolog.Logger
}

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:     "salesreport",
		Short:   "Merchant sales analysis for the 경대 북문 district",
		Version: buildinfo.String(),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", config.FileName, "config file")
	rootCmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level (overrides config)")

	rootCmd.AddCommand(
		newInitCommand(),
		newTopCommand(a),
		newSeasonCommand(a),
		newFilesCommand(a),
		newShellCommand(a),
		newVersionCommand(),
	)

	return rootCmd
}

func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.LoadOrDefault(a.configPath)
	if err != nil {
		return err
	}
	if err := config.ApplyEnv(cfg); err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	a.cfg = cfg
	a.log = logger.New(logger.Options{
		Level:   logger.ParseLevel(cfg.Log.Level),
		Output:  cmd.ErrOrStderr(),
		Console: true,
	})
	a.log.Debug().Str("config", a.configPath).Msg("config loaded")
	return nil
}

func (a *app) session() *session.Session {
	return session.New(a.cfg, a.log)
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "salesreport %s\n", buildinfo.String())
			return err
		},
	}
}
