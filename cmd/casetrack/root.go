package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"casetrack/internal/config"
	"casetrack/internal/logging"
)

// app holds the state shared by every subcommand of one invocation.
type app struct {
	configPath string
	verbose    bool

	cfg    *config.Config
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{logger: zap.NewNop()}
	root := &cobra.Command{
		Use:   "casetrack",
		Short: "Manage patient contact and case records",
		Long: `casetrack keeps a book of patients with their contact details, income,
medical information, tags and case notes.

Indexes shown by "list" and "find" are one-based and refer to the full list
at the start of each invocation.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init()
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			_ = a.logger.Sync()
		},
	}
	root.PersistentFlags().StringVar(&a.configPath, "config", "casetrack.yaml", "path to the YAML config file")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log at debug level")

	root.AddCommand(
		a.newAddCmd(),
		a.newEditCmd(),
		a.newDeleteCmd(),
		a.newClearCmd(),
		a.newFindCmd(),
		a.newListCmd(),
		a.newViewCmd(),
		a.newNoteCmd(),
		a.newBackupCmd(),
	)
	return root
}

func (a *app) init() error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	logCfg := cfg.Log
	if a.verbose {
		logCfg.Level = zapcore.DebugLevel.String()
	}
	logger, err := logging.New(logCfg)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	a.cfg = cfg
	a.logger = logger
	return nil
}
