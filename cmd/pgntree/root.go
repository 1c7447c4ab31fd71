package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/lgbarn/pgn-tree-go/internal/config"
)

var (
	cfg    *config.Config
	logger *zap.Logger

	configPath string
	lineWidth  int
	workers    int
	logLevel   string
)

var rootCmd = &cobra.Command{
	Use:           "pgntree",
	Short:         "Inspect and normalize PGN game archives",
	SilenceUsage:  true,
	SilenceErrors: false,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		if cfg, err = config.Load(configPath); err != nil {
			return err
		}
		if cmd.Flags().Changed("width") {
			cfg.LineWidth = lineWidth
		}
		if cmd.Flags().Changed("workers") {
			cfg.Workers = workers
		}
		if cmd.Flags().Changed("log-level") {
			cfg.LogLevel = logLevel
		}
		if logger, err = newLogger(cfg.LogLevel); err != nil {
			return err
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configPath, "config", "", "config file (default .pgntree.yaml)")
	pf.IntVar(&lineWidth, "width", 80, "soft wrap column for movetext")
	pf.IntVar(&workers, "workers", 0, "parallel workers for whole-file parsing")
	pf.StringVar(&logLevel, "log-level", "warn", "log level: debug, info, warn, error")
}

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	zc := zap.NewDevelopmentConfig()
	zc.Level = zap.NewAtomicLevelAt(lvl)
	return zc.Build()
}
