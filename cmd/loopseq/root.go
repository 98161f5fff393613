package main

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// rootOptions is shared by every subcommand.
type rootOptions struct {
	configPath string
	logLevel   string

	cfg Config
	log zerolog.Logger
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{log: zerolog.Nop()}

	cmd := &cobra.Command{
		Use:           "loopseq",
		Short:         "Find and exploit the loop of an eventually periodic sequence",
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := LoadConfig(opts.configPath)
			if err != nil {
				return err
			}
			opts.cfg = cfg
			level := cfg.LogLevel
			if cmd.Flags().Changed("log-level") {
				level = opts.logLevel
			}
			log, err := newLogger(cmd.ErrOrStderr(), level)
			if err != nil {
				return fmt.Errorf("log level %q: %w", level, err)
			}
			opts.log = log
			return nil
		},
	}
	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "TOML config file")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "info", "trace, debug, info, warn or error")

	cmd.AddCommand(
		newAnalyzeCmd(opts),
		newAtCmd(opts),
		newAffineCmd(opts),
	)
	return cmd
}
