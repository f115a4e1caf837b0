// Package cli implements worddeectl, the operator command line for worddee.
package cli

import (
	"context"
	"fmt"
	"os"

	service "github.com/okian/worddee/internal/app"
	"github.com/okian/worddee/internal/config"
	"github.com/okian/worddee/pkg/logger"
	"github.com/spf13/cobra"
)

// version is set via -ldflags at build time.
var version = "(devel)"

// NewRootCmd builds the worddeectl command tree.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "worddeectl",
		Short:         "Operate and exercise the worddee scoring service",
		Long:          "worddeectl scores sentences locally or through the configured evaluator, drives load runs against a live service and serves the scorer as MCP tools.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// stdout carries command output and the MCP stream.
			return logger.InitWithWriter(cmd.ErrOrStderr())
		},
	}

	root.PersistentFlags().String("config", "", "Path to YAML config file (overrides "+config.EnvConfigFile+")")

	root.AddCommand(newScoreCmd())
	root.AddCommand(newLoadCmd())
	root.AddCommand(newMCPCmd())
	root.AddCommand(newVersionCmd())
	return root
}

// Execute runs worddeectl with os.Args.
func Execute(ctx context.Context) error {
	return NewRootCmd().ExecuteContext(ctx)
}

// loadConfig resolves configuration using --config (highest priority) and
// then the regular environment layering.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	if p, _ := cmd.Flags().GetString("config"); p != "" {
		if err := os.Setenv(config.EnvConfigFile, p); err != nil {
			return nil, fmt.Errorf("set config path: %w", err)
		}
	}
	cfg, err := config.Load(cmd.Context())
	if err != nil {
		return nil, err
	}
	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		return nil, err
	}
	return cfg, nil
}

// startService loads config and starts a Service. Callers must Stop it.
func startService(cmd *cobra.Command) (*service.Service, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	svc := service.New(service.OptionsFromConfig(cfg)...)
	if err := svc.Start(cmd.Context()); err != nil {
		return nil, fmt.Errorf("start service: %w", err)
	}
	return svc, nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the current version",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "worddeectl", version)
		},
	}
}
