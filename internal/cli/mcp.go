package cli

import (
	"github.com/okian/worddee/internal/adapters/mcptools"
	"github.com/spf13/cobra"
)

func newMCPCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Serve score_sentence and word_of_the_day as MCP tools over stdio",
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, err := startService(cmd)
			if err != nil {
				return err
			}
			defer svc.Stop()
			return mcptools.ServeStdio(mcptools.New(svc, version))
		},
	}
}
