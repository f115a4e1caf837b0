package cli

import (
	"fmt"
	"io"
	"sort"

	"github.com/okian/worddee/internal/domain/model"
	"github.com/okian/worddee/internal/loadtest"
	"github.com/spf13/cobra"
)

func newLoadCmd() *cobra.Command {
	cfg := &loadtest.Config{}

	cmd := &cobra.Command{
		Use:   "load",
		Short: "Drive a running service with generated submissions",
		RunE: func(cmd *cobra.Command, _ []string) error {
			stats, err := loadtest.Run(cmd.Context(), cfg)
			if stats != nil {
				printStats(cmd.OutOrStdout(), stats)
			}
			return err
		},
	}

	cmd.Flags().StringVar(&cfg.BaseURL, "url", loadtest.DefaultBaseURL, "Base URL of the service")
	cmd.Flags().IntVar(&cfg.Submissions, "n", loadtest.DefaultSubmissions, "Number of submissions to generate and submit")
	cmd.Flags().IntVar(&cfg.Workers, "workers", loadtest.DefaultWorkers, "Number of concurrent workers")
	cmd.Flags().DurationVar(&cfg.Timeout, "timeout", loadtest.DefaultTimeout, "HTTP request timeout")
	cmd.Flags().StringVar(&cfg.OutputFile, "output", "", "Write generated submissions to this JSON file")
	cmd.Flags().BoolVarP(&cfg.Verbose, "verbose", "v", false, "Log every rejected submission")
	return cmd
}

func printStats(w io.Writer, s *loadtest.Stats) {
	fmt.Fprintf(w, "submitted     %d/%d\n", s.Submitted, s.Generated)
	fmt.Fprintf(w, "successful    %d (%.1f%%)\n", s.Successful, s.SuccessRate())
	fmt.Fprintf(w, "inconsistent  %d\n", s.Inconsistent)
	fmt.Fprintf(w, "failed        %d\n", s.Failed)
	fmt.Fprintf(w, "duration      %s (%.1f/s)\n", s.Duration, s.Throughput())

	levels := make([]string, 0, len(s.Levels))
	for l := range s.Levels {
		levels = append(levels, string(l))
	}
	sort.Strings(levels)
	for _, l := range levels {
		fmt.Fprintf(w, "  %-12s%d\n", l, s.Levels[model.Level(l)])
	}
}
