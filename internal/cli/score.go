package cli

import (
	"encoding/json"
	"fmt"

	"github.com/okian/worddee/internal/domain/model"
	"github.com/spf13/cobra"
)

func newScoreCmd() *cobra.Command {
	var (
		word     string
		sentence string
		local    bool
	)

	cmd := &cobra.Command{
		Use:   "score",
		Short: "Score one sentence and print the result as JSON",
		Long:  "Score one sentence. The configured evaluator is tried first and the local engine answers when it is missing or failing. --local skips the evaluator.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, err := startService(cmd)
			if err != nil {
				return err
			}
			defer svc.Stop()

			sub := model.Submission{Word: word, Sentence: sentence}
			score := svc.Score
			if local {
				score = svc.ScoreLocal
			}
			res, err := score(cmd.Context(), sub)
			if err != nil {
				return fmt.Errorf("score: %w", err)
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(res)
		},
	}

	cmd.Flags().StringVar(&word, "word", "", "Target vocabulary word")
	cmd.Flags().StringVar(&sentence, "sentence", "", "Sentence to score")
	cmd.Flags().BoolVar(&local, "local", false, "Use the local engine only")
	_ = cmd.MarkFlagRequired("word")
	_ = cmd.MarkFlagRequired("sentence")
	return cmd
}
