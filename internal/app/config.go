package service

import (
	"github.com/okian/worddee/internal/config"
	"github.com/okian/worddee/internal/domain/model"
)

// OptionsFromConfig translates loaded configuration into service options.
func OptionsFromConfig(cfg *config.Config) []Option {
	opts := []Option{
		WithScorerWebhook(cfg.ScorerWebhook),
		WithSummaryWebhook(cfg.SummaryWebhook),
		WithScorerTimeout(cfg.ScorerTimeout()),
		WithSummaryTimeout(cfg.SummaryTimeout()),
	}
	if len(cfg.Words) > 0 {
		list := make([]model.Word, 0, len(cfg.Words))
		for _, w := range cfg.Words {
			list = append(list, model.Word{Word: w.Word, Definition: w.Definition})
		}
		opts = append(opts, WithWords(list))
	}
	return opts
}
