package app

import (
	"github.com/gocomplete/internal/complete"
	"github.com/gocomplete/internal/config"
	"github.com/gocomplete/internal/ui"
)

func (m *Model) initAutocomplete(cfg *config.Config, src complete.Source) {
	var baseline []string
	if !cfg.Lookup.Source.Remote() {
		baseline = cfg.CandidateList()
	}

	ctrl := complete.NewController(baseline, m.submit, cfg.OrderingPolicy())
	engine := complete.NewEngine(src, cfg.Lookup.Delay.Duration, m.logger)
	m.widget = ui.NewAutocomplete(ctrl, engine, ui.AutocompleteOptions{
		Placeholder: cfg.UI.Placeholder,
		MaxVisible:  cfg.UI.MaxVisible,
		Width:       60,
	})
}
