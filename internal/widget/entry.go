package widget

import (
	"salesbadge/internal/config"
	"salesbadge/internal/models"
)

// FromEntry builds a widget config from a widgets.yaml declaration, applying
// the descriptor defaults for anything the entry leaves unset.
func FromEntry(e config.WidgetEntry) Config {
	cfg := DefaultConfig()
	cfg.ProductID = e.ProductID
	cfg.Message = e.Message
	cfg.ClassName = e.ClassName
	cfg.Variant = ParseVariant(e.Variant)
	cfg.Icon = ParseIcon(e.Icon)
	cfg.TimePeriod = models.ParsePeriod(e.TimePeriod)

	if e.ShowThreshold > 0 {
		cfg.ShowThreshold = e.ShowThreshold
	}
	if e.RefreshInterval > 0 {
		cfg.RefreshInterval = e.RefreshInterval
	}
	return cfg
}
