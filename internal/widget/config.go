// Package widget renders the recent-purchases badge and keeps it fresh.
package widget

import (
	"strconv"
	"strings"

	"salesbadge/internal/models"
)

// Variant selects one of the three visual treatments of the badge.
type Variant string

const (
	VariantDefault   Variant = "default"
	VariantMinimal   Variant = "minimal"
	VariantProminent Variant = "prominent"
)

// Icon selects the glyph shown before the badge text.
type Icon string

const (
	IconFlame    Icon = "flame"
	IconBag      Icon = "bag"
	IconTrending Icon = "trending"
	IconUsers    Icon = "users"
	IconNone     Icon = "none"
)

// Config is the set of display parameters bound to one badge instance. The
// widget treats it as immutable input.
type Config struct {
	ClassName       string
	ProductID       int
	Message         string // template; "{count}" is substituted before display
	Variant         Variant
	Icon            Icon
	ShowThreshold   int
	RefreshInterval int // seconds; 0 disables auto refresh
	TimePeriod      models.Period
}

// DefaultConfig returns the defaults the configuration descriptor declares.
func DefaultConfig() Config {
	return Config{
		Variant:         VariantDefault,
		Icon:            IconFlame,
		ShowThreshold:   1,
		RefreshInterval: 0,
		TimePeriod:      models.PeriodDay,
	}
}

// ParseVariant maps a raw variant value, falling back to the default style.
func ParseVariant(raw string) Variant {
	switch Variant(raw) {
	case VariantMinimal:
		return VariantMinimal
	case VariantProminent:
		return VariantProminent
	default:
		return VariantDefault
	}
}

// ParseIcon maps a raw icon value, falling back to the flame.
func ParseIcon(raw string) Icon {
	switch Icon(raw) {
	case IconBag:
		return IconBag
	case IconTrending:
		return IconTrending
	case IconUsers:
		return IconUsers
	case IconNone:
		return IconNone
	default:
		return IconFlame
	}
}

var defaultMessages = map[models.Period]string{
	models.PeriodDay:   "{count} sold in the last 24 hours",
	models.PeriodWeek:  "{count} sold this week",
	models.PeriodMonth: "{count} sold this month",
}

// MessageTemplate returns the caller-supplied template, or the built-in
// default for the configured period.
func (c Config) MessageTemplate() string {
	if c.Message != "" {
		return c.Message
	}
	return defaultMessages[c.TimePeriod]
}

// RenderMessage substitutes the {count} placeholder with the decimal count.
func RenderMessage(tmpl string, count int) string {
	return strings.ReplaceAll(tmpl, "{count}", strconv.Itoa(count))
}
