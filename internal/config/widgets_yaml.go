package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// WidgetsFile represents the structure of the widgets.yaml file. Widget
// instances for the demo storefront page are easier to manage in YAML than
// in env vars.
type WidgetsFile struct {
	Widgets []WidgetEntry `yaml:"widgets"`
}

// WidgetEntry declares one badge instance on the demo page. Zero values
// defer to the widget package's defaults.
type WidgetEntry struct {
	ProductID       int    `yaml:"product_id"`
	Message         string `yaml:"message,omitempty"`   // template, "{count}" substituted
	Variant         string `yaml:"variant,omitempty"`   // default|minimal|prominent
	Icon            string `yaml:"icon,omitempty"`      // flame|bag|trending|users|none
	ClassName       string `yaml:"class,omitempty"`     // extra CSS class token
	ShowThreshold   int    `yaml:"show_threshold,omitempty"`
	RefreshInterval int    `yaml:"refresh_interval,omitempty"` // seconds, 0 = no auto refresh
	TimePeriod      string `yaml:"time_period,omitempty"`      // 24h|week|month
}

// LoadWidgetsFile loads the YAML widget declarations.
// Path is determined by WIDGETS_FILE env var, defaulting to "widgets.yaml".
// Returns nil without error if the file doesn't exist.
func LoadWidgetsFile() (*WidgetsFile, error) {
	path := getEnv("WIDGETS_FILE", "widgets.yaml")

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Widget file is optional
			return nil, nil
		}
		return nil, err
	}

	var wf WidgetsFile
	if err := yaml.Unmarshal(data, &wf); err != nil {
		return nil, err
	}
	return &wf, nil
}
