package widget

// ControlKind is the kind of property control a visual-editing host should
// render for a config field.
type ControlKind string

const (
	ControlText   ControlKind = "text"
	ControlSelect ControlKind = "select"
	ControlNumber ControlKind = "number"
	ControlStyle  ControlKind = "style"
)

// PropControl declares one configurable widget property: which control edits
// it, its default, and any select options or number bounds.
type PropControl struct {
	Name    string      `json:"name"`
	Label   string      `json:"label"`
	Kind    ControlKind `json:"kind"`
	Default any         `json:"default,omitempty"`
	Options []string    `json:"options,omitempty"`
	Min     int         `json:"min,omitempty"`
	Max     int         `json:"max,omitempty"`
	Step    int         `json:"step,omitempty"`
}

// Schema is the configuration descriptor for the badge: purely declarative,
// consumed by the hosting editor to build property controls and instantiate
// configs. It carries no runtime behavior.
func Schema() []PropControl {
	return []PropControl{
		{Name: "className", Label: "CSS class", Kind: ControlStyle},
		{Name: "productId", Label: "Product ID", Kind: ControlNumber, Min: 1, Step: 1},
		{Name: "message", Label: "Message template", Kind: ControlText},
		{
			Name: "variant", Label: "Style variant", Kind: ControlSelect,
			Default: string(VariantDefault),
			Options: []string{string(VariantDefault), string(VariantMinimal), string(VariantProminent)},
		},
		{
			Name: "icon", Label: "Icon", Kind: ControlSelect,
			Default: string(IconFlame),
			Options: []string{string(IconFlame), string(IconBag), string(IconTrending), string(IconUsers), string(IconNone)},
		},
		{Name: "showThreshold", Label: "Hide below count", Kind: ControlNumber, Default: 1, Min: 0, Max: 1000, Step: 1},
		{Name: "refreshInterval", Label: "Refresh interval (seconds)", Kind: ControlNumber, Default: 0, Min: 0, Max: 3600, Step: 5},
		{
			Name: "timePeriod", Label: "Time period", Kind: ControlSelect,
			Default: "24h",
			Options: []string{"24h", "week", "month"},
		},
	}
}
