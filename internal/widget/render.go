package widget

import (
	"html/template"
	"strings"
)

var iconGlyphs = map[Icon]string{
	IconFlame:    "\U0001F525",
	IconBag:      "\U0001F6CD",
	IconTrending: "\U0001F4C8",
	IconUsers:    "\U0001F465",
}

var badgeTmpl = template.Must(template.New("badge").Parse(
	`<span class="sales-badge sales-badge--{{.Variant}}{{if .ClassName}} {{.ClassName}}{{end}}">` +
		`{{if .Glyph}}<span class="sales-badge__icon" aria-hidden="true">{{.Glyph}}</span>{{end}}` +
		`<span class="sales-badge__text">{{.Text}}</span>` +
		`</span>`))

type badgeData struct {
	Variant   Variant
	ClassName string
	Glyph     string
	Text      string
}

// renderBadge produces the badge markup for a known count. Configured
// messages pass through html/template so they cannot inject markup.
func renderBadge(cfg Config, count int) template.HTML {
	data := badgeData{
		Variant:   cfg.Variant,
		ClassName: cfg.ClassName,
		Glyph:     iconGlyphs[cfg.Icon],
		Text:      RenderMessage(cfg.MessageTemplate(), count),
	}

	var sb strings.Builder
	if err := badgeTmpl.Execute(&sb, data); err != nil {
		// The template is static and the data is plain strings; an execute
		// failure means a programming error, so render nothing.
		return ""
	}
	return template.HTML(sb.String())
}
