// Package handlers serves the demo storefront pages that host the badges.
package handlers

import (
	"html/template"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"salesbadge/internal/widget"
)

// PageHandler renders the demo storefront page and badge fragments.
type PageHandler struct {
	registry *widget.Registry
}

// NewPageHandler creates the handler.
func NewPageHandler(registry *widget.Registry) *PageHandler {
	return &PageHandler{registry: registry}
}

type badgeView struct {
	ID              string
	ProductID       int
	RefreshInterval int
	HTML            template.HTML
}

// Index renders the storefront demo page with the current state of every
// registered badge. Badges with a refresh interval re-fetch their fragment
// from /widgets/:id client side.
func (h *PageHandler) Index(c fiber.Ctx) error {
	instances := h.registry.All()

	badges := make([]badgeView, 0, len(instances))
	for _, inst := range instances {
		cfg := inst.Widget.Config()
		badges = append(badges, badgeView{
			ID:              inst.ID.String(),
			ProductID:       cfg.ProductID,
			RefreshInterval: cfg.RefreshInterval,
			HTML:            inst.Widget.RenderHTML(),
		})
	}

	return c.Render("index", fiber.Map{
		"Title":  "Storefront demo",
		"Badges": badges,
	})
}

// Badge returns the current fragment of a single badge so a storefront can
// refresh it in place. An empty body means the badge is hidden.
func (h *PageHandler) Badge(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid widget id"})
	}

	w, ok := h.registry.Get(id)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "widget not found"})
	}

	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.SendString(string(w.RenderHTML()))
}
