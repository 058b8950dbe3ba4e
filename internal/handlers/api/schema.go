package api

import (
	"github.com/gofiber/fiber/v3"

	"salesbadge/internal/widget"
)

// GetWidgetSchema serves the configuration descriptor so a visual-editing
// host can render property controls for the badge.
func GetWidgetSchema(c fiber.Ctx) error {
	return c.JSON(widget.Schema())
}
