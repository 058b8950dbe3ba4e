package server

import (
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"salesbadge/internal/handlers"
	"salesbadge/internal/handlers/api"
	"salesbadge/internal/widget"
)

// RegisterRoutes registers all application routes.
func (s *Server) RegisterRoutes(svc api.CountService, registry *widget.Registry) {
	purchasesHandler := api.NewPurchasesHandler(svc)
	pageHandler := handlers.NewPageHandler(registry)

	// Counting service API
	s.App.Get("/recent-purchases", purchasesHandler.GetRecentPurchases)

	// Configuration descriptor for visual-editing hosts
	s.App.Get("/widget-schema", api.GetWidgetSchema)

	// Demo storefront page and badge fragments
	s.App.Get("/", pageHandler.Index)
	s.App.Get("/widgets/:id", pageHandler.Badge)

	// Operational endpoints
	s.App.Get("/healthz", api.Healthz)
	s.App.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
}
