package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"salesbadge/internal/cache"
	"salesbadge/internal/config"
	"salesbadge/internal/counter"
	"salesbadge/internal/metrics"
	"salesbadge/internal/server"
	"salesbadge/internal/store"
	"salesbadge/internal/widget"
)

func main() {
	// Store credentials arrive out of band; .env is optional
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: could not load .env: %v", err)
	}

	cfg := config.Load()
	metrics.Init()

	// Counting service
	var orderAPI counter.OrderAPI
	if cfg.HasStoreCredentials() {
		orderAPI = store.New(cfg)
	} else {
		log.Println("Store credentials not configured. Serving mock purchase counts.")
		log.Println("Set STORE_HASH and STORE_ACCESS_TOKEN to enable live data.")
	}

	countCache := cache.New(cfg.CacheTTL)
	svc := counter.New(orderAPI, countCache, cfg.OrderFetchMax)

	// Demo storefront widgets
	registry := widget.NewRegistry()
	wf, err := config.LoadWidgetsFile()
	if err != nil {
		log.Fatalf("Failed to load widgets file: %v", err)
	}
	if wf == nil {
		log.Println("No widgets.yaml found; demo page will have no badges.")
	} else {
		for _, entry := range wf.Widgets {
			registry.Add(widget.New(widget.FromEntry(entry), svc))
		}
		log.Printf("Registered %d badge widget(s)", len(wf.Widgets))
	}

	pollCtx, cancelPolling := context.WithCancel(context.Background())
	registry.StartAll(pollCtx)

	// HTTP server
	srv := server.New(cfg)
	srv.RegisterRoutes(svc, registry)

	go func() {
		if err := srv.Start(); err != nil {
			log.Printf("Server error: %v", err)
		}
	}()
	log.Printf("Server started on %s", cfg.ServerAddr)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	cancelPolling()
	registry.StopAll()
	if err := srv.Shutdown(); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}
	log.Println("Server exited")
}
