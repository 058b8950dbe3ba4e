package widget

import (
	"context"
	"html/template"
	"log/slog"
	"strconv"
	"sync"
	"time"

	"salesbadge/internal/models"
)

// CountFetcher is the slice of the counting service the widget depends on.
type CountFetcher interface {
	GetRecentPurchaseCount(ctx context.Context, productID string, period models.Period) (models.CountResult, error)
}

// Widget is one badge instance. It fetches a count on Start and then on
// every refresh interval, and renders the badge from whichever response was
// processed last. Overlapping fetches may finish out of order; the visible
// state is simply the last one applied.
type Widget struct {
	cfg   Config
	fetch CountFetcher

	mu     sync.Mutex
	count  int
	loaded bool
	failed bool

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// New creates a widget bound to a config and a counting service.
func New(cfg Config, fetch CountFetcher) *Widget {
	return &Widget{cfg: cfg, fetch: fetch}
}

// Config returns the display parameters the widget was created with.
func (w *Widget) Config() Config {
	return w.cfg
}

// Start fetches once immediately and, if the refresh interval is positive,
// keeps refreshing until Stop or ctx cancellation.
func (w *Widget) Start(ctx context.Context) {
	ctx, w.cancel = context.WithCancel(ctx)

	w.refresh(ctx)

	if w.cfg.RefreshInterval <= 0 {
		return
	}

	w.wg.Add(1)
	go func() {
		defer w.wg.Done()

		ticker := time.NewTicker(time.Duration(w.cfg.RefreshInterval) * time.Second)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				w.refresh(ctx)
			}
		}
	}()
}

// Stop cancels the refresh loop and waits for it to exit. No fetch is issued
// after Stop returns.
func (w *Widget) Stop() {
	if w.cancel != nil {
		w.cancel()
	}
	w.wg.Wait()
}

// refresh starts one asynchronous fetch. Responses apply in completion
// order; a slow earlier response can overwrite a faster later one.
func (w *Widget) refresh(ctx context.Context) {
	w.wg.Add(1)
	go func() {
		defer w.wg.Done()

		result, err := w.fetch.GetRecentPurchaseCount(ctx, strconv.Itoa(w.cfg.ProductID), w.cfg.TimePeriod)

		w.mu.Lock()
		defer w.mu.Unlock()

		if err != nil {
			slog.Warn("badge refresh failed", "product_id", w.cfg.ProductID, "error", err)
			w.loaded = true
			w.failed = true
			return
		}

		w.count = result.Count
		w.loaded = true
		w.failed = false
	}()
}

// RenderHTML returns the badge fragment, or the empty string when the badge
// should stay hidden: first result still loading, last fetch failed, no
// product configured, or count below the show threshold.
func (w *Widget) RenderHTML() template.HTML {
	w.mu.Lock()
	count, loaded, failed := w.count, w.loaded, w.failed
	w.mu.Unlock()

	if !loaded || failed || w.cfg.ProductID == 0 || count < w.cfg.ShowThreshold {
		return ""
	}
	return renderBadge(w.cfg, count)
}
