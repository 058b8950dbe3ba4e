// Package counter computes how many units of a product were purchased within
// a recent time window, behind a short-lived cache.
package counter

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"strconv"
	"sync"
	"time"

	"salesbadge/internal/cache"
	"salesbadge/internal/models"
)

// ErrUpstream marks a failed order-list fetch. Callers surface it as a
// generic internal error; the upstream detail is only logged.
var ErrUpstream = errors.New("failed to fetch orders")

// OrderAPI is the slice of the store client the counter depends on.
type OrderAPI interface {
	ListRecentOrders(ctx context.Context, minDate time.Time, limit int) ([]models.Order, error)
	ListOrderProducts(ctx context.Context, orderID int) ([]models.OrderProduct, error)
}

// Service owns the purchase-count computation and its cache.
type Service struct {
	api      OrderAPI // nil when store credentials are not configured
	cache    *cache.Cache
	fetchMax int
	now      func() time.Time
	mockInt  func(n int) int
}

// Option tweaks a Service; used by tests to pin the clock and mock counts.
type Option func(*Service)

// WithClock replaces the service clock.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// WithMockIntn replaces the random source behind mock counts.
func WithMockIntn(fn func(n int) int) Option {
	return func(s *Service) { s.mockInt = fn }
}

// New creates a counting service. A nil api routes every cache miss to the
// mock-data path.
func New(api OrderAPI, c *cache.Cache, fetchMax int, opts ...Option) *Service {
	s := &Service{
		api:      api,
		cache:    c,
		fetchMax: fetchMax,
		now:      time.Now,
		mockInt:  rand.IntN,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// GetRecentPurchaseCount returns the units of productID sold within the
// period's window. Results are served from the cache while fresh; both the
// real and the mock path share the same cache-write step.
func (s *Service) GetRecentPurchaseCount(ctx context.Context, productID string, period models.Period) (models.CountResult, error) {
	key := cache.Key(productID, period)
	if result, ok := s.cache.Get(key); ok {
		return result, nil
	}

	result, err := s.compute(ctx, productID, period)
	if err != nil {
		return models.CountResult{}, err
	}

	s.cache.Set(key, result)
	return result, nil
}

func (s *Service) compute(ctx context.Context, productID string, period models.Period) (models.CountResult, error) {
	if s.api == nil {
		return models.CountResult{
			Count:       5 + s.mockInt(50),
			ProductID:   productID,
			Period:      period,
			LastUpdated: s.now(),
			IsMock:      true,
		}, nil
	}

	now := s.now()
	orders, err := s.api.ListRecentOrders(ctx, period.MinDate(now), s.fetchMax)
	if err != nil {
		slog.Error("order list fetch failed", "product_id", productID, "period", period, "error", err)
		return models.CountResult{}, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	count := s.sumProductQuantities(ctx, orders, productID)

	return models.CountResult{
		Count:       count,
		ProductID:   productID,
		Period:      period,
		LastUpdated: now,
	}, nil
}

// sumProductQuantities fetches line items for every fulfilled order and sums
// the quantities matching productID. Fetches run concurrently; a failing
// order is logged and contributes zero rather than failing the aggregate.
func (s *Service) sumProductQuantities(ctx context.Context, orders []models.Order, productID string) int {
	target, err := strconv.Atoi(productID)
	if err != nil {
		// Non-numeric product ids can never match an upstream line item.
		target = -1
	}

	var (
		wg    sync.WaitGroup
		mu    sync.Mutex
		total int
	)

	for _, order := range orders {
		if !order.IsFulfilled() {
			continue
		}

		wg.Add(1)
		go func(order models.Order) {
			defer wg.Done()

			products, err := s.api.ListOrderProducts(ctx, order.ID)
			if err != nil {
				slog.Warn("line item fetch failed, skipping order", "order_id", order.ID, "error", err)
				return
			}

			sum := 0
			for _, p := range products {
				if p.ProductID == target {
					sum += p.Quantity
				}
			}

			mu.Lock()
			total += sum
			mu.Unlock()
		}(order)
	}

	wg.Wait()
	return total
}
