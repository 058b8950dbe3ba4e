package counter

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"salesbadge/internal/cache"
	"salesbadge/internal/models"
)

// fakeOrderAPI serves canned orders and line items, counting calls.
type fakeOrderAPI struct {
	orders    []models.Order
	items     map[int][]models.OrderProduct
	failItems map[int]bool
	listErr   error

	listCalls int32
	itemCalls int32
}

func (f *fakeOrderAPI) ListRecentOrders(_ context.Context, _ time.Time, _ int) ([]models.Order, error) {
	atomic.AddInt32(&f.listCalls, 1)
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.orders, nil
}

func (f *fakeOrderAPI) ListOrderProducts(_ context.Context, orderID int) ([]models.OrderProduct, error) {
	atomic.AddInt32(&f.itemCalls, 1)
	if f.failItems[orderID] {
		return nil, errors.New("boom")
	}
	return f.items[orderID], nil
}

func newService(api OrderAPI, now time.Time, opts ...Option) (*Service, func(time.Time)) {
	current := now
	setNow := func(t time.Time) { current = t }
	clock := func() time.Time { return current }

	opts = append(opts, WithClock(clock))
	c := cache.NewWithClock(60*time.Second, clock)
	return New(api, c, 250, opts...), setNow
}

func TestSumsOnlyFulfilledOrders(t *testing.T) {
	api := &fakeOrderAPI{
		orders: []models.Order{
			{ID: 1, StatusID: 2},
			{ID: 2, StatusID: 5},
			{ID: 3, StatusID: 10},
		},
		items: map[int][]models.OrderProduct{
			1: {{ProductID: 7, Quantity: 3}},
			2: {{ProductID: 7, Quantity: 10}},
			3: {{ProductID: 7, Quantity: 2}},
		},
	}
	svc, _ := newService(api, time.Now())

	result, err := svc.GetRecentPurchaseCount(context.Background(), "7", models.PeriodDay)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Count != 5 {
		t.Errorf("Count = %d, want 5 (order 2 has an unfulfilled status)", result.Count)
	}
	if result.IsMock {
		t.Error("real path must not flag the result as mock")
	}
	// Order 2 is filtered before its line items are ever requested
	if api.itemCalls != 2 {
		t.Errorf("line item calls = %d, want 2", api.itemCalls)
	}
}

func TestIgnoresOtherProductsQuantities(t *testing.T) {
	api := &fakeOrderAPI{
		orders: []models.Order{{ID: 1, StatusID: 10}},
		items: map[int][]models.OrderProduct{
			1: {
				{ProductID: 7, Quantity: 2},
				{ProductID: 8, Quantity: 40},
			},
		},
	}
	svc, _ := newService(api, time.Now())

	result, err := svc.GetRecentPurchaseCount(context.Background(), "7", models.PeriodDay)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Count != 2 {
		t.Errorf("Count = %d, want 2", result.Count)
	}
}

func TestOneFailingOrderDoesNotAbortTheCount(t *testing.T) {
	api := &fakeOrderAPI{
		orders: []models.Order{
			{ID: 1, StatusID: 2},
			{ID: 2, StatusID: 2},
		},
		items: map[int][]models.OrderProduct{
			1: {{ProductID: 7, Quantity: 4}},
		},
		failItems: map[int]bool{2: true},
	}
	svc, _ := newService(api, time.Now())

	result, err := svc.GetRecentPurchaseCount(context.Background(), "7", models.PeriodDay)
	if err != nil {
		t.Fatalf("a per-order failure must not fail the aggregate: %v", err)
	}
	if result.Count != 4 {
		t.Errorf("Count = %d, want 4 (failing order contributes zero)", result.Count)
	}
}

func TestZeroOrdersYieldsZeroWithNoItemFetches(t *testing.T) {
	api := &fakeOrderAPI{}
	svc, _ := newService(api, time.Now())

	result, err := svc.GetRecentPurchaseCount(context.Background(), "7", models.PeriodMonth)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Count != 0 {
		t.Errorf("Count = %d, want 0", result.Count)
	}
	if api.itemCalls != 0 {
		t.Errorf("line item calls = %d, want 0", api.itemCalls)
	}
}

func TestOrderListFailureSurfacesAsUpstreamError(t *testing.T) {
	api := &fakeOrderAPI{listErr: errors.New("HTTP 503")}
	svc, _ := newService(api, time.Now())

	_, err := svc.GetRecentPurchaseCount(context.Background(), "7", models.PeriodDay)
	if !errors.Is(err, ErrUpstream) {
		t.Fatalf("error = %v, want ErrUpstream", err)
	}
}

func TestCacheServesSecondRequestWithinTTL(t *testing.T) {
	api := &fakeOrderAPI{
		orders: []models.Order{{ID: 1, StatusID: 2}},
		items:  map[int][]models.OrderProduct{1: {{ProductID: 7, Quantity: 1}}},
	}
	start := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	svc, setNow := newService(api, start)

	first, err := svc.GetRecentPurchaseCount(context.Background(), "7", models.PeriodDay)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	setNow(start.Add(59 * time.Second))
	second, err := svc.GetRecentPurchaseCount(context.Background(), "7", models.PeriodDay)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !second.LastUpdated.Equal(first.LastUpdated) {
		t.Error("second request within the TTL must return the stored result verbatim")
	}
	if api.listCalls != 1 {
		t.Errorf("upstream list calls = %d, want 1", api.listCalls)
	}
}

func TestCacheExpiryTriggersFreshComputation(t *testing.T) {
	api := &fakeOrderAPI{
		orders: []models.Order{{ID: 1, StatusID: 2}},
		items:  map[int][]models.OrderProduct{1: {{ProductID: 7, Quantity: 1}}},
	}
	start := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	svc, setNow := newService(api, start)

	first, err := svc.GetRecentPurchaseCount(context.Background(), "7", models.PeriodDay)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	setNow(start.Add(61 * time.Second))
	second, err := svc.GetRecentPurchaseCount(context.Background(), "7", models.PeriodDay)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if second.LastUpdated.Equal(first.LastUpdated) {
		t.Error("request after TTL expiry must recompute, not serve the stale entry")
	}
	if api.listCalls != 2 {
		t.Errorf("upstream list calls = %d, want 2", api.listCalls)
	}
}

func TestDistinctPeriodsAreCachedSeparately(t *testing.T) {
	api := &fakeOrderAPI{
		orders: []models.Order{{ID: 1, StatusID: 2}},
		items:  map[int][]models.OrderProduct{1: {{ProductID: 7, Quantity: 1}}},
	}
	svc, _ := newService(api, time.Now())

	ctx := context.Background()
	if _, err := svc.GetRecentPurchaseCount(ctx, "7", models.PeriodDay); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := svc.GetRecentPurchaseCount(ctx, "7", models.PeriodWeek); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if api.listCalls != 2 {
		t.Errorf("upstream list calls = %d, want 2 (one per period)", api.listCalls)
	}
}

func TestMockPathWithoutCredentials(t *testing.T) {
	start := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	for _, roll := range []int{0, 25, 49} {
		svc, _ := newService(nil, start, WithMockIntn(func(int) int { return roll }))

		result, err := svc.GetRecentPurchaseCount(context.Background(), "7", models.PeriodDay)
		if err != nil {
			t.Fatalf("mock path must not error: %v", err)
		}
		if !result.IsMock {
			t.Error("mock result must set IsMock")
		}
		if result.Count < 5 || result.Count > 54 {
			t.Errorf("mock count %d outside [5, 54]", result.Count)
		}
	}
}

func TestMockPathUsesTheSameCacheWrite(t *testing.T) {
	start := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	rolls := 0
	svc, setNow := newService(nil, start, WithMockIntn(func(int) int {
		rolls++
		return rolls
	}))

	first, err := svc.GetRecentPurchaseCount(context.Background(), "7", models.PeriodDay)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	setNow(start.Add(30 * time.Second))
	second, err := svc.GetRecentPurchaseCount(context.Background(), "7", models.PeriodDay)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if second.Count != first.Count || !second.LastUpdated.Equal(first.LastUpdated) {
		t.Error("mock results must be cached exactly like real ones")
	}
	if rolls != 1 {
		t.Errorf("mock computed %d times within the TTL, want 1", rolls)
	}
}
