package models

// Order is a single order summary as returned by the store's orders API.
// Only the fields the counting service reads are mapped.
type Order struct {
	ID          int    `json:"id"`
	DateCreated string `json:"date_created"`
	StatusID    int    `json:"status_id"`
}

// OrderProduct is one line item of an order.
type OrderProduct struct {
	ProductID int `json:"product_id"`
	Quantity  int `json:"quantity"`
}

// Order status codes that count as a completed purchase. Paid-but-unshipped
// statuses are deliberately excluded.
const (
	StatusShipped          = 2
	StatusPartiallyShipped = 3
	StatusCompleted        = 10
)

var fulfilledStatuses = map[int]bool{
	StatusShipped:          true,
	StatusPartiallyShipped: true,
	StatusCompleted:        true,
}

// IsFulfilled reports whether the order's status counts toward purchases.
func (o Order) IsFulfilled() bool {
	return fulfilledStatuses[o.StatusID]
}
