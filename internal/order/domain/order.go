package domain

import (
	"time"
)

type OrderStatus string

const (
	// StatusPending is the only status the placement workflow ever writes.
	// Later transitions belong to fulfillment.
	StatusPending OrderStatus = "pending"
)

type Order struct {
	ID        int64       `json:"order_id"`
	Login     string      `json:"login"`
	OrderDate time.Time   `json:"order_date"`
	Status    OrderStatus `json:"status"`
	Lines     []OrderLine `json:"lines,omitempty"`
}

// OrderLine is one committed line of an order. Price is the unit price the
// client quoted at submission, stored as the price of record.
type OrderLine struct {
	ID       int64   `json:"-"`
	OrderID  int64   `json:"-"`
	Article  int64   `json:"article"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

// PlaceOrderLineRequest is one requested line of a batch, before validation.
// Fields are pointers so a missing field is distinguishable from a zero.
type PlaceOrderLineRequest struct {
	Article  *int64   `json:"article"`
	Quantity *int     `json:"quantity"`
	Price    *float64 `json:"price"`
}

// PlaceOrderRequest is the full batch submitted in one request. The field is
// named "orders" on the wire for compatibility with the original frontend.
type PlaceOrderRequest struct {
	Orders []PlaceOrderLineRequest `json:"orders"`
}
