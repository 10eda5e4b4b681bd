package order

import (
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusPending Status = "pending"
	StatusPaid    Status = "paid"
	StatusFailed  Status = "failed"
)

// Valid reports whether s is one of the three enumerated statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusPaid, StatusFailed:
		return true
	}
	return false
}

// Order carries the human-facing OrderID (ORD-<n>), which is distinct from
// the internal storage key and may be reassigned by a renumbering pass.
type Order struct {
	ID              uint
	OrderID         string
	UserID          uint
	CustomerID      uuid.UUID
	CustomerName    string
	CustomerPhone   string
	CustomerAddress string
	Status          Status
	Items           []Item
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type Item struct {
	ID          uint
	OrderID     uint
	Description string
	Quantity    int
	Price       float64
}

// TotalAmount sums quantity × price across all line items.
func (o *Order) TotalAmount() float64 {
	var total float64
	for _, it := range o.Items {
		total += float64(it.Quantity) * it.Price
	}
	return total
}

type ItemParams struct {
	Description string  `json:"description"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
}

type CreateParams struct {
	CustomerName    string       `json:"customerName"`
	CustomerPhone   string       `json:"customerPhone"`
	CustomerAddress string       `json:"customerAddress"`
	Items           []ItemParams `json:"items"`
}
