package order

import "github.com/hidestyle/hidestyle-backend/internal/cart"

// Order statuses. "pending" is the single initial status; the admin
// dashboard moves orders forward from there. No transition checks are
// enforced: any status may be set from any other.
const (
	StatusPending   = "pending"
	StatusPaid      = "paid"
	StatusShipped   = "shipped"
	StatusDelivered = "delivered"
	StatusCancelled = "cancelled"
)

// Payment methods accepted at checkout.
const (
	PaymentCOD  = "cod"
	PaymentCard = "card"
)

// Order is the server-owned record of a placed order. Item and customer
// fields are frozen at creation time; only Status changes afterwards.
type Order struct {
	ID              string          `json:"id"`
	CustomerName    string          `json:"customerName"`
	CustomerEmail   string          `json:"customerEmail"`
	Phone           string          `json:"phone"`
	ShippingAddress string          `json:"shippingAddress"`
	Items           []cart.LineItem `json:"items"`
	TotalAmount     int64           `json:"totalAmount"`
	PaymentMethod   string          `json:"paymentMethod"`
	Status          string          `json:"status"`
	CreatedAt       string          `json:"createdAt"`
	UpdatedAt       string          `json:"updatedAt"`
}

// Submission is the payload a checkout sends to create an order. Items are
// the cart snapshot at submission time; TotalAmount is the snapshot's
// cartTotal in cents.
type Submission struct {
	CustomerName    string          `json:"customerName"`
	CustomerEmail   string          `json:"customerEmail"`
	Phone           string          `json:"phone"`
	ShippingAddress string          `json:"shippingAddress"`
	Items           []cart.LineItem `json:"items"`
	TotalAmount     int64           `json:"totalAmount"`
	PaymentMethod   string          `json:"paymentMethod"`
}
