package checkout

import (
	"errors"

	"github.com/hidestyle/hidestyle-backend/internal/order"
)

var (
	ErrEmptyCart          = errors.New("nothing to check out")
	ErrSubmissionInFlight = errors.New("a submission is already in progress")
	ErrValidation         = errors.New("invalid checkout details")
)

// State tracks one checkout attempt. A session sits in Idle until the
// customer confirms, holds Submitting while the order call is in flight
// (blocking duplicate submissions), then lands in Succeeded or Failed.
// Failed returns the session to Idle for a retry; the cart is untouched.
type State int

const (
	StateIdle State = iota
	StateSubmitting
	StateSucceeded
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateSubmitting:
		return "submitting"
	case StateSucceeded:
		return "succeeded"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Details are the customer-entered fulfillment fields.
type Details struct {
	CustomerName    string `json:"customerName"`
	CustomerEmail   string `json:"customerEmail"`
	Phone           string `json:"phone"`
	ShippingAddress string `json:"shippingAddress"`
	PaymentMethod   string `json:"paymentMethod"`
}

// Result is the terminal outcome of a submission. The cod path fills
// Order; the card path fills RedirectURL and leaves the cart alone until
// settlement confirms out of band.
type Result struct {
	State       State        `json:"state"`
	Order       *order.Order `json:"order,omitempty"`
	RedirectURL string       `json:"redirectUrl,omitempty"`
}
