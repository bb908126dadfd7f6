package payment

import (
	"errors"
	"strings"
)

var ErrInvalidRequest = errors.New("invalid payment session request")

// LineItem is the slice of an order the payment collaborator needs:
// display name, unit amount in cents, quantity, and an optional image.
type LineItem struct {
	Name     string `json:"name"`
	Amount   int64  `json:"amount"`
	Quantity int    `json:"quantity"`
	Image    string `json:"image,omitempty"`
}

// SessionRequest describes one hosted checkout session.
type SessionRequest struct {
	Items         []LineItem `json:"items"`
	CustomerEmail string     `json:"customerEmail"`
	SuccessURL    string     `json:"successUrl"`
	CancelURL     string     `json:"cancelUrl"`
}

// Session is the collaborator's answer: where to send the customer.
type Session struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

// SessionClient creates hosted payment sessions with an external payment
// collaborator. The collaborator, not this process, is the source of truth
// for payment completion; settlement arrives asynchronously.
type SessionClient interface {
	CreateSession(req SessionRequest) (Session, error)
}

func (r SessionRequest) validate() error {
	if len(r.Items) == 0 {
		return ErrInvalidRequest
	}
	// carts may carry zero-price items (freebies), so only negative
	// amounts are rejected
	for _, item := range r.Items {
		if item.Name == "" || item.Amount < 0 || item.Quantity <= 0 {
			return ErrInvalidRequest
		}
	}
	if r.CustomerEmail == "" || !strings.Contains(r.CustomerEmail, "@") {
		return ErrInvalidRequest
	}
	return nil
}
