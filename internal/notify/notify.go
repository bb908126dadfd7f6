package notify

import (
	"log"

	"github.com/hidestyle/hidestyle-backend/internal/order"
)

// Multi fans an order event out to several notifiers. Each one gets its
// own attempt; failures are logged per notifier and never propagated, so
// a dead webhook cannot silence the admin email and vice versa.
type Multi struct {
	notifiers []order.Notifier
}

func NewMulti(notifiers ...order.Notifier) *Multi {
	return &Multi{notifiers: notifiers}
}

func (m *Multi) OrderCreated(ord order.Order) error {
	for _, n := range m.notifiers {
		if err := n.OrderCreated(ord); err != nil {
			log.Printf("notifier %T failed for order %s: %v", n, ord.ID, err)
		}
	}
	return nil
}

func paymentMethodLabel(method string) string {
	switch method {
	case order.PaymentCOD:
		return "Cash on Delivery"
	case order.PaymentCard:
		return "Card"
	default:
		return method
	}
}
