package order

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
)

var ErrValidation = errors.New("invalid order submission")

// Notifier delivers a best-effort signal that a new order exists. A
// returned error is logged and dropped; it never fails the order.
type Notifier interface {
	OrderCreated(ord Order) error
}

// Service provides business logic for orders.
type Service struct {
	repo     Repository
	notifier Notifier
}

func NewService(repo Repository, notifier Notifier) *Service {
	return &Service{repo: repo, notifier: notifier}
}

// Create validates the submission, persists a pending order with a
// server-generated id, then makes exactly one notification attempt.
// Persistence happens before notification; a notification failure leaves
// the already-committed order untouched.
func (s *Service) Create(sub Submission) (Order, error) {
	if err := validate(sub); err != nil {
		return Order{}, err
	}

	method := sub.PaymentMethod
	if method == "" {
		method = PaymentCOD
	}

	now := time.Now().UTC().Format(time.RFC3339)
	ord := Order{
		ID:              uuid.NewString(),
		CustomerName:    sub.CustomerName,
		CustomerEmail:   sub.CustomerEmail,
		Phone:           sub.Phone,
		ShippingAddress: sub.ShippingAddress,
		Items:           sub.Items,
		TotalAmount:     sub.TotalAmount,
		PaymentMethod:   method,
		Status:          StatusPending,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	created, err := s.repo.Create(ord)
	if err != nil {
		return Order{}, err
	}

	if s.notifier != nil {
		if err := s.notifier.OrderCreated(created); err != nil {
			log.Printf("order %s: notification failed: %v", created.ID, err)
		}
	}

	return created, nil
}

func validate(sub Submission) error {
	if sub.CustomerName == "" {
		return fmt.Errorf("%w: customerName is required", ErrValidation)
	}
	if sub.CustomerEmail == "" {
		return fmt.Errorf("%w: customerEmail is required", ErrValidation)
	}
	if len(sub.Items) == 0 {
		return fmt.Errorf("%w: items must not be empty", ErrValidation)
	}
	if sub.TotalAmount <= 0 {
		return fmt.Errorf("%w: totalAmount must be positive", ErrValidation)
	}
	for _, item := range sub.Items {
		if item.ProductID == "" || item.Quantity < 1 || item.UnitPrice < 0 {
			return fmt.Errorf("%w: invalid line item %q", ErrValidation, item.ProductID)
		}
	}
	switch sub.PaymentMethod {
	case "", PaymentCOD, PaymentCard:
	default:
		return fmt.Errorf("%w: unsupported payment method %q", ErrValidation, sub.PaymentMethod)
	}
	return nil
}

func (s *Service) GetByID(id string) (Order, error) {
	return s.repo.GetByID(id)
}

func (s *Service) List(limit, offset int) ([]Order, int, error) {
	orders, err := s.repo.List(limit, offset)
	if err != nil {
		return nil, 0, err
	}
	count, err := s.repo.Count()
	if err != nil {
		return nil, 0, err
	}
	return orders, count, nil
}

// UpdateStatus sets a new status on an order. The dashboard may move an
// order to any status; there is no transition table.
func (s *Service) UpdateStatus(id, status string) (Order, error) {
	switch status {
	case StatusPending, StatusPaid, StatusShipped, StatusDelivered, StatusCancelled:
	default:
		return Order{}, fmt.Errorf("%w: unknown status %q", ErrValidation, status)
	}
	return s.repo.UpdateStatus(id, status)
}
