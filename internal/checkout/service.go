package checkout

import (
	"fmt"
	"log"
	"sync"

	"github.com/hidestyle/hidestyle-backend/internal/cart"
	"github.com/hidestyle/hidestyle-backend/internal/order"
	"github.com/hidestyle/hidestyle-backend/internal/payment"
)

// Service bridges a cart snapshot and customer details into a single
// order-creation call and reconciles the cart afterwards. The cart is
// cleared only after a confirmed success, never before.
type Service struct {
	carts      *cart.Service
	orders     *order.Service
	payments   payment.SessionClient
	successURL string
	cancelURL  string

	mu       sync.Mutex
	inflight map[string]struct{}
}

func NewService(carts *cart.Service, orders *order.Service, payments payment.SessionClient, successURL, cancelURL string) *Service {
	return &Service{
		carts:      carts,
		orders:     orders,
		payments:   payments,
		successURL: successURL,
		cancelURL:  cancelURL,
		inflight:   make(map[string]struct{}),
	}
}

// State reports where a session currently is. Only Submitting is held as
// shared state; terminal states are returned in the submission Result.
func (s *Service) State(sessionID string) State {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, busy := s.inflight[sessionID]; busy {
		return StateSubmitting
	}
	return StateIdle
}

func (s *Service) begin(sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, busy := s.inflight[sessionID]; busy {
		return ErrSubmissionInFlight
	}
	s.inflight[sessionID] = struct{}{}
	return nil
}

func (s *Service) finish(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.inflight, sessionID)
}

// Submit runs one checkout attempt for the session. An empty cart is
// rejected locally before any network or database call. While an attempt
// is in flight the session cannot submit again, so a double click creates
// at most one order.
func (s *Service) Submit(sessionID string, d Details) (Result, error) {
	if err := validateDetails(d); err != nil {
		return Result{State: StateIdle}, err
	}

	if err := s.begin(sessionID); err != nil {
		return Result{State: StateSubmitting}, err
	}
	defer s.finish(sessionID)

	snap, err := s.carts.Snapshot(sessionID)
	if err != nil {
		return Result{State: StateFailed}, err
	}
	if len(snap.Items) == 0 {
		return Result{State: StateIdle}, ErrEmptyCart
	}

	switch d.PaymentMethod {
	case order.PaymentCard:
		return s.submitCard(d, snap)
	default:
		return s.submitCOD(sessionID, d, snap)
	}
}

// submitCOD creates the order directly; a 2xx from ingestion is the
// terminal success signal, after which the cart is cleared.
func (s *Service) submitCOD(sessionID string, d Details, snap cart.Snapshot) (Result, error) {
	created, err := s.orders.Create(order.Submission{
		CustomerName:    d.CustomerName,
		CustomerEmail:   d.CustomerEmail,
		Phone:           d.Phone,
		ShippingAddress: d.ShippingAddress,
		Items:           snap.Items,
		TotalAmount:     snap.Total,
		PaymentMethod:   order.PaymentCOD,
	})
	if err != nil {
		// cart stays intact; the customer may resubmit
		return Result{State: StateFailed}, err
	}

	if err := s.carts.Clear(sessionID); err != nil {
		// the order exists; losing the clear only leaves a stale cart
		log.Printf("order %s placed but cart %s not cleared: %v", created.ID, sessionID, err)
	}

	return Result{State: StateSucceeded, Order: &created}, nil
}

// submitCard asks the payment collaborator for a hosted session. No local
// order is created here and the cart is kept: payment completion arrives
// asynchronously via the collaborator's settlement signal.
func (s *Service) submitCard(d Details, snap cart.Snapshot) (Result, error) {
	session, err := s.payments.CreateSession(payment.SessionRequest{
		Items:         payment.LineItemsFromCart(snap.Items),
		CustomerEmail: d.CustomerEmail,
		SuccessURL:    s.successURL,
		CancelURL:     s.cancelURL,
	})
	if err != nil {
		return Result{State: StateFailed}, err
	}
	return Result{State: StateSucceeded, RedirectURL: session.URL}, nil
}

func validateDetails(d Details) error {
	if d.CustomerName == "" {
		return fmt.Errorf("%w: customerName is required", ErrValidation)
	}
	if d.CustomerEmail == "" {
		return fmt.Errorf("%w: customerEmail is required", ErrValidation)
	}
	if d.Phone == "" {
		return fmt.Errorf("%w: phone is required", ErrValidation)
	}
	if d.ShippingAddress == "" {
		return fmt.Errorf("%w: shippingAddress is required", ErrValidation)
	}
	switch d.PaymentMethod {
	case order.PaymentCOD, order.PaymentCard:
		return nil
	default:
		return fmt.Errorf("%w: unsupported payment method %q", ErrValidation, d.PaymentMethod)
	}
}
