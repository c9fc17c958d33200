package orders

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/quickkart/quickkart-backend/internal/account"
	"github.com/quickkart/quickkart-backend/internal/cart"
	"github.com/quickkart/quickkart-backend/pkg/enums"
	pkgerrors "github.com/quickkart/quickkart-backend/pkg/errors"
	"github.com/quickkart/quickkart-backend/pkg/metrics"
)

const estimatedDeliveryTime = "15 min"

// Order is a placed order: an immutable snapshot of the cart and delivery
// address at checkout time.
type Order struct {
	ID                    string              `json:"id"`
	UserID                uuid.UUID           `json:"user_id"`
	Items                 []cart.Line         `json:"items"`
	Total                 decimal.Decimal     `json:"total"`
	Status                enums.OrderStatus   `json:"status"`
	Date                  time.Time           `json:"date"`
	DeliveryAddress       account.Address     `json:"delivery_address"`
	PaymentMethod         enums.PaymentMethod `json:"payment_method"`
	EstimatedDeliveryTime string              `json:"estimated_delivery_time"`
}

type cartStore interface {
	Snapshot() ([]cart.Line, cart.Summary)
	TakeAll() ([]cart.Line, cart.Summary)
}

type accountStore interface {
	CurrentUser() (account.User, bool)
	DefaultAddress() (account.Address, bool)
}

// CheckoutInput carries the buyer's checkout choices.
type CheckoutInput struct {
	PaymentMethod enums.PaymentMethod
}

// Service places and tracks orders for the session.
type Service interface {
	Checkout(ctx context.Context, input CheckoutInput) (Order, error)
	List(ctx context.Context) []Order
	Get(ctx context.Context, id string) (Order, error)
	Cancel(ctx context.Context, id string) (Order, error)
}

type service struct {
	cart    cartStore
	account accountStore
	metrics *metrics.StorefrontMetrics
	now     func() time.Time

	mu     sync.Mutex
	orders []Order
}

// NewService wires the order flow over the cart and account stores.
func NewService(cartSvc cartStore, accountSvc accountStore, m *metrics.StorefrontMetrics) (Service, error) {
	if cartSvc == nil {
		return nil, fmt.Errorf("cart store required")
	}
	if accountSvc == nil {
		return nil, fmt.Errorf("account store required")
	}
	return &service{
		cart:    cartSvc,
		account: accountSvc,
		metrics: m,
		now:     time.Now,
	}, nil
}

// Checkout validates its preconditions in order: an authenticated user, a
// non-empty cart, and a resolved default address. On success the cart is
// cleared and the order recorded.
func (s *service) Checkout(_ context.Context, input CheckoutInput) (Order, error) {
	if !input.PaymentMethod.IsValid() {
		return Order{}, pkgerrors.New(pkgerrors.CodeValidation, "invalid payment method")
	}

	user, ok := s.account.CurrentUser()
	if !ok {
		return Order{}, pkgerrors.New(pkgerrors.CodeUnauthorized, "no current user")
	}

	if lines, _ := s.cart.Snapshot(); len(lines) == 0 {
		return Order{}, pkgerrors.New(pkgerrors.CodeStateConflict, "cart is empty")
	}

	address, ok := s.account.DefaultAddress()
	if !ok {
		return Order{}, pkgerrors.New(pkgerrors.CodeStateConflict, "no default delivery address")
	}

	// The lines and their totals come out of one locked take, so the order
	// total always equals the sum over its own items and no concurrent
	// mutation is silently discarded by a separate clear.
	items, summary := s.cart.TakeAll()
	if len(items) == 0 {
		return Order{}, pkgerrors.New(pkgerrors.CodeStateConflict, "cart is empty")
	}

	order := Order{
		ID:                    uuid.NewString(),
		UserID:                user.ID,
		Items:                 items,
		Total:                 summary.TotalPrice,
		Status:                enums.OrderStatusPending,
		Date:                  s.now(),
		DeliveryAddress:       address,
		PaymentMethod:         input.PaymentMethod,
		EstimatedDeliveryTime: estimatedDeliveryTime,
	}

	s.mu.Lock()
	s.orders = append(s.orders, order)
	s.mu.Unlock()

	s.metrics.IncOrderPlaced()
	return order, nil
}

// List returns the session's orders, newest first.
func (s *service) List(_ context.Context) []Order {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Order, 0, len(s.orders))
	for i := len(s.orders) - 1; i >= 0; i-- {
		out = append(out, s.orders[i])
	}
	return out
}

func (s *service) Get(_ context.Context, id string) (Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, order := range s.orders {
		if order.ID == id {
			return order, nil
		}
	}
	return Order{}, pkgerrors.New(pkgerrors.CodeNotFound, "order not found")
}

// Cancel moves the order to canceled if its status allows the transition.
func (s *service) Cancel(_ context.Context, id string) (Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.orders {
		if s.orders[i].ID != id {
			continue
		}
		if s.orders[i].Status.IsTerminal() {
			return Order{}, pkgerrors.New(pkgerrors.CodeStateConflict, "order already settled").
				WithDetails(map[string]any{"status": s.orders[i].Status.String()})
		}
		if !s.orders[i].Status.CanTransition(enums.OrderStatusCanceled) {
			return Order{}, pkgerrors.New(pkgerrors.CodeStateConflict, "order cannot be canceled").
				WithDetails(map[string]any{"status": s.orders[i].Status.String()})
		}
		s.orders[i].Status = enums.OrderStatusCanceled
		return s.orders[i], nil
	}
	return Order{}, pkgerrors.New(pkgerrors.CodeNotFound, "order not found")
}
