package order

import (
	"context"
	"math"
	"sort"
	"sync"
	"time"

	"nebula-eats-be/internal/cart"
	"nebula-eats-be/internal/logger"
	"nebula-eats-be/internal/payment"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// totalTolerance absorbs float rounding when verifying a submitted
// total against its lines.
const totalTolerance = 0.005

// Service drives the order lifecycle and the checkout workflow.
type Service interface {
	Place(ctx context.Context, customer string, lines []cart.CartItem, total float64) (Order, error)
	Advance(ctx context.Context, id string, expected, next OrderStatus) (Order, error)
	Checkout(ctx context.Context, customer string, method payment.Method) (*Order, *payment.Receipt, error)

	Get(ctx context.Context, id string) (Order, error)
	KitchenQueue(ctx context.Context) []Order
	DeliveryQueue(ctx context.Context) []Order
	History(ctx context.Context, customer string) []Order
}

type service struct {
	repo    Repository
	cartSvc cart.Service
	gateway payment.Gateway

	mu       sync.Mutex
	inFlight map[string]bool // customers with a checkout in progress
}

// NewService creates a new order service.
func NewService(repo Repository, cartSvc cart.Service, gateway payment.Gateway) Service {
	return &service{
		repo:     repo,
		cartSvc:  cartSvc,
		gateway:  gateway,
		inFlight: make(map[string]bool),
	}
}

// Place creates a PENDING order at the head of the store. The total
// must equal the sum of the lines at this moment; the lines are frozen
// afterward.
func (s *service) Place(ctx context.Context, customer string, lines []cart.CartItem, total float64) (Order, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "Place"),
		zap.String("customer", customer),
	)

	if customer == "" {
		return Order{}, ErrCustomerRequired
	}
	if len(lines) == 0 {
		return Order{}, ErrNoLines
	}

	var sum float64
	for _, line := range lines {
		sum += line.Subtotal()
	}
	if math.Abs(sum-total) > totalTolerance {
		log.Warn("rejected order with mismatched total",
			zap.Float64("submitted", total),
			zap.Float64("computed", sum),
		)
		return Order{}, ErrTotalMismatch
	}

	o := Order{
		ID:           uuid.New().String(),
		CustomerName: customer,
		Items:        append(lines[:0:0], lines...),
		Total:        total,
		Status:       StatusPending,
		CreatedAt:    time.Now(),
	}
	s.repo.Insert(o)

	log.Info("order placed",
		zap.String("order_id", o.ID),
		zap.Float64("total", o.Total),
		zap.Int("lines", len(o.Items)),
	)
	return o, nil
}

// Advance moves an order one step forward in the lifecycle. The caller
// states the status it observed; the swap fails if another operator got
// there first. The store stays untouched on any failure.
func (s *service) Advance(ctx context.Context, id string, expected, next OrderStatus) (Order, error) {
	if !expected.Valid() || !next.Valid() {
		return Order{}, ErrInvalidStatus
	}
	if succ, ok := expected.Next(); !ok || succ != next {
		return Order{}, ErrInvalidTransition
	}

	o, err := s.repo.CompareAndSwapStatus(id, expected, next)
	if err != nil {
		return Order{}, err
	}

	logger.FromCtx(ctx).Info("order advanced",
		zap.String("order_id", id),
		zap.String("from", string(expected)),
		zap.String("to", string(next)),
	)
	return o, nil
}

// Checkout converts the customer's cart into an order through the
// payment gateway. The cart snapshot and total are taken before the
// charge, so the order reflects exactly what was paid for. On decline
// the cart is kept so the customer can retry; nothing retries
// automatically. A second checkout for the same customer is rejected
// while one is in flight.
func (s *service) Checkout(ctx context.Context, customer string, method payment.Method) (*Order, *payment.Receipt, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "Checkout"),
		zap.String("customer", customer),
	)

	if customer == "" {
		return nil, nil, ErrCustomerRequired
	}

	s.mu.Lock()
	if s.inFlight[customer] {
		s.mu.Unlock()
		log.Warn("duplicate checkout rejected")
		return nil, nil, ErrCheckoutInFlight
	}
	s.inFlight[customer] = true
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		delete(s.inFlight, customer)
		s.mu.Unlock()
	}()

	lines := s.cartSvc.Items(ctx, customer)
	if len(lines) == 0 {
		return nil, nil, cart.ErrCartEmpty
	}
	total := s.cartSvc.Total(ctx, customer)

	receipt, err := s.gateway.Charge(ctx, total, method)
	if err != nil {
		log.Warn("checkout charge failed", zap.Error(err))
		return nil, nil, err
	}

	o, err := s.Place(ctx, customer, lines, total)
	if err != nil {
		return nil, receipt, err
	}

	if err := s.cartSvc.Clear(ctx, customer); err != nil {
		log.Error("failed to clear cart after checkout", zap.Error(err))
	}

	log.Info("checkout completed",
		zap.String("order_id", o.ID),
		zap.String("receipt", receipt.Reference),
	)
	return &o, receipt, nil
}

func (s *service) Get(ctx context.Context, id string) (Order, error) {
	o, ok := s.repo.Get(id)
	if !ok {
		return Order{}, ErrOrderNotFound
	}
	return o, nil
}

// KitchenQueue lists orders the kitchen still owns: PENDING and
// PREPARING.
func (s *service) KitchenQueue(ctx context.Context) []Order {
	return s.filter(func(o Order) bool {
		return o.Status == StatusPending || o.Status == StatusPreparing
	})
}

// DeliveryQueue lists READY and DELIVERED orders, READY first.
func (s *service) DeliveryQueue(ctx context.Context) []Order {
	out := s.filter(func(o Order) bool {
		return o.Status == StatusReady || o.Status == StatusDelivered
	})
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Status == StatusReady && out[j].Status != StatusReady
	})
	return out
}

// History lists the customer's own orders, most recent first.
func (s *service) History(ctx context.Context, customer string) []Order {
	out := s.filter(func(o Order) bool {
		return o.CustomerName == customer
	})
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

func (s *service) filter(keep func(Order) bool) []Order {
	all := s.repo.List()
	out := make([]Order, 0, len(all))
	for _, o := range all {
		if keep(o) {
			out = append(out, o)
		}
	}
	return out
}
