package checkout

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/artisanhome/cartengine/internal/domain"
	"github.com/artisanhome/cartengine/internal/observability"
	"github.com/artisanhome/cartengine/internal/pricing"
)

//go:generate mockgen -source internal/checkout/flow.go -destination=internal/checkout/flow_mock_test.go -package=checkout

// CartSource is the slice of the cart store the flow needs: a snapshot to
// price and submit, and Clear once the confirmation is acknowledged.
type CartSource interface {
	Items() []domain.LineItem
	Clear()
}

type State uint8

const (
	StateIdle State = iota
	StateOpen
	StateSubmitting
	StateConfirmed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateOpen:
		return "open"
	case StateSubmitting:
		return "submitting"
	case StateConfirmed:
		return "confirmed"
	}
	return fmt.Sprintf("state(%d)", uint8(s))
}

// Flow drives a checkout from opening the form to acknowledging the
// confirmation. The cart is cleared only on Acknowledge, so the user can
// still review it behind the confirmation.
type Flow struct {
	mu        sync.Mutex
	state     State
	promo     string
	confirmed *domain.Confirmation

	cart      CartSource
	calc      *pricing.Calculator
	submitter Submitter
	history   *History
	logger    *zap.Logger
	metrics   observability.Metrics
	rng       *rand.Rand
}

func NewFlow(
	cart CartSource,
	calc *pricing.Calculator,
	submitter Submitter,
	history *History,
	logger *zap.Logger,
	metrics observability.Metrics,
) *Flow {
	return &Flow{
		state:     StateIdle,
		cart:      cart,
		calc:      calc,
		submitter: submitter,
		history:   history,
		logger:    logger,
		metrics:   metrics,
		rng:       rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (f *Flow) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Confirmation returns the confirmation awaiting acknowledgment, if any.
func (f *Flow) Confirmation() (*domain.Confirmation, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.confirmed, f.confirmed != nil
}

// ApplyPromo records a promo code for the current session. Unknown codes are
// rejected and the previous code stays in effect.
func (f *Flow) ApplyPromo(code string) error {
	if !f.calc.KnownPromo(code) {
		return domain.ErrUnknownPromo
	}
	f.mu.Lock()
	f.promo = code
	f.mu.Unlock()
	f.logger.Info("promo applied", zap.String("code", code))
	return nil
}

// Summary prices the current cart with any applied promo.
func (f *Flow) Summary() pricing.Summary {
	f.mu.Lock()
	promo := f.promo
	f.mu.Unlock()

	s, _ := f.calc.SummarizeWithPromo(f.cart.Items(), promo)
	return s
}

// Begin opens the checkout. An empty cart is rejected.
func (f *Flow) Begin() (pricing.Summary, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.state != StateIdle {
		return pricing.Summary{}, fmt.Errorf("%w: begin from %s", domain.ErrInvalidTransition, f.state)
	}
	items := f.cart.Items()
	if len(items) == 0 {
		return pricing.Summary{}, domain.ErrEmptyCart
	}

	f.state = StateOpen
	s, _ := f.calc.SummarizeWithPromo(items, f.promo)
	return s, nil
}

// Cancel abandons an open checkout. Cart and form inputs are untouched.
func (f *Flow) Cancel() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.state != StateOpen {
		return fmt.Errorf("%w: cancel from %s", domain.ErrInvalidTransition, f.state)
	}
	f.state = StateIdle
	f.metrics.IncCheckout("cancelled")
	return nil
}

// Submit validates the customer fields and places the order. Validation
// failure returns to the open form; the cart is never touched here.
func (f *Flow) Submit(ctx context.Context, customer domain.Customer) (*domain.Confirmation, error) {
	f.mu.Lock()
	if f.state != StateOpen {
		f.mu.Unlock()
		return nil, fmt.Errorf("%w: submit from %s", domain.ErrInvalidTransition, f.state)
	}
	f.state = StateSubmitting
	promo := f.promo
	f.mu.Unlock()

	if verr := validateCustomer(customer); verr != nil {
		f.toState(StateOpen)
		f.metrics.IncCheckout("validation_failed")
		f.logger.Info("checkout validation failed", zap.Strings("fields", verr.Fields))
		return nil, verr
	}

	items := f.cart.Items()
	summary, _ := f.calc.SummarizeWithPromo(items, promo)

	order := &domain.Order{
		ID:       uuid.NewString(),
		Number:   f.orderNumber(),
		Customer: customer,
		Items:    items,
		Total:    summary.Total,
		PlacedAt: time.Now(),
	}

	receipt, err := f.submitter.SubmitOrder(ctx, order)
	if err != nil {
		f.toState(StateOpen)
		f.metrics.IncCheckout("submit_failed")
		f.logger.Error("order submission failed", zap.String("order_number", order.Number), zap.Error(err))
		return nil, err
	}

	conf := &domain.Confirmation{
		OrderNumber: order.Number,
		Total:       order.Total,
		Items:       order.Items,
	}

	f.mu.Lock()
	f.state = StateConfirmed
	f.confirmed = conf
	f.mu.Unlock()

	f.history.Add(*conf)
	f.metrics.IncCheckout("confirmed")
	f.logger.Info("order placed",
		zap.String("order_id", order.ID),
		zap.String("order_number", order.Number),
		zap.String("receipt_id", receipt.OrderID),
		zap.Float64("total", pricing.Round2(order.Total)),
	)
	return conf, nil
}

// Acknowledge dismisses the confirmation. Only now is the cart cleared.
func (f *Flow) Acknowledge() error {
	f.mu.Lock()
	if f.state != StateConfirmed {
		f.mu.Unlock()
		return fmt.Errorf("%w: acknowledge from %s", domain.ErrInvalidTransition, f.state)
	}
	f.state = StateIdle
	f.confirmed = nil
	f.promo = ""
	f.mu.Unlock()

	f.cart.Clear()
	return nil
}

func (f *Flow) toState(s State) {
	f.mu.Lock()
	f.state = s
	f.mu.Unlock()
}

// orderNumber is a display token like the site always showed: "#" plus a
// random number below 100000. Uniqueness comes from Order.ID, not this.
func (f *Flow) orderNumber() string {
	f.mu.Lock()
	n := f.rng.Intn(100000)
	f.mu.Unlock()
	return fmt.Sprintf("#%d", n)
}
