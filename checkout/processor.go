// Package checkout turns a cart into a paid, shipped order.
//
// A checkout validates the whole cart before touching anything: expired
// products, stock and the customer's balance are all read-only checks.
// Only when every check passes are the stock reduced and the balance
// debited, so a rejected checkout leaves customer and products unchanged.
package checkout

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"shop/cart"
	"shop/customer"
	"shop/errs"
	"shop/receipt"
	"shop/shipping"
)

const (
	ErrMsgCustomerRequired = "Customer is required"
	ErrMsgCartRequired     = "Cart is required"
)

// ResultCommitFailed labels a checkout that passed its checks but could
// not be committed, for example when another processor sold the stock.
const ResultCommitFailed = "commit_failed"

// Recorder observes checkout outcomes.
type Recorder interface {
	Completed(amount float64, shippedUnits int)
	Rejected(reason string)
}

type nopRecorder struct{}

func (nopRecorder) Completed(float64, int) {}
func (nopRecorder) Rejected(string)        {}

// Processor runs checkouts one at a time. Stock and balances are shared
// mutable state, so each checkout holds the processor lock from its first
// read to its last write.
type Processor struct {
	mu       sync.Mutex
	fees     shipping.FeePolicy
	notifier shipping.Notifier
	recorder Recorder
	logger   *zap.Logger
	newID    func() uuid.UUID
	now      func() time.Time
}

type Option func(*Processor)

func WithFeePolicy(policy shipping.FeePolicy) Option {
	return func(p *Processor) { p.fees = policy }
}

func WithNotifier(n shipping.Notifier) Option {
	return func(p *Processor) { p.notifier = n }
}

func WithRecorder(r Recorder) Option {
	return func(p *Processor) { p.recorder = r }
}

func WithLogger(logger *zap.Logger) Option {
	return func(p *Processor) { p.logger = logger }
}

func WithIDGenerator(gen func() uuid.UUID) Option {
	return func(p *Processor) { p.newID = gen }
}

func WithClock(now func() time.Time) Option {
	return func(p *Processor) { p.now = now }
}

// NewProcessor defaults to the per-unit shipping fee, no notifier, no
// metrics and a no-op logger.
func NewProcessor(opts ...Option) *Processor {
	p := &Processor{
		fees:     shipping.PerUnit{Rate: shipping.DefaultRate},
		recorder: nopRecorder{},
		newID:    uuid.New,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.logger == nil {
		p.logger = zap.NewNop()
	}
	return p
}

// Checkout validates the cart against stock and the customer's balance,
// charges the customer, reduces stock and returns the receipt.
func (p *Processor) Checkout(c *customer.Customer, crt *cart.Cart) (*receipt.Receipt, error) {
	if c == nil {
		return nil, errs.NewInvalidArgument(ErrMsgCustomerRequired)
	}
	if crt == nil {
		return nil, errs.NewInvalidArgument(ErrMsgCartRequired)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	logger := p.logger.With(zap.String("customer", c.Name))

	o, err := p.price(c, crt)
	if err != nil {
		reason := errs.ReasonOf(err)
		logger.Warn("checkout rejected",
			zap.String("reason", reason.String()),
			zap.Error(err))
		p.recorder.Rejected(reason.String())
		return nil, err
	}

	if err := p.settle(logger, c, o); err != nil {
		return nil, err
	}

	if o.notice != nil && p.notifier != nil {
		if err := p.notifier.Notify(o.notice); err != nil {
			logger.Warn("shipment notice failed", zap.Error(err))
		}
	}

	r := p.receipt(c, o)
	logger.Info("checkout completed",
		zap.String("receipt_id", r.ID.String()),
		zap.String("subtotal", r.Subtotal.String()),
		zap.String("shipping", r.Shipping.String()),
		zap.String("total", r.Total.String()),
		zap.String("balance", r.BalanceAfter.String()))
	p.recorder.Completed(o.total.InexactFloat64(), len(o.units))
	return r, nil
}

// settle commits a priced order. A failed commit has been rolled back by
// the time it is logged and recorded.
func (p *Processor) settle(logger *zap.Logger, c *customer.Customer, o *order) error {
	if err := p.commit(c, o); err != nil {
		logger.Error("checkout commit failed",
			zap.String("reason", errs.ReasonOf(err).String()),
			zap.Error(err))
		p.recorder.Rejected(ResultCommitFailed)
		return err
	}
	return nil
}

func (p *Processor) receipt(c *customer.Customer, o *order) *receipt.Receipt {
	lines := make([]receipt.Line, 0, len(o.lines))
	for _, l := range o.lines {
		lines = append(lines, receipt.Line{
			Quantity: l.Quantity,
			Name:     l.Product.Name,
			Total:    l.Total(),
		})
	}
	return &receipt.Receipt{
		ID:           p.newID(),
		Customer:     c.Name,
		Lines:        lines,
		Subtotal:     o.subtotal,
		Shipping:     o.shipping,
		Total:        o.total,
		BalanceAfter: c.Balance,
		Shipment:     o.notice,
		IssuedAt:     p.now(),
	}
}
