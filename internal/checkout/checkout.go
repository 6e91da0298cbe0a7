package checkout

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/pvhao2002/smart-health-sub000/internal/model"
	"github.com/pvhao2002/smart-health-sub000/internal/services"
	"github.com/pvhao2002/smart-health-sub000/internal/store"
)

// Status of a checkout attempt.
type Status string

const (
	StatusIdle                 Status = "idle"
	StatusCreatingOrder        Status = "creating_order"
	StatusRequestingPaymentURL Status = "requesting_payment_url"
	StatusAwaitingReturn       Status = "awaiting_return"
	StatusCompleted            Status = "completed"
	StatusFailed               Status = "failed"
)

type StepStatus string

const (
	StepPending   StepStatus = "pending"
	StepCompleted StepStatus = "completed"
	StepFailed    StepStatus = "failed"
)

// Target is where the caller should land after the attempt.
type Target string

const (
	TargetNone          Target = ""
	TargetOrderHistory  Target = "order-history"
	TargetPaymentResult Target = "payment-result"
)

// Payment outcomes reported on the result screen.
const (
	PaymentStatusSuccess = "success"
	PaymentStatusFail    = "fail"
)

var (
	ErrBusy        = errors.New("a checkout is already in progress")
	ErrMissingInfo = errors.New("please fill all required fields")
	ErrEmptyCart   = errors.New("cart is empty")
)

// ReturnListener receives the gateway's return redirect. ReturnURL builds
// the return URL the gateway sends the user back to; Await blocks until
// that redirect arrives for the given state or ctx expires.
type ReturnListener interface {
	ReturnURL(state, method string, orderID int64) string
	Await(ctx context.Context, state string) (orderID int64, success bool, err error)
}

// Request is what the user submits from the checkout form.
type Request struct {
	ShippingAddress string
	Phone           string
	PaymentMethod   string
}

type Step struct {
	Name   string
	Status StepStatus
	Err    error
}

// Attempt records one pass through the state machine. Its ID doubles as
// the Idempotency-Key on order creation and the callback state param.
type Attempt struct {
	ID        string
	Status    Status
	Steps     []Step
	OrderID   int64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Result is the reconciled outcome of a completed attempt.
type Result struct {
	OrderID       int64
	Target        Target
	PaymentStatus string
	Attempt       *Attempt
}

// clone copies the attempt including its steps so callers never hold a
// pointer into state mutated under the flow lock.
func (a *Attempt) clone() *Attempt {
	c := *a
	c.Steps = append([]Step(nil), a.Steps...)
	return &c
}

// Flow converts the current cart into a server-side order, optionally
// drives the gateway redirect, and reconciles the cart with the outcome.
type Flow struct {
	Cart     *store.CartStore
	Orders   *services.OrderService
	Payments *services.PaymentService
	Returns  ReturnListener
	Log      *slog.Logger

	// OpenURL hands the payment URL to the user (browser open or plain
	// print); nil just logs it.
	OpenURL func(url string) error

	// WaitTimeout bounds how long Await may block on the gateway return.
	WaitTimeout time.Duration

	mu   sync.Mutex
	busy bool

	amu      sync.RWMutex
	attempts map[string]*Attempt
}

func NewFlow(cart *store.CartStore, orders *services.OrderService, payments *services.PaymentService, returns ReturnListener, log *slog.Logger) *Flow {
	return &Flow{
		Cart:        cart,
		Orders:      orders,
		Payments:    payments,
		Returns:     returns,
		Log:         log,
		WaitTimeout: 5 * time.Minute,
		attempts:    make(map[string]*Attempt),
	}
}

// Submit runs one checkout attempt. Only one attempt may be in flight per
// Flow, mirroring the disabled submit button while loading.
func (f *Flow) Submit(ctx context.Context, req Request) (*Result, error) {
	f.mu.Lock()
	if f.busy {
		f.mu.Unlock()
		return nil, ErrBusy
	}
	f.busy = true
	f.mu.Unlock()
	defer func() {
		f.mu.Lock()
		f.busy = false
		f.mu.Unlock()
	}()

	// Validation happens before any network call.
	if req.ShippingAddress == "" || req.Phone == "" {
		return nil, ErrMissingInfo
	}
	items := f.Cart.Items()
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}
	if req.PaymentMethod != model.PaymentMethodCOD && req.PaymentMethod != model.PaymentMethodVNPay {
		return nil, fmt.Errorf("unsupported payment method: %s", req.PaymentMethod)
	}

	attempt := f.newAttempt()
	return f.run(ctx, attempt, req, items)
}

func (f *Flow) run(ctx context.Context, attempt *Attempt, req Request, items []model.CartItem) (*Result, error) {
	orderReq := model.CreateOrderRequest{
		Items:           make([]model.OrderItem, 0, len(items)),
		ShippingAddress: req.ShippingAddress,
		PaymentMethod:   req.PaymentMethod,
		Phone:           req.Phone,
	}
	for _, it := range items {
		orderReq.Items = append(orderReq.Items, model.OrderItem{MedicineID: it.MedicineID, Quantity: it.Quantity})
	}

	f.setStatus(attempt, StatusCreatingOrder)
	order, err := f.Orders.Create(ctx, orderReq, attempt.ID)
	if err != nil {
		// Cart stays untouched; the user may resubmit as a new attempt.
		f.failStep(attempt, "create_order", err)
		return nil, fmt.Errorf("create order: %w", err)
	}
	f.completeStep(attempt, "create_order")
	attempt.OrderID = order.ID

	if req.PaymentMethod == model.PaymentMethodCOD {
		f.Cart.ClearCart()
		f.setStatus(attempt, StatusCompleted)
		f.Log.Info("order placed", "orderId", order.ID, "method", req.PaymentMethod)
		return &Result{
			OrderID:       order.ID,
			Target:        TargetOrderHistory,
			PaymentStatus: PaymentStatusSuccess,
			Attempt:       f.snapshot(attempt),
		}, nil
	}

	f.setStatus(attempt, StatusRequestingPaymentURL)
	payURL, err := f.Payments.Process(ctx, order.ID, order.Total, req.PaymentMethod)
	if err != nil {
		// Order remains created but unpaid server-side.
		f.failStep(attempt, "request_payment_url", err)
		return nil, fmt.Errorf("process payment: %w", err)
	}
	f.completeStep(attempt, "request_payment_url")

	f.setStatus(attempt, StatusAwaitingReturn)
	returnURL := f.Returns.ReturnURL(attempt.ID, req.PaymentMethod, order.ID)
	f.openPaymentURL(payURL, returnURL)

	waitCtx, cancel := context.WithTimeout(ctx, f.WaitTimeout)
	defer cancel()

	_, success, err := f.Returns.Await(waitCtx, attempt.ID)
	if err != nil || !success {
		// Abandoned or declined gateway session: best-effort cancel, and
		// the cart is intentionally left intact so the user can retry.
		f.completeStep(attempt, "await_return")
		f.Payments.Cancel(ctx, order.ID)
		f.setStatus(attempt, StatusCompleted)
		f.Log.Info("payment not completed", "orderId", order.ID, "err", err)
		return &Result{
			OrderID:       order.ID,
			Target:        TargetPaymentResult,
			PaymentStatus: PaymentStatusFail,
			Attempt:       f.snapshot(attempt),
		}, nil
	}

	f.completeStep(attempt, "await_return")
	f.Cart.ClearCart()
	f.setStatus(attempt, StatusCompleted)
	f.Log.Info("payment completed", "orderId", order.ID)
	return &Result{
		OrderID:       order.ID,
		Target:        TargetPaymentResult,
		PaymentStatus: PaymentStatusSuccess,
		Attempt:       f.snapshot(attempt),
	}, nil
}

func (f *Flow) snapshot(attempt *Attempt) *Attempt {
	f.amu.RLock()
	defer f.amu.RUnlock()
	return attempt.clone()
}

func (f *Flow) openPaymentURL(payURL, returnURL string) {
	if f.OpenURL != nil {
		if err := f.OpenURL(payURL); err == nil {
			return
		}
	}
	f.Log.Info("open this URL to pay", "url", payURL, "returnUrl", returnURL)
}

func (f *Flow) newAttempt() *Attempt {
	now := time.Now()
	attempt := &Attempt{
		ID:        uuid.NewString(),
		Status:    StatusIdle,
		CreatedAt: now,
		UpdatedAt: now,
	}
	f.amu.Lock()
	f.attempts[attempt.ID] = attempt
	f.amu.Unlock()
	return attempt
}

func (f *Flow) setStatus(attempt *Attempt, s Status) {
	f.amu.Lock()
	attempt.Status = s
	attempt.UpdatedAt = time.Now()
	f.amu.Unlock()
}

func (f *Flow) completeStep(attempt *Attempt, name string) {
	f.amu.Lock()
	attempt.Steps = append(attempt.Steps, Step{Name: name, Status: StepCompleted})
	attempt.UpdatedAt = time.Now()
	f.amu.Unlock()
}

func (f *Flow) failStep(attempt *Attempt, name string, err error) {
	f.amu.Lock()
	attempt.Steps = append(attempt.Steps, Step{Name: name, Status: StepFailed, Err: err})
	attempt.Status = StatusFailed
	attempt.UpdatedAt = time.Now()
	f.amu.Unlock()
}

// GetAttempt returns a snapshot of a past or in-flight attempt by id.
func (f *Flow) GetAttempt(id string) (*Attempt, error) {
	f.amu.RLock()
	defer f.amu.RUnlock()

	attempt, ok := f.attempts[id]
	if !ok {
		return nil, fmt.Errorf("checkout attempt not found: %s", id)
	}
	return attempt.clone(), nil
}

// Attempts lists snapshots of all recorded attempts.
func (f *Flow) Attempts() []*Attempt {
	f.amu.RLock()
	defer f.amu.RUnlock()

	out := make([]*Attempt, 0, len(f.attempts))
	for _, a := range f.attempts {
		out = append(out, a.clone())
	}
	return out
}
