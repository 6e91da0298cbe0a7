package callback

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"sync"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

// Result is one gateway return redirect.
type Result struct {
	OrderID int64
	Method  string
	Success bool
}

// Listener is the loopback replacement for the mobile deep link: the
// payment gateway redirects the browser back to it, and the waiting
// checkout attempt is matched by the state parameter.
type Listener struct {
	e    *echo.Echo
	port int
	log  *slog.Logger

	mu      sync.Mutex
	waiting map[string]chan Result
}

func New(port int, log *slog.Logger) *Listener {
	l := &Listener{
		port:    port,
		log:     log,
		waiting: make(map[string]chan Result),
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())
	e.GET("/payment/return", l.handleReturn)
	l.e = e

	return l
}

// Start serves in the background; ListenAndServe errors land in the log.
func (l *Listener) Start() {
	go func() {
		addr := fmt.Sprintf("127.0.0.1:%d", l.port)
		if err := l.e.Start(addr); err != nil && err != http.ErrServerClosed {
			l.log.Error("callback listener stopped", "err", err)
		}
	}()
}

func (l *Listener) Shutdown(ctx context.Context) error {
	return l.e.Shutdown(ctx)
}

// Handler exposes the echo mux for embedding and tests.
func (l *Listener) Handler() http.Handler {
	return l.e
}

// ReturnURL encodes {method, orderId} plus the correlation state, the
// same shape the app's deep link carried.
func (l *Listener) ReturnURL(state, method string, orderID int64) string {
	return fmt.Sprintf("http://127.0.0.1:%d/payment/return?state=%s&method=%s&orderId=%d",
		l.port, state, method, orderID)
}

// Await blocks until the redirect for state arrives or ctx expires.
func (l *Listener) Await(ctx context.Context, state string) (int64, bool, error) {
	ch := l.register(state)
	defer l.unregister(state)

	select {
	case <-ctx.Done():
		return 0, false, ctx.Err()
	case res := <-ch:
		return res.OrderID, res.Success, nil
	}
}

func (l *Listener) register(state string) chan Result {
	l.mu.Lock()
	defer l.mu.Unlock()

	ch := make(chan Result, 1)
	l.waiting[state] = ch
	return ch
}

func (l *Listener) unregister(state string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.waiting, state)
}

func (l *Listener) handleReturn(c echo.Context) error {
	state := c.QueryParam("state")
	if state == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "missing state"})
	}

	l.mu.Lock()
	ch, ok := l.waiting[state]
	l.mu.Unlock()
	if !ok {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "unknown payment session"})
	}

	orderID, _ := strconv.ParseInt(c.QueryParam("orderId"), 10, 64)
	res := Result{
		OrderID: orderID,
		Method:  c.QueryParam("method"),
		Success: isSuccess(c),
	}

	// Buffered channel; a duplicate redirect for the same state is dropped.
	select {
	case ch <- res:
	default:
	}

	if res.Success {
		return c.HTML(http.StatusOK, "<h3>Payment recorded. You can return to the app.</h3>")
	}
	return c.HTML(http.StatusOK, "<h3>Payment not completed. You can return to the app.</h3>")
}

// isSuccess accepts both the app's own status param and VNPAY's native
// response code ("00" means approved).
func isSuccess(c echo.Context) bool {
	if s := c.QueryParam("status"); s != "" {
		return s == "success"
	}
	return c.QueryParam("vnp_ResponseCode") == "00"
}
