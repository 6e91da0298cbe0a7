package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/pvhao2002/smart-health-sub000/internal/api"
	"github.com/pvhao2002/smart-health-sub000/internal/model"
)

type PaymentService struct {
	API *api.Client
	Log *slog.Logger

	// RetryDelay sits between the two cancellation attempts.
	RetryDelay time.Duration
}

func NewPaymentService(c *api.Client, log *slog.Logger) *PaymentService {
	return &PaymentService{API: c, Log: log, RetryDelay: 2 * time.Second}
}

// Process asks the backend for a gateway redirect URL for the order.
func (s *PaymentService) Process(ctx context.Context, orderID int64, amount float64, method string) (string, error) {
	req := model.PaymentRequest{OrderID: orderID, Amount: amount, PaymentMethod: method}

	var resp model.PaymentResponse
	if err := s.API.Post(ctx, "/payment/process", req, &resp); err != nil {
		return "", err
	}
	if resp.PaymentURL == "" {
		return "", errors.New("create payment failed: missing payment url")
	}
	return resp.PaymentURL, nil
}

// Cancel is best-effort cleanup after an abandoned gateway session: one
// retry after a short delay, then a warning so orphaned unpaid orders at
// least show up in the logs. Never fatal to the caller.
func (s *PaymentService) Cancel(ctx context.Context, orderID int64) {
	path := fmt.Sprintf("/payment/cancel/%d", orderID)

	err := s.API.Get(ctx, path, nil)
	if err == nil {
		return
	}
	s.Log.Warn("payment cancel failed, retrying", "orderId", orderID, "err", err)

	select {
	case <-ctx.Done():
		s.Log.Warn("payment cancel abandoned", "orderId", orderID, "err", ctx.Err())
		return
	case <-time.After(s.RetryDelay):
	}

	if err := s.API.Get(ctx, path, nil); err != nil {
		s.Log.Warn("payment cancel failed after retry, order may remain unpaid", "orderId", orderID, "err", err)
	}
}
