package services

import (
	"context"
	"fmt"
	"net/http"

	"github.com/pvhao2002/smart-health-sub000/internal/api"
	"github.com/pvhao2002/smart-health-sub000/internal/model"
)

type OrderService struct {
	API *api.Client
}

func NewOrderService(c *api.Client) *OrderService {
	return &OrderService{API: c}
}

// Create posts the order. idempotencyKey is generated per checkout
// attempt so a resubmit after a transient failure cannot create a
// duplicate order server-side.
func (s *OrderService) Create(ctx context.Context, req model.CreateOrderRequest, idempotencyKey string) (*model.Order, error) {
	headers := map[string]string{"Idempotency-Key": idempotencyKey}

	var order model.Order
	if err := s.API.Do(ctx, http.MethodPost, "/orders", headers, req, &order); err != nil {
		return nil, err
	}
	if order.ID == 0 {
		return nil, fmt.Errorf("order response missing id")
	}
	return &order, nil
}

func (s *OrderService) Get(ctx context.Context, id int64) (*model.Order, error) {
	var order model.Order
	if err := s.API.Get(ctx, fmt.Sprintf("/orders/%d", id), &order); err != nil {
		return nil, err
	}
	return &order, nil
}

func (s *OrderService) History(ctx context.Context) ([]model.Order, error) {
	var orders []model.Order
	if err := s.API.Get(ctx, "/orders/history", &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// HistoryByStatus filters client-side; the history endpoint has no
// status parameter.
func (s *OrderService) HistoryByStatus(ctx context.Context, status string) ([]model.Order, error) {
	orders, err := s.History(ctx)
	if err != nil {
		return nil, err
	}
	if status == "" {
		return orders, nil
	}
	kept := orders[:0]
	for _, o := range orders {
		if o.Status == status {
			kept = append(kept, o)
		}
	}
	return kept, nil
}
