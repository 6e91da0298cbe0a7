package model

import "time"

// Payment methods accepted at checkout.
const (
	PaymentMethodCOD   = "COD"
	PaymentMethodVNPay = "VNPAY"
)

// OrderItem is a row of an order as the API exchanges it.
type OrderItem struct {
	MedicineID int64   `json:"medicineId"`
	Name       string  `json:"name,omitempty"`
	Quantity   int     `json:"quantity"`
	Price      float64 `json:"price,omitempty"`
}

// Order is the server-owned order projection the client reads back.
// Status transitions happen server-side; the client only observes them.
type Order struct {
	ID              int64       `json:"id"`
	Items           []OrderItem `json:"items,omitempty"`
	ShippingAddress string      `json:"shippingAddress,omitempty"`
	Phone           string      `json:"phone,omitempty"`
	PaymentMethod   string      `json:"paymentMethod,omitempty"`
	Total           float64     `json:"total"`
	Status          string      `json:"status,omitempty"`
	CreatedAt       *time.Time  `json:"createdAt,omitempty"`
}

// CreateOrderRequest is the body for POST /orders.
type CreateOrderRequest struct {
	Items           []OrderItem `json:"items"`
	ShippingAddress string      `json:"shippingAddress"`
	PaymentMethod   string      `json:"paymentMethod"`
	Phone           string      `json:"phone"`
}
