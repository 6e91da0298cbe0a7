package model

// PaymentRequest is the body for POST /payment/process.
type PaymentRequest struct {
	OrderID       int64   `json:"orderId"`
	Amount        float64 `json:"amount"`
	PaymentMethod string  `json:"paymentMethod"`
}

// PaymentResponse carries the gateway redirect URL for online payments.
type PaymentResponse struct {
	PaymentURL string `json:"paymentUrl"`
}
