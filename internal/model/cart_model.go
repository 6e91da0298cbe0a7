package model

// CartItem is one line of the locally persisted cart.
// At most one entry exists per MedicineID; merging happens on add.
type CartItem struct {
	MedicineID int64   `json:"medicineId"`
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
	Image      string  `json:"image,omitempty"`
	Quantity   int     `json:"quantity"`
}

// Subtotal is the line total for this item.
func (it CartItem) Subtotal() float64 {
	return it.Price * float64(it.Quantity)
}
