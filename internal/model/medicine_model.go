package model

// Medicine is a catalog product.
type Medicine struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price"`
	Image       string  `json:"image,omitempty"`
	Stock       int     `json:"stock"`
	CategoryID  int64   `json:"categoryId,omitempty"`
}

type Category struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// MedicinePage is one page of GET /products.
type MedicinePage struct {
	Content       []Medicine `json:"content"`
	Page          int        `json:"page"`
	Size          int        `json:"size"`
	TotalElements int64      `json:"totalElements"`
	TotalPages    int        `json:"totalPages"`
}
