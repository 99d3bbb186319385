package domain

// CartLine is a cart entry joined with product data.
type CartLine struct {
	Article  int64   `json:"article"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

type AddToCartRequest struct {
	Article  *int64 `json:"article"`
	Quantity *int   `json:"quantity"`
}
