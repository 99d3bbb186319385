package domain

// Product is a catalog item. Article is the externally visible identifier.
type Product struct {
	Article   int64   `json:"article"`
	Name      string  `json:"name"`
	StoreName string  `json:"store_name,omitempty"`
	Category  string  `json:"category,omitempty"`
	Price     float64 `json:"price"`
	Stock     int     `json:"stock"`
	Released  bool    `json:"released"`
}

type Category struct {
	ID        int64  `json:"category_id"`
	StoreName string `json:"store_name"`
	Category  string `json:"category"`
}

// ProductFilter narrows ListProducts. Zero value lists all released products.
type ProductFilter struct {
	Category string
}
