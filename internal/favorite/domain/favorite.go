package domain

import "time"

// FavoriteProduct is a favorites entry joined with catalog data.
type FavoriteProduct struct {
	Article  int64   `json:"article"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Category string  `json:"category"`
}

// FavoriteEntry is the profile view: the raw entry plus product name.
type FavoriteEntry struct {
	ProductName string    `json:"product_name"`
	Article     int64     `json:"article"`
	AddedDate   time.Time `json:"added_date"`
}

type AddFavoriteRequest struct {
	Article *int64 `json:"article"`
}
