package domain

import "time"

type Review struct {
	Login      string    `json:"username"`
	Article    int64     `json:"-"`
	Text       string    `json:"review_text"`
	Rating     int       `json:"rating"`
	ReviewDate time.Time `json:"review_date"`
}

// UserReview is a review joined with the product it belongs to, for the
// profile view.
type UserReview struct {
	Text        string    `json:"review_text"`
	Rating      int       `json:"rating"`
	ReviewDate  time.Time `json:"review_date"`
	ProductName string    `json:"product_name"`
}

type AddReviewRequest struct {
	Review string `json:"review"`
	Rating *int   `json:"rating"`
}
