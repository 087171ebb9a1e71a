package domain

import "time"

// Review is bound one-to-one to a completed booking.
type Review struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	HotelID   string    `json:"hotel_id"`
	BookingID string    `json:"booking_id"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type CreateReviewInput struct {
	UserID    string
	BookingID string
	Rating    int
	Comment   string
}
