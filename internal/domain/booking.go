package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
	BookingStatusCompleted BookingStatus = "completed"
)

var ActiveStatuses = []BookingStatus{BookingStatusPending, BookingStatusConfirmed}

// cancelled и completed — терминальные статусы, из них переходов нет.
var transitions = map[BookingStatus][]BookingStatus{
	BookingStatusPending:   {BookingStatusConfirmed, BookingStatusCancelled},
	BookingStatusConfirmed: {BookingStatusCancelled, BookingStatusCompleted},
}

func (s BookingStatus) CanTransition(to BookingStatus) bool {
	for _, next := range transitions[s] {
		if next == to {
			return true
		}
	}
	return false
}

// IsActive reports whether the booking occupies its date range for
// availability purposes.
func (s BookingStatus) IsActive() bool {
	return s == BookingStatusPending || s == BookingStatusConfirmed
}

type Booking struct {
	ID              string          `json:"id"`
	UserID          string          `json:"user_id"`
	RoomID          string          `json:"room_id"`
	CheckIn         time.Time       `json:"check_in"`
	CheckOut        time.Time       `json:"check_out"`
	Guests          int             `json:"guests"`
	TotalPrice      decimal.Decimal `json:"total_price"`
	Status          BookingStatus   `json:"status"`
	SpecialRequests string          `json:"special_requests,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// Transition moves the booking to the next status or fails with
// ErrInvalidTransition when the state machine forbids the edge.
func (b *Booking) Transition(to BookingStatus) error {
	if !b.Status.CanTransition(to) {
		return ErrInvalidTransition
	}
	b.Status = to
	return nil
}

type CreateBookingInput struct {
	UserID          string
	RoomID          string
	CheckIn         time.Time
	CheckOut        time.Time
	Guests          int
	TotalPrice      *decimal.Decimal
	SpecialRequests string
}
