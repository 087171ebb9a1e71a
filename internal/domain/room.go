package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type RoomType string

const (
	RoomTypeSingle RoomType = "single"
	RoomTypeDouble RoomType = "double"
	RoomTypeSuite  RoomType = "suite"
	RoomTypeDeluxe RoomType = "deluxe"
	RoomTypeFamily RoomType = "family"
)

func (t RoomType) Valid() bool {
	switch t {
	case RoomTypeSingle, RoomTypeDouble, RoomTypeSuite, RoomTypeDeluxe, RoomTypeFamily:
		return true
	}
	return false
}

type Room struct {
	ID            string          `json:"id"`
	HotelID       string          `json:"hotel_id"`
	RoomNumber    string          `json:"room_number"`
	RoomType      RoomType        `json:"room_type"`
	Description   string          `json:"description"`
	PricePerNight decimal.Decimal `json:"price_per_night"`
	MaxOccupancy  int             `json:"max_occupancy"`
	Amenities     string          `json:"amenities"`
	IsAvailable   bool            `json:"is_available"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

type CreateRoomInput struct {
	HotelID       string
	RoomNumber    string
	RoomType      RoomType
	Description   string
	PricePerNight decimal.Decimal
	MaxOccupancy  int
	Amenities     string
	IsAvailable   *bool
}

// SearchFilters is the conjunction of predicates for the availability
// search. Nil / zero fields are not applied.
type SearchFilters struct {
	City     string
	RoomType RoomType
	MinPrice *decimal.Decimal
	MaxPrice *decimal.Decimal
	Guests   int
	CheckIn  *time.Time
	CheckOut *time.Time
}

func (f SearchFilters) HasDates() bool {
	return f.CheckIn != nil && f.CheckOut != nil
}
