package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Hotel struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Address     string          `json:"address"`
	City        string          `json:"city"`
	State       string          `json:"state"`
	Country     string          `json:"country"`
	PostalCode  string          `json:"postal_code"`
	Phone       string          `json:"phone"`
	Email       string          `json:"email"`
	Rating      decimal.Decimal `json:"rating"`
	Amenities   string          `json:"amenities"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

type CreateHotelInput struct {
	Name        string
	Description string
	Address     string
	City        string
	State       string
	Country     string
	PostalCode  string
	Phone       string
	Email       string
	Amenities   string
}
