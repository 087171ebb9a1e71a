package dto

import (
	"time"

	"github.com/mkhlv/HotelBooker/internal/domain"
)

type HotelResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Address     string `json:"address"`
	City        string `json:"city"`
	State       string `json:"state"`
	Country     string `json:"country"`
	PostalCode  string `json:"postal_code"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	Rating      string `json:"rating"`
	Amenities   string `json:"amenities"`
	CreatedAt   string `json:"created_at"`
}

type RoomResponse struct {
	ID            string `json:"id"`
	HotelID       string `json:"hotel_id"`
	RoomNumber    string `json:"room_number"`
	RoomType      string `json:"room_type"`
	Description   string `json:"description"`
	PricePerNight string `json:"price_per_night"`
	MaxOccupancy  int    `json:"max_occupancy"`
	Amenities     string `json:"amenities"`
	IsAvailable   bool   `json:"is_available"`
}

type BookingResponse struct {
	ID              string `json:"id"`
	UserID          string `json:"user_id"`
	RoomID          string `json:"room_id"`
	CheckIn         string `json:"check_in"`
	CheckOut        string `json:"check_out"`
	Guests          int    `json:"guests"`
	TotalPrice      string `json:"total_price"`
	Status          string `json:"status"`
	SpecialRequests string `json:"special_requests,omitempty"`
	CreatedAt       string `json:"created_at"`
}

type UserResponse struct {
	ID             string `json:"id"`
	Email          string `json:"email"`
	Name           string `json:"name"`
	TelegramChatID *int64 `json:"telegram_chat_id,omitempty"`
	CreatedAt      string `json:"created_at"`
}

type ReviewResponse struct {
	ID        string `json:"id"`
	UserID    string `json:"user_id"`
	HotelID   string `json:"hotel_id"`
	BookingID string `json:"booking_id"`
	Rating    int    `json:"rating"`
	Comment   string `json:"comment"`
	CreatedAt string `json:"created_at"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToHotelResponse(h *domain.Hotel) HotelResponse {
	return HotelResponse{
		ID:          h.ID,
		Name:        h.Name,
		Description: h.Description,
		Address:     h.Address,
		City:        h.City,
		State:       h.State,
		Country:     h.Country,
		PostalCode:  h.PostalCode,
		Phone:       h.Phone,
		Email:       h.Email,
		Rating:      h.Rating.StringFixed(2),
		Amenities:   h.Amenities,
		CreatedAt:   h.CreatedAt.Format(time.RFC3339),
	}
}

func ToRoomResponse(r *domain.Room) RoomResponse {
	return RoomResponse{
		ID:            r.ID,
		HotelID:       r.HotelID,
		RoomNumber:    r.RoomNumber,
		RoomType:      string(r.RoomType),
		Description:   r.Description,
		PricePerNight: r.PricePerNight.StringFixed(2),
		MaxOccupancy:  r.MaxOccupancy,
		Amenities:     r.Amenities,
		IsAvailable:   r.IsAvailable,
	}
}

func ToBookingResponse(b *domain.Booking) BookingResponse {
	return BookingResponse{
		ID:              b.ID,
		UserID:          b.UserID,
		RoomID:          b.RoomID,
		CheckIn:         b.CheckIn.Format(time.DateOnly),
		CheckOut:        b.CheckOut.Format(time.DateOnly),
		Guests:          b.Guests,
		TotalPrice:      b.TotalPrice.StringFixed(2),
		Status:          string(b.Status),
		SpecialRequests: b.SpecialRequests,
		CreatedAt:       b.CreatedAt.Format(time.RFC3339),
	}
}

func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:             u.ID,
		Email:          u.Email,
		Name:           u.Name,
		TelegramChatID: u.TelegramChatID,
		CreatedAt:      u.CreatedAt.Format(time.RFC3339),
	}
}

func ToReviewResponse(r *domain.Review) ReviewResponse {
	return ReviewResponse{
		ID:        r.ID,
		UserID:    r.UserID,
		HotelID:   r.HotelID,
		BookingID: r.BookingID,
		Rating:    r.Rating,
		Comment:   r.Comment,
		CreatedAt: r.CreatedAt.Format(time.RFC3339),
	}
}
