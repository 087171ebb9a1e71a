package dto

type CreateHotelRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Address     string `json:"address"`
	City        string `json:"city" binding:"required"`
	State       string `json:"state"`
	Country     string `json:"country"`
	PostalCode  string `json:"postal_code"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	Amenities   string `json:"amenities"`
}

type CreateRoomRequest struct {
	HotelID       string `json:"hotel_id" binding:"required,uuid"`
	RoomNumber    string `json:"room_number" binding:"required"`
	RoomType      string `json:"room_type" binding:"required"`
	Description   string `json:"description"`
	PricePerNight string `json:"price_per_night" binding:"required"`
	MaxOccupancy  int    `json:"max_occupancy" binding:"required,gt=0"`
	Amenities     string `json:"amenities"`
	IsAvailable   *bool  `json:"is_available"`
}

type CreateBookingRequest struct {
	UserID          string  `json:"user_id" binding:"required,uuid"`
	RoomID          string  `json:"room_id" binding:"required,uuid"`
	CheckIn         string  `json:"check_in" binding:"required"`
	CheckOut        string  `json:"check_out" binding:"required"`
	Guests          int     `json:"guests" binding:"required,gt=0"`
	TotalPrice      *string `json:"total_price"`
	SpecialRequests string  `json:"special_requests"`
}

type CancelBookingRequest struct {
	UserID string `json:"user_id" binding:"required,uuid"`
}

type CreateUserRequest struct {
	Email          string `json:"email" binding:"required,email"`
	Name           string `json:"name" binding:"required"`
	TelegramChatID *int64 `json:"telegram_chat_id"`
}

type CreateReviewRequest struct {
	UserID    string `json:"user_id" binding:"required,uuid"`
	BookingID string `json:"booking_id" binding:"required,uuid"`
	Rating    int    `json:"rating" binding:"required"`
	Comment   string `json:"comment" binding:"required"`
}
