package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/mkhlv/HotelBooker/internal/domain"
	"github.com/mkhlv/HotelBooker/internal/handler/dto"
	"github.com/shopspring/decimal"
	"github.com/wb-go/wbf/ginext"
)

type HotelSvc interface {
	Create(ctx context.Context, input domain.CreateHotelInput) (*domain.Hotel, error)
	GetByID(ctx context.Context, id string) (*domain.Hotel, error)
	List(ctx context.Context, city string) ([]*domain.Hotel, error)
}

type RoomSvc interface {
	Create(ctx context.Context, input domain.CreateRoomInput) (*domain.Room, error)
	GetByID(ctx context.Context, id string) (*domain.Room, error)
	ListByHotel(ctx context.Context, hotelID string) ([]*domain.Room, error)
	SearchAvailable(ctx context.Context, filters domain.SearchFilters) ([]*domain.Room, error)
}

type BookingSvc interface {
	Create(ctx context.Context, input domain.CreateBookingInput) (*domain.Booking, error)
	Cancel(ctx context.Context, bookingID, actingUserID string) (*domain.Booking, error)
	Confirm(ctx context.Context, bookingID string) error
	Complete(ctx context.Context, bookingID string) error
	IsRoomAvailable(ctx context.Context, roomID string, checkIn, checkOut time.Time) (bool, error)
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.Booking, error)
	ListByRoom(ctx context.Context, roomID string) ([]*domain.Booking, error)
}

type UserSvc interface {
	Create(ctx context.Context, input domain.CreateUserInput) (*domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
}

type ReviewSvc interface {
	Create(ctx context.Context, input domain.CreateReviewInput) (*domain.Review, error)
	ListByHotel(ctx context.Context, hotelID string) ([]*domain.Review, error)
}

type Handler struct {
	hotelService   HotelSvc
	roomService    RoomSvc
	bookingService BookingSvc
	userService    UserSvc
	reviewService  ReviewSvc
}

func NewHandler(
	hotelService HotelSvc,
	roomService RoomSvc,
	bookingService BookingSvc,
	userService UserSvc,
	reviewService ReviewSvc,
) *Handler {
	return &Handler{
		hotelService:   hotelService,
		roomService:    roomService,
		bookingService: bookingService,
		userService:    userService,
		reviewService:  reviewService,
	}
}

// Hotels

func (h *Handler) CreateHotel(c *ginext.Context) {
	var req dto.CreateHotelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.CreateHotelInput{
		Name:        req.Name,
		Description: req.Description,
		Address:     req.Address,
		City:        req.City,
		State:       req.State,
		Country:     req.Country,
		PostalCode:  req.PostalCode,
		Phone:       req.Phone,
		Email:       req.Email,
		Amenities:   req.Amenities,
	}

	hotel, err := h.hotelService.Create(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToHotelResponse(hotel))
}

func (h *Handler) GetHotel(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid hotel id"})
		return
	}

	hotel, err := h.hotelService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToHotelResponse(hotel))
}

func (h *Handler) ListHotels(c *ginext.Context) {
	hotels, err := h.hotelService.List(c.Request.Context(), c.Query("city"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.HotelResponse, 0, len(hotels))
	for _, hotel := range hotels {
		resp = append(resp, dto.ToHotelResponse(hotel))
	}

	c.JSON(http.StatusOK, resp)
}

// Rooms

func (h *Handler) CreateRoom(c *ginext.Context) {
	var req dto.CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	price, err := decimal.NewFromString(req.PricePerNight)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid price_per_night"})
		return
	}

	input := domain.CreateRoomInput{
		HotelID:       req.HotelID,
		RoomNumber:    req.RoomNumber,
		RoomType:      domain.RoomType(req.RoomType),
		Description:   req.Description,
		PricePerNight: price,
		MaxOccupancy:  req.MaxOccupancy,
		Amenities:     req.Amenities,
		IsAvailable:   req.IsAvailable,
	}

	room, err := h.roomService.Create(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToRoomResponse(room))
}

func (h *Handler) GetRoom(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid room id"})
		return
	}

	room, err := h.roomService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToRoomResponse(room))
}

func (h *Handler) ListHotelRooms(c *ginext.Context) {
	hotelID := c.Param("id")
	if _, err := uuid.Parse(hotelID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid hotel id"})
		return
	}

	rooms, err := h.roomService.ListByHotel(c.Request.Context(), hotelID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.RoomResponse, 0, len(rooms))
	for _, r := range rooms {
		resp = append(resp, dto.ToRoomResponse(r))
	}

	c.JSON(http.StatusOK, resp)
}

// SearchRooms reads the filter set from query parameters; dates use the
// YYYY-MM-DD format, prices are decimal strings.
func (h *Handler) SearchRooms(c *ginext.Context) {
	filters := domain.SearchFilters{
		City:     c.Query("city"),
		RoomType: domain.RoomType(c.Query("room_type")),
	}

	if raw := c.Query("min_price"); raw != "" {
		v, err := decimal.NewFromString(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid min_price"})
			return
		}
		filters.MinPrice = &v
	}
	if raw := c.Query("max_price"); raw != "" {
		v, err := decimal.NewFromString(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid max_price"})
			return
		}
		filters.MaxPrice = &v
	}
	if raw := c.Query("guests"); raw != "" {
		guests, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid guests"})
			return
		}
		filters.Guests = guests
	}
	if raw := c.Query("check_in"); raw != "" {
		v, err := time.Parse(time.DateOnly, raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid check_in, expected YYYY-MM-DD"})
			return
		}
		filters.CheckIn = &v
	}
	if raw := c.Query("check_out"); raw != "" {
		v, err := time.Parse(time.DateOnly, raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid check_out, expected YYYY-MM-DD"})
			return
		}
		filters.CheckOut = &v
	}

	rooms, err := h.roomService.SearchAvailable(c.Request.Context(), filters)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.RoomResponse, 0, len(rooms))
	for _, r := range rooms {
		resp = append(resp, dto.ToRoomResponse(r))
	}

	c.JSON(http.StatusOK, resp)
}

// Bookings

func (h *Handler) CreateBooking(c *ginext.Context) {
	var req dto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	checkIn, err := time.Parse(time.DateOnly, req.CheckIn)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid check_in, expected YYYY-MM-DD"})
		return
	}
	checkOut, err := time.Parse(time.DateOnly, req.CheckOut)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid check_out, expected YYYY-MM-DD"})
		return
	}

	input := domain.CreateBookingInput{
		UserID:          req.UserID,
		RoomID:          req.RoomID,
		CheckIn:         checkIn,
		CheckOut:        checkOut,
		Guests:          req.Guests,
		SpecialRequests: req.SpecialRequests,
	}
	if req.TotalPrice != nil {
		total, err := decimal.NewFromString(*req.TotalPrice)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid total_price"})
			return
		}
		input.TotalPrice = &total
	}

	booking, err := h.bookingService.Create(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToBookingResponse(booking))
}

func (h *Handler) GetBooking(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid booking id"})
		return
	}

	booking, err := h.bookingService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *Handler) CancelBooking(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid booking id"})
		return
	}

	var req dto.CancelBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	booking, err := h.bookingService.Cancel(c.Request.Context(), id, req.UserID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *Handler) ConfirmBooking(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid booking id"})
		return
	}

	if err := h.bookingService.Confirm(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "confirmed"})
}

func (h *Handler) CompleteBooking(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid booking id"})
		return
	}

	if err := h.bookingService.Complete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "completed"})
}

func (h *Handler) GetUserBookings(c *ginext.Context) {
	userID := c.Param("id")
	if _, err := uuid.Parse(userID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid user id"})
		return
	}

	bookings, err := h.bookingService.ListByUser(c.Request.Context(), userID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		resp = append(resp, dto.ToBookingResponse(b))
	}

	c.JSON(http.StatusOK, resp)
}

// GetRoomAvailability answers whether the room is free for the half-open
// date range in the check_in / check_out query parameters.
func (h *Handler) GetRoomAvailability(c *ginext.Context) {
	roomID := c.Param("id")
	if _, err := uuid.Parse(roomID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid room id"})
		return
	}

	checkIn, err := time.Parse(time.DateOnly, c.Query("check_in"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid check_in, expected YYYY-MM-DD"})
		return
	}
	checkOut, err := time.Parse(time.DateOnly, c.Query("check_out"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid check_out, expected YYYY-MM-DD"})
		return
	}

	available, err := h.bookingService.IsRoomAvailable(c.Request.Context(), roomID, checkIn, checkOut)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"available": available})
}

func (h *Handler) GetRoomBookings(c *ginext.Context) {
	roomID := c.Param("id")
	if _, err := uuid.Parse(roomID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid room id"})
		return
	}

	bookings, err := h.bookingService.ListByRoom(c.Request.Context(), roomID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		resp = append(resp, dto.ToBookingResponse(b))
	}

	c.JSON(http.StatusOK, resp)
}

// Users

func (h *Handler) CreateUser(c *ginext.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	user, err := h.userService.Create(c.Request.Context(), domain.CreateUserInput{
		Email:          req.Email,
		Name:           req.Name,
		TelegramChatID: req.TelegramChatID,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToUserResponse(user))
}

func (h *Handler) GetUser(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid user id"})
		return
	}

	user, err := h.userService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

func (h *Handler) ListUsers(c *ginext.Context) {
	if email := c.Query("email"); email != "" {
		user, err := h.userService.GetByEmail(c.Request.Context(), email)
		if err != nil {
			h.handleError(c, err)
			return
		}
		c.JSON(http.StatusOK, []dto.UserResponse{dto.ToUserResponse(user)})
		return
	}

	users, err := h.userService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		resp = append(resp, dto.ToUserResponse(u))
	}

	c.JSON(http.StatusOK, resp)
}

// Reviews

func (h *Handler) CreateReview(c *ginext.Context) {
	var req dto.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	review, err := h.reviewService.Create(c.Request.Context(), domain.CreateReviewInput{
		UserID:    req.UserID,
		BookingID: req.BookingID,
		Rating:    req.Rating,
		Comment:   req.Comment,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToReviewResponse(review))
}

func (h *Handler) ListHotelReviews(c *ginext.Context) {
	hotelID := c.Param("id")
	if _, err := uuid.Parse(hotelID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid hotel id"})
		return
	}

	reviews, err := h.reviewService.ListByHotel(c.Request.Context(), hotelID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.ReviewResponse, 0, len(reviews))
	for _, r := range reviews {
		resp = append(resp, dto.ToReviewResponse(r))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrHotelNotFound),
		errors.Is(err, domain.ErrRoomNotFound),
		errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrBookingNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrRoomUnavailable),
		errors.Is(err, domain.ErrInvalidTransition),
		errors.Is(err, domain.ErrReviewExists),
		errors.Is(err, domain.ErrBookingNotCompleted),
		errors.Is(err, domain.ErrEmailTaken):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrForbidden):
		c.JSON(http.StatusForbidden, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidDateRange):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
