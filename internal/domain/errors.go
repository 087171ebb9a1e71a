package domain

import "errors"

var (
	ErrHotelNotFound   = errors.New("hotel not found")
	ErrRoomNotFound    = errors.New("room not found")
	ErrUserNotFound    = errors.New("user not found")
	ErrBookingNotFound = errors.New("booking not found")
)

var (
	ErrInvalidDateRange  = errors.New("check-out date must be after check-in date")
	ErrRoomUnavailable   = errors.New("room is not available for the selected dates")
	ErrInvalidTransition = errors.New("booking status transition is not allowed")
	ErrForbidden         = errors.New("booking belongs to another user")
)

var (
	ErrReviewExists        = errors.New("booking already has a review")
	ErrBookingNotCompleted = errors.New("booking is not completed")
)

var (
	ErrEmailTaken = errors.New("email is already registered")
)

var (
	ErrValidation = errors.New("validation error")
)
