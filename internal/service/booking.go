package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/mkhlv/HotelBooker/internal/domain"
	"github.com/mkhlv/HotelBooker/internal/service/ports"
	"github.com/shopspring/decimal"
	"github.com/wb-go/wbf/logger"
)

type BookingService struct {
	bookingRepo ports.BookingRepo
	roomRepo    ports.RoomRepo
	userRepo    ports.UserRepo
	notifier    ports.BookingNotifier
	logger      logger.Logger
}

func NewBookingService(
	bookingRepo ports.BookingRepo,
	roomRepo ports.RoomRepo,
	userRepo ports.UserRepo,
	notifier ports.BookingNotifier,
	logger logger.Logger,
) *BookingService {
	return &BookingService{
		bookingRepo: bookingRepo,
		roomRepo:    roomRepo,
		userRepo:    userRepo,
		notifier:    notifier,
		logger:      logger,
	}
}

// Create books a room for the half-open range [check_in, check_out). The
// total is derived from the nightly rate unless the input carries an
// explicit total (administrative override, stored as-is).
func (s *BookingService) Create(ctx context.Context, input domain.CreateBookingInput) (*domain.Booking, error) {
	checkIn := domain.ToDate(input.CheckIn)
	checkOut := domain.ToDate(input.CheckOut)
	if !checkIn.Before(checkOut) {
		return nil, domain.ErrInvalidDateRange
	}
	if input.Guests <= 0 {
		return nil, fmt.Errorf("%w: guests must be positive", domain.ErrValidation)
	}

	room, err := s.roomRepo.GetByID(ctx, input.RoomID)
	if err != nil {
		return nil, fmt.Errorf("check room: %w", err)
	}
	if !room.IsAvailable {
		return nil, domain.ErrRoomUnavailable
	}

	user, err := s.userRepo.GetByID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("check user: %w", err)
	}

	var total decimal.Decimal
	if input.TotalPrice != nil {
		total = *input.TotalPrice
	} else {
		total, err = domain.TotalPrice(room.PricePerNight, checkIn, checkOut)
		if err != nil {
			return nil, err
		}
	}

	now := time.Now().UTC()
	booking := &domain.Booking{
		ID:              uuid.New().String(),
		UserID:          user.ID,
		RoomID:          room.ID,
		CheckIn:         checkIn,
		CheckOut:        checkOut,
		Guests:          input.Guests,
		TotalPrice:      total,
		Status:          domain.BookingStatusPending,
		SpecialRequests: input.SpecialRequests,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err = s.bookingRepo.Create(ctx, booking); err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}

	s.logger.Info("booking created",
		logger.String("booking_id", booking.ID),
		logger.String("room_id", room.ID),
		logger.String("user_id", user.ID),
	)

	go s.notifier.NotifyBookingCreated(context.WithoutCancel(ctx), user, booking)

	return booking, nil
}

// Cancel releases the booked range. Only the owner may cancel, and only
// from pending or confirmed; cancelling twice is an invalid transition.
func (s *BookingService) Cancel(ctx context.Context, bookingID, actingUserID string) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}
	if booking.UserID != actingUserID {
		return nil, domain.ErrForbidden
	}

	from := booking.Status
	if err = booking.Transition(domain.BookingStatusCancelled); err != nil {
		return nil, err
	}

	if err = s.bookingRepo.UpdateStatus(ctx, bookingID, from, domain.BookingStatusCancelled); err != nil {
		return nil, fmt.Errorf("cancel booking: %w", err)
	}

	s.logger.Info("booking cancelled",
		logger.String("booking_id", booking.ID),
		logger.String("user_id", booking.UserID),
	)

	s.notifyAsync(ctx, booking, s.notifier.NotifyBookingCancelled)

	return booking, nil
}

// Confirm is the payment collaborator signal: pending -> confirmed.
func (s *BookingService) Confirm(ctx context.Context, bookingID string) error {
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return fmt.Errorf("get booking: %w", err)
	}

	from := booking.Status
	if err = booking.Transition(domain.BookingStatusConfirmed); err != nil {
		return err
	}

	if err = s.bookingRepo.UpdateStatus(ctx, bookingID, from, domain.BookingStatusConfirmed); err != nil {
		return fmt.Errorf("confirm booking: %w", err)
	}

	s.logger.Info("booking confirmed",
		logger.String("booking_id", booking.ID),
		logger.String("user_id", booking.UserID),
	)

	s.notifyAsync(ctx, booking, s.notifier.NotifyBookingConfirmed)

	return nil
}

// Complete is the scheduler signal once the stay is over: confirmed -> completed.
func (s *BookingService) Complete(ctx context.Context, bookingID string) error {
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return fmt.Errorf("get booking: %w", err)
	}

	from := booking.Status
	if err = booking.Transition(domain.BookingStatusCompleted); err != nil {
		return err
	}

	if err = s.bookingRepo.UpdateStatus(ctx, bookingID, from, domain.BookingStatusCompleted); err != nil {
		return fmt.Errorf("complete booking: %w", err)
	}

	s.logger.Info("booking completed",
		logger.String("booking_id", booking.ID),
	)

	return nil
}

// CompleteDeparted sweeps confirmed bookings whose check-out has passed.
func (s *BookingService) CompleteDeparted(ctx context.Context) ([]*domain.Booking, error) {
	today := domain.ToDate(time.Now().UTC())

	completed, err := s.bookingRepo.CompleteDeparted(ctx, today)
	if err != nil {
		return nil, fmt.Errorf("complete departed: %w", err)
	}

	if len(completed) > 0 {
		s.logger.Info("departed stays completed",
			logger.Int("count", len(completed)),
		)
	}

	return completed, nil
}

// IsRoomAvailable reports whether the room can host a stay over
// [checkIn, checkOut) with no active booking in the way.
func (s *BookingService) IsRoomAvailable(ctx context.Context, roomID string, checkIn, checkOut time.Time) (bool, error) {
	checkIn = domain.ToDate(checkIn)
	checkOut = domain.ToDate(checkOut)
	if !checkIn.Before(checkOut) {
		return false, domain.ErrInvalidDateRange
	}

	room, err := s.roomRepo.GetByID(ctx, roomID)
	if err != nil {
		return false, fmt.Errorf("check room: %w", err)
	}
	if !room.IsAvailable {
		return false, nil
	}

	overlapping, err := s.bookingRepo.IsOverlapping(ctx, roomID, checkIn, checkOut, "")
	if err != nil {
		return false, fmt.Errorf("check overlap: %w", err)
	}

	return !overlapping, nil
}

func (s *BookingService) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	return s.bookingRepo.GetByID(ctx, id)
}

func (s *BookingService) ListByUser(ctx context.Context, userID string) ([]*domain.Booking, error) {
	return s.bookingRepo.ListByUser(ctx, userID)
}

func (s *BookingService) ListByRoom(ctx context.Context, roomID string) ([]*domain.Booking, error) {
	return s.bookingRepo.ListByRoom(ctx, roomID)
}

func (s *BookingService) notifyAsync(
	ctx context.Context,
	booking *domain.Booking,
	notify func(ctx context.Context, user *domain.User, booking *domain.Booking),
) {
	user, err := s.userRepo.GetByID(ctx, booking.UserID)
	if err != nil {
		s.logger.Error("failed to get user for notification",
			logger.String("user_id", booking.UserID),
			logger.String("error", err.Error()),
		)
		return
	}

	go notify(context.WithoutCancel(ctx), user, booking)
}
