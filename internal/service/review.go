package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/mkhlv/HotelBooker/internal/domain"
	"github.com/mkhlv/HotelBooker/internal/service/ports"
)

type ReviewService struct {
	repo        ports.ReviewRepo
	bookingRepo ports.BookingRepo
	roomRepo    ports.RoomRepo
}

func NewReviewService(repo ports.ReviewRepo, bookingRepo ports.BookingRepo, roomRepo ports.RoomRepo) *ReviewService {
	return &ReviewService{
		repo:        repo,
		bookingRepo: bookingRepo,
		roomRepo:    roomRepo,
	}
}

// Create links a review to a completed booking: one review per booking,
// written by the guest who stayed.
func (s *ReviewService) Create(ctx context.Context, input domain.CreateReviewInput) (*domain.Review, error) {
	if input.Rating < 1 || input.Rating > 5 {
		return nil, fmt.Errorf("%w: rating must be between 1 and 5", domain.ErrValidation)
	}
	if input.Comment == "" {
		return nil, fmt.Errorf("%w: comment is required", domain.ErrValidation)
	}

	booking, err := s.bookingRepo.GetByID(ctx, input.BookingID)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}
	if booking.UserID != input.UserID {
		return nil, domain.ErrForbidden
	}
	if booking.Status != domain.BookingStatusCompleted {
		return nil, domain.ErrBookingNotCompleted
	}

	room, err := s.roomRepo.GetByID(ctx, booking.RoomID)
	if err != nil {
		return nil, fmt.Errorf("get room: %w", err)
	}

	now := time.Now().UTC()
	review := &domain.Review{
		ID:        uuid.New().String(),
		UserID:    input.UserID,
		HotelID:   room.HotelID,
		BookingID: booking.ID,
		Rating:    input.Rating,
		Comment:   input.Comment,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err = s.repo.Create(ctx, review); err != nil {
		return nil, fmt.Errorf("create review: %w", err)
	}

	return review, nil
}

func (s *ReviewService) ListByHotel(ctx context.Context, hotelID string) ([]*domain.Review, error) {
	return s.repo.ListByHotel(ctx, hotelID)
}
