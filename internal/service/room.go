package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/mkhlv/HotelBooker/internal/domain"
	"github.com/mkhlv/HotelBooker/internal/service/ports"
)

type RoomService struct {
	repo      ports.RoomRepo
	hotelRepo ports.HotelRepo
}

func NewRoomService(repo ports.RoomRepo, hotelRepo ports.HotelRepo) *RoomService {
	return &RoomService{
		repo:      repo,
		hotelRepo: hotelRepo,
	}
}

func (s *RoomService) Create(ctx context.Context, input domain.CreateRoomInput) (*domain.Room, error) {
	if input.RoomNumber == "" {
		return nil, fmt.Errorf("%w: room_number is required", domain.ErrValidation)
	}
	if !input.RoomType.Valid() {
		return nil, fmt.Errorf("%w: unknown room_type %q", domain.ErrValidation, input.RoomType)
	}
	if input.PricePerNight.IsNegative() {
		return nil, fmt.Errorf("%w: price_per_night must not be negative", domain.ErrValidation)
	}
	if input.MaxOccupancy <= 0 {
		return nil, fmt.Errorf("%w: max_occupancy must be positive", domain.ErrValidation)
	}

	if _, err := s.hotelRepo.GetByID(ctx, input.HotelID); err != nil {
		return nil, fmt.Errorf("check hotel: %w", err)
	}

	available := true
	if input.IsAvailable != nil {
		available = *input.IsAvailable
	}

	now := time.Now().UTC()
	room := &domain.Room{
		ID:            uuid.New().String(),
		HotelID:       input.HotelID,
		RoomNumber:    input.RoomNumber,
		RoomType:      input.RoomType,
		Description:   input.Description,
		PricePerNight: input.PricePerNight,
		MaxOccupancy:  input.MaxOccupancy,
		Amenities:     input.Amenities,
		IsAvailable:   available,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.repo.Create(ctx, room); err != nil {
		return nil, fmt.Errorf("create room: %w", err)
	}

	return room, nil
}

func (s *RoomService) GetByID(ctx context.Context, id string) (*domain.Room, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *RoomService) ListByHotel(ctx context.Context, hotelID string) ([]*domain.Room, error) {
	if _, err := s.hotelRepo.GetByID(ctx, hotelID); err != nil {
		return nil, fmt.Errorf("check hotel: %w", err)
	}
	return s.repo.ListByHotel(ctx, hotelID)
}

// SearchAvailable validates the filter set and delegates to the repository.
// A date bound without its pair is rejected rather than silently ignored.
func (s *RoomService) SearchAvailable(ctx context.Context, filters domain.SearchFilters) ([]*domain.Room, error) {
	if (filters.CheckIn == nil) != (filters.CheckOut == nil) {
		return nil, fmt.Errorf("%w: check_in and check_out must be provided together", domain.ErrValidation)
	}
	if filters.RoomType != "" && !filters.RoomType.Valid() {
		return nil, fmt.Errorf("%w: unknown room_type %q", domain.ErrValidation, filters.RoomType)
	}
	if filters.Guests < 0 {
		return nil, fmt.Errorf("%w: guests must not be negative", domain.ErrValidation)
	}

	if filters.HasDates() {
		checkIn := domain.ToDate(*filters.CheckIn)
		checkOut := domain.ToDate(*filters.CheckOut)
		if !checkIn.Before(checkOut) {
			return nil, domain.ErrInvalidDateRange
		}
		filters.CheckIn = &checkIn
		filters.CheckOut = &checkOut
	}

	rooms, err := s.repo.SearchAvailable(ctx, filters)
	if err != nil {
		return nil, fmt.Errorf("search rooms: %w", err)
	}

	return rooms, nil
}
