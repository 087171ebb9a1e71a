package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/mkhlv/HotelBooker/internal/domain"
	"github.com/mkhlv/HotelBooker/internal/service/ports"
)

type HotelService struct {
	repo ports.HotelRepo
}

func NewHotelService(repo ports.HotelRepo) *HotelService {
	return &HotelService{repo: repo}
}

func (s *HotelService) Create(ctx context.Context, input domain.CreateHotelInput) (*domain.Hotel, error) {
	if input.Name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if input.City == "" {
		return nil, fmt.Errorf("%w: city is required", domain.ErrValidation)
	}

	now := time.Now().UTC()
	hotel := &domain.Hotel{
		ID:          uuid.New().String(),
		Name:        input.Name,
		Description: input.Description,
		Address:     input.Address,
		City:        input.City,
		State:       input.State,
		Country:     input.Country,
		PostalCode:  input.PostalCode,
		Phone:       input.Phone,
		Email:       input.Email,
		Amenities:   input.Amenities,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Create(ctx, hotel); err != nil {
		return nil, fmt.Errorf("create hotel: %w", err)
	}

	return hotel, nil
}

func (s *HotelService) GetByID(ctx context.Context, id string) (*domain.Hotel, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *HotelService) List(ctx context.Context, city string) ([]*domain.Hotel, error) {
	return s.repo.List(ctx, city)
}
