package ports

import (
	"context"

	"github.com/mkhlv/HotelBooker/internal/domain"
)

type HotelRepo interface {
	Create(ctx context.Context, hotel *domain.Hotel) error
	GetByID(ctx context.Context, id string) (*domain.Hotel, error)
	List(ctx context.Context, city string) ([]*domain.Hotel, error)
}
