package ports

import (
	"context"

	"github.com/mkhlv/HotelBooker/internal/domain"
)

type RoomRepo interface {
	Create(ctx context.Context, room *domain.Room) error
	GetByID(ctx context.Context, id string) (*domain.Room, error)
	ListByHotel(ctx context.Context, hotelID string) ([]*domain.Room, error)
	SearchAvailable(ctx context.Context, filters domain.SearchFilters) ([]*domain.Room, error)
}
