package ports

import (
	"context"

	"github.com/mkhlv/HotelBooker/internal/domain"
)

type ReviewRepo interface {
	Create(ctx context.Context, review *domain.Review) error
	ListByHotel(ctx context.Context, hotelID string) ([]*domain.Review, error)
}
