package ports

import (
	"context"
	"time"

	"github.com/mkhlv/HotelBooker/internal/domain"
)

type BookingRepo interface {
	Create(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	UpdateStatus(ctx context.Context, id string, from, to domain.BookingStatus) error
	IsOverlapping(ctx context.Context, roomID string, checkIn, checkOut time.Time, excludeBookingID string) (bool, error)
	CompleteDeparted(ctx context.Context, departedBy time.Time) ([]*domain.Booking, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.Booking, error)
	ListByRoom(ctx context.Context, roomID string) ([]*domain.Booking, error)
}
