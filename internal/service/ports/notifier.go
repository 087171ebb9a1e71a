package ports

import (
	"context"

	"github.com/mkhlv/HotelBooker/internal/domain"
)

type BookingNotifier interface {
	NotifyBookingCreated(ctx context.Context, user *domain.User, booking *domain.Booking)
	NotifyBookingConfirmed(ctx context.Context, user *domain.User, booking *domain.Booking)
	NotifyBookingCancelled(ctx context.Context, user *domain.User, booking *domain.Booking)
}
