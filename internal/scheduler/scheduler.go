package scheduler

import (
	"context"
	"time"

	"github.com/mkhlv/HotelBooker/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type stayCompleter interface {
	CompleteDeparted(ctx context.Context) ([]*domain.Booking, error)
}

type Scheduler struct {
	bookingService stayCompleter
	interval       time.Duration
	logger         logger.Logger
}

func New(
	bookingService stayCompleter,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		bookingService: bookingService,
		interval:       interval,
		logger:         logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("scheduler started",
		logger.Duration("interval", s.interval),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	completed, err := s.bookingService.CompleteDeparted(ctx)
	if err != nil {
		s.logger.Error("failed to complete departed stays",
			logger.String("error", err.Error()),
		)
		return
	}

	for _, b := range completed {
		s.logger.Info("stay completed",
			logger.String("booking_id", b.ID),
			logger.String("user_id", b.UserID),
			logger.String("room_id", b.RoomID),
		)
	}
}
