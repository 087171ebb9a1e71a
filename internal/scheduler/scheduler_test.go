package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/mkhlv/HotelBooker/internal/domain"
	"github.com/mkhlv/HotelBooker/internal/scheduler/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func TestScheduler_Tick_CompletesDeparted(t *testing.T) {
	completer := mocks.NewMockStayCompleter(t)
	log := newTestLogger(t)

	s := New(completer, 50*time.Millisecond, log)

	completed := []*domain.Booking{
		{ID: "b1", UserID: "u1", RoomID: "r1"},
	}
	completer.EXPECT().CompleteDeparted(mock.Anything).Return(completed, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, len(completer.Calls), 1)
}

func TestScheduler_Tick_HandlesError(t *testing.T) {
	completer := mocks.NewMockStayCompleter(t)
	log := newTestLogger(t)

	s := New(completer, 50*time.Millisecond, log)

	completer.EXPECT().CompleteDeparted(mock.Anything).Return(nil, errors.New("db error"))

	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, len(completer.Calls), 1)
}

func TestScheduler_StopsOnContextCancel(t *testing.T) {
	completer := mocks.NewMockStayCompleter(t)
	log := newTestLogger(t)

	s := New(completer, time.Second, log) // interval longer than test

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		s.Start(ctx)
		close(done)
	}()

	cancel()

	select {
	case <-done:
		// success
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop on context cancel")
	}
}

func TestScheduler_MultipleTicks(t *testing.T) {
	completer := mocks.NewMockStayCompleter(t)
	log := newTestLogger(t)

	s := New(completer, 30*time.Millisecond, log)

	completer.EXPECT().CompleteDeparted(mock.Anything).Return(nil, nil).Times(3)

	ctx, cancel := context.WithTimeout(context.Background(), 110*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	calls := len(completer.Calls)
	assert.GreaterOrEqual(t, calls, 3)
}
