package service

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/mkhlv/HotelBooker/internal/domain"
	"github.com/mkhlv/HotelBooker/internal/service/ports/mocks"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
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

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

type bookingMocks struct {
	bookingRepo *mocks.MockBookingRepo
	roomRepo    *mocks.MockRoomRepo
	userRepo    *mocks.MockUserRepo
	notifier    *mocks.MockBookingNotifier
}

func newBookingService(t *testing.T) (*BookingService, bookingMocks) {
	m := bookingMocks{
		bookingRepo: mocks.NewMockBookingRepo(t),
		roomRepo:    mocks.NewMockRoomRepo(t),
		userRepo:    mocks.NewMockUserRepo(t),
		notifier:    mocks.NewMockBookingNotifier(t),
	}
	svc := NewBookingService(m.bookingRepo, m.roomRepo, m.userRepo, m.notifier, newTestLogger(t))
	return svc, m
}

func testRoom() *domain.Room {
	return &domain.Room{
		ID:            "r1",
		HotelID:       "h1",
		RoomNumber:    "101",
		RoomType:      domain.RoomTypeDouble,
		PricePerNight: decimal.RequireFromString("150.00"),
		MaxOccupancy:  2,
		IsAvailable:   true,
	}
}

func TestBookingService_Create_ComputesTotal(t *testing.T) {
	svc, m := newBookingService(t)

	room := testRoom()
	user := &domain.User{ID: "u1", Email: "alice@example.com"}

	m.roomRepo.EXPECT().GetByID(mock.Anything, "r1").Return(room, nil)
	m.userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(user, nil)
	m.bookingRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	m.notifier.EXPECT().NotifyBookingCreated(mock.Anything, user, mock.Anything).Return()

	booking, err := svc.Create(context.Background(), domain.CreateBookingInput{
		UserID:   "u1",
		RoomID:   "r1",
		CheckIn:  date(2024, 3, 1),
		CheckOut: date(2024, 3, 4),
		Guests:   2,
	})

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusPending, booking.Status)
	assert.Equal(t, "450.00", booking.TotalPrice.StringFixed(2))
	assert.Equal(t, date(2024, 3, 1), booking.CheckIn)
	assert.Equal(t, date(2024, 3, 4), booking.CheckOut)
	assert.NotEmpty(t, booking.ID)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestBookingService_Create_ExplicitTotal(t *testing.T) {
	svc, m := newBookingService(t)

	room := testRoom()
	user := &domain.User{ID: "u1"}
	override := decimal.RequireFromString("99.00")

	m.roomRepo.EXPECT().GetByID(mock.Anything, "r1").Return(room, nil)
	m.userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(user, nil)
	m.bookingRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	m.notifier.EXPECT().NotifyBookingCreated(mock.Anything, user, mock.Anything).Return()

	booking, err := svc.Create(context.Background(), domain.CreateBookingInput{
		UserID:     "u1",
		RoomID:     "r1",
		CheckIn:    date(2024, 3, 1),
		CheckOut:   date(2024, 3, 4),
		Guests:     1,
		TotalPrice: &override,
	})

	require.NoError(t, err)
	assert.Equal(t, "99.00", booking.TotalPrice.StringFixed(2))

	time.Sleep(50 * time.Millisecond)
}

func TestBookingService_Create_InvalidDateRange(t *testing.T) {
	svc, _ := newBookingService(t)

	// check_in == check_out
	_, err := svc.Create(context.Background(), domain.CreateBookingInput{
		UserID:   "u1",
		RoomID:   "r1",
		CheckIn:  date(2024, 3, 1),
		CheckOut: date(2024, 3, 1),
		Guests:   1,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidDateRange)

	// check_in > check_out
	_, err = svc.Create(context.Background(), domain.CreateBookingInput{
		UserID:   "u1",
		RoomID:   "r1",
		CheckIn:  date(2024, 3, 4),
		CheckOut: date(2024, 3, 1),
		Guests:   1,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidDateRange)
}

func TestBookingService_Create_InvalidGuests(t *testing.T) {
	svc, _ := newBookingService(t)

	_, err := svc.Create(context.Background(), domain.CreateBookingInput{
		UserID:   "u1",
		RoomID:   "r1",
		CheckIn:  date(2024, 3, 1),
		CheckOut: date(2024, 3, 4),
		Guests:   0,
	})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestBookingService_Create_RoomNotFound(t *testing.T) {
	svc, m := newBookingService(t)

	m.roomRepo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrRoomNotFound)

	_, err := svc.Create(context.Background(), domain.CreateBookingInput{
		UserID:   "u1",
		RoomID:   "missing",
		CheckIn:  date(2024, 3, 1),
		CheckOut: date(2024, 3, 4),
		Guests:   1,
	})
	assert.ErrorIs(t, err, domain.ErrRoomNotFound)
}

func TestBookingService_Create_RoomAdministrativelyUnavailable(t *testing.T) {
	svc, m := newBookingService(t)

	room := testRoom()
	room.IsAvailable = false
	m.roomRepo.EXPECT().GetByID(mock.Anything, "r1").Return(room, nil)

	_, err := svc.Create(context.Background(), domain.CreateBookingInput{
		UserID:   "u1",
		RoomID:   "r1",
		CheckIn:  date(2024, 3, 1),
		CheckOut: date(2024, 3, 4),
		Guests:   1,
	})
	assert.ErrorIs(t, err, domain.ErrRoomUnavailable)
}

func TestBookingService_Create_Overlap(t *testing.T) {
	svc, m := newBookingService(t)

	room := testRoom()
	user := &domain.User{ID: "u1"}

	m.roomRepo.EXPECT().GetByID(mock.Anything, "r1").Return(room, nil)
	m.userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(user, nil)
	m.bookingRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(domain.ErrRoomUnavailable)

	_, err := svc.Create(context.Background(), domain.CreateBookingInput{
		UserID:   "u1",
		RoomID:   "r1",
		CheckIn:  date(2024, 1, 3),
		CheckOut: date(2024, 1, 10),
		Guests:   1,
	})
	assert.ErrorIs(t, err, domain.ErrRoomUnavailable)
}

func TestBookingService_Cancel_Success(t *testing.T) {
	svc, m := newBookingService(t)

	booking := &domain.Booking{
		ID:     "b1",
		UserID: "u1",
		RoomID: "r1",
		Status: domain.BookingStatusConfirmed,
	}
	user := &domain.User{ID: "u1"}

	m.bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(booking, nil)
	m.bookingRepo.EXPECT().
		UpdateStatus(mock.Anything, "b1", domain.BookingStatusConfirmed, domain.BookingStatusCancelled).
		Return(nil)
	m.userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(user, nil)
	m.notifier.EXPECT().NotifyBookingCancelled(mock.Anything, user, booking).Return()

	cancelled, err := svc.Cancel(context.Background(), "b1", "u1")

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusCancelled, cancelled.Status)

	time.Sleep(50 * time.Millisecond)
}

func TestBookingService_Cancel_NotFound(t *testing.T) {
	svc, m := newBookingService(t)

	m.bookingRepo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrBookingNotFound)

	_, err := svc.Cancel(context.Background(), "missing", "u1")
	assert.ErrorIs(t, err, domain.ErrBookingNotFound)
}

func TestBookingService_Cancel_Forbidden(t *testing.T) {
	svc, m := newBookingService(t)

	booking := &domain.Booking{ID: "b1", UserID: "u1", Status: domain.BookingStatusPending}
	m.bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(booking, nil)

	_, err := svc.Cancel(context.Background(), "b1", "intruder")
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestBookingService_Cancel_AlreadyCancelled(t *testing.T) {
	svc, m := newBookingService(t)

	booking := &domain.Booking{ID: "b1", UserID: "u1", Status: domain.BookingStatusCancelled}
	m.bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(booking, nil)

	_, err := svc.Cancel(context.Background(), "b1", "u1")
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestBookingService_Cancel_Completed(t *testing.T) {
	svc, m := newBookingService(t)

	booking := &domain.Booking{ID: "b1", UserID: "u1", Status: domain.BookingStatusCompleted}
	m.bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(booking, nil)

	_, err := svc.Cancel(context.Background(), "b1", "u1")
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestBookingService_Confirm_Success(t *testing.T) {
	svc, m := newBookingService(t)

	booking := &domain.Booking{ID: "b1", UserID: "u1", Status: domain.BookingStatusPending}
	user := &domain.User{ID: "u1"}

	m.bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(booking, nil)
	m.bookingRepo.EXPECT().
		UpdateStatus(mock.Anything, "b1", domain.BookingStatusPending, domain.BookingStatusConfirmed).
		Return(nil)
	m.userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(user, nil)
	m.notifier.EXPECT().NotifyBookingConfirmed(mock.Anything, user, booking).Return()

	err := svc.Confirm(context.Background(), "b1")

	require.NoError(t, err)
	time.Sleep(50 * time.Millisecond)
}

func TestBookingService_Confirm_FromCancelled(t *testing.T) {
	svc, m := newBookingService(t)

	booking := &domain.Booking{ID: "b1", UserID: "u1", Status: domain.BookingStatusCancelled}
	m.bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(booking, nil)

	err := svc.Confirm(context.Background(), "b1")
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestBookingService_Complete_Success(t *testing.T) {
	svc, m := newBookingService(t)

	booking := &domain.Booking{ID: "b1", UserID: "u1", Status: domain.BookingStatusConfirmed}

	m.bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(booking, nil)
	m.bookingRepo.EXPECT().
		UpdateStatus(mock.Anything, "b1", domain.BookingStatusConfirmed, domain.BookingStatusCompleted).
		Return(nil)

	require.NoError(t, svc.Complete(context.Background(), "b1"))
}

func TestBookingService_Complete_FromPending(t *testing.T) {
	svc, m := newBookingService(t)

	booking := &domain.Booking{ID: "b1", UserID: "u1", Status: domain.BookingStatusPending}
	m.bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(booking, nil)

	err := svc.Complete(context.Background(), "b1")
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestBookingService_CompleteDeparted(t *testing.T) {
	svc, m := newBookingService(t)

	completed := []*domain.Booking{
		{ID: "b1", Status: domain.BookingStatusCompleted},
		{ID: "b2", Status: domain.BookingStatusCompleted},
	}
	m.bookingRepo.EXPECT().CompleteDeparted(mock.Anything, mock.Anything).Return(completed, nil)

	res, err := svc.CompleteDeparted(context.Background())

	require.NoError(t, err)
	assert.Len(t, res, 2)
}

func TestBookingService_IsRoomAvailable(t *testing.T) {
	svc, m := newBookingService(t)

	m.roomRepo.EXPECT().GetByID(mock.Anything, "r1").Return(testRoom(), nil)
	m.bookingRepo.EXPECT().
		IsOverlapping(mock.Anything, "r1", date(2024, 3, 1), date(2024, 3, 4), "").
		Return(false, nil)

	available, err := svc.IsRoomAvailable(context.Background(), "r1", date(2024, 3, 1), date(2024, 3, 4))

	require.NoError(t, err)
	assert.True(t, available)
}

func TestBookingService_IsRoomAvailable_Overlap(t *testing.T) {
	svc, m := newBookingService(t)

	m.roomRepo.EXPECT().GetByID(mock.Anything, "r1").Return(testRoom(), nil)
	m.bookingRepo.EXPECT().
		IsOverlapping(mock.Anything, "r1", date(2024, 3, 1), date(2024, 3, 4), "").
		Return(true, nil)

	available, err := svc.IsRoomAvailable(context.Background(), "r1", date(2024, 3, 1), date(2024, 3, 4))

	require.NoError(t, err)
	assert.False(t, available)
}

func TestBookingService_IsRoomAvailable_RoomDisabled(t *testing.T) {
	svc, m := newBookingService(t)

	room := testRoom()
	room.IsAvailable = false
	m.roomRepo.EXPECT().GetByID(mock.Anything, "r1").Return(room, nil)

	available, err := svc.IsRoomAvailable(context.Background(), "r1", date(2024, 3, 1), date(2024, 3, 4))

	require.NoError(t, err)
	assert.False(t, available)
}

func TestBookingService_IsRoomAvailable_InvalidRange(t *testing.T) {
	svc, _ := newBookingService(t)

	_, err := svc.IsRoomAvailable(context.Background(), "r1", date(2024, 3, 4), date(2024, 3, 4))
	assert.ErrorIs(t, err, domain.ErrInvalidDateRange)
}

// fakeBookingRepo serializes Create with a mutex and applies the same
// overlap rule as the SQL transaction, so the exactly-one-winner property
// can be exercised without a database.
type fakeBookingRepo struct {
	mu       sync.Mutex
	bookings []*domain.Booking
}

func (f *fakeBookingRepo) Create(_ context.Context, b *domain.Booking) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, other := range f.bookings {
		if other.RoomID == b.RoomID && other.Status.IsActive() &&
			domain.Overlaps(b.CheckIn, b.CheckOut, other.CheckIn, other.CheckOut) {
			return domain.ErrRoomUnavailable
		}
	}
	f.bookings = append(f.bookings, b)
	return nil
}

func (f *fakeBookingRepo) GetByID(context.Context, string) (*domain.Booking, error) {
	return nil, domain.ErrBookingNotFound
}

func (f *fakeBookingRepo) UpdateStatus(context.Context, string, domain.BookingStatus, domain.BookingStatus) error {
	return nil
}

func (f *fakeBookingRepo) IsOverlapping(context.Context, string, time.Time, time.Time, string) (bool, error) {
	return false, nil
}

func (f *fakeBookingRepo) CompleteDeparted(context.Context, time.Time) ([]*domain.Booking, error) {
	return nil, nil
}

func (f *fakeBookingRepo) ListByUser(context.Context, string) ([]*domain.Booking, error) {
	return nil, nil
}

func (f *fakeBookingRepo) ListByRoom(context.Context, string) ([]*domain.Booking, error) {
	return nil, nil
}

func TestBookingService_Create_ConcurrentSameInterval(t *testing.T) {
	const workers = 10

	repo := &fakeBookingRepo{}
	roomRepo := mocks.NewMockRoomRepo(t)
	userRepo := mocks.NewMockUserRepo(t)
	notifier := mocks.NewMockBookingNotifier(t)

	room := testRoom()
	roomRepo.EXPECT().GetByID(mock.Anything, "r1").Return(room, nil)
	userRepo.EXPECT().GetByID(mock.Anything, mock.Anything).Return(&domain.User{ID: "u1"}, nil)
	notifier.EXPECT().NotifyBookingCreated(mock.Anything, mock.Anything, mock.Anything).Return()

	svc := NewBookingService(repo, roomRepo, userRepo, notifier, newTestLogger(t))

	var created, rejected atomic.Int64
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Create(context.Background(), domain.CreateBookingInput{
				UserID:   uuid.New().String(),
				RoomID:   "r1",
				CheckIn:  date(2024, 1, 1),
				CheckOut: date(2024, 1, 5),
				Guests:   1,
			})
			switch {
			case err == nil:
				created.Add(1)
			case assert.ErrorIs(t, err, domain.ErrRoomUnavailable):
				rejected.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(1), created.Load())
	assert.Equal(t, int64(workers-1), rejected.Load())
	assert.Len(t, repo.bookings, 1)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestBookingService_Create_BackToBackAllowed(t *testing.T) {
	repo := &fakeBookingRepo{}
	roomRepo := mocks.NewMockRoomRepo(t)
	userRepo := mocks.NewMockUserRepo(t)
	notifier := mocks.NewMockBookingNotifier(t)

	roomRepo.EXPECT().GetByID(mock.Anything, "r1").Return(testRoom(), nil)
	userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1"}, nil)
	notifier.EXPECT().NotifyBookingCreated(mock.Anything, mock.Anything, mock.Anything).Return()

	svc := NewBookingService(repo, roomRepo, userRepo, notifier, newTestLogger(t))

	_, err := svc.Create(context.Background(), domain.CreateBookingInput{
		UserID: "u1", RoomID: "r1",
		CheckIn: date(2024, 1, 1), CheckOut: date(2024, 1, 5),
		Guests: 1,
	})
	require.NoError(t, err)

	// заезд в день выезда предыдущей брони
	_, err = svc.Create(context.Background(), domain.CreateBookingInput{
		UserID: "u1", RoomID: "r1",
		CheckIn: date(2024, 1, 5), CheckOut: date(2024, 1, 8),
		Guests: 1,
	})
	require.NoError(t, err)

	assert.Len(t, repo.bookings, 2)

	time.Sleep(50 * time.Millisecond)
}

func TestBookingService_Create_CancelledFreesInterval(t *testing.T) {
	repo := &fakeBookingRepo{}
	roomRepo := mocks.NewMockRoomRepo(t)
	userRepo := mocks.NewMockUserRepo(t)
	notifier := mocks.NewMockBookingNotifier(t)

	roomRepo.EXPECT().GetByID(mock.Anything, "r1").Return(testRoom(), nil)
	userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1"}, nil)
	notifier.EXPECT().NotifyBookingCreated(mock.Anything, mock.Anything, mock.Anything).Return()

	svc := NewBookingService(repo, roomRepo, userRepo, notifier, newTestLogger(t))

	first, err := svc.Create(context.Background(), domain.CreateBookingInput{
		UserID: "u1", RoomID: "r1",
		CheckIn: date(2024, 1, 1), CheckOut: date(2024, 1, 5),
		Guests: 1,
	})
	require.NoError(t, err)

	// пересекающийся запрос отклоняется, пока бронь активна
	_, err = svc.Create(context.Background(), domain.CreateBookingInput{
		UserID: "u1", RoomID: "r1",
		CheckIn: date(2024, 1, 3), CheckOut: date(2024, 1, 10),
		Guests: 1,
	})
	assert.ErrorIs(t, err, domain.ErrRoomUnavailable)

	first.Status = domain.BookingStatusCancelled

	_, err = svc.Create(context.Background(), domain.CreateBookingInput{
		UserID: "u1", RoomID: "r1",
		CheckIn: date(2024, 1, 3), CheckOut: date(2024, 1, 10),
		Guests: 1,
	})
	require.NoError(t, err)

	time.Sleep(50 * time.Millisecond)
}
