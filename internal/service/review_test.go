package service

import (
	"context"
	"testing"

	"github.com/mkhlv/HotelBooker/internal/domain"
	"github.com/mkhlv/HotelBooker/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type reviewMocks struct {
	reviewRepo  *mocks.MockReviewRepo
	bookingRepo *mocks.MockBookingRepo
	roomRepo    *mocks.MockRoomRepo
}

func newReviewService(t *testing.T) (*ReviewService, reviewMocks) {
	m := reviewMocks{
		reviewRepo:  mocks.NewMockReviewRepo(t),
		bookingRepo: mocks.NewMockBookingRepo(t),
		roomRepo:    mocks.NewMockRoomRepo(t),
	}
	return NewReviewService(m.reviewRepo, m.bookingRepo, m.roomRepo), m
}

func completedBooking() *domain.Booking {
	return &domain.Booking{
		ID:     "b1",
		UserID: "u1",
		RoomID: "r1",
		Status: domain.BookingStatusCompleted,
	}
}

func TestReviewService_Create_Success(t *testing.T) {
	svc, m := newReviewService(t)

	m.bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(completedBooking(), nil)
	m.roomRepo.EXPECT().GetByID(mock.Anything, "r1").Return(&domain.Room{ID: "r1", HotelID: "h1"}, nil)
	m.reviewRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	review, err := svc.Create(context.Background(), domain.CreateReviewInput{
		UserID:    "u1",
		BookingID: "b1",
		Rating:    5,
		Comment:   "Great stay",
	})

	require.NoError(t, err)
	assert.Equal(t, "h1", review.HotelID) // отель выводится из брони
	assert.Equal(t, "b1", review.BookingID)
	assert.NotEmpty(t, review.ID)
}

func TestReviewService_Create_RatingOutOfRange(t *testing.T) {
	svc, _ := newReviewService(t)

	for _, rating := range []int{0, 6, -1} {
		_, err := svc.Create(context.Background(), domain.CreateReviewInput{
			UserID:    "u1",
			BookingID: "b1",
			Rating:    rating,
			Comment:   "x",
		})
		assert.ErrorIs(t, err, domain.ErrValidation)
	}
}

func TestReviewService_Create_EmptyComment(t *testing.T) {
	svc, _ := newReviewService(t)

	_, err := svc.Create(context.Background(), domain.CreateReviewInput{
		UserID:    "u1",
		BookingID: "b1",
		Rating:    4,
	})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestReviewService_Create_NotOwner(t *testing.T) {
	svc, m := newReviewService(t)

	m.bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(completedBooking(), nil)

	_, err := svc.Create(context.Background(), domain.CreateReviewInput{
		UserID:    "intruder",
		BookingID: "b1",
		Rating:    4,
		Comment:   "x",
	})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestReviewService_Create_BookingNotCompleted(t *testing.T) {
	svc, m := newReviewService(t)

	for _, status := range []domain.BookingStatus{
		domain.BookingStatusPending,
		domain.BookingStatusConfirmed,
		domain.BookingStatusCancelled,
	} {
		booking := completedBooking()
		booking.Status = status
		m.bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(booking, nil).Once()

		_, err := svc.Create(context.Background(), domain.CreateReviewInput{
			UserID:    "u1",
			BookingID: "b1",
			Rating:    4,
			Comment:   "x",
		})
		assert.ErrorIs(t, err, domain.ErrBookingNotCompleted)
	}
}

func TestReviewService_Create_Duplicate(t *testing.T) {
	svc, m := newReviewService(t)

	m.bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(completedBooking(), nil)
	m.roomRepo.EXPECT().GetByID(mock.Anything, "r1").Return(&domain.Room{ID: "r1", HotelID: "h1"}, nil)
	m.reviewRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(domain.ErrReviewExists)

	_, err := svc.Create(context.Background(), domain.CreateReviewInput{
		UserID:    "u1",
		BookingID: "b1",
		Rating:    4,
		Comment:   "x",
	})
	assert.ErrorIs(t, err, domain.ErrReviewExists)
}
