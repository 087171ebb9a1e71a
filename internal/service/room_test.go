package service

import (
	"context"
	"testing"
	"time"

	"github.com/mkhlv/HotelBooker/internal/domain"
	"github.com/mkhlv/HotelBooker/internal/service/ports/mocks"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRoomService_Create_Success(t *testing.T) {
	roomRepo := mocks.NewMockRoomRepo(t)
	hotelRepo := mocks.NewMockHotelRepo(t)
	svc := NewRoomService(roomRepo, hotelRepo)

	hotelRepo.EXPECT().GetByID(mock.Anything, "h1").Return(&domain.Hotel{ID: "h1"}, nil)
	roomRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	room, err := svc.Create(context.Background(), domain.CreateRoomInput{
		HotelID:       "h1",
		RoomNumber:    "101",
		RoomType:      domain.RoomTypeDouble,
		PricePerNight: decimal.RequireFromString("150.00"),
		MaxOccupancy:  2,
	})

	require.NoError(t, err)
	assert.NotEmpty(t, room.ID)
	assert.True(t, room.IsAvailable) // по умолчанию номер доступен
}

func TestRoomService_Create_Validation(t *testing.T) {
	roomRepo := mocks.NewMockRoomRepo(t)
	hotelRepo := mocks.NewMockHotelRepo(t)
	svc := NewRoomService(roomRepo, hotelRepo)

	valid := domain.CreateRoomInput{
		HotelID:       "h1",
		RoomNumber:    "101",
		RoomType:      domain.RoomTypeDouble,
		PricePerNight: decimal.RequireFromString("150.00"),
		MaxOccupancy:  2,
	}

	tests := []struct {
		name   string
		mutate func(in *domain.CreateRoomInput)
	}{
		{"empty room number", func(in *domain.CreateRoomInput) { in.RoomNumber = "" }},
		{"unknown room type", func(in *domain.CreateRoomInput) { in.RoomType = "penthouse" }},
		{"negative price", func(in *domain.CreateRoomInput) { in.PricePerNight = decimal.RequireFromString("-1") }},
		{"zero occupancy", func(in *domain.CreateRoomInput) { in.MaxOccupancy = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := valid
			tt.mutate(&input)
			_, err := svc.Create(context.Background(), input)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestRoomService_Create_HotelNotFound(t *testing.T) {
	roomRepo := mocks.NewMockRoomRepo(t)
	hotelRepo := mocks.NewMockHotelRepo(t)
	svc := NewRoomService(roomRepo, hotelRepo)

	hotelRepo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrHotelNotFound)

	_, err := svc.Create(context.Background(), domain.CreateRoomInput{
		HotelID:       "missing",
		RoomNumber:    "101",
		RoomType:      domain.RoomTypeSingle,
		PricePerNight: decimal.RequireFromString("80.00"),
		MaxOccupancy:  1,
	})
	assert.ErrorIs(t, err, domain.ErrHotelNotFound)
}

func TestRoomService_SearchAvailable_Passthrough(t *testing.T) {
	roomRepo := mocks.NewMockRoomRepo(t)
	hotelRepo := mocks.NewMockHotelRepo(t)
	svc := NewRoomService(roomRepo, hotelRepo)

	expected := []*domain.Room{{ID: "r1"}, {ID: "r2"}}
	roomRepo.EXPECT().SearchAvailable(mock.Anything, mock.Anything).Return(expected, nil)

	rooms, err := svc.SearchAvailable(context.Background(), domain.SearchFilters{City: "Paris"})

	require.NoError(t, err)
	assert.Equal(t, expected, rooms)
}

func TestRoomService_SearchAvailable_NormalizesDates(t *testing.T) {
	roomRepo := mocks.NewMockRoomRepo(t)
	hotelRepo := mocks.NewMockHotelRepo(t)
	svc := NewRoomService(roomRepo, hotelRepo)

	checkIn := time.Date(2024, 3, 1, 15, 30, 0, 0, time.UTC)
	checkOut := time.Date(2024, 3, 4, 11, 0, 0, 0, time.UTC)

	roomRepo.EXPECT().SearchAvailable(mock.Anything, mock.Anything).
		Run(func(_ context.Context, filters domain.SearchFilters) {
			assert.Equal(t, date(2024, 3, 1), *filters.CheckIn)
			assert.Equal(t, date(2024, 3, 4), *filters.CheckOut)
		}).
		Return(nil, nil)

	_, err := svc.SearchAvailable(context.Background(), domain.SearchFilters{
		CheckIn:  &checkIn,
		CheckOut: &checkOut,
	})
	require.NoError(t, err)
}

func TestRoomService_SearchAvailable_LoneDateBound(t *testing.T) {
	roomRepo := mocks.NewMockRoomRepo(t)
	hotelRepo := mocks.NewMockHotelRepo(t)
	svc := NewRoomService(roomRepo, hotelRepo)

	checkIn := date(2024, 3, 1)

	_, err := svc.SearchAvailable(context.Background(), domain.SearchFilters{CheckIn: &checkIn})
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = svc.SearchAvailable(context.Background(), domain.SearchFilters{CheckOut: &checkIn})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestRoomService_SearchAvailable_InvalidDateRange(t *testing.T) {
	roomRepo := mocks.NewMockRoomRepo(t)
	hotelRepo := mocks.NewMockHotelRepo(t)
	svc := NewRoomService(roomRepo, hotelRepo)

	checkIn := date(2024, 3, 4)
	checkOut := date(2024, 3, 1)

	_, err := svc.SearchAvailable(context.Background(), domain.SearchFilters{
		CheckIn:  &checkIn,
		CheckOut: &checkOut,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidDateRange)
}

func TestRoomService_SearchAvailable_UnknownRoomType(t *testing.T) {
	roomRepo := mocks.NewMockRoomRepo(t)
	hotelRepo := mocks.NewMockHotelRepo(t)
	svc := NewRoomService(roomRepo, hotelRepo)

	_, err := svc.SearchAvailable(context.Background(), domain.SearchFilters{RoomType: "igloo"})
	assert.ErrorIs(t, err, domain.ErrValidation)
}
