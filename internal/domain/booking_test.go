package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookingStatus_CanTransition(t *testing.T) {
	all := []BookingStatus{
		BookingStatusPending,
		BookingStatusConfirmed,
		BookingStatusCancelled,
		BookingStatusCompleted,
	}

	allowed := map[BookingStatus]map[BookingStatus]bool{
		BookingStatusPending: {
			BookingStatusConfirmed: true,
			BookingStatusCancelled: true,
		},
		BookingStatusConfirmed: {
			BookingStatusCancelled: true,
			BookingStatusCompleted: true,
		},
	}

	for _, from := range all {
		for _, to := range all {
			got := from.CanTransition(to)
			want := allowed[from][to]
			assert.Equal(t, want, got, "%s -> %s", from, to)
		}
	}
}

func TestBooking_Transition(t *testing.T) {
	b := &Booking{Status: BookingStatusPending}

	require.NoError(t, b.Transition(BookingStatusConfirmed))
	assert.Equal(t, BookingStatusConfirmed, b.Status)

	require.NoError(t, b.Transition(BookingStatusCompleted))
	assert.Equal(t, BookingStatusCompleted, b.Status)
}

func TestBooking_Transition_TerminalStates(t *testing.T) {
	cancelled := &Booking{Status: BookingStatusCancelled}
	completed := &Booking{Status: BookingStatusCompleted}

	for _, to := range []BookingStatus{
		BookingStatusPending,
		BookingStatusConfirmed,
		BookingStatusCancelled,
		BookingStatusCompleted,
	} {
		assert.ErrorIs(t, cancelled.Transition(to), ErrInvalidTransition)
		assert.ErrorIs(t, completed.Transition(to), ErrInvalidTransition)
	}

	// неудачный переход не меняет статус
	assert.Equal(t, BookingStatusCancelled, cancelled.Status)
	assert.Equal(t, BookingStatusCompleted, completed.Status)
}

func TestBooking_Transition_DoubleCancel(t *testing.T) {
	b := &Booking{Status: BookingStatusConfirmed}

	require.NoError(t, b.Transition(BookingStatusCancelled))
	assert.ErrorIs(t, b.Transition(BookingStatusCancelled), ErrInvalidTransition)
}

func TestBookingStatus_IsActive(t *testing.T) {
	assert.True(t, BookingStatusPending.IsActive())
	assert.True(t, BookingStatusConfirmed.IsActive())
	assert.False(t, BookingStatusCancelled.IsActive())
	assert.False(t, BookingStatusCompleted.IsActive())
}
