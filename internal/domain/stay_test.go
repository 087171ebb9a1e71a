package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name                   string
		aStart, aEnd           time.Time
		bStart, bEnd           time.Time
		want                   bool
	}{
		{
			name:   "identical ranges",
			aStart: date(2024, 1, 1), aEnd: date(2024, 1, 5),
			bStart: date(2024, 1, 1), bEnd: date(2024, 1, 5),
			want: true,
		},
		{
			name:   "partial overlap",
			aStart: date(2024, 1, 1), aEnd: date(2024, 1, 5),
			bStart: date(2024, 1, 3), bEnd: date(2024, 1, 10),
			want: true,
		},
		{
			name:   "contained range",
			aStart: date(2024, 1, 1), aEnd: date(2024, 1, 10),
			bStart: date(2024, 1, 3), bEnd: date(2024, 1, 5),
			want: true,
		},
		{
			name:   "back-to-back, checkout equals checkin",
			aStart: date(2024, 1, 1), aEnd: date(2024, 1, 5),
			bStart: date(2024, 1, 5), bEnd: date(2024, 1, 8),
			want: false,
		},
		{
			name:   "back-to-back reversed",
			aStart: date(2024, 1, 5), aEnd: date(2024, 1, 8),
			bStart: date(2024, 1, 1), bEnd: date(2024, 1, 5),
			want: false,
		},
		{
			name:   "disjoint ranges",
			aStart: date(2024, 1, 1), aEnd: date(2024, 1, 3),
			bStart: date(2024, 1, 10), bEnd: date(2024, 1, 12),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Overlaps(tt.aStart, tt.aEnd, tt.bStart, tt.bEnd))
			// симметричность
			assert.Equal(t, tt.want, Overlaps(tt.bStart, tt.bEnd, tt.aStart, tt.aEnd))
		})
	}
}

func TestNights(t *testing.T) {
	assert.Equal(t, 3, Nights(date(2024, 3, 1), date(2024, 3, 4)))
	assert.Equal(t, 1, Nights(date(2024, 3, 1), date(2024, 3, 2)))
	assert.Equal(t, 0, Nights(date(2024, 3, 1), date(2024, 3, 1)))
	assert.Equal(t, -2, Nights(date(2024, 3, 3), date(2024, 3, 1)))
}

func TestTotalPrice(t *testing.T) {
	nightly := decimal.RequireFromString("150.00")

	total, err := TotalPrice(nightly, date(2024, 3, 1), date(2024, 3, 4))
	require.NoError(t, err)
	assert.Equal(t, "450.00", total.StringFixed(2))
}

func TestTotalPrice_SingleNight(t *testing.T) {
	nightly := decimal.RequireFromString("99.99")

	total, err := TotalPrice(nightly, date(2024, 3, 1), date(2024, 3, 2))
	require.NoError(t, err)
	assert.Equal(t, "99.99", total.StringFixed(2))
}

func TestTotalPrice_InvalidRange(t *testing.T) {
	nightly := decimal.RequireFromString("150.00")

	_, err := TotalPrice(nightly, date(2024, 3, 4), date(2024, 3, 4))
	assert.ErrorIs(t, err, ErrInvalidDateRange)

	_, err = TotalPrice(nightly, date(2024, 3, 4), date(2024, 3, 1))
	assert.ErrorIs(t, err, ErrInvalidDateRange)
}

func TestToDate(t *testing.T) {
	ts := time.Date(2024, 3, 1, 15, 42, 7, 0, time.FixedZone("MSK", 3*60*60))
	assert.Equal(t, date(2024, 3, 1), ToDate(ts.UTC()))
}
