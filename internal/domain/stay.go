package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

const nightDuration = 24 * time.Hour

// Overlaps reports whether the half-open date ranges [aStart, aEnd) and
// [bStart, bEnd) share at least one night. Back-to-back stays, where one
// check-out equals the other check-in, do not overlap.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}

// Nights returns the length of the stay [checkIn, checkOut) in nights.
func Nights(checkIn, checkOut time.Time) int {
	return int(checkOut.Sub(checkIn) / nightDuration)
}

// TotalPrice derives the stay total from the nightly rate.
func TotalPrice(nightly decimal.Decimal, checkIn, checkOut time.Time) (decimal.Decimal, error) {
	nights := Nights(checkIn, checkOut)
	if nights <= 0 {
		return decimal.Decimal{}, ErrInvalidDateRange
	}
	return nightly.Mul(decimal.NewFromInt(int64(nights))), nil
}

// ToDate truncates a timestamp to its calendar date in UTC.
func ToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
