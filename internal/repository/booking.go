package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/mkhlv/HotelBooker/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const bookingColumns = `id, user_id, room_id, check_in, check_out, guests,
		total_price, status, special_requests, created_at, updated_at`

type BookingRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewBookingRepo(db *dbpg.DB) *BookingRepository {
	return &BookingRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

// Create inserts a pending booking. The room row is locked for the duration
// of the transaction so concurrent creators for the same room serialize, and
// the bookings_no_overlap exclusion constraint rejects whatever slips past
// the in-transaction check.
func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var roomID string
	lockQuery := `SELECT id FROM rooms WHERE id = $1 FOR UPDATE`
	if err = tx.QueryRowContext(ctx, lockQuery, b.RoomID).Scan(&roomID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrRoomNotFound
		}
		return fmt.Errorf("lock room: %w", err)
	}

	// Проверяем пересечение с активными бронями
	overlapQuery := `SELECT EXISTS (
			SELECT 1 FROM bookings
			WHERE room_id = $1 AND status = ANY($2)
			  AND check_in < $4 AND check_out > $3)`
	var overlapping bool
	if err = tx.QueryRowContext(
		ctx, overlapQuery, b.RoomID,
		pq.Array(domain.ActiveStatuses), b.CheckIn, b.CheckOut,
	).Scan(&overlapping); err != nil {
		return fmt.Errorf("check overlap: %w", err)
	}
	if overlapping {
		return domain.ErrRoomUnavailable
	}

	query := `INSERT INTO bookings (` + bookingColumns + `)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err = tx.ExecContext(
		ctx, query, b.ID, b.UserID, b.RoomID, b.CheckIn, b.CheckOut,
		b.Guests, b.TotalPrice, b.Status, b.SpecialRequests, b.CreatedAt, b.UpdatedAt,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23P01" {
			// exclusion_violation: гонку выиграл другой вызов
			return domain.ErrRoomUnavailable
		}
		return fmt.Errorf("insert booking: %w", err)
	}

	return tx.Commit()
}

func (r *BookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + `
			  FROM bookings
			  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	b, err := scanBooking(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("scan booking: %w", err)
	}

	return b, nil
}

// UpdateStatus performs a guarded status change: the row is updated only if
// it is still in the expected source status. A lost race or a terminal
// status surfaces as ErrInvalidTransition.
func (r *BookingRepository) UpdateStatus(ctx context.Context, id string, from, to domain.BookingStatus) error {
	query := `UPDATE bookings
			  SET status = $3, updated_at = now()
			  WHERE id = $1 AND status = $2`
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id, from, to)
	if err != nil {
		return fmt.Errorf("update booking status: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("booking rows affected: %w", err)
	}
	if rows == 0 {
		// Определяем причину: бронь не найдена или статус уже другой
		checkQuery := `SELECT status FROM bookings WHERE id = $1`
		row, err := r.db.QueryRowWithRetry(ctx, r.strategy, checkQuery, id)
		if err != nil {
			return fmt.Errorf("check booking status: %w", err)
		}
		var status domain.BookingStatus
		if err = row.Scan(&status); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return domain.ErrBookingNotFound
			}
			return fmt.Errorf("scan booking status: %w", err)
		}
		return domain.ErrInvalidTransition
	}

	return nil
}

// IsOverlapping reports whether any active booking for the room overlaps the
// half-open range [checkIn, checkOut). excludeBookingID lets an update on an
// existing booking ignore itself; pass "" to check against all bookings.
func (r *BookingRepository) IsOverlapping(ctx context.Context, roomID string, checkIn, checkOut time.Time, excludeBookingID string) (bool, error) {
	query := `SELECT EXISTS (
			SELECT 1 FROM bookings
			WHERE room_id = $1 AND status = ANY($2)
			  AND check_in < $4 AND check_out > $3
			  AND ($5 = '' OR id::text <> $5))`

	row, err := r.db.QueryRowWithRetry(
		ctx, r.strategy, query, roomID,
		pq.Array(domain.ActiveStatuses), checkIn, checkOut, excludeBookingID,
	)
	if err != nil {
		return false, fmt.Errorf("check overlap: %w", err)
	}

	var overlapping bool
	if err = row.Scan(&overlapping); err != nil {
		return false, fmt.Errorf("scan overlap: %w", err)
	}

	return overlapping, nil
}

// CompleteDeparted moves confirmed bookings whose stay is over to completed.
func (r *BookingRepository) CompleteDeparted(ctx context.Context, departedBy time.Time) ([]*domain.Booking, error) {
	query := `UPDATE bookings
			  SET status = $2, updated_at = now()
			  WHERE status = $1 AND check_out <= $3
			  RETURNING ` + bookingColumns

	rows, err := r.db.QueryWithRetry(
		ctx, r.strategy, query,
		domain.BookingStatusConfirmed, domain.BookingStatusCompleted, departedBy,
	)
	if err != nil {
		return nil, fmt.Errorf("complete departed: %w", err)
	}
	defer rows.Close()

	return collectBookings(rows)
}

func (r *BookingRepository) ListByUser(ctx context.Context, userID string) ([]*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + `
			  FROM bookings
			  WHERE user_id = $1
			  ORDER BY created_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list bookings by user: %w", err)
	}
	defer rows.Close()

	return collectBookings(rows)
}

func (r *BookingRepository) ListByRoom(ctx context.Context, roomID string) ([]*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + `
			  FROM bookings
			  WHERE room_id = $1 AND status = ANY($2)
			  ORDER BY check_in`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, roomID, pq.Array(domain.ActiveStatuses))
	if err != nil {
		return nil, fmt.Errorf("list bookings by room: %w", err)
	}
	defer rows.Close()

	return collectBookings(rows)
}

func scanBooking(scan func(dest ...any) error) (*domain.Booking, error) {
	var b domain.Booking
	var special sql.NullString
	if err := scan(
		&b.ID, &b.UserID, &b.RoomID, &b.CheckIn, &b.CheckOut, &b.Guests,
		&b.TotalPrice, &b.Status, &special, &b.CreatedAt, &b.UpdatedAt,
	); err != nil {
		return nil, err
	}
	b.SpecialRequests = special.String
	return &b, nil
}

func collectBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	var res []*domain.Booking
	for rows.Next() {
		b, err := scanBooking(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		res = append(res, b)
	}

	return res, rows.Err()
}
