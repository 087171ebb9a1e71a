package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/lib/pq"
	"github.com/mkhlv/HotelBooker/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const roomColumns = `r.id, r.hotel_id, r.room_number, r.room_type, r.description,
		r.price_per_night, r.max_occupancy, r.amenities, r.is_available, r.created_at, r.updated_at`

type RoomRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewRoomRepo(db *dbpg.DB) *RoomRepository {
	return &RoomRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *RoomRepository) Create(ctx context.Context, room *domain.Room) error {
	query := `INSERT INTO rooms (id, hotel_id, room_number, room_type, description,
				price_per_night, max_occupancy, amenities, is_available, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		room.ID, room.HotelID, room.RoomNumber, room.RoomType, room.Description,
		room.PricePerNight, room.MaxOccupancy, room.Amenities, room.IsAvailable,
		room.CreatedAt, room.UpdatedAt,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case "23505":
				return fmt.Errorf("%w: room number is already taken in this hotel", domain.ErrValidation)
			case "23503":
				return domain.ErrHotelNotFound
			}
		}
		return fmt.Errorf("insert room: %w", err)
	}

	return nil
}

func (r *RoomRepository) GetByID(ctx context.Context, id string) (*domain.Room, error) {
	query := `SELECT ` + roomColumns + `
			  FROM rooms r
			  WHERE r.id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get room: %w", err)
	}

	room, err := scanRoom(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrRoomNotFound
		}
		return nil, fmt.Errorf("scan room: %w", err)
	}

	return room, nil
}

func (r *RoomRepository) ListByHotel(ctx context.Context, hotelID string) ([]*domain.Room, error) {
	query := `SELECT ` + roomColumns + `
			  FROM rooms r
			  WHERE r.hotel_id = $1
			  ORDER BY r.room_number`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, hotelID)
	if err != nil {
		return nil, fmt.Errorf("list rooms by hotel: %w", err)
	}
	defer rows.Close()

	return collectRooms(rows)
}

// SearchAvailable applies the filter conjunction over administratively
// available rooms and, when a date range is given, drops rooms with an
// overlapping active booking. Ordering is fixed to (hotel name, room number)
// so identical searches return identical result sets.
func (r *RoomRepository) SearchAvailable(ctx context.Context, f domain.SearchFilters) ([]*domain.Room, error) {
	var sb strings.Builder
	sb.WriteString(`SELECT ` + roomColumns + `
			  FROM rooms r
			  JOIN hotels h ON h.id = r.hotel_id
			  WHERE r.is_available = true`)

	var args []any
	arg := func(v any) int {
		args = append(args, v)
		return len(args)
	}

	if f.City != "" {
		fmt.Fprintf(&sb, " AND h.city ILIKE '%%' || $%d || '%%'", arg(f.City))
	}
	if f.RoomType != "" {
		fmt.Fprintf(&sb, " AND r.room_type = $%d", arg(f.RoomType))
	}
	if f.MinPrice != nil {
		fmt.Fprintf(&sb, " AND r.price_per_night >= $%d", arg(*f.MinPrice))
	}
	if f.MaxPrice != nil {
		fmt.Fprintf(&sb, " AND r.price_per_night <= $%d", arg(*f.MaxPrice))
	}
	if f.Guests > 0 {
		fmt.Fprintf(&sb, " AND r.max_occupancy >= $%d", arg(f.Guests))
	}
	if f.HasDates() {
		fmt.Fprintf(&sb, ` AND NOT EXISTS (
				SELECT 1 FROM bookings b
				WHERE b.room_id = r.id AND b.status = ANY($%d)
				  AND b.check_in < $%d AND b.check_out > $%d)`,
			arg(pq.Array(domain.ActiveStatuses)), arg(*f.CheckOut), arg(*f.CheckIn))
	}

	sb.WriteString(" ORDER BY h.name, r.room_number")

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, sb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("search rooms: %w", err)
	}
	defer rows.Close()

	return collectRooms(rows)
}

func scanRoom(scan func(dest ...any) error) (*domain.Room, error) {
	var room domain.Room
	if err := scan(
		&room.ID, &room.HotelID, &room.RoomNumber, &room.RoomType, &room.Description,
		&room.PricePerNight, &room.MaxOccupancy, &room.Amenities, &room.IsAvailable,
		&room.CreatedAt, &room.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &room, nil
}

func collectRooms(rows *sql.Rows) ([]*domain.Room, error) {
	var res []*domain.Room
	for rows.Next() {
		room, err := scanRoom(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scan room: %w", err)
		}
		res = append(res, room)
	}

	return res, rows.Err()
}
