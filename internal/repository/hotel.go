package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/mkhlv/HotelBooker/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const hotelColumns = `id, name, description, address, city, state, country,
		postal_code, phone, email, rating, amenities, created_at, updated_at`

type HotelRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewHotelRepo(db *dbpg.DB) *HotelRepository {
	return &HotelRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *HotelRepository) Create(ctx context.Context, hotel *domain.Hotel) error {
	query := `INSERT INTO hotels (` + hotelColumns + `)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		hotel.ID, hotel.Name, hotel.Description, hotel.Address, hotel.City,
		hotel.State, hotel.Country, hotel.PostalCode, hotel.Phone, hotel.Email,
		hotel.Rating, hotel.Amenities, hotel.CreatedAt, hotel.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert hotel: %w", err)
	}

	return nil
}

func (r *HotelRepository) GetByID(ctx context.Context, id string) (*domain.Hotel, error) {
	query := `SELECT ` + hotelColumns + `
			  FROM hotels
			  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get hotel: %w", err)
	}

	h, err := scanHotel(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrHotelNotFound
		}
		return nil, fmt.Errorf("scan hotel: %w", err)
	}

	return h, nil
}

func (r *HotelRepository) List(ctx context.Context, city string) ([]*domain.Hotel, error) {
	query := `SELECT ` + hotelColumns + `
			  FROM hotels
			  WHERE ($1 = '' OR city ILIKE '%' || $1 || '%')
			  ORDER BY name`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, city)
	if err != nil {
		return nil, fmt.Errorf("list hotels: %w", err)
	}
	defer rows.Close()

	var res []*domain.Hotel
	for rows.Next() {
		h, err := scanHotel(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scan hotel: %w", err)
		}
		res = append(res, h)
	}

	return res, rows.Err()
}

func scanHotel(scan func(dest ...any) error) (*domain.Hotel, error) {
	var h domain.Hotel
	if err := scan(
		&h.ID, &h.Name, &h.Description, &h.Address, &h.City, &h.State, &h.Country,
		&h.PostalCode, &h.Phone, &h.Email, &h.Rating, &h.Amenities, &h.CreatedAt, &h.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &h, nil
}
