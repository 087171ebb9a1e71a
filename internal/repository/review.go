package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/mkhlv/HotelBooker/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type ReviewRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewReviewRepo(db *dbpg.DB) *ReviewRepository {
	return &ReviewRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *ReviewRepository) Create(ctx context.Context, review *domain.Review) error {
	query := `INSERT INTO reviews (id, user_id, hotel_id, booking_id, rating, comment, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		review.ID, review.UserID, review.HotelID, review.BookingID,
		review.Rating, review.Comment, review.CreatedAt, review.UpdatedAt,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			// booking_id уникален: один отзыв на бронь
			return domain.ErrReviewExists
		}
		return fmt.Errorf("insert review: %w", err)
	}

	return nil
}

func (r *ReviewRepository) ListByHotel(ctx context.Context, hotelID string) ([]*domain.Review, error) {
	query := `SELECT id, user_id, hotel_id, booking_id, rating, comment, created_at, updated_at
			  FROM reviews
			  WHERE hotel_id = $1
			  ORDER BY created_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, hotelID)
	if err != nil {
		return nil, fmt.Errorf("list reviews by hotel: %w", err)
	}
	defer rows.Close()

	var res []*domain.Review
	for rows.Next() {
		var rev domain.Review
		if err = rows.Scan(
			&rev.ID, &rev.UserID, &rev.HotelID, &rev.BookingID,
			&rev.Rating, &rev.Comment, &rev.CreatedAt, &rev.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan review: %w", err)
		}
		res = append(res, &rev)
	}

	return res, rows.Err()
}
