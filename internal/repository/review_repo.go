package repository

import (
	"context"
	"errors"
	"fmt"

	"business_directory/internal/model"

	"github.com/jackc/pgx/v5"
)

// ReviewRepository defines operations for review data
type ReviewRepository interface {
	Create(ctx context.Context, review *model.Review) error
	FindByID(ctx context.Context, id int) (*model.Review, error)
	FindByUser(ctx context.Context, userID int) ([]model.Review, error)
	FindByBusiness(ctx context.Context, businessID int) ([]model.Review, error)
	Update(ctx context.Context, id int, req model.UpdateReviewRequest) (int64, error)
	Delete(ctx context.Context, id int) (int64, error)
}

type reviewRepository struct {
	db DBTX
}

// NewReviewRepository creates a new ReviewRepository
func NewReviewRepository(db DBTX) ReviewRepository {
	return &reviewRepository{db: db}
}

const reviewColumns = `id, user_id, business_id, dollars, stars, review, created_at, updated_at`

func scanReview(row pgx.Row, rv *model.Review) error {
	return row.Scan(&rv.ID, &rv.UserID, &rv.BusinessID, &rv.Dollars, &rv.Stars, &rv.Review, &rv.CreatedAt, &rv.UpdatedAt)
}

func (r *reviewRepository) Create(ctx context.Context, rv *model.Review) error {
	sql := `INSERT INTO reviews (user_id, business_id, dollars, stars, review)
            VALUES ($1, $2, $3, $4, $5) RETURNING id, created_at, updated_at`
	err := r.db.QueryRow(ctx, sql, rv.UserID, rv.BusinessID, rv.Dollars, rv.Stars, rv.Review).
		Scan(&rv.ID, &rv.CreatedAt, &rv.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create review: %w", translateError(err))
	}
	return nil
}

func (r *reviewRepository) FindByID(ctx context.Context, id int) (*model.Review, error) {
	rv := &model.Review{}
	if err := scanReview(r.db.QueryRow(ctx, `SELECT `+reviewColumns+` FROM reviews WHERE id = $1`, id), rv); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find review by ID: %w", err)
	}
	return rv, nil
}

func (r *reviewRepository) FindByUser(ctx context.Context, userID int) ([]model.Review, error) {
	return r.list(ctx, `SELECT `+reviewColumns+` FROM reviews WHERE user_id = $1 ORDER BY id`, userID)
}

func (r *reviewRepository) FindByBusiness(ctx context.Context, businessID int) ([]model.Review, error) {
	return r.list(ctx, `SELECT `+reviewColumns+` FROM reviews WHERE business_id = $1 ORDER BY id`, businessID)
}

func (r *reviewRepository) list(ctx context.Context, sql string, args ...any) ([]model.Review, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query reviews: %w", err)
	}
	defer rows.Close()

	reviews := make([]model.Review, 0)
	for rows.Next() {
		var rv model.Review
		if err := scanReview(rows, &rv); err != nil {
			return nil, fmt.Errorf("failed to scan review row: %w", err)
		}
		reviews = append(reviews, rv)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating review rows: %w", err)
	}
	return reviews, nil
}

// Update writes dollars, stars and the review text; user_id and business_id stay put
func (r *reviewRepository) Update(ctx context.Context, id int, req model.UpdateReviewRequest) (int64, error) {
	var p patch
	if req.Dollars != nil {
		p.set("dollars", *req.Dollars)
	}
	if req.Stars != nil {
		p.set("stars", *req.Stars)
	}
	if req.Review != nil {
		p.set("review", *req.Review)
	}
	sql, args := p.build("reviews", id)
	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return 0, fmt.Errorf("failed to update review: %w", translateError(err))
	}
	return cmdTag.RowsAffected(), nil
}

func (r *reviewRepository) Delete(ctx context.Context, id int) (int64, error) {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM reviews WHERE id = $1`, id)
	if err != nil {
		return 0, fmt.Errorf("failed to delete review: %w", err)
	}
	return cmdTag.RowsAffected(), nil
}
