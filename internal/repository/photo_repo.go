package repository

import (
	"context"
	"errors"
	"fmt"

	"business_directory/internal/model"

	"github.com/jackc/pgx/v5"
)

// PhotoRepository defines operations for photo data
type PhotoRepository interface {
	Create(ctx context.Context, photo *model.Photo) error
	FindByID(ctx context.Context, id int) (*model.Photo, error)
	FindByUser(ctx context.Context, userID int) ([]model.Photo, error)
	FindByBusiness(ctx context.Context, businessID int) ([]model.Photo, error)
	Update(ctx context.Context, id int, req model.UpdatePhotoRequest) (int64, error)
	Delete(ctx context.Context, id int) (int64, error)
}

type photoRepository struct {
	db DBTX
}

// NewPhotoRepository creates a new PhotoRepository
func NewPhotoRepository(db DBTX) PhotoRepository {
	return &photoRepository{db: db}
}

const photoColumns = `id, user_id, business_id, caption, created_at, updated_at`

func scanPhoto(row pgx.Row, p *model.Photo) error {
	return row.Scan(&p.ID, &p.UserID, &p.BusinessID, &p.Caption, &p.CreatedAt, &p.UpdatedAt)
}

func (r *photoRepository) Create(ctx context.Context, p *model.Photo) error {
	sql := `INSERT INTO photos (user_id, business_id, caption) VALUES ($1, $2, $3) RETURNING id, created_at, updated_at`
	err := r.db.QueryRow(ctx, sql, p.UserID, p.BusinessID, p.Caption).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create photo: %w", translateError(err))
	}
	return nil
}

func (r *photoRepository) FindByID(ctx context.Context, id int) (*model.Photo, error) {
	p := &model.Photo{}
	if err := scanPhoto(r.db.QueryRow(ctx, `SELECT `+photoColumns+` FROM photos WHERE id = $1`, id), p); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find photo by ID: %w", err)
	}
	return p, nil
}

func (r *photoRepository) FindByUser(ctx context.Context, userID int) ([]model.Photo, error) {
	return r.list(ctx, `SELECT `+photoColumns+` FROM photos WHERE user_id = $1 ORDER BY id`, userID)
}

func (r *photoRepository) FindByBusiness(ctx context.Context, businessID int) ([]model.Photo, error) {
	return r.list(ctx, `SELECT `+photoColumns+` FROM photos WHERE business_id = $1 ORDER BY id`, businessID)
}

func (r *photoRepository) list(ctx context.Context, sql string, args ...any) ([]model.Photo, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query photos: %w", err)
	}
	defer rows.Close()

	photos := make([]model.Photo, 0)
	for rows.Next() {
		var p model.Photo
		if err := scanPhoto(rows, &p); err != nil {
			return nil, fmt.Errorf("failed to scan photo row: %w", err)
		}
		photos = append(photos, p)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating photo rows: %w", err)
	}
	return photos, nil
}

// Update changes the caption only; user_id and business_id are fixed at creation
func (r *photoRepository) Update(ctx context.Context, id int, req model.UpdatePhotoRequest) (int64, error) {
	var p patch
	if req.Caption != nil {
		p.set("caption", *req.Caption)
	}
	sql, args := p.build("photos", id)
	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return 0, fmt.Errorf("failed to update photo: %w", translateError(err))
	}
	return cmdTag.RowsAffected(), nil
}

func (r *photoRepository) Delete(ctx context.Context, id int) (int64, error) {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM photos WHERE id = $1`, id)
	if err != nil {
		return 0, fmt.Errorf("failed to delete photo: %w", err)
	}
	return cmdTag.RowsAffected(), nil
}
