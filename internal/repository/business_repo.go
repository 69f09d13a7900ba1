package repository

import (
	"context"
	"errors"
	"fmt"

	"business_directory/internal/model"

	"github.com/jackc/pgx/v5"
)

// BusinessRepository defines operations for business data
type BusinessRepository interface {
	Create(ctx context.Context, business *model.Business) error
	FindByID(ctx context.Context, id int) (*model.Business, error)
	FindAll(ctx context.Context) ([]model.Business, error)
	FindByOwner(ctx context.Context, ownerID int) ([]model.Business, error)
	Update(ctx context.Context, id int, req model.UpdateBusinessRequest) (int64, error)
	Delete(ctx context.Context, id int) (int64, error)
}

type businessRepository struct {
	db DBTX
}

// NewBusinessRepository creates a new BusinessRepository
func NewBusinessRepository(db DBTX) BusinessRepository {
	return &businessRepository{db: db}
}

const businessColumns = `id, owner_id, name, address, city, state, zip, phone, category, subcategory, website, email, created_at, updated_at`

func scanBusiness(row pgx.Row, b *model.Business) error {
	return row.Scan(
		&b.ID, &b.OwnerID, &b.Name, &b.Address, &b.City, &b.State, &b.Zip, &b.Phone,
		&b.Category, &b.Subcategory, &b.Website, &b.Email, &b.CreatedAt, &b.UpdatedAt,
	)
}

// Create inserts a new business
func (r *businessRepository) Create(ctx context.Context, b *model.Business) error {
	sql := `INSERT INTO businesses (owner_id, name, address, city, state, zip, phone, category, subcategory, website, email)
            VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11) RETURNING id, created_at, updated_at`
	err := r.db.QueryRow(ctx, sql,
		b.OwnerID, b.Name, b.Address, b.City, b.State, b.Zip, b.Phone, b.Category, b.Subcategory, b.Website, b.Email,
	).Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create business: %w", translateError(err))
	}
	return nil
}

// FindByID retrieves a business by its ID
func (r *businessRepository) FindByID(ctx context.Context, id int) (*model.Business, error) {
	b := &model.Business{}
	sql := `SELECT ` + businessColumns + ` FROM businesses WHERE id = $1`
	if err := scanBusiness(r.db.QueryRow(ctx, sql, id), b); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // Not found
		}
		return nil, fmt.Errorf("failed to find business by ID: %w", err)
	}
	return b, nil
}

// FindAll lists every business
func (r *businessRepository) FindAll(ctx context.Context) ([]model.Business, error) {
	return r.list(ctx, `SELECT `+businessColumns+` FROM businesses ORDER BY id`)
}

// FindByOwner lists the businesses owned by a user
func (r *businessRepository) FindByOwner(ctx context.Context, ownerID int) ([]model.Business, error) {
	return r.list(ctx, `SELECT `+businessColumns+` FROM businesses WHERE owner_id = $1 ORDER BY id`, ownerID)
}

func (r *businessRepository) list(ctx context.Context, sql string, args ...any) ([]model.Business, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query businesses: %w", err)
	}
	defer rows.Close()

	businesses := make([]model.Business, 0)
	for rows.Next() {
		var b model.Business
		if err := scanBusiness(rows, &b); err != nil {
			return nil, fmt.Errorf("failed to scan business row: %w", err)
		}
		businesses = append(businesses, b)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating business rows: %w", err)
	}
	return businesses, nil
}

// Update applies the non-nil fields of req. owner_id is never written.
func (r *businessRepository) Update(ctx context.Context, id int, req model.UpdateBusinessRequest) (int64, error) {
	var p patch
	if req.Name != nil {
		p.set("name", *req.Name)
	}
	if req.Address != nil {
		p.set("address", *req.Address)
	}
	if req.City != nil {
		p.set("city", *req.City)
	}
	if req.State != nil {
		p.set("state", *req.State)
	}
	if req.Zip != nil {
		p.set("zip", *req.Zip)
	}
	if req.Phone != nil {
		p.set("phone", *req.Phone)
	}
	if req.Category != nil {
		p.set("category", *req.Category)
	}
	if req.Subcategory != nil {
		p.set("subcategory", *req.Subcategory)
	}
	if req.Website != nil {
		p.set("website", *req.Website)
	}
	if req.Email != nil {
		p.set("email", *req.Email)
	}

	sql, args := p.build("businesses", id)
	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return 0, fmt.Errorf("failed to update business: %w", translateError(err))
	}
	return cmdTag.RowsAffected(), nil
}

// Delete removes a business; its photos and reviews cascade
func (r *businessRepository) Delete(ctx context.Context, id int) (int64, error) {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM businesses WHERE id = $1`, id)
	if err != nil {
		return 0, fmt.Errorf("failed to delete business: %w", err)
	}
	return cmdTag.RowsAffected(), nil
}
