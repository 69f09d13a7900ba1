package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DBTX is the subset of pgx used by the repositories.
// *pgxpool.Pool, pgx.Tx and pgxmock pools all satisfy it.
type DBTX interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// ConstraintError reports a write rejected by a table constraint
// (SQLSTATE class 23) or by the column's type (class 22, e.g. a value too
// long or out of range). Message is safe to show to clients.
type ConstraintError struct {
	Code       string
	Constraint string
	Message    string
}

func (e *ConstraintError) Error() string {
	return e.Message
}

var constraintMessages = map[string]string{
	"users_email_key":              "email address is already registered",
	"reviews_user_business_unique": "user has already reviewed this business",
	"businesses_owner_id_fkey":     "ownerId does not reference an existing user",
	"photos_user_id_fkey":          "userId does not reference an existing user",
	"photos_business_id_fkey":      "businessId does not reference an existing business",
	"reviews_user_id_fkey":         "userId does not reference an existing user",
	"reviews_business_id_fkey":     "businessId does not reference an existing business",
	"reviews_dollars_check":        "dollars must be between 1 and 4",
	"reviews_stars_check":          "stars must be between 0 and 5",
}

// translateError turns integrity and data violations into *ConstraintError
// and returns every other error unchanged.
func translateError(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || !isClientDataError(pgErr.Code) {
		return err
	}
	msg, ok := constraintMessages[pgErr.ConstraintName]
	if !ok {
		msg = pgErr.Message
		if pgErr.Detail != "" {
			msg += ": " + pgErr.Detail
		}
	}
	return &ConstraintError{Code: pgErr.Code, Constraint: pgErr.ConstraintName, Message: msg}
}

// patch accumulates "column = $n" assignments for a partial UPDATE
type patch struct {
	sets []string
	args []any
}

func (p *patch) set(column string, value any) {
	p.args = append(p.args, value)
	p.sets = append(p.sets, fmt.Sprintf("%s = $%d", column, len(p.args)))
}

// build renders the UPDATE statement. updated_at is always bumped so an
// empty patch still reports whether the row exists.
func (p *patch) build(table string, id int) (string, []any) {
	var b strings.Builder
	b.WriteString("UPDATE ")
	b.WriteString(table)
	b.WriteString(" SET ")
	for _, s := range p.sets {
		b.WriteString(s)
		b.WriteString(", ")
	}
	args := append(p.args, id)
	b.WriteString(fmt.Sprintf("updated_at = NOW() WHERE id = $%d", len(args)))
	return b.String(), args
}

func isClientDataError(code string) bool {
	return strings.HasPrefix(code, "23") || strings.HasPrefix(code, "22")
}
