// internal/storage/postgres/admins.go
package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/codescope-coders/codescope-rework/internal/models"
	"github.com/codescope-coders/codescope-rework/internal/storage"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const adminColumns = `id, email, password, created_at, updated_at`

// AdminRepo implements the storage.AdminRepository interface using PostgreSQL.
type AdminRepo struct {
	db Querier
}

// NewAdminRepo creates a new AdminRepo.
func NewAdminRepo(db *pgxpool.Pool) *AdminRepo {
	return &AdminRepo{db: db}
}

// Compile-time check to ensure AdminRepo implements AdminRepository
var _ storage.AdminRepository = (*AdminRepo)(nil)

func scanAdmin(row pgx.Row) (*models.Admin, error) {
	var admin models.Admin
	err := row.Scan(&admin.ID, &admin.Email, &admin.PasswordHash, &admin.CreatedAt, &admin.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &admin, nil
}

func (r *AdminRepo) GetByEmail(ctx context.Context, email string) (*models.Admin, error) {
	row := r.db.QueryRow(ctx, "SELECT "+adminColumns+" FROM admins WHERE email = $1", email)
	admin, err := scanAdmin(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("fetching admin by email: %w", err)
	}
	return admin, nil
}

func (r *AdminRepo) Create(ctx context.Context, email, passwordHash string) (*models.Admin, error) {
	row := r.db.QueryRow(ctx,
		"INSERT INTO admins (email, password) VALUES ($1, $2) RETURNING "+adminColumns,
		email, passwordHash)
	admin, err := scanAdmin(row)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, storage.ErrDuplicateEmail
		}
		return nil, fmt.Errorf("creating admin: %w", err)
	}
	return admin, nil
}
