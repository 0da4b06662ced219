// internal/repository/postgres/user_pg.go
package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"trackhub/internal/domain"
	"trackhub/internal/repository"
	"trackhub/internal/util"

	"github.com/jmoiron/sqlx"
)

// UserRepository implements repository.UserRepository for PostgreSQL.
type UserRepository struct{}

// NewUserRepository creates a new UserRepository.
func NewUserRepository(db *sqlx.DB) repository.UserRepository {
	return &UserRepository{}
}

// GetUserByID retrieves a user by their ID using the provided DBExecutor.
func (r *UserRepository) GetUserByID(ctx context.Context, q repository.DBExecutor, id int64) (*domain.User, error) {
	var user domain.User
	query := `SELECT id, username, created_at, updated_at FROM users WHERE id = $1`
	err := q.GetContext(ctx, &user, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, util.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user by ID %d: %w", id, err)
	}
	return &user, nil
}
