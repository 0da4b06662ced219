// internal/repository/user_repo.go
package repository

import (
	"context"

	"trackhub/internal/domain"
)

// UserRepository defines the interface for user data operations. Users are
// provisioned by the account system upstream; this service only resolves
// them for tenant scoping.
type UserRepository interface {
	// GetUserByID retrieves a user by their ID using the provided DBExecutor.
	GetUserByID(ctx context.Context, q DBExecutor, id int64) (*domain.User, error)
}
