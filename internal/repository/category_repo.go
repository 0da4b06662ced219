// internal/repository/category_repo.go
package repository

import (
	"context"

	"trackhub/internal/domain"
)

// CategoryRepository defines the interface for category data operations.
type CategoryRepository interface {
	// CreateCategory adds a new category using the provided DBExecutor.
	CreateCategory(ctx context.Context, q DBExecutor, category *domain.Category) error
	// GetCategoryByID retrieves a category owned by the given user.
	GetCategoryByID(ctx context.Context, q DBExecutor, userID, categoryID int64) (*domain.Category, error)
	// ListCategoriesByUserID retrieves all categories owned by the given user.
	ListCategoriesByUserID(ctx context.Context, q DBExecutor, userID int64) ([]domain.Category, error)
	// DeleteCategory removes a category owned by the given user.
	DeleteCategory(ctx context.Context, q DBExecutor, userID, categoryID int64) error
}
