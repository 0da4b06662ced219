// internal/repository/postgres/category_pg.go
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

// CategoryRepository implements repository.CategoryRepository for PostgreSQL.
type CategoryRepository struct{}

// NewCategoryRepository creates a new CategoryRepository.
func NewCategoryRepository(db *sqlx.DB) repository.CategoryRepository {
	return &CategoryRepository{}
}

// CreateCategory inserts a new category using the provided DBExecutor.
func (r *CategoryRepository) CreateCategory(ctx context.Context, q repository.DBExecutor, category *domain.Category) error {
	query := `INSERT INTO categories (user_id, name, color, created_at)
              VALUES ($1, $2, $3, $4) RETURNING id`
	err := q.QueryRowContext(ctx, query, category.UserID, category.Name, category.Color, category.CreatedAt).Scan(&category.ID)
	if err != nil {
		return fmt.Errorf("failed to create category: %w", err)
	}
	return nil
}

// GetCategoryByID retrieves a category owned by the given user.
func (r *CategoryRepository) GetCategoryByID(ctx context.Context, q repository.DBExecutor, userID, categoryID int64) (*domain.Category, error) {
	var category domain.Category
	query := `SELECT id, user_id, name, color, created_at FROM categories WHERE id = $1 AND user_id = $2`
	err := q.GetContext(ctx, &category, query, categoryID, userID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, util.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get category by ID %d: %w", categoryID, err)
	}
	return &category, nil
}

// ListCategoriesByUserID retrieves all categories owned by the given user.
func (r *CategoryRepository) ListCategoriesByUserID(ctx context.Context, q repository.DBExecutor, userID int64) ([]domain.Category, error) {
	categories := []domain.Category{}
	query := `SELECT id, user_id, name, color, created_at FROM categories WHERE user_id = $1 ORDER BY name`
	if err := q.SelectContext(ctx, &categories, query, userID); err != nil {
		return nil, fmt.Errorf("failed to list categories for user %d: %w", userID, err)
	}
	return categories, nil
}

// DeleteCategory removes a category owned by the given user. Transactions
// keep their category_id cleared by the schema's ON DELETE SET NULL.
func (r *CategoryRepository) DeleteCategory(ctx context.Context, q repository.DBExecutor, userID, categoryID int64) error {
	query := `DELETE FROM categories WHERE id = $1 AND user_id = $2`
	result, err := q.ExecContext(ctx, query, categoryID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete category %d: %w", categoryID, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected after deleting category %d: %w", categoryID, err)
	}
	if rowsAffected == 0 {
		return util.ErrNotFound
	}
	return nil
}
