// internal/service/category_service.go
package service

import (
	"context"
	"fmt"
	"log/slog"

	"trackhub/internal/domain"
	"trackhub/internal/repository"
	"trackhub/internal/util"
)

// CategoryService defines the interface for category management.
type CategoryService interface {
	CreateCategory(ctx context.Context, userID int64, name, color string) (*domain.Category, error)
	ListCategories(ctx context.Context, userID int64) ([]domain.Category, error)
	DeleteCategory(ctx context.Context, userID, categoryID int64) error
}

type categoryService struct {
	db           repository.DBExecutor
	categoryRepo repository.CategoryRepository
	logger       *slog.Logger
}

// NewCategoryService creates a new instance of CategoryService.
func NewCategoryService(db repository.DBExecutor, categoryRepo repository.CategoryRepository, logger *slog.Logger) CategoryService {
	return &categoryService{db: db, categoryRepo: categoryRepo, logger: logger}
}

func (s *categoryService) CreateCategory(ctx context.Context, userID int64, name, color string) (*domain.Category, error) {
	if name == "" {
		return nil, fmt.Errorf("name is required: %w", util.ErrInvalidInput)
	}

	category := domain.NewCategory(userID, name, color)
	if err := s.categoryRepo.CreateCategory(ctx, s.db, category); err != nil {
		return nil, fmt.Errorf("create category: %w", err)
	}
	return category, nil
}

func (s *categoryService) ListCategories(ctx context.Context, userID int64) ([]domain.Category, error) {
	categories, err := s.categoryRepo.ListCategoriesByUserID(ctx, s.db, userID)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return categories, nil
}

func (s *categoryService) DeleteCategory(ctx context.Context, userID, categoryID int64) error {
	if err := s.categoryRepo.DeleteCategory(ctx, s.db, userID, categoryID); err != nil {
		if util.IsError(err, util.ErrNotFound) {
			return util.ErrNotFound
		}
		return fmt.Errorf("delete category: %w", err)
	}
	return nil
}
