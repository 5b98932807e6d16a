package service

import (
	"context"
	"fmt"

	"smarttodo/internal/model"
	"smarttodo/internal/repository"
)

// CategoryService provides helpers around per-user categories.
type CategoryService struct {
	repo *repository.CategoryRepository
}

func NewCategoryService(repo *repository.CategoryRepository) *CategoryService {
	return &CategoryService{repo: repo}
}

func (s *CategoryService) List(ctx context.Context, userID string) ([]model.Category, error) {
	return s.repo.ListByUser(ctx, userID)
}

// Create registers a category label for the user. Creating an existing
// name returns the stored record unchanged.
func (s *CategoryService) Create(ctx context.Context, userID, name, color string) (*model.Category, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: category name is required", ErrInvalidInput)
	}
	if color == "" {
		color = defaultCategoryColor
	}
	return s.repo.GetOrCreate(ctx, userID, name, color)
}

func (s *CategoryService) Delete(ctx context.Context, userID, id string) error {
	return s.repo.Delete(ctx, userID, id)
}
