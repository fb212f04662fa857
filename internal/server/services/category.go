package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/minseok/enigma/internal/server/repositories/repomanager"
)

// CategoryService lists the posting boards.
type CategoryService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewCategoryService(db *sql.DB, m repomanager.RepositoryManager) *CategoryService {
	return &CategoryService{db: db, repomanager: m}
}

func (s *CategoryService) Categories(ctx context.Context) ([]*CategoryView, error) {
	categories, err := s.repomanager.Categories(s.db).ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing categories: %w", err)
	}

	views := make([]*CategoryView, 0, len(categories))
	for _, c := range categories {
		views = append(views, toCategoryView(c))
	}
	return views, nil
}
