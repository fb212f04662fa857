package posts

import (
	"context"

	"github.com/minseok/enigma/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, post *models.Post) (*models.Post, error)
	FindByID(ctx context.Context, id string) (*models.Post, error)
	FindBySchoolLevel(ctx context.Context, level models.SchoolLevel, status models.Status) ([]*models.Post, error)
	IncrementViewCount(ctx context.Context, id string) error
	UpdateStatus(ctx context.Context, id string, status models.Status) error
}
