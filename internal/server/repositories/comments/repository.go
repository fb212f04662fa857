package comments

import (
	"context"

	"github.com/minseok/enigma/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, comment *models.Comment) (*models.Comment, error)
	FindByID(ctx context.Context, id string) (*models.Comment, error)
	FindByPostAndStatus(ctx context.Context, postID string, status models.Status) ([]*models.Comment, error)
	UpdateStatus(ctx context.Context, id string, status models.Status) error
}
