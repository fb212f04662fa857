package categories

import (
	"context"

	"github.com/minseok/enigma/internal/server/models"
)

type Repository interface {
	FindByID(ctx context.Context, id string) (*models.Category, error)
	ListActive(ctx context.Context) ([]*models.Category, error)
}
