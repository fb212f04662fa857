package friends

import (
	"context"

	"github.com/minseok/enigma/internal/server/models"
)

// Repository maintains directed friend edges. Adding an existing edge is a
// no-op, as is removing an absent one.
type Repository interface {
	Add(ctx context.Context, userID, friendID string) error
	Remove(ctx context.Context, userID, friendID string) error
	ListByUser(ctx context.Context, userID string) ([]*models.User, error)
}
