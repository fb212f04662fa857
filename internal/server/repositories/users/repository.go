package users

import (
	"context"

	"github.com/minseok/enigma/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	FindByID(ctx context.Context, id string) (*models.User, error)
	FindByUserName(ctx context.Context, userName string) (*models.User, error)
	ExistsByUserName(ctx context.Context, userName string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Update(ctx context.Context, user *models.User) error
	FindBySchoolLevelAndGrade(ctx context.Context, level models.SchoolLevel, grade int) ([]*models.User, error)
}
