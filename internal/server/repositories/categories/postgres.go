package categories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/minseok/enigma/internal/common"
	"github.com/minseok/enigma/internal/dbx"
	"github.com/minseok/enigma/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) FindByID(ctx context.Context, id string) (*models.Category, error) {
	query := `SELECT id, code, name, description, is_active FROM categories WHERE id = $1`

	c := &models.Category{}
	var description sql.NullString
	err := r.db.QueryRowContext(ctx, query, id).Scan(&c.ID, &c.Code, &c.Name, &description, &c.IsActive)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	c.Description = description.String

	return c, nil
}

func (r *PostgresRepository) ListActive(ctx context.Context) ([]*models.Category, error) {
	query := `SELECT id, code, name, description, is_active FROM categories WHERE is_active ORDER BY code`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Category
	for rows.Next() {
		c := &models.Category{}
		var description sql.NullString
		if err := rows.Scan(&c.ID, &c.Code, &c.Name, &description, &c.IsActive); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		c.Description = description.String
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}
