package friends

import (
	"context"
	"fmt"

	"github.com/minseok/enigma/internal/dbx"
	"github.com/minseok/enigma/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Add(ctx context.Context, userID, friendID string) error {
	// ON CONFLICT keeps the add idempotent: the edge set is deduplicated by
	// its (user_id, friend_id) primary key.
	query :=
		`INSERT INTO friends (user_id, friend_id)
		 VALUES ($1, $2)
		 ON CONFLICT (user_id, friend_id) DO NOTHING
		 `

	if _, err := r.db.ExecContext(ctx, query, userID, friendID); err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}

func (r *PostgresRepository) Remove(ctx context.Context, userID, friendID string) error {
	query := `DELETE FROM friends WHERE user_id = $1 AND friend_id = $2`

	if _, err := r.db.ExecContext(ctx, query, userID, friendID); err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}

func (r *PostgresRepository) ListByUser(ctx context.Context, userID string) ([]*models.User, error) {
	query :=
		`SELECT u.id, u.username, u.password_hash, u.email, u.school_level, u.grade, u.created_at, u.updated_at
		 FROM friends f
		 JOIN users u ON u.id = f.friend_id
		 WHERE f.user_id = $1
		 `

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.User
	for rows.Next() {
		u := &models.User{}
		if err := rows.Scan(&u.ID, &u.UserName, &u.PasswordHash, &u.Email, &u.SchoolLevel, &u.Grade, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}
