package comments

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

const commentColumns = `id, post_id, user_id, content, status, school_level, created_at, updated_at`

func scanComment(row interface{ Scan(...any) error }) (*models.Comment, error) {
	c := &models.Comment{}
	err := row.Scan(&c.ID, &c.PostID, &c.UserID, &c.Content, &c.Status, &c.SchoolLevel, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (r *PostgresRepository) Create(ctx context.Context, comment *models.Comment) (*models.Comment, error) {

	query :=
		`INSERT INTO comments (post_id, user_id, content, status, school_level)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, created_at, updated_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		comment.PostID, comment.UserID, comment.Content, comment.Status, comment.SchoolLevel).
		Scan(&comment.ID, &comment.CreatedAt, &comment.UpdatedAt)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return comment, nil
}

func (r *PostgresRepository) FindByID(ctx context.Context, id string) (*models.Comment, error) {
	query := `SELECT ` + commentColumns + ` FROM comments WHERE id = $1`

	comment, err := scanComment(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return comment, nil
}

func (r *PostgresRepository) FindByPostAndStatus(ctx context.Context, postID string, status models.Status) ([]*models.Comment, error) {
	query := `SELECT ` + commentColumns + ` FROM comments WHERE post_id = $1 AND status = $2 ORDER BY created_at`

	rows, err := r.db.QueryContext(ctx, query, postID, status)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Comment
	for rows.Next() {
		c, err := scanComment(rows)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

func (r *PostgresRepository) UpdateStatus(ctx context.Context, id string, status models.Status) error {
	query := `UPDATE comments SET status = $2, updated_at = now() WHERE id = $1`

	res, err := r.db.ExecContext(ctx, query, id, status)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return common.ErrNotFound
	}

	return nil
}
