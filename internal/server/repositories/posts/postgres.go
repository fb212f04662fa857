package posts

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

const postColumns = `id, title, content, user_id, category_id, view_count, status, school_level, created_at, updated_at`

func scanPost(row interface{ Scan(...any) error }) (*models.Post, error) {
	p := &models.Post{}
	var content sql.NullString
	err := row.Scan(&p.ID, &p.Title, &content, &p.AuthorID, &p.CategoryID,
		&p.ViewCount, &p.Status, &p.SchoolLevel, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	p.Content = content.String
	return p, nil
}

func (r *PostgresRepository) Create(ctx context.Context, post *models.Post) (*models.Post, error) {

	query :=
		`INSERT INTO posts (title, content, user_id, category_id, status, school_level)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, view_count, created_at, updated_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		post.Title, post.Content, post.AuthorID, post.CategoryID, post.Status, post.SchoolLevel).
		Scan(&post.ID, &post.ViewCount, &post.CreatedAt, &post.UpdatedAt)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return post, nil
}

func (r *PostgresRepository) FindByID(ctx context.Context, id string) (*models.Post, error) {
	query := `SELECT ` + postColumns + ` FROM posts WHERE id = $1`

	post, err := scanPost(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return post, nil
}

func (r *PostgresRepository) FindBySchoolLevel(ctx context.Context, level models.SchoolLevel, status models.Status) ([]*models.Post, error) {
	query := `SELECT ` + postColumns + ` FROM posts WHERE school_level = $1 AND status = $2 ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, level, status)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Post
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

func (r *PostgresRepository) IncrementViewCount(ctx context.Context, id string) error {
	query := `UPDATE posts SET view_count = view_count + 1 WHERE id = $1`

	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}

func (r *PostgresRepository) UpdateStatus(ctx context.Context, id string, status models.Status) error {
	query := `UPDATE posts SET status = $2, updated_at = now() WHERE id = $1`

	res, err := r.db.ExecContext(ctx, query, id, status)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return common.ErrNotFound
	}

	return nil
}
