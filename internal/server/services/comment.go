package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/minseok/enigma/internal/common"
	"github.com/minseok/enigma/internal/server/models"
	"github.com/minseok/enigma/internal/server/partition"
	"github.com/minseok/enigma/internal/server/repositories/repomanager"
)

// CreateCommentParams carries a comment creation request. The school level is
// declared by the caller and checked against the commenting user's level; it
// is deliberately not cross-checked against the post's level.
type CreateCommentParams struct {
	PostID      string
	UserID      string
	Content     string
	SchoolLevel string
}

// CommentService covers comment creation, listing and soft deletion.
type CommentService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewCommentService(db *sql.DB, m repomanager.RepositoryManager) *CommentService {
	return &CommentService{db: db, repomanager: m}
}

func (s *CommentService) CreateComment(ctx context.Context, p CreateCommentParams) (*CommentView, error) {
	user, err := s.user(ctx, p.UserID)
	if err != nil {
		return nil, err
	}

	post, err := s.post(ctx, p.PostID)
	if err != nil {
		return nil, err
	}

	level, err := models.ParseSchoolLevel(p.SchoolLevel)
	if err != nil {
		return nil, err
	}

	if err := partition.Enforce(user.SchoolLevel, level); err != nil {
		return nil, err
	}

	comment := &models.Comment{
		PostID:      post.ID,
		UserID:      user.ID,
		Content:     p.Content,
		Status:      models.StatusActive,
		SchoolLevel: level,
	}
	if _, err := s.repomanager.Comments(s.db).Create(ctx, comment); err != nil {
		return nil, fmt.Errorf("error creating comment: %w", err)
	}

	return toCommentView(comment, user.UserName), nil
}

// CommentsByPost lists a post's active comments.
func (s *CommentService) CommentsByPost(ctx context.Context, postID, userID string) ([]*CommentView, error) {
	if _, err := s.user(ctx, userID); err != nil {
		return nil, err
	}

	post, err := s.post(ctx, postID)
	if err != nil {
		return nil, err
	}

	comments, err := s.repomanager.Comments(s.db).FindByPostAndStatus(ctx, post.ID, models.StatusActive)
	if err != nil {
		return nil, fmt.Errorf("error listing comments: %w", err)
	}

	usersRepo := s.repomanager.Users(s.db)
	userNames := map[string]string{}

	views := make([]*CommentView, 0, len(comments))
	for _, c := range comments {
		name, ok := userNames[c.UserID]
		if !ok {
			u, err := usersRepo.FindByID(ctx, c.UserID)
			if err != nil {
				return nil, fmt.Errorf("error resolving commenter: %w", err)
			}
			name = u.UserName
			userNames[c.UserID] = name
		}
		views = append(views, toCommentView(c, name))
	}

	return views, nil
}

// DeleteComment moves a comment to DELETED. Only its author may delete it.
func (s *CommentService) DeleteComment(ctx context.Context, commentID, userID string) error {
	comment, err := s.repomanager.Comments(s.db).FindByID(ctx, commentID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return common.ErrCommentNotFound
		}
		return common.ErrInternal
	}
	if comment.Status != models.StatusActive {
		return common.ErrCommentNotFound
	}

	if comment.UserID != userID {
		return common.ErrInvalidAccess
	}

	if err := s.repomanager.Comments(s.db).UpdateStatus(ctx, comment.ID, models.StatusDeleted); err != nil {
		return fmt.Errorf("error deleting comment: %w", err)
	}
	return nil
}

func (s *CommentService) user(ctx context.Context, userID string) (*models.User, error) {
	user, err := s.repomanager.Users(s.db).FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrUserNotFound
		}
		return nil, common.ErrInternal
	}
	return user, nil
}

func (s *CommentService) post(ctx context.Context, postID string) (*models.Post, error) {
	post, err := s.repomanager.Posts(s.db).FindByID(ctx, postID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrPostNotFound
		}
		return nil, common.ErrInternal
	}
	return post, nil
}
