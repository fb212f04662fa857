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

// CreatePostParams carries a post creation request. SchoolLevel is supplied
// explicitly by the caller and must match the author's own level.
type CreatePostParams struct {
	Title       string
	Content     string
	AuthorID    string
	CategoryID  string
	SchoolLevel string
}

// PostService covers post creation, listing, reads and soft deletion.
type PostService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewPostService(db *sql.DB, m repomanager.RepositoryManager) *PostService {
	return &PostService{db: db, repomanager: m}
}

// CreatePost creates a post after the partition guard passes: the author's
// school level must equal the requested one. The post's level is fixed here
// and never changes.
func (s *PostService) CreatePost(ctx context.Context, p CreatePostParams) (*PostView, error) {
	author, err := s.author(ctx, p.AuthorID)
	if err != nil {
		return nil, err
	}

	category, err := s.repomanager.Categories(s.db).FindByID(ctx, p.CategoryID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrCategoryNotFound
		}
		return nil, common.ErrInternal
	}

	level, err := models.ParseSchoolLevel(p.SchoolLevel)
	if err != nil {
		return nil, err
	}

	if err := partition.Enforce(author.SchoolLevel, level); err != nil {
		return nil, err
	}

	post := &models.Post{
		Title:       p.Title,
		Content:     p.Content,
		AuthorID:    author.ID,
		CategoryID:  category.ID,
		Status:      models.StatusActive,
		SchoolLevel: level,
	}
	if _, err := s.repomanager.Posts(s.db).Create(ctx, post); err != nil {
		return nil, fmt.Errorf("error creating post: %w", err)
	}

	return toPostView(post, author.UserName, category.Name), nil
}

// GetPosts lists active posts in the caller's own school level. Partitioning
// acts as an implicit read filter here: there is no level parameter.
func (s *PostService) GetPosts(ctx context.Context, userID string) ([]*PostView, error) {
	user, err := s.author(ctx, userID)
	if err != nil {
		return nil, err
	}

	posts, err := s.repomanager.Posts(s.db).FindBySchoolLevel(ctx, user.SchoolLevel, models.StatusActive)
	if err != nil {
		return nil, fmt.Errorf("error listing posts: %w", err)
	}

	return s.toViews(ctx, posts)
}

// GetPost returns one post and bumps its view count. Deleted posts read as
// absent; cross-level reads are rejected.
func (s *PostService) GetPost(ctx context.Context, postID, userID string) (*PostView, error) {
	user, err := s.author(ctx, userID)
	if err != nil {
		return nil, err
	}

	post, err := s.activePost(ctx, postID)
	if err != nil {
		return nil, err
	}

	if err := partition.Enforce(user.SchoolLevel, post.SchoolLevel); err != nil {
		return nil, err
	}

	if err := s.repomanager.Posts(s.db).IncrementViewCount(ctx, post.ID); err != nil {
		return nil, fmt.Errorf("error counting view: %w", err)
	}
	post.ViewCount++

	views, err := s.toViews(ctx, []*models.Post{post})
	if err != nil {
		return nil, err
	}
	return views[0], nil
}

// DeletePost moves a post to DELETED. Only the author may delete; the
// transition is irreversible.
func (s *PostService) DeletePost(ctx context.Context, postID, userID string) error {
	post, err := s.activePost(ctx, postID)
	if err != nil {
		return err
	}

	if post.AuthorID != userID {
		return common.ErrInvalidAccess
	}

	if err := s.repomanager.Posts(s.db).UpdateStatus(ctx, post.ID, models.StatusDeleted); err != nil {
		return fmt.Errorf("error deleting post: %w", err)
	}
	return nil
}

func (s *PostService) author(ctx context.Context, userID string) (*models.User, error) {
	user, err := s.repomanager.Users(s.db).FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrUserNotFound
		}
		return nil, common.ErrInternal
	}
	return user, nil
}

func (s *PostService) activePost(ctx context.Context, postID string) (*models.Post, error) {
	post, err := s.repomanager.Posts(s.db).FindByID(ctx, postID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrPostNotFound
		}
		return nil, common.ErrInternal
	}
	if post.Status != models.StatusActive {
		return nil, common.ErrPostNotFound
	}
	return post, nil
}

// toViews resolves author and category names, caching lookups so a listing
// does not refetch the same user or category per post.
func (s *PostService) toViews(ctx context.Context, posts []*models.Post) ([]*PostView, error) {
	usersRepo := s.repomanager.Users(s.db)
	categoriesRepo := s.repomanager.Categories(s.db)

	authorNames := map[string]string{}
	categoryNames := map[string]string{}

	views := make([]*PostView, 0, len(posts))
	for _, p := range posts {
		authorName, ok := authorNames[p.AuthorID]
		if !ok {
			author, err := usersRepo.FindByID(ctx, p.AuthorID)
			if err != nil {
				return nil, fmt.Errorf("error resolving author: %w", err)
			}
			authorName = author.UserName
			authorNames[p.AuthorID] = authorName
		}

		categoryName, ok := categoryNames[p.CategoryID]
		if !ok {
			category, err := categoriesRepo.FindByID(ctx, p.CategoryID)
			if err != nil {
				return nil, fmt.Errorf("error resolving category: %w", err)
			}
			categoryName = category.Name
			categoryNames[p.CategoryID] = categoryName
		}

		views = append(views, toPostView(p, authorName, categoryName))
	}

	return views, nil
}
