package httpapi

import (
	"context"
	"database/sql"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/minseok/enigma/internal/common"
	"github.com/minseok/enigma/internal/dbx"
	"github.com/minseok/enigma/internal/logging"
	"github.com/minseok/enigma/internal/server/models"
	categoriesrepo "github.com/minseok/enigma/internal/server/repositories/categories"
	commentsrepo "github.com/minseok/enigma/internal/server/repositories/comments"
	friendsrepo "github.com/minseok/enigma/internal/server/repositories/friends"
	postsrepo "github.com/minseok/enigma/internal/server/repositories/posts"
	usersrepo "github.com/minseok/enigma/internal/server/repositories/users"
)

// Stub repositories backing the handler tests. The HTTP layer is exercised
// against real services wired over these.

type stubStore struct {
	users      map[string]*models.User
	friends    map[string]map[string]bool
	posts      map[string]*models.Post
	comments   map[string]*models.Comment
	categories map[string]*models.Category
}

func newStubStore() *stubStore {
	return &stubStore{
		users:      map[string]*models.User{},
		friends:    map[string]map[string]bool{},
		posts:      map[string]*models.Post{},
		comments:   map[string]*models.Comment{},
		categories: map[string]*models.Category{},
	}
}

type stubUsers struct{ s *stubStore }

func (r *stubUsers) Create(ctx context.Context, u *models.User) (*models.User, error) {
	u.ID = uuid.NewString()
	u.CreatedAt = time.Now()
	u.UpdatedAt = u.CreatedAt
	r.s.users[u.ID] = u
	return u, nil
}

func (r *stubUsers) FindByID(ctx context.Context, id string) (*models.User, error) {
	if u, ok := r.s.users[id]; ok {
		return u, nil
	}
	return nil, common.ErrNotFound
}

func (r *stubUsers) FindByUserName(ctx context.Context, name string) (*models.User, error) {
	for _, u := range r.s.users {
		if u.UserName == name {
			return u, nil
		}
	}
	return nil, common.ErrNotFound
}

func (r *stubUsers) ExistsByUserName(ctx context.Context, name string) (bool, error) {
	_, err := r.FindByUserName(ctx, name)
	return err == nil, nil
}

func (r *stubUsers) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	for _, u := range r.s.users {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (r *stubUsers) Update(ctx context.Context, u *models.User) error {
	if _, ok := r.s.users[u.ID]; !ok {
		return common.ErrNotFound
	}
	r.s.users[u.ID] = u
	return nil
}

func (r *stubUsers) FindBySchoolLevelAndGrade(ctx context.Context, level models.SchoolLevel, grade int) ([]*models.User, error) {
	var result []*models.User
	for _, u := range r.s.users {
		if u.SchoolLevel == level && u.Grade == grade {
			result = append(result, u)
		}
	}
	return result, nil
}

type stubFriends struct{ s *stubStore }

func (r *stubFriends) Add(ctx context.Context, userID, friendID string) error {
	if r.s.friends[userID] == nil {
		r.s.friends[userID] = map[string]bool{}
	}
	r.s.friends[userID][friendID] = true
	return nil
}

func (r *stubFriends) Remove(ctx context.Context, userID, friendID string) error {
	delete(r.s.friends[userID], friendID)
	return nil
}

func (r *stubFriends) ListByUser(ctx context.Context, userID string) ([]*models.User, error) {
	var result []*models.User
	for friendID := range r.s.friends[userID] {
		if u, ok := r.s.users[friendID]; ok {
			result = append(result, u)
		}
	}
	return result, nil
}

type stubPosts struct{ s *stubStore }

func (r *stubPosts) Create(ctx context.Context, p *models.Post) (*models.Post, error) {
	p.ID = uuid.NewString()
	p.CreatedAt = time.Now()
	p.UpdatedAt = p.CreatedAt
	r.s.posts[p.ID] = p
	return p, nil
}

func (r *stubPosts) FindByID(ctx context.Context, id string) (*models.Post, error) {
	if p, ok := r.s.posts[id]; ok {
		clone := *p
		return &clone, nil
	}
	return nil, common.ErrNotFound
}

func (r *stubPosts) FindBySchoolLevel(ctx context.Context, level models.SchoolLevel, status models.Status) ([]*models.Post, error) {
	var result []*models.Post
	for _, p := range r.s.posts {
		if p.SchoolLevel == level && p.Status == status {
			result = append(result, p)
		}
	}
	return result, nil
}

func (r *stubPosts) IncrementViewCount(ctx context.Context, id string) error {
	if p, ok := r.s.posts[id]; ok {
		p.ViewCount++
		return nil
	}
	return common.ErrNotFound
}

func (r *stubPosts) UpdateStatus(ctx context.Context, id string, status models.Status) error {
	if p, ok := r.s.posts[id]; ok {
		p.Status = status
		return nil
	}
	return common.ErrNotFound
}

type stubComments struct{ s *stubStore }

func (r *stubComments) Create(ctx context.Context, c *models.Comment) (*models.Comment, error) {
	c.ID = uuid.NewString()
	c.CreatedAt = time.Now()
	c.UpdatedAt = c.CreatedAt
	r.s.comments[c.ID] = c
	return c, nil
}

func (r *stubComments) FindByID(ctx context.Context, id string) (*models.Comment, error) {
	if c, ok := r.s.comments[id]; ok {
		return c, nil
	}
	return nil, common.ErrNotFound
}

func (r *stubComments) FindByPostAndStatus(ctx context.Context, postID string, status models.Status) ([]*models.Comment, error) {
	var result []*models.Comment
	for _, c := range r.s.comments {
		if c.PostID == postID && c.Status == status {
			result = append(result, c)
		}
	}
	return result, nil
}

func (r *stubComments) UpdateStatus(ctx context.Context, id string, status models.Status) error {
	if c, ok := r.s.comments[id]; ok {
		c.Status = status
		return nil
	}
	return common.ErrNotFound
}

type stubCategories struct{ s *stubStore }

func (r *stubCategories) FindByID(ctx context.Context, id string) (*models.Category, error) {
	if c, ok := r.s.categories[id]; ok {
		return c, nil
	}
	return nil, common.ErrNotFound
}

func (r *stubCategories) ListActive(ctx context.Context) ([]*models.Category, error) {
	var result []*models.Category
	for _, c := range r.s.categories {
		if c.IsActive {
			result = append(result, c)
		}
	}
	return result, nil
}

type stubRepoManager struct{ s *stubStore }

func newStubRepoManager() *stubRepoManager { return &stubRepoManager{s: newStubStore()} }

func (m *stubRepoManager) RunMigrations(context.Context, *sql.DB) error { return nil }
func (m *stubRepoManager) Users(db dbx.DBTX) usersrepo.Repository { return &stubUsers{s: m.s} }
func (m *stubRepoManager) Categories(db dbx.DBTX) categoriesrepo.Repository { return &stubCategories{s: m.s} }
func (m *stubRepoManager) Posts(db dbx.DBTX) postsrepo.Repository { return &stubPosts{s: m.s} }
func (m *stubRepoManager) Comments(db dbx.DBTX) commentsrepo.Repository { return &stubComments{s: m.s} }
func (m *stubRepoManager) Friends(db dbx.DBTX) friendsrepo.Repository { return &stubFriends{s: m.s} }

func discardLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}
