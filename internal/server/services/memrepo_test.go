package services

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/minseok/enigma/internal/common"
	"github.com/minseok/enigma/internal/dbx"
	"github.com/minseok/enigma/internal/server/models"
	categoriesrepo "github.com/minseok/enigma/internal/server/repositories/categories"
	commentsrepo "github.com/minseok/enigma/internal/server/repositories/comments"
	friendsrepo "github.com/minseok/enigma/internal/server/repositories/friends"
	postsrepo "github.com/minseok/enigma/internal/server/repositories/posts"
	usersrepo "github.com/minseok/enigma/internal/server/repositories/users"
)

// In-memory repositories shared by the service tests. They ignore the DBTX
// they are vended with; transaction plumbing is exercised separately through
// sqlmock Begin/Commit expectations.

type memStore struct {
	users      map[string]*models.User
	friends    map[string]map[string]bool
	posts      map[string]*models.Post
	comments   map[string]*models.Comment
	categories map[string]*models.Category
}

func newMemStore() *memStore {
	return &memStore{
		users:      map[string]*models.User{},
		friends:    map[string]map[string]bool{},
		posts:      map[string]*models.Post{},
		comments:   map[string]*models.Comment{},
		categories: map[string]*models.Category{},
	}
}

func (m *memStore) addUser(name string, level models.SchoolLevel, grade int) *models.User {
	u := &models.User{
		ID:           uuid.NewString(),
		UserName:     name,
		PasswordHash: "x",
		Email:        name + "@example.com",
		SchoolLevel:  level,
		Grade:        grade,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	m.users[u.ID] = u
	return u
}

func (m *memStore) addCategory(name string) *models.Category {
	c := &models.Category{ID: uuid.NewString(), Code: name, Name: name, IsActive: true}
	m.categories[c.ID] = c
	return c
}

type memUsers struct{ s *memStore }

func (r *memUsers) Create(ctx context.Context, u *models.User) (*models.User, error) {
	u.ID = uuid.NewString()
	u.CreatedAt = time.Now()
	u.UpdatedAt = u.CreatedAt
	r.s.users[u.ID] = u
	return u, nil
}

func (r *memUsers) FindByID(ctx context.Context, id string) (*models.User, error) {
	if u, ok := r.s.users[id]; ok {
		return u, nil
	}
	return nil, common.ErrNotFound
}

func (r *memUsers) FindByUserName(ctx context.Context, name string) (*models.User, error) {
	for _, u := range r.s.users {
		if u.UserName == name {
			return u, nil
		}
	}
	return nil, common.ErrNotFound
}

func (r *memUsers) ExistsByUserName(ctx context.Context, name string) (bool, error) {
	_, err := r.FindByUserName(ctx, name)
	return err == nil, nil
}

func (r *memUsers) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	for _, u := range r.s.users {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (r *memUsers) Update(ctx context.Context, u *models.User) error {
	if _, ok := r.s.users[u.ID]; !ok {
		return common.ErrNotFound
	}
	u.UpdatedAt = time.Now()
	r.s.users[u.ID] = u
	return nil
}

func (r *memUsers) FindBySchoolLevelAndGrade(ctx context.Context, level models.SchoolLevel, grade int) ([]*models.User, error) {
	var result []*models.User
	for _, u := range r.s.users {
		if u.SchoolLevel == level && u.Grade == grade {
			result = append(result, u)
		}
	}
	return result, nil
}

type memFriends struct{ s *memStore }

func (r *memFriends) Add(ctx context.Context, userID, friendID string) error {
	if r.s.friends[userID] == nil {
		r.s.friends[userID] = map[string]bool{}
	}
	r.s.friends[userID][friendID] = true
	return nil
}

func (r *memFriends) Remove(ctx context.Context, userID, friendID string) error {
	delete(r.s.friends[userID], friendID)
	return nil
}

func (r *memFriends) ListByUser(ctx context.Context, userID string) ([]*models.User, error) {
	var result []*models.User
	for friendID := range r.s.friends[userID] {
		if u, ok := r.s.users[friendID]; ok {
			result = append(result, u)
		}
	}
	return result, nil
}

type memPosts struct{ s *memStore }

func (r *memPosts) Create(ctx context.Context, p *models.Post) (*models.Post, error) {
	p.ID = uuid.NewString()
	p.CreatedAt = time.Now()
	p.UpdatedAt = p.CreatedAt
	r.s.posts[p.ID] = p
	return p, nil
}

func (r *memPosts) FindByID(ctx context.Context, id string) (*models.Post, error) {
	if p, ok := r.s.posts[id]; ok {
		clone := *p
		return &clone, nil
	}
	return nil, common.ErrNotFound
}

func (r *memPosts) FindBySchoolLevel(ctx context.Context, level models.SchoolLevel, status models.Status) ([]*models.Post, error) {
	var result []*models.Post
	for _, p := range r.s.posts {
		if p.SchoolLevel == level && p.Status == status {
			result = append(result, p)
		}
	}
	return result, nil
}

func (r *memPosts) IncrementViewCount(ctx context.Context, id string) error {
	if p, ok := r.s.posts[id]; ok {
		p.ViewCount++
		return nil
	}
	return common.ErrNotFound
}

func (r *memPosts) UpdateStatus(ctx context.Context, id string, status models.Status) error {
	if p, ok := r.s.posts[id]; ok {
		p.Status = status
		return nil
	}
	return common.ErrNotFound
}

type memComments struct{ s *memStore }

func (r *memComments) Create(ctx context.Context, c *models.Comment) (*models.Comment, error) {
	c.ID = uuid.NewString()
	c.CreatedAt = time.Now()
	c.UpdatedAt = c.CreatedAt
	r.s.comments[c.ID] = c
	return c, nil
}

func (r *memComments) FindByID(ctx context.Context, id string) (*models.Comment, error) {
	if c, ok := r.s.comments[id]; ok {
		return c, nil
	}
	return nil, common.ErrNotFound
}

func (r *memComments) FindByPostAndStatus(ctx context.Context, postID string, status models.Status) ([]*models.Comment, error) {
	var result []*models.Comment
	for _, c := range r.s.comments {
		if c.PostID == postID && c.Status == status {
			result = append(result, c)
		}
	}
	return result, nil
}

func (r *memComments) UpdateStatus(ctx context.Context, id string, status models.Status) error {
	if c, ok := r.s.comments[id]; ok {
		c.Status = status
		return nil
	}
	return common.ErrNotFound
}

type memCategories struct{ s *memStore }

func (r *memCategories) FindByID(ctx context.Context, id string) (*models.Category, error) {
	if c, ok := r.s.categories[id]; ok {
		return c, nil
	}
	return nil, common.ErrNotFound
}

func (r *memCategories) ListActive(ctx context.Context) ([]*models.Category, error) {
	var result []*models.Category
	for _, c := range r.s.categories {
		if c.IsActive {
			result = append(result, c)
		}
	}
	return result, nil
}

type memRepoManager struct{ s *memStore }

func newMemRepoManager() *memRepoManager { return &memRepoManager{s: newMemStore()} }

func (m *memRepoManager) RunMigrations(context.Context, *sql.DB) error { return nil }
func (m *memRepoManager) Users(db dbx.DBTX) usersrepo.Repository { return &memUsers{s: m.s} }
func (m *memRepoManager) Categories(db dbx.DBTX) categoriesrepo.Repository { return &memCategories{s: m.s} }
func (m *memRepoManager) Posts(db dbx.DBTX) postsrepo.Repository { return &memPosts{s: m.s} }
func (m *memRepoManager) Comments(db dbx.DBTX) commentsrepo.Repository { return &memComments{s: m.s} }
func (m *memRepoManager) Friends(db dbx.DBTX) friendsrepo.Repository { return &memFriends{s: m.s} }
