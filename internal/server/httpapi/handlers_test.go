package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minseok/enigma/internal/server/auth"
	"github.com/minseok/enigma/internal/server/models"
	"github.com/minseok/enigma/internal/server/services"
)

const testSecret = "test-secret"

type testEnv struct {
	handler http.Handler
	rm      *stubRepoManager
	mock    sqlmock.Sqlmock
	tokens  auth.TokenCodec
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	rm := newStubRepoManager()
	hasher := auth.NewBcryptHasher()
	tokens := auth.NewJWTCodec([]byte(testSecret), time.Hour)

	srv := NewServer(
		":0",
		discardLogger(),
		tokens,
		services.NewAuthService(db, rm, hasher, tokens),
		services.NewUserService(db, rm, hasher),
		services.NewPostService(db, rm),
		services.NewCommentService(db, rm),
		services.NewCategoryService(db, rm),
	)

	return &testEnv{handler: srv.buildRouter(), rm: rm, mock: mock, tokens: tokens}
}

func (e *testEnv) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	e.handler.ServeHTTP(rec, req)
	return rec
}

// seedUser registers an account directly in the store and returns it with a
// valid token.
func (e *testEnv) seedUser(t *testing.T, name string, level models.SchoolLevel) (*models.User, string) {
	t.Helper()

	u := &models.User{
		UserName:     name,
		PasswordHash: "x",
		Email:        name + "@example.com",
		SchoolLevel:  level,
		Grade:        2,
	}
	_, err := (&stubUsers{s: e.rm.s}).Create(context.Background(), u)
	require.NoError(t, err)

	token, err := e.tokens.Issue(u.ID, u.UserName)
	require.NoError(t, err)
	return u, token
}

func TestHandleHealth(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestHandleSignup(t *testing.T) {
	env := newTestEnv(t)

	env.mock.ExpectBegin()
	env.mock.ExpectCommit()
	rec := env.do(t, http.MethodPost, "/api/auth/signup", "", map[string]any{
		"user_name": "alice", "password": "Test@1234", "email": "alice@example.com",
		"school_level": "HIGH", "grade": 2,
	})
	assert.Equal(t, http.StatusCreated, rec.Code)

	// Same username again conflicts.
	env.mock.ExpectBegin()
	env.mock.ExpectRollback()
	rec = env.do(t, http.MethodPost, "/api/auth/signup", "", map[string]any{
		"user_name": "alice", "password": "Test@1234", "email": "other@example.com",
		"school_level": "HIGH", "grade": 2,
	})
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestHandleSignupValidation(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/api/auth/signup", "", map[string]any{
		"user_name": "alice",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	env.mock.ExpectBegin()
	env.mock.ExpectRollback()
	rec = env.do(t, http.MethodPost, "/api/auth/signup", "", map[string]any{
		"user_name": "alice", "password": "weak", "email": "alice@example.com",
		"school_level": "HIGH", "grade": 2,
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body Error
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "bad_request", body.Code)
}

func TestHandleLogin(t *testing.T) {
	env := newTestEnv(t)

	env.mock.ExpectBegin()
	env.mock.ExpectCommit()
	rec := env.do(t, http.MethodPost, "/api/auth/signup", "", map[string]any{
		"user_name": "alice", "password": "Test@1234", "email": "alice@example.com",
		"school_level": "HIGH", "grade": 2,
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = env.do(t, http.MethodPost, "/api/auth/login", "", map[string]any{
		"user_name": "alice", "password": "Test@1234",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var result services.LoginResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, "alice", result.UserName)
	assert.NotEmpty(t, result.Token)

	rec = env.do(t, http.MethodPost, "/api/auth/login", "", map[string]any{
		"user_name": "alice", "password": "Wrong@1234",
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthRequired(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/api/categories", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = env.do(t, http.MethodGet, "/api/categories", "not-a-token", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	_, token := env.seedUser(t, "alice", models.SchoolLevelHigh)
	rec = env.do(t, http.MethodGet, "/api/categories", token, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandleGetUser(t *testing.T) {
	env := newTestEnv(t)
	alice, token := env.seedUser(t, "alice", models.SchoolLevelHigh)

	rec := env.do(t, http.MethodGet, "/api/users/"+alice.ID, token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var view services.UserView
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &view))
	assert.Equal(t, "alice", view.UserName)
	assert.Equal(t, "HIGH", view.SchoolLevel)
}

// A valid token for one account cannot act on another account's routes.
func TestCallerMismatch(t *testing.T) {
	env := newTestEnv(t)
	_, token := env.seedUser(t, "alice", models.SchoolLevelHigh)
	bob, _ := env.seedUser(t, "bob", models.SchoolLevelHigh)

	rec := env.do(t, http.MethodGet, "/api/users/"+bob.ID, token, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = env.do(t, http.MethodGet, "/api/posts/user/"+bob.ID, token, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestHandleCreatePost(t *testing.T) {
	env := newTestEnv(t)
	_, token := env.seedUser(t, "alice", models.SchoolLevelHigh)

	free := &models.Category{ID: "c-1", Code: "free", Name: "free", IsActive: true}
	env.rm.s.categories[free.ID] = free

	rec := env.do(t, http.MethodPost, "/api/posts", token, map[string]any{
		"title": "hello", "content": "body", "category_id": free.ID, "school_level": "HIGH",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var view services.PostView
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &view))
	assert.Equal(t, "alice", view.AuthorName)

	// Posting outside the author's level is forbidden.
	rec = env.do(t, http.MethodPost, "/api/posts", token, map[string]any{
		"title": "sneaky", "category_id": free.ID, "school_level": "MIDDLE",
	})
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestHandleAddFriend(t *testing.T) {
	env := newTestEnv(t)
	alice, token := env.seedUser(t, "alice", models.SchoolLevelHigh)
	bob, _ := env.seedUser(t, "bob", models.SchoolLevelHigh)

	env.mock.ExpectBegin()
	env.mock.ExpectCommit()
	rec := env.do(t, http.MethodPost, "/api/users/"+alice.ID+"/friends/"+bob.ID, token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = env.do(t, http.MethodGet, "/api/users/"+alice.ID+"/friends", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var friends []services.UserView
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &friends))
	require.Len(t, friends, 1)
	assert.Equal(t, "bob", friends[0].UserName)
}
