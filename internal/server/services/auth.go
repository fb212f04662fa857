// Package services contains server-side business logic. This file implements
// AuthService, which handles signup and login and issues identity tokens.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/minseok/enigma/internal/common"
	"github.com/minseok/enigma/internal/dbx"
	"github.com/minseok/enigma/internal/server/auth"
	"github.com/minseok/enigma/internal/server/models"
	"github.com/minseok/enigma/internal/server/repositories/repomanager"
)

// SignupParams carries everything needed to create an account. SchoolLevel is
// the raw string and is parsed case-insensitively.
type SignupParams struct {
	UserName    string
	Password    string
	Email       string
	SchoolLevel string
	Grade       int
}

// LoginResult is the identity assertion returned on a successful login.
type LoginResult struct {
	UserID   string `json:"user_id"`
	UserName string `json:"user_name"`
	Token    string `json:"token"`
}

// AuthService provides credential issuance and verification:
// - Signup: uniqueness + password policy checks, then create the account
// - Login: verify credentials and mint a token
type AuthService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	hasher      auth.Hasher
	tokens      auth.TokenCodec
}

func NewAuthService(db *sql.DB, m repomanager.RepositoryManager, hasher auth.Hasher, tokens auth.TokenCodec) *AuthService {
	return &AuthService{db: db, repomanager: m, hasher: hasher, tokens: tokens}
}

// Signup registers a new account. Checks run in a fixed order, each
// short-circuiting with its own error: username free, email free, password
// policy, school level parse. The check-then-insert pair runs inside one
// transaction, with the unique constraints on username/email as the backstop
// for concurrent signups. No token is issued at signup.
func (s *AuthService) Signup(ctx context.Context, p SignupParams) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Users(tx)

		taken, err := repo.ExistsByUserName(ctx, p.UserName)
		if err != nil {
			return fmt.Errorf("error checking user name: %w", err)
		}
		if taken {
			return common.ErrUserNameTaken
		}

		taken, err = repo.ExistsByEmail(ctx, p.Email)
		if err != nil {
			return fmt.Errorf("error checking email: %w", err)
		}
		if taken {
			return common.ErrEmailTaken
		}

		if !auth.ValidPassword(p.Password) {
			return common.ErrWeakPassword
		}

		level, err := models.ParseSchoolLevel(p.SchoolLevel)
		if err != nil {
			return err
		}

		hash, err := s.hasher.Hash(p.Password)
		if err != nil {
			return common.ErrInternal
		}

		user := &models.User{
			UserName:     p.UserName,
			PasswordHash: hash,
			Email:        p.Email,
			SchoolLevel:  level,
			Grade:        p.Grade,
		}
		if _, err := repo.Create(ctx, user); err != nil {
			return fmt.Errorf("error creating user: %w", err)
		}

		return nil
	})
}

// Login verifies the password against the stored hash and, on success,
// returns a token bound to the account's id and user name. An unknown user
// name and a wrong password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, userName, password string) (*LoginResult, error) {
	repo := s.repomanager.Users(s.db)

	user, err := repo.FindByUserName(ctx, userName)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrInvalidCredentials
		}
		return nil, common.ErrInternal
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return nil, common.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID, user.UserName)
	if err != nil {
		return nil, common.ErrInternal
	}

	return &LoginResult{UserID: user.ID, UserName: user.UserName, Token: token}, nil
}
