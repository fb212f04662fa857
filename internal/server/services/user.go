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
	"github.com/minseok/enigma/internal/server/repositories/users"
)

// UpdateUserParams carries a profile update. Password and Email are optional;
// empty values leave the stored ones untouched. SchoolLevel and Grade are
// always applied.
type UpdateUserParams struct {
	Password    string
	Email       string
	SchoolLevel string
	Grade       int
}

// UserService covers profile reads/updates and the friend graph.
type UserService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	hasher      auth.Hasher
}

func NewUserService(db *sql.DB, m repomanager.RepositoryManager, hasher auth.Hasher) *UserService {
	return &UserService{db: db, repomanager: m, hasher: hasher}
}

func (s *UserService) GetUser(ctx context.Context, userID string) (*UserView, error) {
	user, err := s.findUser(ctx, s.repomanager.Users(s.db), userID)
	if err != nil {
		return nil, err
	}
	return toUserView(user), nil
}

// UpdateUser applies a profile update. A new password goes through the same
// policy gate as signup; a new email is re-checked for uniqueness.
func (s *UserService) UpdateUser(ctx context.Context, userID string, p UpdateUserParams) (*UserView, error) {
	var view *UserView

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Users(tx)

		user, err := s.findUser(ctx, repo, userID)
		if err != nil {
			return err
		}

		if p.Password != "" {
			if !auth.ValidPassword(p.Password) {
				return common.ErrWeakPassword
			}
			hash, err := s.hasher.Hash(p.Password)
			if err != nil {
				return common.ErrInternal
			}
			user.PasswordHash = hash
		}

		if p.Email != "" && p.Email != user.Email {
			taken, err := repo.ExistsByEmail(ctx, p.Email)
			if err != nil {
				return fmt.Errorf("error checking email: %w", err)
			}
			if taken {
				return common.ErrEmailTaken
			}
			user.Email = p.Email
		}

		level, err := models.ParseSchoolLevel(p.SchoolLevel)
		if err != nil {
			return err
		}
		user.SchoolLevel = level
		user.Grade = p.Grade

		if err := repo.Update(ctx, user); err != nil {
			return fmt.Errorf("error updating user: %w", err)
		}

		view = toUserView(user)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return view, nil
}

func (s *UserService) UsersBySchoolLevelAndGrade(ctx context.Context, level models.SchoolLevel, grade int) ([]*UserView, error) {
	users, err := s.repomanager.Users(s.db).FindBySchoolLevelAndGrade(ctx, level, grade)
	if err != nil {
		return nil, fmt.Errorf("error listing users: %w", err)
	}

	views := make([]*UserView, 0, len(users))
	for _, u := range users {
		views = append(views, toUserView(u))
	}
	return views, nil
}

// AddFriend inserts a directed edge from userID to friendID. The insert only
// touches the initiating side; no reciprocal edge is created. Adding an
// existing edge is a no-op.
func (s *UserService) AddFriend(ctx context.Context, userID, friendID string) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := s.checkBothExist(ctx, tx, userID, friendID); err != nil {
			return err
		}
		if err := s.repomanager.Friends(tx).Add(ctx, userID, friendID); err != nil {
			return fmt.Errorf("error adding friend: %w", err)
		}
		return nil
	})
}

// RemoveFriend deletes the directed edge if present; removing an absent edge
// is a no-op, not an error.
func (s *UserService) RemoveFriend(ctx context.Context, userID, friendID string) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := s.checkBothExist(ctx, tx, userID, friendID); err != nil {
			return err
		}
		if err := s.repomanager.Friends(tx).Remove(ctx, userID, friendID); err != nil {
			return fmt.Errorf("error removing friend: %w", err)
		}
		return nil
	})
}

// Friends resolves the account's outgoing friend set to profile views.
// Order is not guaranteed.
func (s *UserService) Friends(ctx context.Context, userID string) ([]*UserView, error) {
	if _, err := s.findUser(ctx, s.repomanager.Users(s.db), userID); err != nil {
		return nil, err
	}

	friends, err := s.repomanager.Friends(s.db).ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error listing friends: %w", err)
	}

	views := make([]*UserView, 0, len(friends))
	for _, f := range friends {
		views = append(views, toUserView(f))
	}
	return views, nil
}

func (s *UserService) checkBothExist(ctx context.Context, tx dbx.DBTX, userID, friendID string) error {
	repo := s.repomanager.Users(tx)
	if _, err := s.findUser(ctx, repo, userID); err != nil {
		return err
	}
	if _, err := s.findUser(ctx, repo, friendID); err != nil {
		return err
	}
	return nil
}

func (s *UserService) findUser(ctx context.Context, repo users.Repository, userID string) (*models.User, error) {
	user, err := repo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrUserNotFound
		}
		return nil, common.ErrInternal
	}
	return user, nil
}
