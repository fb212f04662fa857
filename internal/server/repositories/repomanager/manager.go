package repomanager

import (
	"context"
	"database/sql"

	"github.com/minseok/enigma/internal/dbx"
	"github.com/minseok/enigma/internal/server/repositories/categories"
	"github.com/minseok/enigma/internal/server/repositories/comments"
	"github.com/minseok/enigma/internal/server/repositories/friends"
	"github.com/minseok/enigma/internal/server/repositories/posts"
	"github.com/minseok/enigma/internal/server/repositories/users"
)

// RepositoryManager vends repositories bound to a particular DBTX, which is
// how services run several repositories inside one transaction.
type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Categories(db dbx.DBTX) categories.Repository
	Posts(db dbx.DBTX) posts.Repository
	Comments(db dbx.DBTX) comments.Repository
	Friends(db dbx.DBTX) friends.Repository
}
