package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/jitsunotes/internal/dbx"
	"github.com/dmitrijs2005/jitsunotes/internal/server/repositories/groups"
	"github.com/dmitrijs2005/jitsunotes/internal/server/repositories/positions"
	"github.com/dmitrijs2005/jitsunotes/internal/server/repositories/techniques"
	"github.com/dmitrijs2005/jitsunotes/internal/server/repositories/tokens"
	"github.com/dmitrijs2005/jitsunotes/internal/server/repositories/users"
)

type RepositoryManager interface {
	RunMigrations(ctx context.Context, db *sql.DB, dialect string) error
	Users(db dbx.DBTX) users.Repository
	Tokens(db dbx.DBTX) tokens.Repository
	Groups(db dbx.DBTX) groups.Repository
	Positions(db dbx.DBTX) positions.Repository
	Techniques(db dbx.DBTX) techniques.Repository
}
