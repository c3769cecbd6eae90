// Package repomanager provides a concrete RepositoryManager for the SQL
// backends, wiring together repository constructors and database migrations
// (via goose).
package repomanager

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/jitsunotes/internal/dbx"
	"github.com/dmitrijs2005/jitsunotes/internal/server/migrations"
	"github.com/dmitrijs2005/jitsunotes/internal/server/repositories/groups"
	"github.com/dmitrijs2005/jitsunotes/internal/server/repositories/positions"
	"github.com/dmitrijs2005/jitsunotes/internal/server/repositories/techniques"
	"github.com/dmitrijs2005/jitsunotes/internal/server/repositories/tokens"
	"github.com/dmitrijs2005/jitsunotes/internal/server/repositories/users"
	"github.com/pressly/goose/v3"
)

// SQLRepositoryManager vends SQL-backed repository implementations and
// exposes a schema migration hook.
type SQLRepositoryManager struct{}

func (m *SQLRepositoryManager) Users(db dbx.DBTX) users.Repository {
	return users.NewSQLRepository(db)
}

func (m *SQLRepositoryManager) Tokens(db dbx.DBTX) tokens.Repository {
	return tokens.NewSQLRepository(db)
}

func (m *SQLRepositoryManager) Groups(db dbx.DBTX) groups.Repository {
	return groups.NewSQLRepository(db)
}

func (m *SQLRepositoryManager) Positions(db dbx.DBTX) positions.Repository {
	return positions.NewSQLRepository(db)
}

func (m *SQLRepositoryManager) Techniques(db dbx.DBTX) techniques.Repository {
	return techniques.NewSQLRepository(db)
}

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// gooseDialects maps our dialect names to goose's.
var gooseDialects = map[string]string{
	dbx.DialectPostgres: "postgres",
	dbx.DialectSQLite:   "sqlite3",
}

// RunMigrations applies the embedded migrations for dialect. Each dialect
// keeps its scripts in a directory named after it.
func (m *SQLRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB, dialect string) error {
	gd, ok := gooseDialects[dialect]
	if !ok {
		return fmt.Errorf("unsupported dialect %q", dialect)
	}

	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect(gd); err != nil {
		return err
	}
	if err := gooseUpContext(ctx, db, dialect); err != nil {
		return err
	}
	return nil
}

func NewSQLRepositoryManager() RepositoryManager {
	return &SQLRepositoryManager{}
}
