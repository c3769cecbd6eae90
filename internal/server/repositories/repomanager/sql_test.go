package repomanager

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/jitsunotes/internal/dbx"
	"github.com/dmitrijs2005/jitsunotes/internal/server/repositories/groups"
	"github.com/dmitrijs2005/jitsunotes/internal/server/repositories/positions"
	"github.com/dmitrijs2005/jitsunotes/internal/server/repositories/techniques"
	"github.com/dmitrijs2005/jitsunotes/internal/server/repositories/tokens"
	"github.com/dmitrijs2005/jitsunotes/internal/server/repositories/users"
	"github.com/jmoiron/sqlx"
	"github.com/pressly/goose/v3"
)

func newDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return db, mock
}

func TestFactories_ReturnConcreteRepos(t *testing.T) {
	raw, _ := newDB(t)
	defer raw.Close()
	db := sqlx.NewDb(raw, "pgx")

	m := NewSQLRepositoryManager()

	var _ users.Repository = m.Users(db)
	var _ tokens.Repository = m.Tokens(db)
	var _ groups.Repository = m.Groups(db)
	var _ positions.Repository = m.Positions(db)
	var _ techniques.Repository = m.Techniques(db)

	if m.Users(db) == nil || m.Tokens(db) == nil || m.Groups(db) == nil ||
		m.Positions(db) == nil || m.Techniques(db) == nil {
		t.Fatal("factory returned nil")
	}
}

func stubGoose(t *testing.T, fn func(dir string) error) {
	t.Helper()
	orig := gooseUpContext
	gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
		return fn(dir)
	}
	t.Cleanup(func() { gooseUpContext = orig })
}

func TestRunMigrations_UsesDialectDirectory(t *testing.T) {
	db, _ := newDB(t)
	defer db.Close()

	for _, dialect := range []string{dbx.DialectPostgres, dbx.DialectSQLite} {
		var gotDir string
		stubGoose(t, func(dir string) error {
			gotDir = dir
			return nil
		})

		m := &SQLRepositoryManager{}
		if err := m.RunMigrations(context.Background(), db, dialect); err != nil {
			t.Fatalf("%s: unexpected error: %v", dialect, err)
		}
		if gotDir != dialect {
			t.Fatalf("%s: dir = %q", dialect, gotDir)
		}
	}
}

func TestRunMigrations_PropagatesError(t *testing.T) {
	db, _ := newDB(t)
	defer db.Close()

	stubGoose(t, func(string) error { return errors.New("boom") })

	m := &SQLRepositoryManager{}
	err := m.RunMigrations(context.Background(), db, dbx.DialectSQLite)
	if err == nil || err.Error() != "boom" {
		t.Fatalf("expected boom, got %v", err)
	}
}

func TestRunMigrations_UnknownDialect(t *testing.T) {
	db, _ := newDB(t)
	defer db.Close()

	called := false
	stubGoose(t, func(string) error { called = true; return nil })

	m := &SQLRepositoryManager{}
	if err := m.RunMigrations(context.Background(), db, "oracle"); err == nil {
		t.Fatal("expected error for unknown dialect")
	}
	if called {
		t.Fatal("goose should not run for unknown dialect")
	}
}
