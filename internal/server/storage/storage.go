// Package storage opens the process-wide database pool from a DATABASE_URI
// and owns its teardown.
package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/jitsunotes/internal/dbx"
	"github.com/dmitrijs2005/jitsunotes/internal/filex"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

const (
	sqlitePrefix = "sqlite://"

	// sqliteParams turns on FK enforcement for every pooled connection and
	// makes the driver write timestamps in a format it can read back.
	sqliteParams = "_pragma=foreign_keys(1)&_time_format=sqlite"
)

var ErrUnsupportedURI = errors.New("unsupported database uri")

// Database is the process-wide pool plus the dialect it speaks.
type Database struct {
	DB      *sqlx.DB
	Dialect string
}

// Target is a parsed DATABASE_URI. Path is set only for SQLite databases
// that live in a regular file.
type Target struct {
	Driver  string
	DSN     string
	Dialect string
	Path    string
}

// ParseURI maps a DATABASE_URI onto a database/sql driver.
//
//	postgres://u:p@host/db      -> pgx, unchanged
//	sqlite:///notes.db          -> sqlite, "notes.db"
//	sqlite:////var/lib/notes.db -> sqlite, "/var/lib/notes.db"
func ParseURI(uri string) (Target, error) {
	switch {
	case strings.HasPrefix(uri, "postgres://"), strings.HasPrefix(uri, "postgresql://"):
		return Target{Driver: "pgx", DSN: uri, Dialect: dbx.DialectPostgres}, nil

	case strings.HasPrefix(uri, sqlitePrefix):
		path := strings.TrimPrefix(uri, sqlitePrefix)
		path = strings.TrimPrefix(path, "/")
		if path == "" {
			return Target{}, fmt.Errorf("%w: empty sqlite path", ErrUnsupportedURI)
		}
		target := Target{Driver: "sqlite", Dialect: dbx.DialectSQLite}
		if strings.Contains(path, "?") {
			target.DSN = path + "&" + sqliteParams
		} else {
			target.DSN = path + "?" + sqliteParams
		}
		file, _, _ := strings.Cut(path, "?")
		if !strings.HasPrefix(file, "file:") && file != ":memory:" {
			target.Path = file
		}
		return target, nil
	}

	return Target{}, fmt.Errorf("%w: %q", ErrUnsupportedURI, uri)
}

// Open parses uri, opens the pool and checks connectivity.
func Open(ctx context.Context, uri string) (*Database, error) {
	target, err := ParseURI(uri)
	if err != nil {
		return nil, err
	}

	if target.Path != "" {
		if _, err := filex.EnsureParentDir(target.Path); err != nil {
			return nil, fmt.Errorf("db path error: %w", err)
		}
	}

	db, err := sqlx.Open(target.Driver, target.DSN)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}

	if target.Dialect == dbx.DialectSQLite {
		// one writer; avoids SQLITE_BUSY between pooled connections
		db.SetMaxOpenConns(1)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("db ping error: %w", err)
	}

	return &Database{DB: db, Dialect: target.Dialect}, nil
}

// Close releases the pool. Safe to call on a nil Database.
func (d *Database) Close() error {
	if d == nil || d.DB == nil {
		return nil
	}
	return d.DB.Close()
}
