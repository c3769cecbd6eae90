package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/dmitrijs2005/jitsunotes/internal/dbx"
	"github.com/dmitrijs2005/jitsunotes/internal/server/repositories/repomanager"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseURI(t *testing.T) {
	tests := []struct {
		name    string
		uri     string
		want    Target
		wantErr bool
	}{
		{
			name: "postgres",
			uri:  "postgres://u:p@localhost:5432/notes",
			want: Target{Driver: "pgx", DSN: "postgres://u:p@localhost:5432/notes", Dialect: dbx.DialectPostgres},
		},
		{
			name: "postgresql scheme",
			uri:  "postgresql://localhost/notes?sslmode=disable",
			want: Target{Driver: "pgx", DSN: "postgresql://localhost/notes?sslmode=disable", Dialect: dbx.DialectPostgres},
		},
		{
			name: "relative sqlite",
			uri:  "sqlite:///jiu_jitsu_notes.db",
			want: Target{Driver: "sqlite", DSN: "jiu_jitsu_notes.db?" + sqliteParams, Dialect: dbx.DialectSQLite, Path: "jiu_jitsu_notes.db"},
		},
		{
			name: "absolute sqlite",
			uri:  "sqlite:////var/lib/notes.db",
			want: Target{Driver: "sqlite", DSN: "/var/lib/notes.db?" + sqliteParams, Dialect: dbx.DialectSQLite, Path: "/var/lib/notes.db"},
		},
		{
			name: "sqlite with query",
			uri:  "sqlite:///file:x?mode=memory",
			want: Target{Driver: "sqlite", DSN: "file:x?mode=memory&" + sqliteParams, Dialect: dbx.DialectSQLite},
		},
		{
			name: "sqlite memory",
			uri:  "sqlite:///:memory:",
			want: Target{Driver: "sqlite", DSN: ":memory:?" + sqliteParams, Dialect: dbx.DialectSQLite},
		},
		{name: "empty sqlite path", uri: "sqlite:///", wantErr: true},
		{name: "unknown scheme", uri: "mysql://localhost/notes", wantErr: true},
		{name: "empty", uri: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseURI(tt.uri)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnsupportedURI)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestOpen_SQLiteWithMigrations(t *testing.T) {
	ctx := context.Background()

	db, err := Open(ctx, "sqlite:///file:"+uuid.NewString()+"?mode=memory&cache=shared")
	require.NoError(t, err)
	defer db.Close()

	assert.Equal(t, dbx.DialectSQLite, db.Dialect)

	rm := repomanager.NewSQLRepositoryManager()
	require.NoError(t, rm.RunMigrations(ctx, db.DB.DB, db.Dialect))

	var fk int
	require.NoError(t, db.DB.GetContext(ctx, &fk, "PRAGMA foreign_keys"))
	assert.Equal(t, 1, fk)

	var n int
	require.NoError(t, db.DB.GetContext(ctx, &n, "SELECT COUNT(*) FROM position_groups"))
	assert.Zero(t, n)
}

func TestOpen_SQLiteFileCreatesDirectory(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "data", "notes.db")

	db, err := Open(ctx, "sqlite:///"+path)
	require.NoError(t, err)
	defer db.Close()

	_, err = db.DB.ExecContext(ctx, "CREATE TABLE t (id INTEGER PRIMARY KEY)")
	require.NoError(t, err)

	_, err = os.Stat(path)
	assert.NoError(t, err)
}

func TestOpen_Unsupported(t *testing.T) {
	_, err := Open(context.Background(), "redis://localhost")
	assert.ErrorIs(t, err, ErrUnsupportedURI)
}

func TestClose_Nil(t *testing.T) {
	var db *Database
	assert.NoError(t, db.Close())
}
