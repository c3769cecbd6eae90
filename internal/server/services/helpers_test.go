package services

import (
	"context"
	"testing"
	"time"

	"github.com/dmitrijs2005/jitsunotes/internal/logging"
	"github.com/dmitrijs2005/jitsunotes/internal/server/config"
	"github.com/dmitrijs2005/jitsunotes/internal/server/models"
	"github.com/dmitrijs2005/jitsunotes/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/jitsunotes/internal/server/storage"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// testEnv is a migrated in-memory SQLite store with both services wired
// to it and a clock the test controls.
type testEnv struct {
	db    *storage.Database
	rm    repomanager.RepositoryManager
	users *UserService
	notes *NotesService
	clock time.Time
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	ctx := context.Background()

	db, err := storage.Open(ctx, "sqlite:///file:"+uuid.NewString()+"?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	rm := repomanager.NewSQLRepositoryManager()
	require.NoError(t, rm.RunMigrations(ctx, db.DB.DB, db.Dialect))

	env := &testEnv{
		db:    db,
		rm:    rm,
		clock: time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC),
	}
	cfg := &config.Config{BcryptCost: bcrypt.MinCost}
	env.users = NewUserService(db.DB, rm, cfg, logging.Nop(), WithClock(func() time.Time { return env.clock }))
	env.notes = NewNotesService(db.DB, rm, logging.Nop())
	return env
}

func (e *testEnv) register(t *testing.T, username string) *models.User {
	t.Helper()
	u, err := e.users.Register(context.Background(), username, username+"@example.com", username+"-pw")
	require.NoError(t, err)
	return u
}

func (e *testEnv) count(t *testing.T, table string) int {
	t.Helper()
	var n int
	require.NoError(t, e.db.DB.Get(&n, "SELECT COUNT(*) FROM "+table))
	return n
}

func ptr[T any](v T) *T { return &v }
