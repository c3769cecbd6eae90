// Package services contains server-side business logic. UserService owns
// credentials and session tokens; NotesService owns the owner-scoped notes
// (groups, positions, techniques).
package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/jitsunotes/internal/common"
	"github.com/dmitrijs2005/jitsunotes/internal/dbx"
	"github.com/dmitrijs2005/jitsunotes/internal/logging"
	"github.com/dmitrijs2005/jitsunotes/internal/server/auth"
	"github.com/dmitrijs2005/jitsunotes/internal/server/config"
	"github.com/dmitrijs2005/jitsunotes/internal/server/models"
	"github.com/dmitrijs2005/jitsunotes/internal/server/repositories/repomanager"
	"github.com/jmoiron/sqlx"
)

var (
	ErrUsernameTaken = fmt.Errorf("%w: username already taken", common.ErrorConflict)
	ErrEmailTaken    = fmt.Errorf("%w: email already registered", common.ErrorConflict)
)

// UserService handles registration, login and the session token lifecycle.
//
// Each user has at most one live token. Issuing a new one replaces and
// deletes the old one; expiry is evaluated lazily on lookup.
type UserService struct {
	db          *sqlx.DB
	repomanager repomanager.RepositoryManager
	bcryptCost  int
	now         func() time.Time
	logger      logging.Logger
}

type UserServiceOption func(*UserService)

// WithClock replaces the clock used to stamp and check tokens.
func WithClock(now func() time.Time) UserServiceOption {
	return func(s *UserService) { s.now = now }
}

func NewUserService(db *sqlx.DB, m repomanager.RepositoryManager, cfg *config.Config, l logging.Logger, opts ...UserServiceOption) *UserService {
	s := &UserService{
		db:          db,
		repomanager: m,
		bcryptCost:  cfg.BcryptCost,
		now:         func() time.Time { return time.Now().UTC() },
		logger:      l.With("module", "user_service"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Register creates an account. Username is checked before email, so when
// both are taken the caller sees ErrUsernameTaken.
//
// The existence checks and the insert are not atomic. A concurrent
// registration that slips between them is rejected by the UNIQUE
// constraints and surfaces as a store error.
func (s *UserService) Register(ctx context.Context, username, email, password string) (*models.User, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)
	if username == "" || email == "" || password == "" {
		return nil, fmt.Errorf("%w: username, email and password are required", common.ErrorValidation)
	}

	repo := s.repomanager.Users(s.db)

	if _, err := repo.GetByUsername(ctx, username); err == nil {
		return nil, ErrUsernameTaken
	} else if !errors.Is(err, common.ErrorNotFound) {
		return nil, err
	}

	if _, err := repo.GetByEmail(ctx, email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, common.ErrorNotFound) {
		return nil, err
	}

	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{Username: username, Email: email, PasswordHash: hash}
	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		var err error
		user, err = s.repomanager.Users(tx).Create(ctx, user)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	s.logger.Info(ctx, "user registered", "user_id", user.ID)
	return user, nil
}

// Login checks credentials and issues a fresh token. An unknown email and a
// wrong password both yield common.ErrorUnauthorized. There is no lockout.
func (s *UserService) Login(ctx context.Context, email, password string) (*models.User, *models.Token, error) {
	user, err := s.repomanager.Users(s.db).GetByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, nil, common.ErrorUnauthorized
		}
		return nil, nil, err
	}

	if !auth.VerifyPassword(password, user.PasswordHash) {
		return nil, nil, common.ErrorUnauthorized
	}

	token, err := s.IssueToken(ctx, user)
	if err != nil {
		return nil, nil, err
	}
	return user, token, nil
}

// IssueToken creates a new token for user, links it, and deletes the token
// it replaces. All three steps commit together or not at all.
func (s *UserService) IssueToken(ctx context.Context, user *models.User) (*models.Token, error) {
	value, err := auth.NewTokenString()
	if err != nil {
		return nil, fmt.Errorf("%w: error generating token: %w", common.ErrorInternal, err)
	}

	var token *models.Token
	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		users := s.repomanager.Users(tx)
		tokens := s.repomanager.Tokens(tx)

		current, err := users.GetByUsername(ctx, user.Username)
		if err != nil {
			return err
		}

		token, err = tokens.Create(ctx, value, s.now())
		if err != nil {
			return err
		}
		if err := users.SetToken(ctx, current.ID, &token.ID); err != nil {
			return err
		}
		if current.TokenID != nil {
			return tokens.Delete(ctx, *current.TokenID)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("error issuing token: %w", err)
	}

	user.TokenID = &token.ID
	s.logger.Debug(ctx, "token issued", "user_id", user.ID)
	return token, nil
}

// CurrentUser resolves the user holding token. Missing, unknown and expired
// tokens are indistinguishable to the caller: all return
// common.ErrorUnauthorized. An expired token is left in place until the
// user's next login replaces it.
func (s *UserService) CurrentUser(ctx context.Context, token string) (*models.User, error) {
	if token == "" {
		return nil, common.ErrorUnauthorized
	}

	user, tok, err := s.repomanager.Users(s.db).GetByToken(ctx, token)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorUnauthorized
		}
		return nil, err
	}

	if auth.IsExpired(tok, s.now()) {
		return nil, common.ErrorUnauthorized
	}
	return user, nil
}

// RevokeToken clears the user's token and deletes it. Revoking when no
// token is held is a no-op.
func (s *UserService) RevokeToken(ctx context.Context, user *models.User) error {
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		users := s.repomanager.Users(tx)

		current, err := users.GetByUsername(ctx, user.Username)
		if err != nil {
			return err
		}
		if current.TokenID == nil {
			return nil
		}
		if err := users.SetToken(ctx, current.ID, nil); err != nil {
			return err
		}
		return s.repomanager.Tokens(tx).Delete(ctx, *current.TokenID)
	})
	if err != nil {
		return fmt.Errorf("error revoking token: %w", err)
	}

	user.TokenID = nil
	s.logger.Debug(ctx, "token revoked", "user_id", user.ID)
	return nil
}

func (s *UserService) UserByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.repomanager.Users(s.db).GetByEmail(ctx, email)
}

func (s *UserService) UserByUsername(ctx context.Context, username string) (*models.User, error) {
	return s.repomanager.Users(s.db).GetByUsername(ctx, username)
}
