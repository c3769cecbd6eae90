package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/jitsunotes/internal/common"
	"github.com/dmitrijs2005/jitsunotes/internal/dbx"
	"github.com/dmitrijs2005/jitsunotes/internal/server/models"
)

const userColumns = `id, username, email, password_hash, token_id`

// SQLRepository implements Repository over dbx.DBTX (*sqlx.DB or *sqlx.Tx).
type SQLRepository struct {
	db dbx.DBTX
}

func NewSQLRepository(db dbx.DBTX) *SQLRepository {
	return &SQLRepository{db: db}
}

func (r *SQLRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	query := `
		INSERT INTO users (username, email, password_hash)
		VALUES (?, ?, ?)
		RETURNING id
	`
	if err := r.db.GetContext(ctx, &user.ID, r.db.Rebind(query),
		user.Username, user.Email, user.PasswordHash); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return user, nil
}

func (r *SQLRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.getOne(ctx, `SELECT `+userColumns+` FROM users WHERE email = ?`, email)
}

func (r *SQLRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return r.getOne(ctx, `SELECT `+userColumns+` FROM users WHERE username = ?`, username)
}

func (r *SQLRepository) getOne(ctx context.Context, query string, args ...any) (*models.User, error) {
	user := &models.User{}
	if err := r.db.GetContext(ctx, user, r.db.Rebind(query), args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return user, nil
}

type userTokenRow struct {
	models.User
	TokenPK        int64     `db:"token_pk"`
	TokenValue     string    `db:"token_value"`
	TokenCreatedAt time.Time `db:"token_created_at"`
}

func (r *SQLRepository) GetByToken(ctx context.Context, token string) (*models.User, *models.Token, error) {
	query := `
		SELECT u.id, u.username, u.email, u.password_hash, u.token_id,
		       t.id AS token_pk, t.token AS token_value, t.created_at AS token_created_at
		FROM users u
		JOIN tokens t ON t.id = u.token_id
		WHERE t.token = ?
	`
	var row userTokenRow
	if err := r.db.GetContext(ctx, &row, r.db.Rebind(query), token); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil, common.ErrorNotFound
		}
		return nil, nil, fmt.Errorf("db error: %w", err)
	}

	user := row.User
	return &user, &models.Token{ID: row.TokenPK, Token: row.TokenValue, CreatedAt: row.TokenCreatedAt}, nil
}

func (r *SQLRepository) SetToken(ctx context.Context, userID int64, tokenID *int64) error {
	query := `UPDATE users SET token_id = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, r.db.Rebind(query), tokenID, userID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}
	return nil
}
