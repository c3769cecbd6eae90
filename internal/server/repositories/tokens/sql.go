package tokens

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/jitsunotes/internal/dbx"
	"github.com/dmitrijs2005/jitsunotes/internal/server/models"
)

// SQLRepository implements Repository over dbx.DBTX.
type SQLRepository struct {
	db dbx.DBTX
}

func NewSQLRepository(db dbx.DBTX) *SQLRepository {
	return &SQLRepository{db: db}
}

func (r *SQLRepository) Create(ctx context.Context, token string, createdAt time.Time) (*models.Token, error) {
	query := `
		INSERT INTO tokens (token, created_at)
		VALUES (?, ?)
		RETURNING id
	`
	t := &models.Token{Token: token, CreatedAt: createdAt}
	if err := r.db.GetContext(ctx, &t.ID, r.db.Rebind(query), token, createdAt); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return t, nil
}

func (r *SQLRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM tokens WHERE id = ?`
	if _, err := r.db.ExecContext(ctx, r.db.Rebind(query), id); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}
