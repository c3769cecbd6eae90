package groups

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/jitsunotes/internal/common"
	"github.com/dmitrijs2005/jitsunotes/internal/dbx"
	"github.com/dmitrijs2005/jitsunotes/internal/server/models"
)

const groupColumns = `id, user_id, name, description`

// SQLRepository implements Repository over dbx.DBTX.
type SQLRepository struct {
	db dbx.DBTX
}

func NewSQLRepository(db dbx.DBTX) *SQLRepository {
	return &SQLRepository{db: db}
}

func (r *SQLRepository) Create(ctx context.Context, group *models.PositionGroup) (*models.PositionGroup, error) {
	query := `
		INSERT INTO position_groups (user_id, name, description)
		VALUES (?, ?, ?)
		RETURNING id
	`
	if err := r.db.GetContext(ctx, &group.ID, r.db.Rebind(query),
		group.UserID, group.Name, group.Description); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return group, nil
}

func (r *SQLRepository) GetByID(ctx context.Context, userID, id int64) (*models.PositionGroup, error) {
	query := `SELECT ` + groupColumns + ` FROM position_groups WHERE id = ? AND user_id = ?`

	group := &models.PositionGroup{}
	if err := r.db.GetContext(ctx, group, r.db.Rebind(query), id, userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return group, nil
}

func (r *SQLRepository) GetAll(ctx context.Context, userID int64) ([]*models.PositionGroup, error) {
	query := `SELECT ` + groupColumns + ` FROM position_groups WHERE user_id = ? ORDER BY id`

	var result []*models.PositionGroup
	if err := r.db.SelectContext(ctx, &result, r.db.Rebind(query), userID); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return result, nil
}

// Update writes name and description back. The caller decides which fields
// changed; this statement always writes both.
func (r *SQLRepository) Update(ctx context.Context, group *models.PositionGroup) error {
	query := `UPDATE position_groups SET name = ?, description = ? WHERE id = ? AND user_id = ?`
	res, err := r.db.ExecContext(ctx, r.db.Rebind(query), group.Name, group.Description, group.ID, group.UserID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return expectOne(res)
}

func (r *SQLRepository) Delete(ctx context.Context, userID, id int64) error {
	query := `DELETE FROM position_groups WHERE id = ? AND user_id = ?`
	res, err := r.db.ExecContext(ctx, r.db.Rebind(query), id, userID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return expectOne(res)
}

func expectOne(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	switch n {
	case 1:
		return nil
	case 0:
		return common.ErrorNotFound
	default:
		return fmt.Errorf("unexpected rows affected: %d", n)
	}
}
