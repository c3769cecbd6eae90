package positions

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/jitsunotes/internal/common"
	"github.com/dmitrijs2005/jitsunotes/internal/dbx"
	"github.com/dmitrijs2005/jitsunotes/internal/server/models"
)

const positionColumns = `id, user_id, group_id, name, description, submission`

// SQLRepository implements Repository over dbx.DBTX.
type SQLRepository struct {
	db dbx.DBTX
}

func NewSQLRepository(db dbx.DBTX) *SQLRepository {
	return &SQLRepository{db: db}
}

func (r *SQLRepository) Create(ctx context.Context, position *models.Position) (*models.Position, error) {
	query := `
		INSERT INTO positions (user_id, group_id, name, description, submission)
		VALUES (?, ?, ?, ?, ?)
		RETURNING id
	`
	if err := r.db.GetContext(ctx, &position.ID, r.db.Rebind(query),
		position.UserID, position.GroupID, position.Name, position.Description, position.Submission); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return position, nil
}

func (r *SQLRepository) GetByID(ctx context.Context, userID, id int64) (*models.Position, error) {
	query := `SELECT ` + positionColumns + ` FROM positions WHERE id = ? AND user_id = ?`

	position := &models.Position{}
	if err := r.db.GetContext(ctx, position, r.db.Rebind(query), id, userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return position, nil
}

func (r *SQLRepository) GetAll(ctx context.Context, userID int64) ([]*models.Position, error) {
	query := `SELECT ` + positionColumns + ` FROM positions WHERE user_id = ? ORDER BY id`
	return r.selectMany(ctx, query, userID)
}

func (r *SQLRepository) GetByGroup(ctx context.Context, userID, groupID int64) ([]*models.Position, error) {
	query := `SELECT ` + positionColumns + ` FROM positions WHERE group_id = ? AND user_id = ? ORDER BY id`
	return r.selectMany(ctx, query, groupID, userID)
}

func (r *SQLRepository) selectMany(ctx context.Context, query string, args ...any) ([]*models.Position, error) {
	var result []*models.Position
	if err := r.db.SelectContext(ctx, &result, r.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return result, nil
}

func (r *SQLRepository) Update(ctx context.Context, position *models.Position) error {
	query := `
		UPDATE positions SET group_id = ?, name = ?, description = ?, submission = ?
		WHERE id = ? AND user_id = ?
	`
	res, err := r.db.ExecContext(ctx, r.db.Rebind(query),
		position.GroupID, position.Name, position.Description, position.Submission, position.ID, position.UserID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return expectOne(res)
}

func (r *SQLRepository) Delete(ctx context.Context, userID, id int64) error {
	query := `DELETE FROM positions WHERE id = ? AND user_id = ?`
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
