package techniques

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/jitsunotes/internal/common"
	"github.com/dmitrijs2005/jitsunotes/internal/dbx"
	"github.com/dmitrijs2005/jitsunotes/internal/server/models"
)

const techniqueColumns = `id, user_id, from_position_id, to_position_id, name, description`

// SQLRepository implements Repository over dbx.DBTX.
type SQLRepository struct {
	db dbx.DBTX
}

func NewSQLRepository(db dbx.DBTX) *SQLRepository {
	return &SQLRepository{db: db}
}

func (r *SQLRepository) Create(ctx context.Context, technique *models.Technique) (*models.Technique, error) {
	query := `
		INSERT INTO techniques (user_id, from_position_id, to_position_id, name, description)
		VALUES (?, ?, ?, ?, ?)
		RETURNING id
	`
	if err := r.db.GetContext(ctx, &technique.ID, r.db.Rebind(query),
		technique.UserID, technique.FromPositionID, technique.ToPositionID, technique.Name, technique.Description); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return technique, nil
}

func (r *SQLRepository) GetByID(ctx context.Context, userID, id int64) (*models.Technique, error) {
	query := `SELECT ` + techniqueColumns + ` FROM techniques WHERE id = ? AND user_id = ?`

	technique := &models.Technique{}
	if err := r.db.GetContext(ctx, technique, r.db.Rebind(query), id, userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return technique, nil
}

func (r *SQLRepository) GetFromPosition(ctx context.Context, userID, positionID int64) ([]*models.Technique, error) {
	query := `SELECT ` + techniqueColumns + ` FROM techniques WHERE from_position_id = ? AND user_id = ? ORDER BY id`
	return r.selectMany(ctx, query, positionID, userID)
}

func (r *SQLRepository) GetToPosition(ctx context.Context, userID, positionID int64) ([]*models.Technique, error) {
	query := `SELECT ` + techniqueColumns + ` FROM techniques WHERE to_position_id = ? AND user_id = ? ORDER BY id`
	return r.selectMany(ctx, query, positionID, userID)
}

func (r *SQLRepository) selectMany(ctx context.Context, query string, args ...any) ([]*models.Technique, error) {
	var result []*models.Technique
	if err := r.db.SelectContext(ctx, &result, r.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return result, nil
}

func (r *SQLRepository) Update(ctx context.Context, technique *models.Technique) error {
	query := `
		UPDATE techniques SET to_position_id = ?, name = ?, description = ?
		WHERE id = ? AND user_id = ?
	`
	res, err := r.db.ExecContext(ctx, r.db.Rebind(query),
		technique.ToPositionID, technique.Name, technique.Description, technique.ID, technique.UserID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return expectOne(res)
}

func (r *SQLRepository) Delete(ctx context.Context, userID, id int64) error {
	query := `DELETE FROM techniques WHERE id = ? AND user_id = ?`
	res, err := r.db.ExecContext(ctx, r.db.Rebind(query), id, userID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return expectOne(res)
}

// expectOne checks that a write touched exactly the row it targeted. No row
// means the technique is missing or foreign.
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
