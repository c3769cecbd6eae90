// Package groups declares the owner-scoped repository for position groups.
package groups

import (
	"context"

	"github.com/dmitrijs2005/jitsunotes/internal/server/models"
)

// Repository is scoped by owner: every lookup and write filters on both the
// row id and user_id in a single statement, so a foreign row and a missing
// row both yield common.ErrorNotFound.
type Repository interface {
	Create(ctx context.Context, group *models.PositionGroup) (*models.PositionGroup, error)
	GetByID(ctx context.Context, userID, id int64) (*models.PositionGroup, error)
	GetAll(ctx context.Context, userID int64) ([]*models.PositionGroup, error)
	Update(ctx context.Context, group *models.PositionGroup) error
	Delete(ctx context.Context, userID, id int64) error
}
