// Package positions declares the owner-scoped repository for positions.
package positions

import (
	"context"

	"github.com/dmitrijs2005/jitsunotes/internal/server/models"
)

// Repository is scoped by owner in the same way as groups.Repository.
type Repository interface {
	Create(ctx context.Context, position *models.Position) (*models.Position, error)
	GetByID(ctx context.Context, userID, id int64) (*models.Position, error)
	GetAll(ctx context.Context, userID int64) ([]*models.Position, error)
	GetByGroup(ctx context.Context, userID, groupID int64) ([]*models.Position, error)
	Update(ctx context.Context, position *models.Position) error
	Delete(ctx context.Context, userID, id int64) error
}
