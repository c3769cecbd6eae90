// Package techniques declares the owner-scoped repository for techniques.
package techniques

import (
	"context"

	"github.com/dmitrijs2005/jitsunotes/internal/server/models"
)

// Repository is scoped by owner in the same way as groups.Repository.
type Repository interface {
	Create(ctx context.Context, technique *models.Technique) (*models.Technique, error)
	GetByID(ctx context.Context, userID, id int64) (*models.Technique, error)

	// GetFromPosition lists techniques starting at positionID.
	GetFromPosition(ctx context.Context, userID, positionID int64) ([]*models.Technique, error)
	// GetToPosition lists techniques ending at positionID.
	GetToPosition(ctx context.Context, userID, positionID int64) ([]*models.Technique, error)

	Update(ctx context.Context, technique *models.Technique) error
	Delete(ctx context.Context, userID, id int64) error
}
