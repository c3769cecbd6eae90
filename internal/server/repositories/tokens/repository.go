// Package tokens declares the repository contract for session tokens.
package tokens

import (
	"context"
	"time"

	"github.com/dmitrijs2005/jitsunotes/internal/server/models"
)

// Repository stores and removes session tokens. Linking a token to its user
// is done through users.Repository.SetToken.
type Repository interface {
	// Create stores token stamped with createdAt, which the caller takes from
	// its own clock.
	Create(ctx context.Context, token string, createdAt time.Time) (*models.Token, error)

	// Delete removes a token row. Deleting a missing row is not an error.
	Delete(ctx context.Context, id int64) error
}
