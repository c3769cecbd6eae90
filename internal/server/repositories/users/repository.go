// Package users declares the repository contract for user accounts.
package users

import (
	"context"

	"github.com/dmitrijs2005/jitsunotes/internal/server/models"
)

// Repository defines lookups and writes for user accounts. Lookups return
// common.ErrorNotFound when no row matches.
type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)

	// GetByToken resolves the user whose live token has exactly this string,
	// together with the token itself. Expiry is not evaluated here.
	GetByToken(ctx context.Context, token string) (*models.User, *models.Token, error)

	// SetToken points the user at tokenID; nil clears the association.
	SetToken(ctx context.Context, userID int64, tokenID *int64) error
}
