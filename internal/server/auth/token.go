package auth

import (
	"time"

	"github.com/dmitrijs2005/jitsunotes/internal/common"
	"github.com/dmitrijs2005/jitsunotes/internal/server/models"
)

// MaximumTokenAge is how long a session token stays valid after issue.
const MaximumTokenAge = 15 * time.Minute

// IsExpired reports whether token is older than MaximumTokenAge at now.
// A token exactly MaximumTokenAge old is still valid.
func IsExpired(token *models.Token, now time.Time) bool {
	return now.Sub(token.CreatedAt) > MaximumTokenAge
}

// NewTokenString returns a fresh opaque token: common.TokenBytes random
// bytes, hex encoded.
func NewTokenString() (string, error) {
	return common.MakeRandHexString(common.TokenBytes)
}
