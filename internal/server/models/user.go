// Package models defines the server-side entities persisted in the database
// and handed, fully resolved, to the transport layer.
package models

// User is an account holder. Every group, position and technique is owned by
// exactly one User.
type User struct {
	ID           int64  `db:"id" json:"id"`
	Username     string `db:"username" json:"username"`
	Email        string `db:"email" json:"email"`
	PasswordHash string `db:"password_hash" json:"-"`

	// TokenID references the user's single live session token, if any.
	TokenID *int64 `db:"token_id" json:"-"`
}
