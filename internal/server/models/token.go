package models

import "time"

// Token is an opaque session credential. It carries no owner column: the
// owning user points at it through users.token_id.
type Token struct {
	ID        int64     `db:"id" json:"-"`
	Token     string    `db:"token" json:"-"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
