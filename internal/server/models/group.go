package models

// PositionGroup is a user-defined collection of positions.
type PositionGroup struct {
	ID          int64  `db:"id" json:"id"`
	UserID      int64  `db:"user_id" json:"-"`
	Name        string `db:"name" json:"name"`
	Description string `db:"description" json:"description"`

	Positions []*Position `db:"-" json:"positions,omitempty"`
}
