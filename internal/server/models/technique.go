package models

// Technique is a directed transition from one position to another. A nil
// ToPositionID means the technique has no further destination, e.g. a finish.
type Technique struct {
	ID             int64  `db:"id" json:"id"`
	UserID         int64  `db:"user_id" json:"-"`
	FromPositionID int64  `db:"from_position_id" json:"from_position_id"`
	ToPositionID   *int64 `db:"to_position_id" json:"to_position_id"`
	Name           string `db:"name" json:"name"`
	Description    string `db:"description" json:"description"`

	FromPosition *Position `db:"-" json:"from_position,omitempty"`
	ToPosition   *Position `db:"-" json:"to_position,omitempty"`
}
