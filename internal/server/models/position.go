package models

// Position is a recorded body configuration. Submission marks positions that
// end the engagement.
type Position struct {
	ID          int64  `db:"id" json:"id"`
	UserID      int64  `db:"user_id" json:"-"`
	GroupID     *int64 `db:"group_id" json:"group_id"`
	Name        string `db:"name" json:"name"`
	Description string `db:"description" json:"description"`
	Submission  bool   `db:"submission" json:"submission"`

	// TechniquesFrom start at this position, TechniquesTo end at it.
	TechniquesFrom []*Technique `db:"-" json:"techniques_from,omitempty"`
	TechniquesTo   []*Technique `db:"-" json:"techniques_to,omitempty"`
}
