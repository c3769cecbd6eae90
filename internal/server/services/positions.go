package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/jitsunotes/internal/dbx"
	"github.com/dmitrijs2005/jitsunotes/internal/server/models"
)

// PositionUpdate carries a partial update; nil fields are left unchanged.
type PositionUpdate struct {
	Name        *string
	Description *string
	Submission  *bool
}

// PositionByID returns the user's position together with the techniques
// that start and end there. Each technique has its far endpoint resolved.
func (s *NotesService) PositionByID(ctx context.Context, user *models.User, id int64) (*models.Position, error) {
	var position *models.Position
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		positions := s.repomanager.Positions(tx)
		techniques := s.repomanager.Techniques(tx)

		var err error
		position, err = positions.GetByID(ctx, user.ID, id)
		if err != nil {
			return err
		}
		if position.TechniquesFrom, err = techniques.GetFromPosition(ctx, user.ID, id); err != nil {
			return err
		}
		if position.TechniquesTo, err = techniques.GetToPosition(ctx, user.ID, id); err != nil {
			return err
		}
		if len(position.TechniquesFrom) == 0 && len(position.TechniquesTo) == 0 {
			return nil
		}

		all, err := positions.GetAll(ctx, user.ID)
		if err != nil {
			return err
		}
		byID := make(map[int64]*models.Position, len(all))
		for _, p := range all {
			byID[p.ID] = p
		}
		// far endpoints only; the result must stay acyclic for JSON
		for _, t := range position.TechniquesFrom {
			if t.ToPositionID != nil {
				t.ToPosition = byID[*t.ToPositionID]
			}
		}
		for _, t := range position.TechniquesTo {
			t.FromPosition = byID[t.FromPositionID]
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return position, nil
}

func (s *NotesService) AllPositions(ctx context.Context, user *models.User) ([]*models.Position, error) {
	return s.repomanager.Positions(s.db).GetAll(ctx, user.ID)
}

// CreatePositionInGroup adds a position to group, which must have been
// resolved for user.
func (s *NotesService) CreatePositionInGroup(ctx context.Context, user *models.User, group *models.PositionGroup, name, description string, submission bool) (*models.Position, error) {
	name, err := requireName(name)
	if err != nil {
		return nil, err
	}

	position := &models.Position{
		UserID:      user.ID,
		GroupID:     &group.ID,
		Name:        name,
		Description: description,
		Submission:  submission,
	}
	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		// re-check under the transaction; the group may be gone
		if _, err := s.repomanager.Groups(tx).GetByID(ctx, user.ID, group.ID); err != nil {
			return err
		}
		var err error
		position, err = s.repomanager.Positions(tx).Create(ctx, position)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("error creating position: %w", err)
	}

	s.logger.Debug(ctx, "position created", "user_id", user.ID, "position_id", position.ID)
	return position, nil
}

func (s *NotesService) UpdatePosition(ctx context.Context, position *models.Position, upd PositionUpdate) (*models.Position, error) {
	next := *position
	if upd.Name != nil {
		name, err := requireName(*upd.Name)
		if err != nil {
			return nil, err
		}
		next.Name = name
	}
	if upd.Description != nil {
		next.Description = *upd.Description
	}
	if upd.Submission != nil {
		next.Submission = *upd.Submission
	}

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return s.repomanager.Positions(tx).Update(ctx, &next)
	})
	if err != nil {
		return nil, err
	}

	*position = next
	return position, nil
}

// DeletePosition removes position. Techniques starting there go with it;
// techniques ending there lose their destination.
func (s *NotesService) DeletePosition(ctx context.Context, position *models.Position) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return s.repomanager.Positions(tx).Delete(ctx, position.UserID, position.ID)
	})
}
