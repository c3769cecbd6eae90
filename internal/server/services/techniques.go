package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/jitsunotes/internal/common"
	"github.com/dmitrijs2005/jitsunotes/internal/dbx"
	"github.com/dmitrijs2005/jitsunotes/internal/server/models"
	"github.com/dmitrijs2005/jitsunotes/internal/server/repositories/positions"
)

var ErrUnknownDestination = fmt.Errorf("%w: destination position not found", common.ErrorValidation)

// TechniqueUpdate carries a partial update; nil fields are left unchanged.
// A destination can be replaced but never removed.
type TechniqueUpdate struct {
	Name         *string
	Description  *string
	ToPositionID *int64
}

// TechniqueByID returns the user's technique with both endpoints resolved.
func (s *NotesService) TechniqueByID(ctx context.Context, user *models.User, id int64) (*models.Technique, error) {
	var technique *models.Technique
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		posRepo := s.repomanager.Positions(tx)

		var err error
		technique, err = s.repomanager.Techniques(tx).GetByID(ctx, user.ID, id)
		if err != nil {
			return err
		}
		if technique.FromPosition, err = posRepo.GetByID(ctx, user.ID, technique.FromPositionID); err != nil {
			return err
		}
		if technique.ToPositionID != nil {
			if technique.ToPosition, err = posRepo.GetByID(ctx, user.ID, *technique.ToPositionID); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return technique, nil
}

// checkDestination enforces that a technique only points at the owner's
// positions. A self-loop is allowed.
func checkDestination(ctx context.Context, repo positions.Repository, userID int64, toID *int64) error {
	if toID == nil {
		return nil
	}
	if _, err := repo.GetByID(ctx, userID, *toID); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return ErrUnknownDestination
		}
		return err
	}
	return nil
}

// CreateTechnique records a transition starting at fromID. The origin must
// belong to user (common.ErrorNotFound otherwise); the destination, if any,
// must too (ErrUnknownDestination otherwise).
func (s *NotesService) CreateTechnique(ctx context.Context, user *models.User, name, description string, fromID int64, toID *int64) (*models.Technique, error) {
	name, err := requireName(name)
	if err != nil {
		return nil, err
	}

	technique := &models.Technique{
		UserID:         user.ID,
		FromPositionID: fromID,
		ToPositionID:   toID,
		Name:           name,
		Description:    description,
	}
	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		posRepo := s.repomanager.Positions(tx)

		if _, err := posRepo.GetByID(ctx, user.ID, fromID); err != nil {
			return err
		}
		if err := checkDestination(ctx, posRepo, user.ID, toID); err != nil {
			return err
		}
		var err error
		technique, err = s.repomanager.Techniques(tx).Create(ctx, technique)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("error creating technique: %w", err)
	}

	s.logger.Debug(ctx, "technique created", "user_id", user.ID, "technique_id", technique.ID)
	return technique, nil
}

// UpdateTechnique applies upd. The origin of a technique never changes.
func (s *NotesService) UpdateTechnique(ctx context.Context, technique *models.Technique, upd TechniqueUpdate) (*models.Technique, error) {
	next := *technique
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
	if upd.ToPositionID != nil {
		to := *upd.ToPositionID
		next.ToPositionID = &to
		next.ToPosition = nil
	}

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if upd.ToPositionID != nil {
			if err := checkDestination(ctx, s.repomanager.Positions(tx), next.UserID, next.ToPositionID); err != nil {
				return err
			}
		}
		return s.repomanager.Techniques(tx).Update(ctx, &next)
	})
	if err != nil {
		return nil, err
	}

	*technique = next
	return technique, nil
}

func (s *NotesService) DeleteTechnique(ctx context.Context, technique *models.Technique) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return s.repomanager.Techniques(tx).Delete(ctx, technique.UserID, technique.ID)
	})
}
