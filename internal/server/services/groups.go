package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/jitsunotes/internal/dbx"
	"github.com/dmitrijs2005/jitsunotes/internal/server/models"
)

// GroupUpdate carries a partial update; nil fields are left unchanged.
type GroupUpdate struct {
	Name        *string
	Description *string
}

// GroupByID returns the user's group with its positions loaded.
func (s *NotesService) GroupByID(ctx context.Context, user *models.User, id int64) (*models.PositionGroup, error) {
	var group *models.PositionGroup
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		var err error
		group, err = s.repomanager.Groups(tx).GetByID(ctx, user.ID, id)
		if err != nil {
			return err
		}
		group.Positions, err = s.repomanager.Positions(tx).GetByGroup(ctx, user.ID, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return group, nil
}

func (s *NotesService) AllGroups(ctx context.Context, user *models.User) ([]*models.PositionGroup, error) {
	return s.repomanager.Groups(s.db).GetAll(ctx, user.ID)
}

func (s *NotesService) CreateGroup(ctx context.Context, user *models.User, name, description string) (*models.PositionGroup, error) {
	name, err := requireName(name)
	if err != nil {
		return nil, err
	}

	group := &models.PositionGroup{UserID: user.ID, Name: name, Description: description}
	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		var err error
		group, err = s.repomanager.Groups(tx).Create(ctx, group)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("error creating group: %w", err)
	}

	s.logger.Debug(ctx, "group created", "user_id", user.ID, "group_id", group.ID)
	return group, nil
}

// UpdateGroup applies upd to group and persists it. Loaded positions are
// kept as they are.
func (s *NotesService) UpdateGroup(ctx context.Context, group *models.PositionGroup, upd GroupUpdate) (*models.PositionGroup, error) {
	next := *group
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

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return s.repomanager.Groups(tx).Update(ctx, &next)
	})
	if err != nil {
		return nil, err
	}

	*group = next
	return group, nil
}

// DeleteGroup removes group. Its positions remain and become ungrouped.
func (s *NotesService) DeleteGroup(ctx context.Context, group *models.PositionGroup) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return s.repomanager.Groups(tx).Delete(ctx, group.UserID, group.ID)
	})
}
