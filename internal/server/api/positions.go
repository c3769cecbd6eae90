package api

import (
	"net/http"

	"github.com/dmitrijs2005/jitsunotes/internal/common"
	"github.com/dmitrijs2005/jitsunotes/internal/server/models"
	"github.com/dmitrijs2005/jitsunotes/internal/server/services"
	"github.com/labstack/echo/v4"
)

// positionInGroup resolves :group_id and :position_id together. A position
// that exists but sits in another group is not found.
func (s *Server) positionInGroup(c echo.Context) (*models.Position, error) {
	group, err := s.groupFromPath(c)
	if err != nil {
		return nil, err
	}
	position, err := s.positionFromPath(c)
	if err != nil {
		return nil, err
	}
	if position.GroupID == nil || *position.GroupID != group.ID {
		return nil, common.ErrorNotFound
	}
	return position, nil
}

func (s *Server) positionFromPath(c echo.Context) (*models.Position, error) {
	id, err := pathID(c, "position_id")
	if err != nil {
		return nil, err
	}
	return s.notes.PositionByID(c.Request().Context(), currentUser(c), id)
}

func (s *Server) handleListGroupPositions(c echo.Context) error {
	group, err := s.groupFromPath(c)
	if err != nil {
		return err
	}
	positions := group.Positions
	if positions == nil {
		positions = []*models.Position{}
	}
	return c.JSON(http.StatusOK, positions)
}

func (s *Server) handleListPositions(c echo.Context) error {
	positions, err := s.notes.AllPositions(c.Request().Context(), currentUser(c))
	if err != nil {
		return err
	}
	if positions == nil {
		positions = []*models.Position{}
	}
	return c.JSON(http.StatusOK, positions)
}

func (s *Server) handleCreatePosition(c echo.Context) error {
	group, err := s.groupFromPath(c)
	if err != nil {
		return err
	}
	submission, err := parseCheckbox(c.FormValue("submission"))
	if err != nil {
		return err
	}

	position, err := s.notes.CreatePositionInGroup(c.Request().Context(), currentUser(c), group,
		c.FormValue("name"), c.FormValue("description"), submission)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, position)
}

func (s *Server) handleGetPosition(c echo.Context) error {
	position, err := s.positionInGroup(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, position)
}

func (s *Server) handleUpdatePosition(c echo.Context) error {
	position, err := s.positionInGroup(c)
	if err != nil {
		return err
	}
	values, err := formFields(c)
	if err != nil {
		return err
	}
	submission, err := optionalBool(values, "submission")
	if err != nil {
		return err
	}

	position, err = s.notes.UpdatePosition(c.Request().Context(), position, services.PositionUpdate{
		Name:        optionalString(values, "name"),
		Description: optionalString(values, "description"),
		Submission:  submission,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, position)
}

func (s *Server) handleDeletePosition(c echo.Context) error {
	position, err := s.positionInGroup(c)
	if err != nil {
		return err
	}
	if err := s.notes.DeletePosition(c.Request().Context(), position); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
