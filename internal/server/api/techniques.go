package api

import (
	"net/http"

	"github.com/dmitrijs2005/jitsunotes/internal/common"
	"github.com/dmitrijs2005/jitsunotes/internal/server/models"
	"github.com/dmitrijs2005/jitsunotes/internal/server/services"
	"github.com/labstack/echo/v4"
)

// techniqueFromPath resolves :technique_id and checks that it starts at
// :position_id.
func (s *Server) techniqueFromPath(c echo.Context) (*models.Technique, error) {
	positionID, err := pathID(c, "position_id")
	if err != nil {
		return nil, err
	}
	id, err := pathID(c, "technique_id")
	if err != nil {
		return nil, err
	}

	technique, err := s.notes.TechniqueByID(c.Request().Context(), currentUser(c), id)
	if err != nil {
		return nil, err
	}
	if technique.FromPositionID != positionID {
		return nil, common.ErrorNotFound
	}
	return technique, nil
}

func (s *Server) handleCreateTechnique(c echo.Context) error {
	fromID, err := pathID(c, "position_id")
	if err != nil {
		return err
	}
	toID, err := parseOptionalID(c.FormValue("to_position_id"))
	if err != nil {
		return err
	}

	technique, err := s.notes.CreateTechnique(c.Request().Context(), currentUser(c),
		c.FormValue("name"), c.FormValue("description"), fromID, toID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, technique)
}

func (s *Server) handleGetTechnique(c echo.Context) error {
	technique, err := s.techniqueFromPath(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, technique)
}

// handleUpdateTechnique leaves any blank field unchanged, to_position_id
// included.
func (s *Server) handleUpdateTechnique(c echo.Context) error {
	technique, err := s.techniqueFromPath(c)
	if err != nil {
		return err
	}
	values, err := formFields(c)
	if err != nil {
		return err
	}

	upd := services.TechniqueUpdate{
		Name:        optionalString(values, "name"),
		Description: optionalString(values, "description"),
	}
	if raw := optionalString(values, "to_position_id"); raw != nil {
		if upd.ToPositionID, err = parseOptionalID(*raw); err != nil {
			return err
		}
	}

	technique, err = s.notes.UpdateTechnique(c.Request().Context(), technique, upd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, technique)
}

func (s *Server) handleDeleteTechnique(c echo.Context) error {
	technique, err := s.techniqueFromPath(c)
	if err != nil {
		return err
	}
	if err := s.notes.DeleteTechnique(c.Request().Context(), technique); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
