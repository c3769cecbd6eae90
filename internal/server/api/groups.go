package api

import (
	"net/http"

	"github.com/dmitrijs2005/jitsunotes/internal/server/models"
	"github.com/dmitrijs2005/jitsunotes/internal/server/services"
	"github.com/labstack/echo/v4"
)

func (s *Server) groupFromPath(c echo.Context) (*models.PositionGroup, error) {
	id, err := pathID(c, "group_id")
	if err != nil {
		return nil, err
	}
	return s.notes.GroupByID(c.Request().Context(), currentUser(c), id)
}

func (s *Server) handleListGroups(c echo.Context) error {
	groups, err := s.notes.AllGroups(c.Request().Context(), currentUser(c))
	if err != nil {
		return err
	}
	if groups == nil {
		groups = []*models.PositionGroup{}
	}
	return c.JSON(http.StatusOK, groups)
}

func (s *Server) handleCreateGroup(c echo.Context) error {
	group, err := s.notes.CreateGroup(c.Request().Context(), currentUser(c),
		c.FormValue("name"), c.FormValue("description"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, group)
}

func (s *Server) handleGetGroup(c echo.Context) error {
	group, err := s.groupFromPath(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, group)
}

func (s *Server) handleUpdateGroup(c echo.Context) error {
	group, err := s.groupFromPath(c)
	if err != nil {
		return err
	}
	values, err := formFields(c)
	if err != nil {
		return err
	}

	group, err = s.notes.UpdateGroup(c.Request().Context(), group, services.GroupUpdate{
		Name:        optionalString(values, "name"),
		Description: optionalString(values, "description"),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, group)
}

func (s *Server) handleDeleteGroup(c echo.Context) error {
	group, err := s.groupFromPath(c)
	if err != nil {
		return err
	}
	if err := s.notes.DeleteGroup(c.Request().Context(), group); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
