package api

import (
	"errors"
	"net/http"

	"github.com/dmitrijs2005/jitsunotes/internal/common"
	"github.com/labstack/echo/v4"
)

const headerHXRedirect = "HX-Redirect"

func (s *Server) handleRegister(c echo.Context) error {
	user, err := s.users.Register(c.Request().Context(),
		c.FormValue("username"), c.FormValue("email"), c.FormValue("password"))
	if err != nil {
		return err
	}

	c.Response().Header().Set(headerHXRedirect, "/login")
	return c.JSON(http.StatusCreated, user)
}

func (s *Server) handleLogin(c echo.Context) error {
	ctx := c.Request().Context()

	user, token, err := s.users.Login(ctx, c.FormValue("email"), c.FormValue("password"))
	if err != nil {
		if errors.Is(err, common.ErrorUnauthorized) {
			s.metrics.authFailures.Inc()
		}
		return err
	}

	s.setTokenCookie(c, token.Token)
	c.Response().Header().Set(headerHXRedirect, "/")
	s.logger.Info(ctx, "user logged in", "user_id", user.ID)
	return c.JSON(http.StatusOK, user)
}

func (s *Server) handleLogout(c echo.Context) error {
	if err := s.users.RevokeToken(c.Request().Context(), currentUser(c)); err != nil {
		return err
	}

	s.clearTokenCookie(c)
	c.Response().Header().Set(headerHXRedirect, "/")
	return c.NoContent(http.StatusNoContent)
}

func (s *Server) handleAccount(c echo.Context) error {
	return c.JSON(http.StatusOK, currentUser(c))
}
