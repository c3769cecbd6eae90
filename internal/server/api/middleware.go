package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/dmitrijs2005/jitsunotes/internal/common"
	"github.com/dmitrijs2005/jitsunotes/internal/server/models"
	"github.com/labstack/echo/v4"
)

const userKey = "user"

// requestLogger writes one record per request. It resolves handler errors
// itself so the logged status is the one the client sees.
func (s *Server) requestLogger() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			if err := next(c); err != nil {
				c.Error(err)
			}

			req := c.Request()
			s.logger.Info(req.Context(), "http request",
				"method", req.Method,
				"uri", req.RequestURI,
				"status", c.Response().Status,
				"duration", time.Since(start),
				"request_id", c.Response().Header().Get(echo.HeaderXRequestID),
			)
			return nil
		}
	}
}

// requireUser resolves the session cookie to a user. Every failure looks the
// same to the client.
func (s *Server) requireUser(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		var token string
		if cookie, err := c.Cookie(common.TokenCookieName); err == nil {
			token = cookie.Value
		}

		user, err := s.users.CurrentUser(c.Request().Context(), token)
		if err != nil {
			if errors.Is(err, common.ErrorUnauthorized) {
				s.metrics.authFailures.Inc()
			}
			return err
		}

		c.Set(userKey, user)
		return next(c)
	}
}

func currentUser(c echo.Context) *models.User {
	u, _ := c.Get(userKey).(*models.User)
	return u
}

func (s *Server) setTokenCookie(c echo.Context, token string) {
	c.SetCookie(&http.Cookie{
		Name:     common.TokenCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   s.opts.SecureCookie,
		SameSite: http.SameSiteLaxMode,
	})
}

func (s *Server) clearTokenCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     common.TokenCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   s.opts.SecureCookie,
		SameSite: http.SameSiteLaxMode,
	})
}
