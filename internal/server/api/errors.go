package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/dmitrijs2005/jitsunotes/internal/common"
	"github.com/labstack/echo/v4"
)

type errorResponse struct {
	Message string `json:"message"`
}

// statusFor maps service errors onto HTTP status codes. Anything not
// recognised is a 500.
func statusFor(err error) int {
	switch {
	case errors.Is(err, common.ErrorNotFound):
		return http.StatusNotFound
	case errors.Is(err, common.ErrorUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, common.ErrorConflict):
		return http.StatusConflict
	case errors.Is(err, common.ErrorValidation):
		return http.StatusBadRequest
	case errors.Is(err, common.ErrorInternal):
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) errorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := statusFor(err)
	msg := err.Error()

	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
		msg = fmt.Sprint(he.Message)
	}

	switch code {
	case http.StatusNotFound:
		msg = "not found"
	case http.StatusUnauthorized:
		msg = "unauthorized"
	case http.StatusInternalServerError:
		s.logger.Error(c.Request().Context(), "request failed",
			"error", err,
			"request_id", c.Response().Header().Get(echo.HeaderXRequestID),
		)
		msg = common.ErrorInternal.Error()
	}

	var werr error
	if c.Request().Method == http.MethodHead {
		werr = c.NoContent(code)
	} else {
		werr = c.JSON(code, errorResponse{Message: msg})
	}
	if werr != nil {
		s.logger.Warn(c.Request().Context(), "error response not written", "error", werr)
	}
}
