// Package api is the HTTP boundary: echo routes that parse form input, call
// the services and map their errors onto status codes.
package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/dmitrijs2005/jitsunotes/internal/logging"
	"github.com/dmitrijs2005/jitsunotes/internal/server/models"
	"github.com/dmitrijs2005/jitsunotes/internal/server/services"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

type UserService interface {
	Register(ctx context.Context, username, email, password string) (*models.User, error)
	Login(ctx context.Context, email, password string) (*models.User, *models.Token, error)
	CurrentUser(ctx context.Context, token string) (*models.User, error)
	RevokeToken(ctx context.Context, user *models.User) error
}

type NotesService interface {
	GroupByID(ctx context.Context, user *models.User, id int64) (*models.PositionGroup, error)
	AllGroups(ctx context.Context, user *models.User) ([]*models.PositionGroup, error)
	CreateGroup(ctx context.Context, user *models.User, name, description string) (*models.PositionGroup, error)
	UpdateGroup(ctx context.Context, group *models.PositionGroup, upd services.GroupUpdate) (*models.PositionGroup, error)
	DeleteGroup(ctx context.Context, group *models.PositionGroup) error

	PositionByID(ctx context.Context, user *models.User, id int64) (*models.Position, error)
	AllPositions(ctx context.Context, user *models.User) ([]*models.Position, error)
	CreatePositionInGroup(ctx context.Context, user *models.User, group *models.PositionGroup, name, description string, submission bool) (*models.Position, error)
	UpdatePosition(ctx context.Context, position *models.Position, upd services.PositionUpdate) (*models.Position, error)
	DeletePosition(ctx context.Context, position *models.Position) error

	TechniqueByID(ctx context.Context, user *models.User, id int64) (*models.Technique, error)
	CreateTechnique(ctx context.Context, user *models.User, name, description string, fromID int64, toID *int64) (*models.Technique, error)
	UpdateTechnique(ctx context.Context, technique *models.Technique, upd services.TechniqueUpdate) (*models.Technique, error)
	DeleteTechnique(ctx context.Context, technique *models.Technique) error
}

var (
	_ UserService  = (*services.UserService)(nil)
	_ NotesService = (*services.NotesService)(nil)
)

type Options struct {
	Address         string
	SecureCookie    bool
	ShutdownTimeout time.Duration
}

type Server struct {
	echo    *echo.Echo
	opts    Options
	users   UserService
	notes   NotesService
	metrics *Metrics
	logger  logging.Logger
}

func NewServer(opts Options, l logging.Logger, us UserService, ns NotesService, m *Metrics) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	s := &Server{
		echo:    e,
		opts:    opts,
		users:   us,
		notes:   ns,
		metrics: m,
		logger:  l.With("module", "http_server"),
	}

	e.HTTPErrorHandler = s.errorHandler
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{Generator: uuid.NewString}))
	e.Use(m.Middleware())
	e.Use(s.requestLogger())
	e.Use(middleware.Recover())

	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	s.echo.GET("/health", s.handleHealth)
	s.echo.GET("/metrics", echo.WrapHandler(s.metrics.Handler()))

	api := s.echo.Group("/api")
	api.POST("/token", s.handleLogin)
	api.POST("/account", s.handleRegister)

	authed := api.Group("", s.requireUser)
	authed.DELETE("/token", s.handleLogout)
	authed.GET("/account", s.handleAccount)

	authed.GET("/groups", s.handleListGroups)
	authed.POST("/groups", s.handleCreateGroup)
	authed.GET("/groups/:group_id", s.handleGetGroup)
	authed.PUT("/groups/:group_id", s.handleUpdateGroup)
	authed.DELETE("/groups/:group_id", s.handleDeleteGroup)

	authed.GET("/groups/:group_id/positions", s.handleListGroupPositions)
	authed.POST("/groups/:group_id/positions", s.handleCreatePosition)
	authed.GET("/groups/:group_id/positions/:position_id", s.handleGetPosition)
	authed.PUT("/groups/:group_id/positions/:position_id", s.handleUpdatePosition)
	authed.DELETE("/groups/:group_id/positions/:position_id", s.handleDeletePosition)

	authed.GET("/positions", s.handleListPositions)

	authed.POST("/positions/:position_id/techniques", s.handleCreateTechnique)
	authed.GET("/positions/:position_id/techniques/:technique_id", s.handleGetTechnique)
	authed.PUT("/positions/:position_id/techniques/:technique_id", s.handleUpdateTechnique)
	authed.DELETE("/positions/:position_id/techniques/:technique_id", s.handleDeleteTechnique)
}

// ServeHTTP lets the server be driven directly, e.g. by httptest.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.echo.ServeHTTP(w, r)
}

// Run serves until ctx is cancelled, then drains in-flight requests for at
// most ShutdownTimeout.
func (s *Server) Run(ctx context.Context) error {
	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.opts.ShutdownTimeout)
		defer cancel()
		if err := s.echo.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(shutdownCtx, "shutdown error", "error", err)
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.opts.Address)

	if err := s.echo.Start(s.opts.Address); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

type healthResponse struct {
	Status string `json:"status"`
}

func (s *Server) handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, healthResponse{Status: "ok"})
}
