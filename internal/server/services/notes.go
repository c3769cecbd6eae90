package services

import (
	"fmt"
	"strings"

	"github.com/dmitrijs2005/jitsunotes/internal/common"
	"github.com/dmitrijs2005/jitsunotes/internal/logging"
	"github.com/dmitrijs2005/jitsunotes/internal/server/repositories/repomanager"
	"github.com/jmoiron/sqlx"
)

// NotesService exposes groups, positions and techniques scoped to their
// owner. Lookups by id never reveal whether a row exists for someone else:
// both cases return common.ErrorNotFound.
type NotesService struct {
	db          *sqlx.DB
	repomanager repomanager.RepositoryManager
	logger      logging.Logger
}

func NewNotesService(db *sqlx.DB, m repomanager.RepositoryManager, l logging.Logger) *NotesService {
	return &NotesService{
		db:          db,
		repomanager: m,
		logger:      l.With("module", "notes_service"),
	}
}

func requireName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", fmt.Errorf("%w: name is required", common.ErrorValidation)
	}
	return name, nil
}
