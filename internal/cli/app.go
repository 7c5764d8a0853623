package cli

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/ppiankov/claimshift/internal/auth"
	"github.com/ppiankov/claimshift/internal/i18n"
	"github.com/ppiankov/claimshift/internal/logging"
	"github.com/ppiankov/claimshift/internal/model"
	"github.com/ppiankov/claimshift/internal/mutation"
	"github.com/ppiankov/claimshift/internal/session"
	"github.com/ppiankov/claimshift/internal/store"
)

// app bundles the collaborators a command needs
type app struct {
	cfg       model.Config
	db        *sql.DB
	repo      *store.Repo
	logger    *zap.Logger
	localizer *i18n.Localizer
	roles     *auth.Roles
	sessions  *session.Store
}

func newApp() (*app, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	logger, err := logging.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(filepath.Dir(cfg.Store.Path), 0755); err != nil {
		return nil, fmt.Errorf("create store dir: %w", err)
	}
	db, err := store.OpenMigrated(cfg.Store.Path)
	if err != nil {
		return nil, err
	}
	logger.Debug("claim store ready", zap.String("path", cfg.Store.Path))

	a := &app{
		cfg:       cfg,
		db:        db,
		repo:      store.NewRepo(db),
		logger:    logger,
		localizer: i18n.New(cfg.Locale),
		roles:     auth.NewRoles(cfg.Auth.Roles...),
	}
	a.sessions = session.NewStore(a.newWorkflow, cfg.Session.TTL, cfg.Session.CleanupInterval, logger)
	return a, nil
}

func (a *app) newWorkflow(mode mutation.Mode) *mutation.Workflow {
	return mutation.NewWorkflow(mode, a.repo, a.repo,
		mutation.WithLogger(a.logger.With(zap.Stringer("mode", mode))),
		mutation.WithLocalizer(a.localizer))
}

// describe renders err for the user, localizing workflow errors
func (a *app) describe(err error) string {
	key := mutation.MessageKey(err)
	if key == i18n.KeyGeneralUnexpectedError {
		return err.Error()
	}
	return a.localizer.Localize(key)
}

func (a *app) Close() {
	a.sessions.Clear()
	_ = a.logger.Sync()
	_ = a.db.Close()
}
