package cli

import (
	"fmt"

	"github.com/vocab-forge/vocabforge/internal/catalog"
	"github.com/vocab-forge/vocabforge/internal/config"
	"github.com/vocab-forge/vocabforge/internal/db"
	"github.com/vocab-forge/vocabforge/internal/models"
	"github.com/vocab-forge/vocabforge/internal/remote"
)

// env bundles the dependencies every command needs: configuration, the
// local cache, the remote client, and the catalog store built on both.
type env struct {
	cfg      *config.Config
	database *db.DB
	remote   *remote.Client
	store    *catalog.Store
}

// openEnv loads configuration and wires up the dual-tier store.
// Callers must close the returned env.
func openEnv() (*env, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	paths := config.GetPaths(cfg)
	database, err := db.New(db.DefaultConfig(paths.Database))
	if err != nil {
		return nil, fmt.Errorf("initialize database: %w", err)
	}

	remoteClient := remote.NewClient(cfg.Remote)

	return &env{
		cfg:      cfg,
		database: database,
		remote:   remoteClient,
		store:    catalog.NewStore(database, remoteClient),
	}, nil
}

// close releases the env's resources.
func (e *env) close() {
	_ = e.database.Close()
}

// session returns the persisted session user, or an error telling the
// user to log in first.
func (e *env) session() (*models.User, error) {
	user, err := e.database.LoadSession()
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}
	if user == nil {
		return nil, fmt.Errorf("not logged in (run 'vocabforge login <username>')")
	}
	return user, nil
}

// activeContext returns the persisted dataset context, or an error
// telling the user to select one first.
func (e *env) activeContext() (*models.Context, error) {
	ctx, err := e.database.LoadContext()
	if err != nil {
		return nil, fmt.Errorf("load context: %w", err)
	}
	if ctx == nil {
		return nil, fmt.Errorf("no active context (run 'vocabforge use <app> <lang>')")
	}
	return ctx, nil
}

// resolveContext applies --app/--lang flag overrides on top of the
// persisted context. Flags alone are enough; the persisted context is
// only consulted for whichever flag is missing.
func (e *env) resolveContext(appFlag, langFlag string) (*models.Context, error) {
	if appFlag != "" && langFlag != "" {
		return &models.Context{AppName: appFlag, LangCode: langFlag}, nil
	}
	ctx, err := e.activeContext()
	if err != nil {
		return nil, err
	}
	if appFlag != "" {
		ctx.AppName = appFlag
	}
	if langFlag != "" {
		ctx.LangCode = langFlag
	}
	return ctx, nil
}
