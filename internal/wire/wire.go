// Package wire provides dependency injection for the atelier CLI.
// It creates singleton services with lazy initialization.
package wire

import (
	"io"
	"log"
	"os"
	"sync"

	cliadapter "github.com/example/atelier/internal/adapters/cli"
	"github.com/example/atelier/internal/adapters/httpapi"
	"github.com/example/atelier/internal/adapters/sqlite"
	"github.com/example/atelier/internal/adapters/terminal"
	"github.com/example/atelier/internal/app"
	"github.com/example/atelier/internal/config"
	"github.com/example/atelier/internal/db"
	"github.com/example/atelier/internal/ports/primary"
)

var (
	configPath string

	cfg               *config.Config
	commissionService primary.CommissionService
	catalogService    primary.CatalogService
	artistService     primary.ArtistService
	sessionService    primary.SessionService
	activityService   primary.ActivityService
	once              sync.Once
)

// SetConfigPath selects the config file used on first initialization.
// An empty path means ~/.atelier/config.yaml.
func SetConfigPath(path string) {
	configPath = path
}

// Config returns the loaded configuration.
func Config() *config.Config {
	once.Do(initServices)
	return cfg
}

// CommissionService returns the singleton CommissionService instance.
func CommissionService() primary.CommissionService {
	once.Do(initServices)
	return commissionService
}

// initServices initializes all services and their dependencies.
// This is called once via sync.Once.
func initServices() {
	if err := config.LoadDotEnv(); err != nil {
		log.Fatalf("failed to load .env: %v", err)
	}

	loaded, err := config.LoadConfig(configPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	cfg = loaded

	dbPath, err := cfg.ResolveDBPath()
	if err != nil {
		log.Fatalf("failed to resolve database path: %v", err)
	}
	database, err := db.Open(dbPath)
	if err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}

	logger := log.New(os.Stderr, "atelier: ", log.LstdFlags)

	// Secondary adapters: marketplace API over HTTP, local state in sqlite
	client := httpapi.NewClient(cfg.APIURL,
		httpapi.WithTimeout(cfg.Timeout),
		httpapi.WithStageToken(cfg.StageToken),
		httpapi.WithLogger(logger),
	)
	sessionRepo := sqlite.NewSessionRepository(database)
	activityRepo := sqlite.NewActivityRepository(database)
	notifier := terminal.NewNotifier(os.Stdout, cfg.Color)

	executor := app.NewEffectExecutor(notifier, activityRepo, logger)

	// Services (primary ports implementation)
	catalogService = app.NewCatalogService(client, sessionRepo, executor, logger, cfg.Currency)
	commissionService = app.NewCommissionService(client, client, sessionRepo, executor, logger, cfg.Currency)
	artistService = app.NewArtistService(client, catalogService)
	sessionService = app.NewSessionService(client, sessionRepo, executor, logger)
	activityService = app.NewActivityService(activityRepo)
}

// CommissionAdapter returns a new CommissionAdapter writing to stdout.
// Each call creates a new adapter (adapters are stateless translators).
func CommissionAdapter() *cliadapter.CommissionAdapter {
	return CommissionAdapterWithOutput(os.Stdout)
}

// CommissionAdapterWithOutput returns a new CommissionAdapter writing to the given output.
func CommissionAdapterWithOutput(out io.Writer) *cliadapter.CommissionAdapter {
	once.Do(initServices)
	return cliadapter.NewCommissionAdapter(commissionService, out)
}

// CatalogAdapter returns a new CatalogAdapter writing to stdout.
func CatalogAdapter() *cliadapter.CatalogAdapter {
	return CatalogAdapterWithOutput(os.Stdout)
}

// CatalogAdapterWithOutput returns a new CatalogAdapter writing to the given output.
func CatalogAdapterWithOutput(out io.Writer) *cliadapter.CatalogAdapter {
	once.Do(initServices)
	return cliadapter.NewCatalogAdapter(catalogService, out)
}

// ArtistAdapter returns a new ArtistAdapter writing to stdout.
func ArtistAdapter() *cliadapter.ArtistAdapter {
	return ArtistAdapterWithOutput(os.Stdout)
}

// ArtistAdapterWithOutput returns a new ArtistAdapter writing to the given output.
func ArtistAdapterWithOutput(out io.Writer) *cliadapter.ArtistAdapter {
	once.Do(initServices)
	return cliadapter.NewArtistAdapter(artistService, out)
}

// SessionAdapter returns a new SessionAdapter writing to stdout.
func SessionAdapter() *cliadapter.SessionAdapter {
	return SessionAdapterWithOutput(os.Stdout)
}

// SessionAdapterWithOutput returns a new SessionAdapter writing to the given output.
func SessionAdapterWithOutput(out io.Writer) *cliadapter.SessionAdapter {
	once.Do(initServices)
	return cliadapter.NewSessionAdapter(sessionService, out)
}

// ActivityAdapter returns a new ActivityAdapter writing to stdout.
func ActivityAdapter() *cliadapter.ActivityAdapter {
	return ActivityAdapterWithOutput(os.Stdout)
}

// ActivityAdapterWithOutput returns a new ActivityAdapter writing to the given output.
func ActivityAdapterWithOutput(out io.Writer) *cliadapter.ActivityAdapter {
	once.Do(initServices)
	return cliadapter.NewActivityAdapter(activityService, out)
}
