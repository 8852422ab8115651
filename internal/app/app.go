package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/jmoiron/sqlx"
	"github.com/jonboulle/clockwork"

	"github.com/riskibarqy/cricket-club/external/playhq"
	"github.com/riskibarqy/cricket-club/internal/config"
	"github.com/riskibarqy/cricket-club/internal/domain/event"
	"github.com/riskibarqy/cricket-club/internal/domain/feed"
	"github.com/riskibarqy/cricket-club/internal/domain/fixture"
	"github.com/riskibarqy/cricket-club/internal/domain/sponsor"
	"github.com/riskibarqy/cricket-club/internal/domain/subscription"
	"github.com/riskibarqy/cricket-club/internal/domain/team"
	"github.com/riskibarqy/cricket-club/internal/infrastructure/account/introspect"
	cacherepo "github.com/riskibarqy/cricket-club/internal/infrastructure/repository/cache"
	"github.com/riskibarqy/cricket-club/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/cricket-club/internal/infrastructure/repository/postgres"
	"github.com/riskibarqy/cricket-club/internal/interfaces/httpapi"
	basecache "github.com/riskibarqy/cricket-club/internal/platform/cache"
	idgen "github.com/riskibarqy/cricket-club/internal/platform/id"
	"github.com/riskibarqy/cricket-club/internal/platform/logging"
	"github.com/riskibarqy/cricket-club/internal/usecase"
)

// App owns the HTTP server and the shared clients it was built with.
type App struct {
	Server *http.Server

	db       *sqlx.DB
	verifier *introspect.Client
	logger   *logging.Logger
}

type stores struct {
	teams         team.Repository
	fixtures      fixture.Repository
	events        event.Repository
	sponsors      sponsor.Repository
	feed          feed.Repository
	subscriptions subscription.Repository
	db            *sqlx.DB
}

func New(cfg config.Config, logger *logging.Logger) (*App, error) {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.HTTPAddr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	clock := clockwork.NewRealClock()

	repos, err := buildStores(cfg, clock)
	if err != nil {
		return nil, err
	}

	templates, err := loadFallbackTemplates(cfg.FallbackFixturesFile)
	if err != nil {
		closeDB(repos.db, logger)
		return nil, err
	}

	provider := playhq.NewClient(playhq.ClientConfig{
		BaseURL:        cfg.PlayHQBaseURL,
		APIKey:         cfg.PlayHQAPIKey,
		Tenant:         cfg.PlayHQTenant,
		Timeout:        cfg.PlayHQTimeout,
		Logger:         logger,
		Clock:          clock,
		CircuitBreaker: cfg.PlayHQCircuit,
	})
	if !provider.Configured() {
		logger.Warn("fixture provider credentials missing, external fixtures will fall back",
			"base_url", cfg.PlayHQBaseURL,
		)
	}

	verifier := introspect.NewClient(introspect.Config{
		BaseURL:        cfg.AuthBaseURL,
		IntrospectPath: cfg.AuthIntrospectPath,
		AdminKey:       cfg.AuthAdminKey,
		Timeout:        cfg.AuthTimeout,
		CacheTTL:       cfg.AuthCacheTTL,
		CircuitBreaker: cfg.AuthCircuit,
		Clock:          clock,
		Logger:         logger,
	})

	fixtureSvc := usecase.NewFixtureService(repos.fixtures, provider, usecase.FixtureServiceOptions{
		GradeIDs: cfg.PlayHQGradeIDByTeam,
		Fallback: usecase.FallbackConfig{
			Enabled:   cfg.FallbackDemoEnabled,
			TeamID:    cfg.FallbackDemoTeamID,
			Templates: templates,
		},
		Clock:  clock,
		Logger: logger,
	})
	teamSvc := usecase.NewTeamService(repos.teams)
	clubSvc := usecase.NewClubService(repos.events, repos.sponsors, repos.feed)
	subscriptionSvc := usecase.NewSubscriptionService(repos.subscriptions, idgen.NewUUIDGenerator(), clock)

	handler := httpapi.NewHandler(fixtureSvc, teamSvc, clubSvc, subscriptionSvc, logger)
	router := httpapi.NewRouter(handler, verifier, logger, cfg.CORSAllowedOrigins)

	logger.Info("app wired",
		"store_driver", cfg.StoreDriver,
		"cache_enabled", cfg.CacheEnabled,
		"fallback_demo_enabled", cfg.FallbackDemoEnabled,
		"fallback_demo_team_id", cfg.FallbackDemoTeamID,
		"grade_mappings", len(cfg.PlayHQGradeIDByTeam),
	)

	return &App{
		Server: &http.Server{
			Addr:         cfg.HTTPAddr,
			Handler:      router,
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
		},
		db:       repos.db,
		verifier: verifier,
		logger:   logger,
	}, nil
}

// Shutdown drains the HTTP server, then releases the shared clients.
func (a *App) Shutdown(ctx context.Context) error {
	err := a.Server.Shutdown(ctx)
	a.verifier.Close()
	closeDB(a.db, a.logger)
	return err
}

func buildStores(cfg config.Config, clock clockwork.Clock) (stores, error) {
	var out stores

	switch cfg.StoreDriver {
	case config.StorePostgres:
		db, err := openDB(cfg)
		if err != nil {
			return stores{}, err
		}
		out = stores{
			teams:         postgres.NewTeamRepository(db),
			fixtures:      postgres.NewFixtureRepository(db),
			events:        postgres.NewEventRepository(db),
			sponsors:      postgres.NewSponsorRepository(db),
			feed:          postgres.NewFeedRepository(db),
			subscriptions: postgres.NewSubscriptionRepository(db),
			db:            db,
		}
	default:
		now := clock.Now()
		out = stores{
			teams:         memory.NewTeamRepository(memory.SeedTeams()),
			fixtures:      memory.NewFixtureRepository(memory.SeedFixtures(now)),
			events:        memory.NewEventRepository(memory.SeedEvents(now)),
			sponsors:      memory.NewSponsorRepository(memory.SeedSponsors()),
			feed:          memory.NewFeedRepository(memory.SeedFeed(now)),
			subscriptions: memory.NewSubscriptionRepository(),
		}
	}

	if cfg.CacheEnabled {
		store := basecache.NewStore(cfg.CacheTTL, clock)
		out.teams = cacherepo.NewTeamRepository(out.teams, store)
		out.fixtures = cacherepo.NewFixtureRepository(out.fixtures, store)
		out.sponsors = cacherepo.NewSponsorRepository(out.sponsors, store)
		out.feed = cacherepo.NewFeedRepository(out.feed, store)
	}

	return out, nil
}

func closeDB(db *sqlx.DB, logger *logging.Logger) {
	if db == nil {
		return
	}
	if err := db.Close(); err != nil {
		logger.Error("close database failed", "error", err)
	}
}
