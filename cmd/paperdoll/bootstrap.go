package main

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/cory-johannsen/paperdoll/internal/api/rest"
	"github.com/cory-johannsen/paperdoll/internal/config"
	"github.com/cory-johannsen/paperdoll/internal/game/catalog"
	"github.com/cory-johannsen/paperdoll/internal/game/interaction"
	"github.com/cory-johannsen/paperdoll/internal/game/inventory"
	"github.com/cory-johannsen/paperdoll/internal/game/presentation"
	"github.com/cory-johannsen/paperdoll/internal/game/session"
	"github.com/cory-johannsen/paperdoll/internal/observability"
	"github.com/cory-johannsen/paperdoll/internal/scripting"
	"github.com/cory-johannsen/paperdoll/internal/storage/postgres"
	redisstore "github.com/cory-johannsen/paperdoll/internal/storage/redis"
)

const healthTimeout = 2 * time.Second

// env is what every subcommand shares: configuration, logger, catalog and
// the tuned presentation engine.
type env struct {
	cfg     config.Config
	logger  *zap.Logger
	catalog *catalog.Registry
	engine  *presentation.Engine
}

// loadEnv reads the config at path, lets adjust override it, then builds the
// logger, catalog and engine.
func loadEnv(path string, adjust func(*config.Config)) (*env, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if adjust != nil {
		adjust(&cfg)
	}
	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		return nil, fmt.Errorf("initializing logger: %w", err)
	}

	start := time.Now()
	reg, err := catalog.LoadDir(cfg.Content.ItemsDir)
	if err != nil {
		return nil, fmt.Errorf("loading catalog: %w", err)
	}
	tuning := presentation.DefaultConfig()
	if cfg.Content.PresentationFile != "" {
		if tuning, err = presentation.LoadConfig(cfg.Content.PresentationFile); err != nil {
			return nil, err
		}
	}
	logger.Info("content loaded",
		zap.Int("items", reg.Len()),
		zap.Duration("elapsed", time.Since(start)),
	)
	return &env{
		cfg:     cfg,
		logger:  logger,
		catalog: reg,
		engine:  presentation.NewEngine(tuning, reg),
	}, nil
}

func (e *env) layout() inventory.Layout {
	return inventory.Layout{
		EquippedSize:    e.cfg.Inventory.EquippedSize,
		InventorySize:   e.cfg.Inventory.InventorySize,
		RowWidth:        e.cfg.Inventory.RowWidth,
		WardrobeMinRows: e.cfg.Inventory.WardrobeMinRows,
	}
}

func (e *env) thresholds() interaction.Thresholds {
	return interaction.Thresholds{
		Mouse: e.cfg.Interaction.MouseThresholdPx,
		Touch: e.cfg.Interaction.TouchThresholdPx,
	}
}

// reactor loads the reaction scripts. It returns nil when scripting is not
// configured.
func (e *env) reactor() (*scripting.Manager, error) {
	if e.cfg.Content.ScriptsDir == "" {
		return nil, nil
	}
	m := scripting.NewManager(e.logger.Named("lua"), e.cfg.Scripting.InstructionLimit)
	if err := m.LoadGlobal(e.cfg.Content.ScriptsDir); err != nil {
		return nil, fmt.Errorf("loading scripts: %w", err)
	}
	return m, nil
}

// repository opens the configured save backend. The returned func releases it.
func (e *env) repository(ctx context.Context) (session.Repository, rest.HealthFunc, func(), error) {
	switch e.cfg.Storage.Backend {
	case config.BackendPostgres:
		pool, err := postgres.NewPool(ctx, e.cfg.Database)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("connecting to database: %w", err)
		}
		health := func(ctx context.Context) error { return pool.Health(ctx, healthTimeout) }
		return postgres.NewSaveRepository(pool.DB()), health, pool.Close, nil
	case config.BackendRedis:
		client, err := redisstore.NewClient(ctx, e.cfg.Redis)
		if err != nil {
			return nil, nil, nil, err
		}
		health := func(ctx context.Context) error {
			ctx, cancel := context.WithTimeout(ctx, healthTimeout)
			defer cancel()
			return client.Ping(ctx).Err()
		}
		return redisstore.NewSaveRepository(client, e.cfg.Redis.KeyPrefix), health, func() { _ = client.Close() }, nil
	}
	return session.NewMemoryRepository(), nil, func() {}, nil
}

// sessions assembles a session Manager over the configured backend.
func (e *env) sessions(ctx context.Context) (*session.Manager, rest.HealthFunc, func(), error) {
	if err := e.layout().Validate(); err != nil {
		return nil, nil, nil, err
	}
	var loadout *inventory.StartingLoadout
	if e.cfg.Content.LoadoutFile != "" {
		var err error
		if loadout, err = inventory.LoadStartingLoadout(e.cfg.Content.LoadoutFile); err != nil {
			return nil, nil, nil, err
		}
	}
	scripts, err := e.reactor()
	if err != nil {
		return nil, nil, nil, err
	}
	repo, health, closeRepo, err := e.repository(ctx)
	if err != nil {
		if scripts != nil {
			scripts.Close()
		}
		return nil, nil, nil, err
	}

	deps := session.Deps{
		Repo:    repo,
		Catalog: e.catalog,
		Layout:  e.layout(),
		Loadout: loadout,
		Engine:  e.engine,
		Logger:  e.logger,

		IdleTimeout: e.cfg.Sessions.IdleTimeout,
	}
	if scripts != nil {
		deps.Reactor = scripts
	}
	release := func() {
		closeRepo()
		if scripts != nil {
			scripts.Close()
		}
	}
	e.logger.Info("storage ready", zap.String("backend", e.cfg.Storage.Backend))
	return session.NewManager(deps), health, release, nil
}
