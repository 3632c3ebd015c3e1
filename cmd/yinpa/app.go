package main

import (
	"context"
	"fmt"
	"io"

	"github.com/yinpa-bot/yinpa/internal/config"
	"github.com/yinpa-bot/yinpa/internal/errors"
	"github.com/yinpa-bot/yinpa/internal/orchestrators/interaction"
	"github.com/yinpa-bot/yinpa/internal/orchestrators/inventory"
	"github.com/yinpa-bot/yinpa/internal/orchestrators/player"
	"github.com/yinpa-bot/yinpa/internal/pkg/clock"
	"github.com/yinpa-bot/yinpa/internal/pkg/idgen"
	"github.com/yinpa-bot/yinpa/internal/pkg/rng"
	"github.com/yinpa-bot/yinpa/internal/redis"
	"github.com/yinpa-bot/yinpa/internal/repositories/user"
)

var errMissingUser = errors.InvalidArgument("--user is required")

// app wires the orchestrators against one storage backend
type app struct {
	players      player.Service
	interactions interaction.Service
	items        inventory.Service
	closer       io.Closer

	// redis is set only for the redis backend
	redis redis.Client
}

func newApp(ctx context.Context, cfg *config.Config) (*app, error) {
	a := &app{}
	repo, err := a.openRepository(ctx, cfg.Storage)
	if err != nil {
		return nil, err
	}

	random := rng.New(nil)
	clk := clock.New()

	players, err := player.NewOrchestrator(&player.Config{
		UserRepo: repo,
		Clock:    clk,
		Random:   random,
		Tuning:   cfg.Tuning,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create player orchestrator: %w", err)
	}

	interactions, err := interaction.NewOrchestrator(&interaction.Config{
		Players:     players,
		UserRepo:    repo,
		Clock:       clk,
		IDGenerator: idgen.TimeOrdered("act"),
		Random:      random,
		Tuning:      cfg.Tuning,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create interaction orchestrator: %w", err)
	}

	items, err := inventory.NewOrchestrator(&inventory.Config{
		Players:  players,
		UserRepo: repo,
		Clock:    clk,
		Tuning:   cfg.Tuning,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create inventory orchestrator: %w", err)
	}

	a.players = players
	a.interactions = interactions
	a.items = items
	return a, nil
}

// Close releases the storage backend
func (a *app) Close() error {
	if a.closer == nil {
		return nil
	}
	return a.closer.Close()
}

func (a *app) openRepository(ctx context.Context, cfg config.Storage) (user.Repository, error) {
	switch cfg.Backend {
	case config.BackendRedis:
		client, err := redis.NewClient(cfg.RedisAddr, &redis.Options{
			PoolSize:        cfg.RedisPoolSize,
			MaxRetries:      cfg.RedisMaxRetries,
			ConnMaxIdleTime: cfg.RedisIdleTime,
			UseTLS:          cfg.RedisUseTLS,
		})
		if err != nil {
			return nil, err
		}
		if err := client.Ping(ctx).Err(); err != nil {
			_ = client.Close()
			return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "redis is not reachable")
		}
		repo, err := user.NewRedis(&user.RedisConfig{Client: client})
		if err != nil {
			_ = client.Close()
			return nil, err
		}
		a.redis = client
		a.closer = client
		return repo, nil
	case config.BackendSQLite:
		repo, err := user.NewSQLite(ctx, &user.SQLiteConfig{Path: cfg.SQLitePath})
		if err != nil {
			return nil, err
		}
		a.closer = repo
		return repo, nil
	default:
		return nil, errors.InvalidArgumentf("unknown storage backend %q", cfg.Backend)
	}
}
