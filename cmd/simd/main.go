// Command simd runs the faction simulation daemon: a fixed-interval tick
// loop driving every faction leader through collection, expansion, and
// movement against the persistent store.
package main

import (
	"context"
	"errors"
	"log/slog"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	staticcatalog "terraverse/internal/adapter/catalog/static"
	metricsinmem "terraverse/internal/adapter/metrics/inmemory"
	gormrepo "terraverse/internal/adapter/repo/gorm"
	memrepo "terraverse/internal/adapter/repo/memory"
	"terraverse/internal/app/collect"
	"terraverse/internal/app/expand"
	"terraverse/internal/app/pipeline"
	"terraverse/internal/app/ports"
	"terraverse/internal/app/tick"
	"terraverse/internal/config"
	"terraverse/internal/domain/geo"
	"terraverse/internal/domain/terra"
)

type repos struct {
	Tx        ports.TxManager
	Agents    ports.AgentRepository
	Factions  ports.FactionRepository
	Buildings ports.BuildingRepository
	Wallets   ports.WalletRepository
	Nodes     ports.ResourceNodeRepository
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("load config", "error", err)
		os.Exit(1)
	}
	initLogger(cfg.Logging)

	catalog, err := buildCatalog(cfg.Catalog)
	if err != nil {
		slog.Error("load building catalog", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	r, err := buildRepos(ctx, cfg)
	if err != nil {
		slog.Error("build repositories", "error", err)
		os.Exit(1)
	}
	if err := seedDemoFaction(ctx, r); err != nil {
		slog.Error("seed demo faction", "error", err)
		os.Exit(1)
	}

	seed := cfg.Sim.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))
	recorder := metricsinmem.NewRecorder()

	uc := pipeline.UseCase{
		TxManager: r.Tx,
		Agents:    r.Agents,
		Buildings: r.Buildings,
		Wallets:   r.Wallets,
		Nodes:     r.Nodes,
		Catalog:   catalog,
		Collector: collect.UseCase{
			TxManager: r.Tx,
			Buildings: r.Buildings,
			Wallets:   r.Wallets,
			Catalog:   catalog,
		},
		Developer: expand.UseCase{
			TxManager:       r.Tx,
			Buildings:       r.Buildings,
			Wallets:         r.Wallets,
			DevelopmentCost: cfg.Sim.DevelopmentCost,
			MinSeparationKm: cfg.Sim.MinSeparationKm,
			Rand:            rng,
		},
		Metrics:             recorder,
		TravelSpeedKmPerSec: cfg.Sim.TravelSpeedKmPerSec,
		BeaconCost:          cfg.Sim.BeaconCost,
		Logger:              slog.With("component", "pipeline"),
		Rand:                rng,
	}
	runner := &tick.Runner{
		Agents:    r.Agents,
		Processor: uc,
		Metrics:   recorder,
		Logger:    slog.With("component", "tick"),
	}

	slog.Info("simulation daemon started",
		"tick_interval", cfg.Sim.TickInterval,
		"travel_speed_kmps", cfg.Sim.TravelSpeedKmPerSec,
		"seed", seed,
		"persistent", cfg.Database.DSN != "",
	)

	ticker := time.NewTicker(cfg.Sim.TickInterval)
	defer ticker.Stop()
	runner.RunTick(ctx)
	for {
		select {
		case <-ctx.Done():
			snap := recorder.Snapshot()
			slog.Info("simulation daemon stopping",
				"agents_processed", snap.AgentsProcessed,
				"agents_skipped", snap.AgentsSkipped,
				"agents_failed", snap.AgentsFailed,
			)
			return
		case <-ticker.C:
			runner.RunTick(ctx)
		}
	}
}

func initLogger(cfg config.LoggingConfig) {
	var level slog.Level
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if cfg.JSONFormat {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}
	slog.SetDefault(slog.New(handler))
}

func buildCatalog(cfg config.CatalogConfig) (ports.BuildingCatalog, error) {
	if cfg.Path == "" {
		return staticcatalog.Default(), nil
	}
	c, err := staticcatalog.LoadFile(cfg.Path)
	if err != nil {
		return nil, err
	}
	return c, nil
}

func buildRepos(ctx context.Context, cfg *config.Config) (repos, error) {
	if cfg.Database.DSN == "" {
		slog.Warn("no TERRAVERSE_DB_DSN set, running against the in-memory store")
		store := memrepo.NewStore()
		return repos{
			Tx:        memrepo.NewTxManager(store),
			Agents:    memrepo.NewAgentRepo(store),
			Factions:  memrepo.NewFactionRepo(store),
			Buildings: memrepo.NewBuildingRepo(store),
			Wallets:   memrepo.NewWalletRepo(store),
			Nodes:     memrepo.NewResourceNodeRepo(store),
		}, nil
	}

	db, err := gormrepo.OpenPostgres(cfg.Database.DSN)
	if err != nil {
		return repos{}, err
	}
	if err := gormrepo.ApplyMigrations(ctx, db, cfg.Database.MigrationsPath); err != nil {
		return repos{}, err
	}
	return repos{
		Tx:        gormrepo.NewTxManager(db),
		Agents:    gormrepo.NewAgentRepo(db),
		Factions:  gormrepo.NewFactionRepo(db),
		Buildings: gormrepo.NewBuildingRepo(db),
		Wallets:   gormrepo.NewWalletRepo(db),
		Nodes:     gormrepo.NewResourceNodeRepo(db),
	}, nil
}

// seedDemoFaction makes a fresh install observable without an external world
// builder: one faction, one leader with a command center and starting funds.
func seedDemoFaction(ctx context.Context, r repos) error {
	const (
		factionID = "demo-faction"
		agentID   = "demo-leader"
	)
	_, err := r.Agents.GetByID(ctx, agentID)
	if err == nil {
		return nil
	}
	if !errors.Is(err, ports.ErrNotFound) {
		return err
	}

	home := geo.Coordinate{Lat: 36.0, Lng: 127.0}
	now := time.Now()
	return r.Tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := r.Factions.Create(txCtx, terra.Faction{
			ID:            factionID,
			Name:          "Demo Vanguard",
			Category:      terra.CategoryExpansionist,
			LeaderAgentID: agentID,
		}); err != nil {
			return err
		}
		if err := r.Agents.Create(txCtx, terra.Agent{
			ID:          agentID,
			FactionID:   factionID,
			Role:        terra.RoleLeader,
			CharacterID: "demo-character",
			Position:    home,
		}); err != nil {
			return err
		}
		if err := r.Wallets.Create(txCtx, terra.Wallet{OwnerAgentID: agentID, Balance: 500}); err != nil {
			return err
		}
		return r.Buildings.Create(txCtx, terra.Building{
			ID:                "demo-command-center",
			OwnerAgentID:      agentID,
			TypeCode:          terra.CodeCommandCenter,
			Position:          home,
			IsTerritoryCenter: true,
			TerritoryRadiusKm: 5,
			LastCollectedAt:   now,
		})
	})
}
