package expand

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"terraverse/internal/adapter/repo/memory"
	"terraverse/internal/domain/geo"
	"terraverse/internal/domain/terra"
)

func newUseCase(store *memory.Store, seed int64) UseCase {
	return UseCase{
		TxManager:       memory.NewTxManager(store),
		Buildings:       memory.NewBuildingRepo(store),
		Wallets:         memory.NewWalletRepo(store),
		DevelopmentCost: 150,
		MinSeparationKm: 0.25,
		Rand:            rand.New(rand.NewSource(seed)),
		Now:             func() time.Time { return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC) },
	}
}

func seedCenter(store *memory.Store) {
	store.SeedBuilding(terra.Building{
		ID:                "b-center",
		OwnerAgentID:      "agent-1",
		TypeCode:          terra.CodeCommandCenter,
		Position:          geo.Coordinate{Lat: 36.0, Lng: 127.0},
		IsTerritoryCenter: true,
		TerritoryRadiusKm: 5,
	})
}

func TestDevelopBuildsInsideTerritory(t *testing.T) {
	store := memory.NewStore()
	seedCenter(store)
	store.SeedWallet(terra.Wallet{OwnerAgentID: "agent-1", Balance: 500})

	uc := newUseCase(store, 7)
	// Tight separation so the sampled point cannot land in the center's own
	// exclusion zone.
	uc.MinSeparationKm = 0.01
	built, err := uc.Develop(context.Background(), "agent-1")
	if err != nil {
		t.Fatalf("develop: %v", err)
	}
	if built == nil {
		t.Fatal("expected a building")
	}
	if d := geo.DistanceKm(geo.Coordinate{Lat: 36.0, Lng: 127.0}, built.Position); d > 5.05 {
		t.Fatalf("building outside territory radius: %.3fkm", d)
	}
	known := map[terra.BuildingCode]bool{terra.CodeFactory: true, terra.CodeMine: true, terra.CodeSupplyDepot: true}
	if !known[built.TypeCode] {
		t.Fatalf("unexpected building type %s", built.TypeCode)
	}
	if built.IsTerritoryCenter {
		t.Fatal("minor buildings are not territory centers")
	}

	w, _ := store.Wallet("agent-1")
	if w.Balance != 350 {
		t.Fatalf("expected exact debit 500-150=350, got %d", w.Balance)
	}
}

func TestDevelopNoCenterIsNoop(t *testing.T) {
	store := memory.NewStore()
	store.SeedWallet(terra.Wallet{OwnerAgentID: "agent-1", Balance: 500})

	built, err := newUseCase(store, 7).Develop(context.Background(), "agent-1")
	if err != nil {
		t.Fatalf("develop: %v", err)
	}
	if built != nil {
		t.Fatalf("expected noop without a center, got %+v", built)
	}
	w, _ := store.Wallet("agent-1")
	if w.Balance != 500 {
		t.Fatalf("balance must be untouched, got %d", w.Balance)
	}
}

func TestDevelopInsufficientFundsIsNoop(t *testing.T) {
	store := memory.NewStore()
	seedCenter(store)
	store.SeedWallet(terra.Wallet{OwnerAgentID: "agent-1", Balance: 149})

	built, err := newUseCase(store, 7).Develop(context.Background(), "agent-1")
	if err != nil {
		t.Fatalf("develop: %v", err)
	}
	if built != nil {
		t.Fatal("expected noop on short funds")
	}
	w, _ := store.Wallet("agent-1")
	if w.Balance != 149 {
		t.Fatalf("balance must never go negative or change, got %d", w.Balance)
	}
	if n := len(store.BuildingsByOwner("agent-1")); n != 1 {
		t.Fatalf("no building may appear, have %d", n)
	}
}

func TestDevelopCollisionIsNoop(t *testing.T) {
	store := memory.NewStore()
	store.SeedWallet(terra.Wallet{OwnerAgentID: "agent-1", Balance: 500})
	// Tiny territory: every sample lands within the separation zone of the
	// center itself.
	store.SeedBuilding(terra.Building{
		ID:                "b-center",
		OwnerAgentID:      "agent-1",
		TypeCode:          terra.CodeCommandCenter,
		Position:          geo.Coordinate{Lat: 36.0, Lng: 127.0},
		IsTerritoryCenter: true,
		TerritoryRadiusKm: 0.1,
	})

	built, err := newUseCase(store, 7).Develop(context.Background(), "agent-1")
	if err != nil {
		t.Fatalf("develop: %v", err)
	}
	if built != nil {
		t.Fatal("expected collision noop")
	}
	w, _ := store.Wallet("agent-1")
	if w.Balance != 500 {
		t.Fatalf("collision must not debit, got %d", w.Balance)
	}
}
