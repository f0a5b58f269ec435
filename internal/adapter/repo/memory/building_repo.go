package memory

import (
	"context"
	"sort"
	"time"

	"terraverse/internal/app/ports"
	"terraverse/internal/domain/terra"
)

type BuildingRepo struct {
	store *Store
}

func NewBuildingRepo(store *Store) BuildingRepo {
	return BuildingRepo{store: store}
}

func (r BuildingRepo) Create(_ context.Context, b terra.Building) error {
	if _, exists := r.store.buildings[b.ID]; exists {
		return ports.ErrConflict
	}
	r.store.buildings[b.ID] = b
	return nil
}

func (r BuildingRepo) ListByOwner(_ context.Context, ownerAgentID string) ([]terra.Building, error) {
	out := make([]terra.Building, 0)
	for _, b := range r.store.buildings {
		if b.OwnerAgentID == ownerAgentID {
			out = append(out, b)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r BuildingRepo) ListCentersByOwner(_ context.Context, ownerAgentID string) ([]terra.Building, error) {
	out := make([]terra.Building, 0)
	for _, b := range r.store.buildings {
		if b.OwnerAgentID == ownerAgentID && b.IsTerritoryCenter {
			out = append(out, b)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r BuildingRepo) CountByOwnerAndType(_ context.Context, ownerAgentID string, code terra.BuildingCode) (int64, error) {
	var n int64
	for _, b := range r.store.buildings {
		if b.OwnerAgentID == ownerAgentID && b.TypeCode == code {
			n++
		}
	}
	return n, nil
}

func (r BuildingRepo) UpdateLastCollected(_ context.Context, buildingID string, at time.Time) error {
	b, ok := r.store.buildings[buildingID]
	if !ok {
		return ports.ErrNotFound
	}
	b.LastCollectedAt = at
	r.store.buildings[buildingID] = b
	return nil
}
