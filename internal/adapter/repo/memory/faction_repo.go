package memory

import (
	"context"

	"terraverse/internal/app/ports"
	"terraverse/internal/domain/terra"
)

type FactionRepo struct {
	store *Store
}

func NewFactionRepo(store *Store) FactionRepo {
	return FactionRepo{store: store}
}

func (r FactionRepo) Create(_ context.Context, f terra.Faction) error {
	if _, exists := r.store.factions[f.ID]; exists {
		return ports.ErrConflict
	}
	r.store.factions[f.ID] = f
	return nil
}

func (r FactionRepo) GetByID(_ context.Context, factionID string) (terra.Faction, error) {
	f, ok := r.store.factions[factionID]
	if !ok {
		return terra.Faction{}, ports.ErrNotFound
	}
	return f, nil
}
