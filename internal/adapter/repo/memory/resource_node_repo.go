package memory

import (
	"context"
	"sort"

	"terraverse/internal/domain/terra"
)

type ResourceNodeRepo struct {
	store *Store
}

func NewResourceNodeRepo(store *Store) ResourceNodeRepo {
	return ResourceNodeRepo{store: store}
}

func (r ResourceNodeRepo) ListAvailable(_ context.Context) ([]terra.ResourceNode, error) {
	out := make([]terra.ResourceNode, 0)
	for _, n := range r.store.nodes {
		if n.Remaining > 0 {
			out = append(out, n)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}
