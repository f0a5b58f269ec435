package memory

import (
	"context"
	"sort"

	"terraverse/internal/app/ports"
	"terraverse/internal/domain/geo"
	"terraverse/internal/domain/terra"
)

type AgentRepo struct {
	store *Store
}

func NewAgentRepo(store *Store) AgentRepo {
	return AgentRepo{store: store}
}

func (r AgentRepo) Create(_ context.Context, a terra.Agent) error {
	if _, exists := r.store.agents[a.ID]; exists {
		return ports.ErrConflict
	}
	r.store.agents[a.ID] = a
	return nil
}

func (r AgentRepo) ListLeaders(_ context.Context) ([]terra.Agent, error) {
	out := make([]terra.Agent, 0)
	for _, a := range r.store.agents {
		if a.Role == terra.RoleLeader {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r AgentRepo) GetByID(_ context.Context, agentID string) (terra.Agent, error) {
	a, ok := r.store.agents[agentID]
	if !ok {
		return terra.Agent{}, ports.ErrNotFound
	}
	return a, nil
}

func (r AgentRepo) SavePosition(_ context.Context, agentID string, pos geo.Coordinate) error {
	a, ok := r.store.agents[agentID]
	if !ok {
		return ports.ErrNotFound
	}
	a.Position = pos
	r.store.agents[agentID] = a
	return nil
}

func (r AgentRepo) SaveOrder(_ context.Context, agentID string, order *terra.MovementOrder) error {
	a, ok := r.store.agents[agentID]
	if !ok {
		return ports.ErrNotFound
	}
	if order == nil {
		a.Order = nil
	} else {
		cp := *order
		a.Order = &cp
	}
	r.store.agents[agentID] = a
	return nil
}
