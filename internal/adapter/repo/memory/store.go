// Package memory provides map-backed repository adapters. They serve as test
// doubles and as a storeless dev mode for the simulation daemon. Repository
// methods do not lock; the TxManager serializes access the same way the
// database serializes transactions.
package memory

import (
	"sync"

	"terraverse/internal/domain/terra"
)

type Store struct {
	mu        sync.Mutex
	agents    map[string]terra.Agent
	factions  map[string]terra.Faction
	buildings map[string]terra.Building
	wallets   map[string]terra.Wallet
	nodes     map[string]terra.ResourceNode
}

func NewStore() *Store {
	return &Store{
		agents:    make(map[string]terra.Agent),
		factions:  make(map[string]terra.Faction),
		buildings: make(map[string]terra.Building),
		wallets:   make(map[string]terra.Wallet),
		nodes:     make(map[string]terra.ResourceNode),
	}
}

func (s *Store) SeedAgent(a terra.Agent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.agents[a.ID] = a
}

func (s *Store) SeedBuilding(b terra.Building) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.buildings[b.ID] = b
}

func (s *Store) SeedWallet(w terra.Wallet) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.wallets[w.OwnerAgentID] = w
}

func (s *Store) SeedResourceNode(n terra.ResourceNode) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nodes[n.ID] = n
}

func (s *Store) Agent(agentID string) (terra.Agent, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.agents[agentID]
	return a, ok
}

func (s *Store) Wallet(ownerAgentID string) (terra.Wallet, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	w, ok := s.wallets[ownerAgentID]
	return w, ok
}

func (s *Store) BuildingsByOwner(ownerAgentID string) []terra.Building {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]terra.Building, 0)
	for _, b := range s.buildings {
		if b.OwnerAgentID == ownerAgentID {
			out = append(out, b)
		}
	}
	return out
}
