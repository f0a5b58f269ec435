package ports

import (
	"context"
	"time"

	"terraverse/internal/domain/geo"
	"terraverse/internal/domain/terra"
)

// AgentRepository loads and mutates faction agents. Position and movement
// order writes happen inside the caller's transaction.
type AgentRepository interface {
	Create(ctx context.Context, a terra.Agent) error
	ListLeaders(ctx context.Context) ([]terra.Agent, error)
	GetByID(ctx context.Context, agentID string) (terra.Agent, error)
	SavePosition(ctx context.Context, agentID string, pos geo.Coordinate) error
	// SaveOrder replaces the agent's movement order; nil clears it.
	SaveOrder(ctx context.Context, agentID string, order *terra.MovementOrder) error
}

type BuildingRepository interface {
	Create(ctx context.Context, b terra.Building) error
	ListByOwner(ctx context.Context, ownerAgentID string) ([]terra.Building, error)
	ListCentersByOwner(ctx context.Context, ownerAgentID string) ([]terra.Building, error)
	CountByOwnerAndType(ctx context.Context, ownerAgentID string, code terra.BuildingCode) (int64, error)
	UpdateLastCollected(ctx context.Context, buildingID string, at time.Time) error
}

// WalletRepository mutates balances. Debit must be conditional: it fails with
// ErrInsufficientFunds instead of ever letting a balance go negative.
type WalletRepository interface {
	Create(ctx context.Context, w terra.Wallet) error
	GetByOwner(ctx context.Context, ownerAgentID string) (terra.Wallet, error)
	Credit(ctx context.Context, ownerAgentID string, amount int64) error
	Debit(ctx context.Context, ownerAgentID string, amount int64) error
}

type ResourceNodeRepository interface {
	// ListAvailable returns nodes with remaining quantity above zero.
	ListAvailable(ctx context.Context) ([]terra.ResourceNode, error)
}

type FactionRepository interface {
	Create(ctx context.Context, f terra.Faction) error
	GetByID(ctx context.Context, factionID string) (terra.Faction, error)
}
