// Package expand grows a territory by placing minor production buildings
// inside a randomly chosen territory center's claimed radius.
package expand

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"terraverse/internal/app/ports"
	"terraverse/internal/domain/terra"
)

type UseCase struct {
	TxManager ports.TxManager
	Buildings ports.BuildingRepository
	Wallets   ports.WalletRepository

	// DevelopmentCost is the flat price of one minor building.
	DevelopmentCost int64
	// MinSeparationKm is the exclusion distance around existing buildings.
	MinSeparationKm float64

	Rand *rand.Rand
	Now  func() time.Time
}

// Develop attempts one expansion step for the agent. A nil building with nil
// error means a precondition was not met (no center, funds short, candidate
// collides); the caller simply retries next tick.
func (u UseCase) Develop(ctx context.Context, agentID string) (*terra.Building, error) {
	nowFn := u.Now
	if nowFn == nil {
		nowFn = time.Now
	}
	rng := u.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	var built *terra.Building
	err := u.TxManager.RunInTx(ctx, func(txCtx context.Context) error {
		centers, err := u.Buildings.ListCentersByOwner(txCtx, agentID)
		if err != nil {
			return fmt.Errorf("list centers: %w", err)
		}
		if len(centers) == 0 {
			return nil
		}
		center := centers[rng.Intn(len(centers))]
		radius := center.TerritoryRadiusKm
		if radius <= 0 {
			return nil
		}

		candidate := terra.SamplePointInRadius(rng, center.Position, radius)

		owned, err := u.Buildings.ListByOwner(txCtx, agentID)
		if err != nil {
			return fmt.Errorf("list buildings: %w", err)
		}
		if terra.CollidesWithAny(candidate, owned, u.MinSeparationKm) {
			return nil
		}

		if err := u.Wallets.Debit(txCtx, agentID, u.DevelopmentCost); err != nil {
			if errors.Is(err, ports.ErrInsufficientFunds) {
				return nil
			}
			return fmt.Errorf("debit wallet: %w", err)
		}

		b := terra.Building{
			ID:              uuid.NewString(),
			OwnerAgentID:    agentID,
			TypeCode:        terra.ProductionCodes[rng.Intn(len(terra.ProductionCodes))],
			Position:        candidate,
			LastCollectedAt: nowFn(),
		}
		if err := u.Buildings.Create(txCtx, b); err != nil {
			return fmt.Errorf("create building: %w", err)
		}
		built = &b
		return nil
	})
	if err != nil {
		return nil, err
	}
	return built, nil
}
