// Package collect accrues passive income from an agent's production
// buildings since each building's last collection.
package collect

import (
	"context"
	"fmt"
	"time"

	"terraverse/internal/app/ports"
)

type UseCase struct {
	TxManager ports.TxManager
	Buildings ports.BuildingRepository
	Wallets   ports.WalletRepository
	Catalog   ports.BuildingCatalog
	Now       func() time.Time
}

// Collect sums whole-minute accruals across the agent's buildings and applies
// one wallet credit plus one last-collected update per building, all in a
// single transaction. Returns the amount credited; zero means nothing accrued.
func (u UseCase) Collect(ctx context.Context, agentID string) (int64, error) {
	nowFn := u.Now
	if nowFn == nil {
		nowFn = time.Now
	}
	now := nowFn()

	var credited int64
	err := u.TxManager.RunInTx(ctx, func(txCtx context.Context) error {
		buildings, err := u.Buildings.ListByOwner(txCtx, agentID)
		if err != nil {
			return fmt.Errorf("list buildings: %w", err)
		}

		var total int64
		for _, b := range buildings {
			minutes := int64(now.Sub(b.LastCollectedAt).Minutes())
			if minutes <= 0 {
				continue
			}
			bt, ok := u.Catalog.Get(b.TypeCode)
			if ok {
				total += bt.ProductionPerMinute * minutes
			}
			// Advance by the whole minutes consumed, not to now, so the
			// fractional remainder keeps accruing.
			next := b.LastCollectedAt.Add(time.Duration(minutes) * time.Minute)
			if err := u.Buildings.UpdateLastCollected(txCtx, b.ID, next); err != nil {
				return fmt.Errorf("update last collected %s: %w", b.ID, err)
			}
		}

		if total > 0 {
			if err := u.Wallets.Credit(txCtx, agentID, total); err != nil {
				return fmt.Errorf("credit wallet: %w", err)
			}
		}
		credited = total
		return nil
	})
	if err != nil {
		return 0, err
	}
	return credited, nil
}
