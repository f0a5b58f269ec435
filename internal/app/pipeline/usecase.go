// Package pipeline orchestrates one agent's tick: collect income, develop
// territory, settle arrivals, and decide the next movement when idle.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"terraverse/internal/app/ports"
	"terraverse/internal/domain/terra"
)

// ErrNoCharacter marks an agent without a playable character profile; the
// runner skips such agents for the tick.
var ErrNoCharacter = errors.New("agent has no character profile")

type Collector interface {
	Collect(ctx context.Context, agentID string) (int64, error)
}

type Developer interface {
	Develop(ctx context.Context, agentID string) (*terra.Building, error)
}

type UseCase struct {
	TxManager ports.TxManager
	Agents    ports.AgentRepository
	Buildings ports.BuildingRepository
	Wallets   ports.WalletRepository
	Nodes     ports.ResourceNodeRepository
	Catalog   ports.BuildingCatalog
	Collector Collector
	Developer Developer
	Metrics   ports.TickMetrics

	TravelSpeedKmPerSec float64
	BeaconCost          int64

	Logger *slog.Logger
	Rand   *rand.Rand
	Now    func() time.Time
}

// ProcessAgent runs the per-tick steps for one agent. The steps are
// best-effort and independent: a failing step is reported but never stops the
// later ones. The joined error is for the runner's log; the agent's persisted
// state is whatever the successful steps committed.
func (u UseCase) ProcessAgent(ctx context.Context, agent terra.Agent) error {
	if agent.CharacterID == "" {
		return ErrNoCharacter
	}
	log := u.log().With("agent_id", agent.ID)
	nowFn := u.Now
	if nowFn == nil {
		nowFn = time.Now
	}

	var stepErrs []error

	if credited, err := u.Collector.Collect(ctx, agent.ID); err != nil {
		stepErrs = append(stepErrs, fmt.Errorf("collect: %w", err))
	} else if credited > 0 {
		log.Debug("income collected", "amount", credited)
	}

	if built, err := u.Developer.Develop(ctx, agent.ID); err != nil {
		stepErrs = append(stepErrs, fmt.Errorf("develop: %w", err))
	} else if built != nil {
		u.recordConstruction(built.TypeCode)
		log.Debug("territory developed", "building_id", built.ID, "type", built.TypeCode)
	}

	now := nowFn()
	if agent.TravelState(now) == terra.StateArrived {
		updated, err := u.processArrival(ctx, agent, now)
		if err != nil {
			stepErrs = append(stepErrs, fmt.Errorf("arrival: %w", err))
		} else {
			agent = updated
		}
	}

	if agent.TravelState(now) == terra.StateIdle {
		if err := u.decideNext(ctx, agent, now); err != nil {
			stepErrs = append(stepErrs, fmt.Errorf("decide: %w", err))
		}
	}

	return errors.Join(stepErrs...)
}

// processArrival settles a completed movement order. The order is always
// cleared, authorized or not, so the agent never retries the same destination
// forever. Position moves to the destination only when the beacon goes up.
func (u UseCase) processArrival(ctx context.Context, agent terra.Agent, now time.Time) (terra.Agent, error) {
	log := u.log().With("agent_id", agent.ID)
	dest := agent.Order.Destination

	err := u.TxManager.RunInTx(ctx, func(txCtx context.Context) error {
		centers, err := u.Buildings.ListCentersByOwner(txCtx, agent.ID)
		if err != nil {
			return fmt.Errorf("list centers: %w", err)
		}
		beacons, err := u.Buildings.CountByOwnerAndType(txCtx, agent.ID, terra.CodeAreaBeacon)
		if err != nil {
			return fmt.Errorf("count beacons: %w", err)
		}

		decision := terra.AuthorizeBeacon(centers, u.Catalog.Lookup(), dest, int(beacons))
		if !decision.Authorized {
			log.Info("beacon denied", "reason", string(decision.Reason), "lat", dest.Lat, "lng", dest.Lng)
			if err := u.Agents.SaveOrder(txCtx, agent.ID, nil); err != nil {
				return fmt.Errorf("clear order: %w", err)
			}
			agent.Order = nil
			return nil
		}

		if err := u.Wallets.Debit(txCtx, agent.ID, u.BeaconCost); err != nil {
			if errors.Is(err, ports.ErrInsufficientFunds) {
				log.Info("beacon unaffordable on arrival", "cost", u.BeaconCost)
				if err := u.Agents.SaveOrder(txCtx, agent.ID, nil); err != nil {
					return fmt.Errorf("clear order: %w", err)
				}
				agent.Order = nil
				return nil
			}
			return fmt.Errorf("debit wallet: %w", err)
		}

		beaconType, _ := u.Catalog.Get(terra.CodeAreaBeacon)
		b := terra.Building{
			ID:                uuid.NewString(),
			OwnerAgentID:      agent.ID,
			TypeCode:          terra.CodeAreaBeacon,
			Position:          dest,
			IsTerritoryCenter: true,
			TerritoryRadiusKm: beaconType.DefaultTerritoryRadiusKm,
			ParentBuildingID:  decision.Parent.ID,
			LastCollectedAt:   now,
		}
		if err := u.Buildings.Create(txCtx, b); err != nil {
			return fmt.Errorf("create beacon: %w", err)
		}
		if err := u.Agents.SavePosition(txCtx, agent.ID, dest); err != nil {
			return fmt.Errorf("save position: %w", err)
		}
		if err := u.Agents.SaveOrder(txCtx, agent.ID, nil); err != nil {
			return fmt.Errorf("clear order: %w", err)
		}

		agent.Position = dest
		agent.Order = nil
		u.recordConstruction(terra.CodeAreaBeacon)
		log.Info("beacon constructed", "building_id", b.ID, "parent_id", decision.Parent.ID)
		return nil
	})
	if err != nil {
		return agent, err
	}
	return agent, nil
}

func (u UseCase) recordConstruction(code terra.BuildingCode) {
	if u.Metrics != nil {
		u.Metrics.RecordConstruction(code)
	}
}

func (u UseCase) log() *slog.Logger {
	if u.Logger != nil {
		return u.Logger
	}
	return slog.Default()
}
