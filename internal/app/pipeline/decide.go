package pipeline

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand"
	"time"

	"terraverse/internal/app/ports"
	"terraverse/internal/domain/geo"
	"terraverse/internal/domain/terra"
)

// intent labels for the decision log.
const (
	intentSeekResource = "seek_resource"
	intentExpand       = "expand"
	intentPatrol       = "patrol"
)

// decideNext picks the idle agent's next destination: a resource node within
// the hub's vision range, else a fresh beacon site when expansion is
// affordable and under the limit, else a patrol point around the hub.
func (u UseCase) decideNext(ctx context.Context, agent terra.Agent, now time.Time) error {
	log := u.log().With("agent_id", agent.ID)
	rng := u.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	owned, err := u.Buildings.ListByOwner(ctx, agent.ID)
	if err != nil {
		return fmt.Errorf("list buildings: %w", err)
	}
	hub, hasHub := terra.NearestBuilding(agent.Position, owned, func(b terra.Building) bool {
		bt, ok := u.Catalog.Get(b.TypeCode)
		return ok && bt.VisionRangeKm > 0
	})

	var dest geo.Coordinate
	intent := ""

	if hasHub {
		hubType, _ := u.Catalog.Get(hub.TypeCode)
		if node, ok, err := u.nearestVisibleNode(ctx, agent.Position, hub.Position, hubType.VisionRangeKm); err != nil {
			return err
		} else if ok {
			dest = node.Position
			intent = intentSeekResource
		}
	}

	if intent == "" {
		site, ok, err := u.pickBeaconSite(ctx, agent, owned, rng)
		if err != nil {
			return err
		}
		if ok {
			dest = site
			intent = intentExpand
		}
	}

	if intent == "" && hasHub {
		hubType, _ := u.Catalog.Get(hub.TypeCode)
		if hubType.PatrolRadiusKm > 0 {
			dest = terra.SamplePointInRadius(rng, hub.Position, hubType.PatrolRadiusKm)
			intent = intentPatrol
		}
	}

	if intent == "" {
		log.Debug("no action available this tick")
		return nil
	}

	order := terra.NewMovementOrder(agent.Position, dest, now, u.TravelSpeedKmPerSec)
	err = u.TxManager.RunInTx(ctx, func(txCtx context.Context) error {
		return u.Agents.SaveOrder(txCtx, agent.ID, &order)
	})
	if err != nil {
		return fmt.Errorf("save order: %w", err)
	}
	log.Debug("movement order issued",
		"intent", intent,
		"lat", dest.Lat,
		"lng", dest.Lng,
		"arrives_at", order.ArrivesAt,
	)
	return nil
}

// nearestVisibleNode returns the available node closest to the agent among
// those within visionKm of the hub.
func (u UseCase) nearestVisibleNode(ctx context.Context, agentPos, hubPos geo.Coordinate, visionKm float64) (terra.ResourceNode, bool, error) {
	nodes, err := u.Nodes.ListAvailable(ctx)
	if err != nil {
		return terra.ResourceNode{}, false, fmt.Errorf("list resource nodes: %w", err)
	}
	best := terra.ResourceNode{}
	bestDist := math.MaxFloat64
	found := false
	for _, n := range nodes {
		if geo.DistanceKm(hubPos, n.Position) > visionKm {
			continue
		}
		d := geo.DistanceKm(agentPos, n.Position)
		if d < bestDist {
			best = n
			bestDist = d
			found = true
		}
	}
	return best, found, nil
}

// pickBeaconSite samples a destination inside the beacon range of the first
// center that still has beacon capacity, provided the beacon is affordable.
func (u UseCase) pickBeaconSite(ctx context.Context, agent terra.Agent, owned []terra.Building, rng *rand.Rand) (geo.Coordinate, bool, error) {
	wallet, err := u.Wallets.GetByOwner(ctx, agent.ID)
	if err != nil {
		if errors.Is(err, ports.ErrNotFound) {
			return geo.Coordinate{}, false, nil
		}
		return geo.Coordinate{}, false, fmt.Errorf("load wallet: %w", err)
	}
	if wallet.Balance < u.BeaconCost {
		return geo.Coordinate{}, false, nil
	}

	beacons, err := u.Buildings.CountByOwnerAndType(ctx, agent.ID, terra.CodeAreaBeacon)
	if err != nil {
		return geo.Coordinate{}, false, fmt.Errorf("count beacons: %w", err)
	}
	for _, b := range owned {
		if !b.IsTerritoryCenter {
			continue
		}
		bt, ok := u.Catalog.Get(b.TypeCode)
		if !ok || bt.MaxBeacons <= 0 || bt.BeaconRangeKm <= 0 {
			continue
		}
		if int(beacons) >= bt.MaxBeacons {
			continue
		}
		return terra.SamplePointInRadius(rng, b.Position, bt.BeaconRangeKm), true, nil
	}
	return geo.Coordinate{}, false, nil
}
