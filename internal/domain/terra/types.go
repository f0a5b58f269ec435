package terra

import (
	"time"

	"terraverse/internal/domain/geo"
)

// AgentRole marks which faction member the simulation drives.
type AgentRole string

const (
	RoleLeader AgentRole = "leader"
	RoleMember AgentRole = "member"
)

// Agent is an NPC faction member. Leaders are picked up by the tick loop and
// drive their faction's autonomous behavior.
type Agent struct {
	ID          string         `json:"agent_id"`
	FactionID   string         `json:"faction_id"`
	Role        AgentRole      `json:"role"`
	CharacterID string         `json:"character_id"`
	Position    geo.Coordinate `json:"position"`
	Order       *MovementOrder `json:"order,omitempty"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

type FactionCategory string

const (
	CategoryExpansionist FactionCategory = "expansionist"
	CategoryMercantile   FactionCategory = "mercantile"
)

type Faction struct {
	ID            string          `json:"faction_id"`
	Name          string          `json:"name"`
	Category      FactionCategory `json:"category"`
	LeaderAgentID string          `json:"leader_agent_id"`
}

type BuildingCode string

const (
	CodeCommandCenter BuildingCode = "COMMAND_CENTER"
	CodeAreaBeacon    BuildingCode = "AREA_BEACON"
	CodeFactory       BuildingCode = "FACTORY"
	CodeMine          BuildingCode = "MINE"
	CodeSupplyDepot   BuildingCode = "SUPPLY_DEPOT"
)

// ProductionCodes is the fixed set the expander picks minor buildings from.
var ProductionCodes = []BuildingCode{CodeFactory, CodeMine, CodeSupplyDepot}

// Building is a persisted structure owned by an agent. Territory centers
// anchor a claimed radius and may in turn anchor beacons; ParentBuildingID
// links a beacon back to the center it was authorized against.
type Building struct {
	ID                string         `json:"building_id"`
	OwnerAgentID      string         `json:"owner_agent_id"`
	TypeCode          BuildingCode   `json:"type_code"`
	Position          geo.Coordinate `json:"position"`
	IsTerritoryCenter bool           `json:"is_territory_center"`
	TerritoryRadiusKm float64        `json:"territory_radius_km"`
	ParentBuildingID  string         `json:"parent_building_id,omitempty"`
	LastCollectedAt   time.Time      `json:"last_collected_at"`
}

// BuildingType is a per-code definition, not per-instance state.
type BuildingType struct {
	Code                     BuildingCode `json:"code" yaml:"code"`
	Cost                     int64        `json:"cost" yaml:"cost"`
	ProductionPerMinute      int64        `json:"production_per_minute" yaml:"production_per_minute"`
	IsCenter                 bool         `json:"is_center" yaml:"is_center"`
	DefaultTerritoryRadiusKm float64      `json:"default_territory_radius_km" yaml:"default_territory_radius_km"`
	MaxBeacons               int          `json:"max_beacons" yaml:"max_beacons"`
	BeaconRangeKm            float64      `json:"beacon_range_km" yaml:"beacon_range_km"`
	PatrolRadiusKm           float64      `json:"patrol_radius_km" yaml:"patrol_radius_km"`
	VisionRangeKm            float64      `json:"vision_range_km" yaml:"vision_range_km"`
}

// TypeLookup resolves a building type definition by code.
type TypeLookup func(code BuildingCode) (BuildingType, bool)

// Wallet holds an agent's primary-currency balance. The balance must never
// go negative; debits are conditional updates in the same transaction as the
// construction they pay for.
type Wallet struct {
	OwnerAgentID string `json:"owner_agent_id"`
	Balance      int64  `json:"balance"`
}

// ResourceNode is an unclaimed world resource agents can move toward.
type ResourceNode struct {
	ID        string         `json:"node_id"`
	Position  geo.Coordinate `json:"position"`
	Remaining int64          `json:"remaining"`
}
