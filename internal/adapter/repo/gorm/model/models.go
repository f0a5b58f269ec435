// Package model holds the gorm row mappings for the simulation tables.
package model

import "time"

type Faction struct {
	FactionID     string `gorm:"primaryKey"`
	Name          string
	Category      string
	LeaderAgentID string
	CreatedAt     time.Time
}

func (Faction) TableName() string { return "factions" }

// Agent rows carry the movement order in nullable columns; the four order
// columns are set and cleared together.
type Agent struct {
	AgentID     string `gorm:"primaryKey"`
	FactionID   string
	Role        string
	CharacterID string
	Lat         float64
	Lng         float64

	OrderOriginLat *float64
	OrderOriginLng *float64
	OrderDestLat   *float64
	OrderDestLng   *float64
	OrderDeparted  *time.Time
	OrderArrives   *time.Time

	UpdatedAt time.Time
}

func (Agent) TableName() string { return "agents" }

type Building struct {
	BuildingID        string `gorm:"primaryKey"`
	OwnerAgentID      string
	TypeCode          string
	Lat               float64
	Lng               float64
	IsTerritoryCenter bool
	TerritoryRadiusKm float64
	ParentBuildingID  string
	LastCollectedAt   time.Time
	CreatedAt         time.Time
}

func (Building) TableName() string { return "buildings" }

type Wallet struct {
	OwnerAgentID string `gorm:"primaryKey"`
	Balance      int64
	UpdatedAt    time.Time
}

func (Wallet) TableName() string { return "wallets" }

type ResourceNode struct {
	NodeID    string `gorm:"primaryKey"`
	Lat       float64
	Lng       float64
	Remaining int64
}

func (ResourceNode) TableName() string { return "resource_nodes" }
