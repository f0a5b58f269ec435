// Package static serves building-type definitions from a YAML file loaded at
// startup, with built-in defaults for storeless runs.
package static

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"terraverse/internal/domain/terra"
)

type Catalog struct {
	types map[terra.BuildingCode]terra.BuildingType
}

type catalogFile struct {
	BuildingTypes []terra.BuildingType `yaml:"building_types"`
}

// LoadFile reads a catalog from the given YAML path.
func LoadFile(path string) (Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Catalog{}, fmt.Errorf("read catalog: %w", err)
	}
	var f catalogFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return Catalog{}, fmt.Errorf("parse catalog: %w", err)
	}
	if len(f.BuildingTypes) == 0 {
		return Catalog{}, fmt.Errorf("catalog %s defines no building types", path)
	}
	types := make(map[terra.BuildingCode]terra.BuildingType, len(f.BuildingTypes))
	for _, bt := range f.BuildingTypes {
		if bt.Code == "" {
			return Catalog{}, fmt.Errorf("catalog %s contains a type without a code", path)
		}
		if _, dup := types[bt.Code]; dup {
			return Catalog{}, fmt.Errorf("catalog %s defines %s twice", path, bt.Code)
		}
		types[bt.Code] = bt
	}
	return Catalog{types: types}, nil
}

// Default returns the built-in catalog used when no file is configured.
func Default() Catalog {
	defs := []terra.BuildingType{
		{
			Code:                     terra.CodeCommandCenter,
			Cost:                     1000,
			IsCenter:                 true,
			DefaultTerritoryRadiusKm: 5,
			MaxBeacons:               3,
			BeaconRangeKm:            10,
			PatrolRadiusKm:           5,
			VisionRangeKm:            8,
		},
		{
			Code:                     terra.CodeAreaBeacon,
			Cost:                     250,
			IsCenter:                 true,
			DefaultTerritoryRadiusKm: 2,
		},
		{Code: terra.CodeFactory, Cost: 150, ProductionPerMinute: 50},
		{Code: terra.CodeMine, Cost: 120, ProductionPerMinute: 30},
		{Code: terra.CodeSupplyDepot, Cost: 100, ProductionPerMinute: 20},
	}
	types := make(map[terra.BuildingCode]terra.BuildingType, len(defs))
	for _, bt := range defs {
		types[bt.Code] = bt
	}
	return Catalog{types: types}
}

func (c Catalog) Get(code terra.BuildingCode) (terra.BuildingType, bool) {
	bt, ok := c.types[code]
	return bt, ok
}

func (c Catalog) Lookup() terra.TypeLookup {
	return c.Get
}
