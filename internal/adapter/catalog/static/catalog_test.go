package static

import (
	"os"
	"path/filepath"
	"testing"

	"terraverse/internal/domain/terra"
)

func TestDefaultCatalog(t *testing.T) {
	c := Default()

	cc, ok := c.Get(terra.CodeCommandCenter)
	if !ok {
		t.Fatal("expected COMMAND_CENTER in default catalog")
	}
	if !cc.IsCenter || cc.MaxBeacons <= 0 || cc.BeaconRangeKm <= 0 {
		t.Fatalf("command center misconfigured: %+v", cc)
	}

	factory, ok := c.Get(terra.CodeFactory)
	if !ok || factory.ProductionPerMinute != 50 {
		t.Fatalf("expected FACTORY at 50/min, got %+v ok=%v", factory, ok)
	}

	if _, ok := c.Get("UNKNOWN"); ok {
		t.Fatal("unknown code should miss")
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	content := `building_types:
  - code: COMMAND_CENTER
    cost: 900
    is_center: true
    max_beacons: 2
    beacon_range_km: 12
    patrol_radius_km: 4
    vision_range_km: 6
    default_territory_radius_km: 5
  - code: MINE
    cost: 100
    production_per_minute: 30
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	c, err := LoadFile(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	cc, ok := c.Get(terra.CodeCommandCenter)
	if !ok || cc.MaxBeacons != 2 || cc.BeaconRangeKm != 12 {
		t.Fatalf("unexpected command center: %+v ok=%v", cc, ok)
	}
	if _, ok := c.Get(terra.CodeFactory); ok {
		t.Fatal("FACTORY should be absent from the loaded file")
	}
}

func TestLoadFileRejectsDuplicates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	content := `building_types:
  - code: MINE
  - code: MINE
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFile(path); err == nil {
		t.Fatal("expected duplicate code error")
	}
}
