package ports

import "terraverse/internal/domain/terra"

// BuildingCatalog serves building-type definitions. Definitions are loaded
// once at startup; lookups are read-only and need no context.
type BuildingCatalog interface {
	Get(code terra.BuildingCode) (terra.BuildingType, bool)
	Lookup() terra.TypeLookup
}
