package ports

import "terraverse/internal/domain/terra"

// TickMetrics records per-tick outcomes for operational inspection.
type TickMetrics interface {
	RecordAgentProcessed()
	RecordAgentSkipped()
	RecordAgentFailure()
	RecordConstruction(code terra.BuildingCode)
}
