// Package inmemory records tick outcomes for in-process inspection.
package inmemory

import (
	"sync"

	"terraverse/internal/domain/terra"
)

type Snapshot struct {
	AgentsTotal     uint64            `json:"agents_total"`
	AgentsProcessed uint64            `json:"agents_processed"`
	AgentsSkipped   uint64            `json:"agents_skipped"`
	AgentsFailed    uint64            `json:"agents_failed"`
	Constructions   map[string]uint64 `json:"constructions"`
}

type Recorder struct {
	mu            sync.Mutex
	processed     uint64
	skipped       uint64
	failed        uint64
	constructions map[string]uint64
}

func NewRecorder() *Recorder {
	return &Recorder{
		constructions: map[string]uint64{},
	}
}

func (r *Recorder) RecordAgentProcessed() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.processed++
}

func (r *Recorder) RecordAgentSkipped() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.skipped++
}

func (r *Recorder) RecordAgentFailure() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.failed++
}

func (r *Recorder) RecordConstruction(code terra.BuildingCode) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.constructions[string(code)]++
}

func (r *Recorder) Snapshot() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := Snapshot{
		AgentsProcessed: r.processed,
		AgentsSkipped:   r.skipped,
		AgentsFailed:    r.failed,
		AgentsTotal:     r.processed + r.skipped + r.failed,
		Constructions:   make(map[string]uint64, len(r.constructions)),
	}
	for k, v := range r.constructions {
		out.Constructions[k] = v
	}
	return out
}
