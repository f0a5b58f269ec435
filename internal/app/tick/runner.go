// Package tick drives the per-interval simulation pass over all faction
// leaders.
package tick

import (
	"context"
	"errors"
	"log/slog"
	"sync/atomic"

	"terraverse/internal/app/pipeline"
	"terraverse/internal/app/ports"
	"terraverse/internal/domain/terra"
)

// AgentProcessor runs the per-agent decision pipeline.
type AgentProcessor interface {
	ProcessAgent(ctx context.Context, agent terra.Agent) error
}

type Runner struct {
	Agents    ports.AgentRepository
	Processor AgentProcessor
	Metrics   ports.TickMetrics
	Logger    *slog.Logger

	inFlight atomic.Bool
}

// RunTick processes every leader agent sequentially. Errors are logged, never
// returned: the scheduler has no use for them and the next tick retries.
// Overlapping invocations are rejected so a slow tick cannot race itself.
func (r *Runner) RunTick(ctx context.Context) {
	log := r.log()
	if !r.inFlight.CompareAndSwap(false, true) {
		log.Warn("tick still in progress, skipping invocation")
		return
	}
	defer r.inFlight.Store(false)

	agents, err := r.Agents.ListLeaders(ctx)
	if err != nil {
		log.Error("list leader agents", "error", err)
		return
	}

	for _, agent := range agents {
		if ctx.Err() != nil {
			log.Warn("tick interrupted", "error", ctx.Err())
			return
		}
		err := r.Processor.ProcessAgent(ctx, agent)
		switch {
		case errors.Is(err, pipeline.ErrNoCharacter):
			log.Warn("agent skipped", "agent_id", agent.ID, "reason", "no character profile")
			r.recordSkipped()
		case err != nil:
			log.Error("agent processing failed", "agent_id", agent.ID, "error", err)
			r.recordFailure()
		default:
			r.recordProcessed()
		}
	}
	log.Debug("tick complete", "agents", len(agents))
}

func (r *Runner) recordProcessed() {
	if r.Metrics != nil {
		r.Metrics.RecordAgentProcessed()
	}
}

func (r *Runner) recordSkipped() {
	if r.Metrics != nil {
		r.Metrics.RecordAgentSkipped()
	}
}

func (r *Runner) recordFailure() {
	if r.Metrics != nil {
		r.Metrics.RecordAgentFailure()
	}
}

func (r *Runner) log() *slog.Logger {
	if r.Logger != nil {
		return r.Logger
	}
	return slog.Default()
}
