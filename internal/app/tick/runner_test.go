package tick

import (
	"context"
	"errors"
	"sync"
	"testing"

	"terraverse/internal/app/pipeline"
	"terraverse/internal/domain/geo"
	"terraverse/internal/domain/terra"
)

type stubAgentRepo struct {
	leaders []terra.Agent
	err     error
}

func (r stubAgentRepo) ListLeaders(context.Context) ([]terra.Agent, error) {
	return r.leaders, r.err
}

func (r stubAgentRepo) Create(context.Context, terra.Agent) error {
	return errors.New("not implemented")
}

func (r stubAgentRepo) GetByID(context.Context, string) (terra.Agent, error) {
	return terra.Agent{}, errors.New("not implemented")
}

func (r stubAgentRepo) SavePosition(context.Context, string, geo.Coordinate) error {
	return errors.New("not implemented")
}

func (r stubAgentRepo) SaveOrder(context.Context, string, *terra.MovementOrder) error {
	return errors.New("not implemented")
}

type stubProcessor struct {
	mu        sync.Mutex
	processed []string
	errByID   map[string]error
	started   chan struct{}
	startOnce sync.Once
	block     chan struct{}
}

func (p *stubProcessor) ProcessAgent(_ context.Context, agent terra.Agent) error {
	if p.started != nil {
		p.startOnce.Do(func() { close(p.started) })
	}
	if p.block != nil {
		<-p.block
	}
	p.mu.Lock()
	p.processed = append(p.processed, agent.ID)
	p.mu.Unlock()
	if err, ok := p.errByID[agent.ID]; ok {
		return err
	}
	return nil
}

func (p *stubProcessor) count() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.processed)
}

type countingMetrics struct {
	processed, skipped, failed int
	built                      map[terra.BuildingCode]int
}

func (m *countingMetrics) RecordAgentProcessed() { m.processed++ }
func (m *countingMetrics) RecordAgentSkipped()   { m.skipped++ }
func (m *countingMetrics) RecordAgentFailure()   { m.failed++ }
func (m *countingMetrics) RecordConstruction(code terra.BuildingCode) {
	if m.built == nil {
		m.built = map[terra.BuildingCode]int{}
	}
	m.built[code]++
}

func TestRunTickProcessesAllLeaders(t *testing.T) {
	repo := stubAgentRepo{leaders: []terra.Agent{
		{ID: "agent-1", Role: terra.RoleLeader, CharacterID: "c1"},
		{ID: "agent-2", Role: terra.RoleLeader, CharacterID: "c2"},
		{ID: "agent-3", Role: terra.RoleLeader, CharacterID: "c3"},
	}}
	proc := &stubProcessor{}
	metrics := &countingMetrics{}
	r := &Runner{Agents: repo, Processor: proc, Metrics: metrics}

	r.RunTick(context.Background())

	if len(proc.processed) != 3 {
		t.Fatalf("expected 3 agents processed, got %d", len(proc.processed))
	}
	if metrics.processed != 3 || metrics.skipped != 0 || metrics.failed != 0 {
		t.Fatalf("unexpected metrics %+v", metrics)
	}
}

func TestRunTickFailingAgentDoesNotStopOthers(t *testing.T) {
	repo := stubAgentRepo{leaders: []terra.Agent{
		{ID: "agent-1"}, {ID: "agent-2"}, {ID: "agent-3"},
	}}
	proc := &stubProcessor{errByID: map[string]error{
		"agent-1": pipeline.ErrNoCharacter,
		"agent-2": errors.New("tx deadlock"),
	}}
	metrics := &countingMetrics{}
	r := &Runner{Agents: repo, Processor: proc, Metrics: metrics}

	r.RunTick(context.Background())

	if len(proc.processed) != 3 {
		t.Fatalf("all agents must be visited, got %d", len(proc.processed))
	}
	if metrics.skipped != 1 {
		t.Fatalf("expected 1 skipped (missing character), got %d", metrics.skipped)
	}
	if metrics.failed != 1 {
		t.Fatalf("expected 1 failed, got %d", metrics.failed)
	}
	if metrics.processed != 1 {
		t.Fatalf("expected 1 processed, got %d", metrics.processed)
	}
}

func TestRunTickRejectsOverlappingInvocation(t *testing.T) {
	repo := stubAgentRepo{leaders: []terra.Agent{{ID: "agent-1"}}}
	proc := &stubProcessor{started: make(chan struct{}), block: make(chan struct{})}
	metrics := &countingMetrics{}
	r := &Runner{Agents: repo, Processor: proc, Metrics: metrics}

	done := make(chan struct{})
	go func() {
		r.RunTick(context.Background())
		close(done)
	}()

	// Second invocation while the first is mid-agent must be a no-op.
	<-proc.started
	r.RunTick(context.Background())
	if got := metrics.processed + metrics.skipped + metrics.failed; got != 0 {
		t.Fatalf("overlapping tick must not process agents, got %d", got)
	}

	close(proc.block)
	<-done
	if metrics.processed != 1 {
		t.Fatalf("first tick should finish its agent, got %d", metrics.processed)
	}
}

func TestRunTickListFailureIsLoggedNotFatal(t *testing.T) {
	r := &Runner{
		Agents:    stubAgentRepo{err: errors.New("db down")},
		Processor: &stubProcessor{},
		Metrics:   &countingMetrics{},
	}
	// Must not panic and must leave the guard released for the next tick.
	r.RunTick(context.Background())
	if r.inFlight.Load() {
		t.Fatal("guard must be released after a failed tick")
	}
}
