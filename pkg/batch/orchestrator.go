// Package batch runs a per-entity task at most once per calendar day,
// tolerating partial failure across independent entities.
package batch

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

// EntityRef identifies one target of a daily run.
type EntityRef struct {
	Id   uuid.UUID
	Name string
}

type OutcomeStatus string

const (
	OutcomeSkipped   OutcomeStatus = "SKIPPED"
	OutcomeSucceeded OutcomeStatus = "SUCCEEDED"
	OutcomeFailed    OutcomeStatus = "FAILED"
)

// Outcome is the terminal per-entity result of one run attempt.
type Outcome struct {
	Status OutcomeStatus
	Detail string
}

// TaskFunc performs the daily work for one entity. Any error or panic is
// contained at the task boundary and recorded as a FAILED outcome. The date
// is the run's day boundary, identical for every entity in the run.
type TaskFunc func(ctx context.Context, entity EntityRef, date string) error

// AlreadyRanFunc reports whether the entity already has a result recorded for
// the given date. The orchestrator passes the same date to every check in one
// run so the day boundary cannot shift mid-run.
type AlreadyRanFunc func(ctx context.Context, entity EntityRef, date string) (bool, error)

// Clock supplies the calendar-day boundary for dedup.
type Clock interface {
	Today() string
}

// UTCClock pins the day boundary to UTC midnight.
type UTCClock struct{}

func (UTCClock) Today() string {
	return time.Now().UTC().Format("2006-01-02")
}

// Run is one logical execution covering all target entities for one day.
// It is computed and reported, not persisted.
type Run struct {
	Date     string
	Outcomes map[uuid.UUID]Outcome

	mu sync.Mutex
}

func (r *Run) record(id uuid.UUID, o Outcome) {
	r.mu.Lock()
	r.Outcomes[id] = o
	r.mu.Unlock()
}

type Summary struct {
	Processed int
	Succeeded int
	Failed    int
	Skipped   int
}

// Summary derives counts from the per-entity map, never from separate
// counters, so it is always consistent with the detail.
func (r *Run) Summary() Summary {
	var s Summary
	for _, o := range r.Outcomes {
		s.Processed++
		switch o.Status {
		case OutcomeSucceeded:
			s.Succeeded++
		case OutcomeFailed:
			s.Failed++
		case OutcomeSkipped:
			s.Skipped++
		}
	}
	return s
}

// Orchestrator drives daily runs. Per-entity tasks share no mutable state, so
// they execute on a bounded worker pool.
type Orchestrator struct {
	clock       Clock
	concurrency int
	taskTimeout time.Duration
}

const (
	defaultConcurrency = 4
	defaultTaskTimeout = 2 * time.Minute
)

func NewOrchestrator(clock Clock, concurrency int, taskTimeout time.Duration) *Orchestrator {
	if clock == nil {
		clock = UTCClock{}
	}
	if concurrency <= 0 {
		concurrency = defaultConcurrency
	}
	if taskTimeout <= 0 {
		taskTimeout = defaultTaskTimeout
	}
	return &Orchestrator{
		clock:       clock,
		concurrency: concurrency,
		taskTimeout: taskTimeout,
	}
}

// RunDaily processes every entity independently: entities that already have a
// result for today are SKIPPED before any task call, the rest are attempted
// with the task's failure contained per entity. Cancelling ctx stops issuing
// new tasks; outcomes already recorded stand, and partial completion is a
// valid reportable end state.
func (o *Orchestrator) RunDaily(ctx context.Context, entities []EntityRef, task TaskFunc, alreadyRan AlreadyRanFunc) *Run {
	run := &Run{
		Date:     o.clock.Today(),
		Outcomes: make(map[uuid.UUID]Outcome, len(entities)),
	}

	sem := make(chan struct{}, o.concurrency)
	var wg sync.WaitGroup

	// An id repeated in the input is attempted once; the dedup check alone
	// cannot catch duplicates racing through the pool in the same run.
	seen := make(map[uuid.UUID]bool, len(entities))

	for _, entity := range entities {
		if ctx.Err() != nil {
			break
		}
		if seen[entity.Id] {
			continue
		}
		seen[entity.Id] = true
		wg.Add(1)
		sem <- struct{}{}
		go func(entity EntityRef) {
			defer wg.Done()
			defer func() { <-sem }()
			o.processEntity(ctx, run, entity, task, alreadyRan)
		}(entity)
	}

	wg.Wait()
	return run
}

func (o *Orchestrator) processEntity(ctx context.Context, run *Run, entity EntityRef, task TaskFunc, alreadyRan AlreadyRanFunc) {
	ran, err := alreadyRan(ctx, entity, run.Date)
	if err != nil {
		run.record(entity.Id, Outcome{
			Status: OutcomeFailed,
			Detail: fmt.Sprintf("dedup check: %v", err),
		})
		return
	}
	if ran {
		run.record(entity.Id, Outcome{
			Status: OutcomeSkipped,
			Detail: "already generated today",
		})
		return
	}

	run.record(entity.Id, o.attempt(ctx, entity, run.Date, task))
}

// attempt is the fault boundary: errors, timeouts and panics from the task
// all land here as a FAILED outcome and never abort the run.
func (o *Orchestrator) attempt(ctx context.Context, entity EntityRef, date string, task TaskFunc) (out Outcome) {
	defer func() {
		if r := recover(); r != nil {
			out = Outcome{Status: OutcomeFailed, Detail: fmt.Sprintf("panic: %v", r)}
		}
	}()

	taskCtx, cancel := context.WithTimeout(ctx, o.taskTimeout)
	defer cancel()

	if err := task(taskCtx, entity, date); err != nil {
		return Outcome{Status: OutcomeFailed, Detail: err.Error()}
	}
	return Outcome{Status: OutcomeSucceeded}
}
