package batch

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
)

type fixedClock struct{ date string }

func (c fixedClock) Today() string { return c.date }

func refs(names ...string) []EntityRef {
	out := make([]EntityRef, len(names))
	for i, n := range names {
		out[i] = EntityRef{Id: uuid.New(), Name: n}
	}
	return out
}

func neverRan(_ context.Context, _ EntityRef, _ string) (bool, error) {
	return false, nil
}

func TestRunDailyMixedOutcomes(t *testing.T) {
	entities := refs("alpha", "beta", "gamma")
	a, b, c := entities[0], entities[1], entities[2]

	alreadyRan := func(_ context.Context, e EntityRef, date string) (bool, error) {
		if date != "2025-06-01" {
			t.Errorf("dedup check got date %q, want 2025-06-01", date)
		}
		return e.Id == a.Id, nil
	}

	var mu sync.Mutex
	taskCalls := make(map[uuid.UUID]int)
	task := func(_ context.Context, e EntityRef, date string) error {
		if date != "2025-06-01" {
			t.Errorf("task got date %q, want 2025-06-01", date)
		}
		mu.Lock()
		taskCalls[e.Id]++
		mu.Unlock()
		if e.Id == b.Id {
			return errors.New("news service unavailable")
		}
		return nil
	}

	o := NewOrchestrator(fixedClock{"2025-06-01"}, 2, time.Second)
	run := o.RunDaily(context.Background(), entities, task, alreadyRan)

	if run.Date != "2025-06-01" {
		t.Errorf("Date = %q", run.Date)
	}
	if got := run.Outcomes[a.Id].Status; got != OutcomeSkipped {
		t.Errorf("alpha = %s, want SKIPPED", got)
	}
	if got := run.Outcomes[b.Id].Status; got != OutcomeFailed {
		t.Errorf("beta = %s, want FAILED", got)
	}
	if run.Outcomes[b.Id].Detail != "news service unavailable" {
		t.Errorf("beta detail = %q", run.Outcomes[b.Id].Detail)
	}
	if got := run.Outcomes[c.Id].Status; got != OutcomeSucceeded {
		t.Errorf("gamma = %s, want SUCCEEDED", got)
	}

	if taskCalls[a.Id] != 0 {
		t.Error("task invoked for skipped entity")
	}
	if taskCalls[b.Id] != 1 || taskCalls[c.Id] != 1 {
		t.Errorf("task calls = %v, want exactly one for beta and gamma", taskCalls)
	}

	s := run.Summary()
	if s.Processed != 3 || s.Succeeded != 1 || s.Failed != 1 || s.Skipped != 1 {
		t.Errorf("Summary = %+v, want {3 1 1 1}", s)
	}
}

func TestRunDailySummaryCoversAllEntities(t *testing.T) {
	entities := refs("a", "b", "c", "d", "e", "f", "g")

	alreadyRan := func(_ context.Context, e EntityRef, _ string) (bool, error) {
		return e.Name == "a" || e.Name == "b", nil
	}
	task := func(_ context.Context, e EntityRef, _ string) error {
		if e.Name == "c" {
			return errors.New("boom")
		}
		return nil
	}

	o := NewOrchestrator(fixedClock{"2025-06-01"}, 4, time.Second)
	run := o.RunDaily(context.Background(), entities, task, alreadyRan)

	s := run.Summary()
	if s.Skipped+s.Succeeded+s.Failed != len(entities) {
		t.Errorf("skip+success+fail = %d, want %d", s.Skipped+s.Succeeded+s.Failed, len(entities))
	}
	if s.Processed != len(entities) {
		t.Errorf("Processed = %d, want %d", s.Processed, len(entities))
	}
}

func TestRunDailyDuplicateEntityAttemptedOnce(t *testing.T) {
	ref := EntityRef{Id: uuid.New(), Name: "acme"}
	entities := []EntityRef{ref, ref, ref}

	var mu sync.Mutex
	taskCalls := 0
	task := func(_ context.Context, _ EntityRef, _ string) error {
		mu.Lock()
		taskCalls++
		mu.Unlock()
		return nil
	}

	o := NewOrchestrator(fixedClock{"2025-06-01"}, 3, time.Second)
	run := o.RunDaily(context.Background(), entities, task, neverRan)

	if taskCalls != 1 {
		t.Errorf("task calls = %d, want 1", taskCalls)
	}
	if got := run.Summary().Processed; got != 1 {
		t.Errorf("Processed = %d, want 1", got)
	}
	if got := run.Outcomes[ref.Id].Status; got != OutcomeSucceeded {
		t.Errorf("outcome = %s, want SUCCEEDED", got)
	}
}

func TestRunDailyTaskPanicContained(t *testing.T) {
	entities := refs("panics", "survives")

	task := func(_ context.Context, e EntityRef, _ string) error {
		if e.Name == "panics" {
			panic("nil pointer somewhere downstream")
		}
		return nil
	}

	o := NewOrchestrator(fixedClock{"2025-06-01"}, 1, time.Second)
	run := o.RunDaily(context.Background(), entities, task, neverRan)

	if got := run.Outcomes[entities[0].Id].Status; got != OutcomeFailed {
		t.Errorf("panicking entity = %s, want FAILED", got)
	}
	if got := run.Outcomes[entities[1].Id].Status; got != OutcomeSucceeded {
		t.Errorf("surviving entity = %s, want SUCCEEDED", got)
	}
}

func TestRunDailyTaskTimeout(t *testing.T) {
	entities := refs("slow")

	task := func(ctx context.Context, _ EntityRef, _ string) error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(5 * time.Second):
			return nil
		}
	}

	o := NewOrchestrator(fixedClock{"2025-06-01"}, 1, 20*time.Millisecond)
	run := o.RunDaily(context.Background(), entities, task, neverRan)

	if got := run.Outcomes[entities[0].Id].Status; got != OutcomeFailed {
		t.Errorf("slow entity = %s, want FAILED", got)
	}
}

func TestRunDailyDedupErrorRecordedAsFailed(t *testing.T) {
	entities := refs("a")

	alreadyRan := func(_ context.Context, _ EntityRef, _ string) (bool, error) {
		return false, errors.New("db gone")
	}
	task := func(_ context.Context, _ EntityRef, _ string) error {
		t.Error("task must not run when the dedup check fails")
		return nil
	}

	o := NewOrchestrator(fixedClock{"2025-06-01"}, 1, time.Second)
	run := o.RunDaily(context.Background(), entities, task, alreadyRan)

	if got := run.Outcomes[entities[0].Id].Status; got != OutcomeFailed {
		t.Errorf("outcome = %s, want FAILED", got)
	}
}

func TestRunDailyCancellationStopsIssuing(t *testing.T) {
	entities := refs("a", "b", "c", "d", "e")

	ctx, cancel := context.WithCancel(context.Background())
	var mu sync.Mutex
	started := 0
	task := func(_ context.Context, _ EntityRef, _ string) error {
		mu.Lock()
		started++
		mu.Unlock()
		cancel() // cancel after the first task begins
		return nil
	}

	o := NewOrchestrator(fixedClock{"2025-06-01"}, 1, time.Second)
	run := o.RunDaily(ctx, entities, task, neverRan)

	// Partial completion: some entities never got an outcome, but everything
	// recorded is consistent.
	if len(run.Outcomes) >= len(entities) {
		t.Errorf("expected partial run, got %d outcomes for %d entities", len(run.Outcomes), len(entities))
	}
	s := run.Summary()
	if s.Processed != len(run.Outcomes) {
		t.Errorf("summary inconsistent with detail: %+v vs %d outcomes", s, len(run.Outcomes))
	}
}

func TestRunDailyConcurrent(t *testing.T) {
	entities := refs("a", "b", "c", "d", "e", "f", "g", "h")

	task := func(_ context.Context, _ EntityRef, _ string) error {
		time.Sleep(time.Millisecond)
		return nil
	}

	o := NewOrchestrator(fixedClock{"2025-06-01"}, 4, time.Second)
	run := o.RunDaily(context.Background(), entities, task, neverRan)

	if s := run.Summary(); s.Succeeded != len(entities) {
		t.Errorf("Succeeded = %d, want %d", s.Succeeded, len(entities))
	}
}
