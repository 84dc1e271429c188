// Package scheduler drives the heartbeat: a self-rescheduling tick loop
// over a pluggable registry of checks. The next tick is armed only after
// the current one fully completes, so ticks never overlap — a slow check
// delays future ticks rather than racing them.
package scheduler

import (
	"context"
	"log"
	"sync"
	"time"
)

// statusEvery controls the lightweight per-tick status log cadence.
const statusEvery = 10

// Persister is the ledger's save hook, invoked at the end of every tick.
type Persister interface {
	Save() error
}

// Waker receives results that need the reasoning process's attention.
type Waker interface {
	Dispatch(ctx context.Context, task, reason string, urgent bool)
}

// Scheduler owns the tick loop and the task registry.
type Scheduler struct {
	mu      sync.Mutex
	tasks   []Task
	pending []Task
	active  bool
	count   uint64

	interval time.Duration
	stopCh   chan struct{}
	doneCh   chan struct{}

	ledger Persister
	waker  Waker
	ctx    context.Context
}

// New creates a scheduler. ctx bounds every check invocation; interval is
// the pause between the end of one tick and the start of the next.
func New(ctx context.Context, interval time.Duration, ledger Persister, waker Waker) *Scheduler {
	return &Scheduler{
		interval: interval,
		ledger:   ledger,
		waker:    waker,
		ctx:      ctx,
	}
}

// Start activates the scheduler: pending registrations flush into the
// live registry, one tick runs immediately, and subsequent ticks are
// scheduled one at a time. Calling Start twice is a no-op.
func (s *Scheduler) Start() {
	s.mu.Lock()
	if s.active {
		s.mu.Unlock()
		return
	}
	s.active = true
	for _, t := range s.pending {
		s.tasks = upsert(s.tasks, t)
	}
	s.pending = nil
	s.stopCh = make(chan struct{})
	s.doneCh = make(chan struct{})
	tasks := len(s.tasks)
	s.mu.Unlock()

	log.Printf("[INFO] scheduler started, interval %v, %d tasks", s.interval, tasks)
	go s.run()
}

// Stop cancels the pending schedule. An already-dispatched tick finishes
// cooperatively; Stop returns once the loop has exited.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	if !s.active {
		s.mu.Unlock()
		return
	}
	s.active = false
	close(s.stopCh)
	done := s.doneCh
	s.mu.Unlock()

	<-done
	log.Println("[INFO] scheduler stopped")
}

// TickCount returns the number of completed ticks.
func (s *Scheduler) TickCount() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.count
}

// run is the scheduling loop: tick, then wait out the interval, then tick
// again. Exactly one tick executes at a time by construction.
func (s *Scheduler) run() {
	defer close(s.doneCh)
	for {
		s.tick()

		timer := time.NewTimer(s.interval)
		select {
		case <-timer.C:
		case <-s.stopCh:
			timer.Stop()
			return
		case <-s.ctx.Done():
			timer.Stop()
			return
		}
	}
}

// tick runs every due task, dispatches any result needing attention, and
// asks the ledger to persist. A failing task is logged and isolated; it
// aborts neither its siblings nor the tick.
func (s *Scheduler) tick() {
	s.mu.Lock()
	s.count++
	count := s.count
	due := make([]Task, 0, len(s.tasks))
	for _, t := range s.tasks {
		if count%uint64(t.Interval) == 0 {
			due = append(due, t)
		}
	}
	registered := len(s.tasks)
	s.mu.Unlock()

	for _, t := range due {
		s.runTask(t)
	}

	if err := s.ledger.Save(); err != nil {
		log.Printf("[ERROR] ledger save on tick %d: %v", count, err)
	}

	if count%statusEvery == 0 {
		log.Printf("[INFO] tick %d: %d tasks registered, %d ran", count, registered, len(due))
	}
}

func (s *Scheduler) runTask(t Task) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[ERROR] task %q panicked: %v", t.Name, r)
		}
	}()

	res := t.Check(s.ctx)
	if res.ShouldWake {
		s.waker.Dispatch(s.ctx, t.Name, res.Message, res.Urgent)
	}
}
