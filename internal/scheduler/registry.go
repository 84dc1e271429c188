package scheduler

import (
	"context"
	"log"

	"VitalSentinel/internal/model"
)

// Task is one named heartbeat check, run on every tick where the tick
// counter is divisible by Interval.
type Task struct {
	Name     string
	Interval int // in ticks
	Check    func(ctx context.Context) model.CheckResult
}

// TaskInfo is the read-only listing view of a registered task.
type TaskInfo struct {
	Name     string
	Interval int
}

// Register adds a task. A task with the same name is replaced, last write
// wins. Safe to call before Start: such tasks sit in a pending queue and
// are flushed into the live registry the moment the scheduler activates.
func (s *Scheduler) Register(t Task) {
	if t.Interval < 1 {
		log.Printf("[WARN] task %q has interval %d, clamping to 1", t.Name, t.Interval)
		t.Interval = 1
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.active {
		s.pending = upsert(s.pending, t)
		return
	}
	s.tasks = upsert(s.tasks, t)
}

// Unregister removes a task by name and reports whether anything was
// removed. Before activation it removes from the pending queue.
func (s *Scheduler) Unregister(name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.active {
		var ok bool
		s.pending, ok = remove(s.pending, name)
		return ok
	}
	var ok bool
	s.tasks, ok = remove(s.tasks, name)
	return ok
}

// List returns name and interval for every registered task, pending
// queue included before activation.
func (s *Scheduler) List() []TaskInfo {
	s.mu.Lock()
	defer s.mu.Unlock()

	src := s.tasks
	if !s.active {
		src = s.pending
	}
	out := make([]TaskInfo, 0, len(src))
	for _, t := range src {
		out = append(out, TaskInfo{Name: t.Name, Interval: t.Interval})
	}
	return out
}

func upsert(tasks []Task, t Task) []Task {
	for i, existing := range tasks {
		if existing.Name == t.Name {
			log.Printf("[WARN] task %q already registered, replacing", t.Name)
			tasks[i] = t
			return tasks
		}
	}
	return append(tasks, t)
}

func remove(tasks []Task, name string) ([]Task, bool) {
	for i, t := range tasks {
		if t.Name == name {
			return append(tasks[:i], tasks[i+1:]...), true
		}
	}
	return tasks, false
}
