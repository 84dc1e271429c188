// Package host defines the capability boundary to the process hosting the
// external reasoning agent. Everything the daemon needs from the outside
// world is an injected interface so checks and dispatch are testable with
// fakes.
package host

import "context"

// Inbox injects a message into the reasoning process's asynchronous
// inbox. Fire-and-forget: delivery is bounded only by the collaborator's
// own poll cycle.
type Inbox interface {
	Enqueue(text string) error
}

// WakeTrigger causes the reasoning process to resume ahead of its normal
// poll cycle. Synchronous and bounded by the context deadline; may fail.
type WakeTrigger interface {
	TriggerWake(ctx context.Context, text string) error
}

// HealthProbe checks a remote service.
type HealthProbe interface {
	Check(ctx context.Context, url string) (bool, error)
}

// ProcessQuery reports whether a named external process is running.
type ProcessQuery interface {
	IsRunning(ctx context.Context, name string) (bool, error)
}

// Notifier sends a direct out-of-band alert that bypasses the reasoning
// process entirely.
type Notifier interface {
	Notify(ctx context.Context, text string) error
}
