// Package wake turns check results into messages for the external
// reasoning process: a normal-severity inbox enqueue, an optional urgent
// fast-path trigger, and a best-effort side-channel alert on tier
// degradation.
package wake

import (
	"context"
	"log"
	"time"

	"VitalSentinel/internal/history"
	"VitalSentinel/internal/host"
	"VitalSentinel/internal/model"
)

// urgentTimeout bounds the immediate-wake trigger so a hung collaborator
// cannot stall the tick loop.
const urgentTimeout = 10 * time.Second

// StateSource provides the resource snapshot packed into every wake.
type StateSource interface {
	Snapshot() model.ResourceState
}

// Dispatcher routes wakes to the hosting process.
type Dispatcher struct {
	inbox    host.Inbox
	trigger  host.WakeTrigger
	notifier host.Notifier // may be nil
	state    StateSource
	events   *history.Ring
	now      func() time.Time
	onEvent  func(model.WakeEvent)
}

// NewDispatcher wires a dispatcher. notifier may be nil when no direct
// alert channel is configured.
func NewDispatcher(inbox host.Inbox, trigger host.WakeTrigger, notifier host.Notifier, state StateSource, events *history.Ring) *Dispatcher {
	return &Dispatcher{
		inbox:    inbox,
		trigger:  trigger,
		notifier: notifier,
		state:    state,
		events:   events,
		now:      time.Now,
	}
}

// SetClock overrides the wall clock, for tests.
func (d *Dispatcher) SetClock(now func() time.Time) { d.now = now }

// SetAuditHook registers a callback invoked for every dispatched wake,
// used to mirror dispatches into the audit recorder.
func (d *Dispatcher) SetAuditHook(fn func(model.WakeEvent)) { d.onEvent = fn }

// Dispatch sends one wake. Normal severity enqueues into the inbox;
// urgent additionally fires the immediate trigger. Urgency is strictly
// additive: a failed trigger never retracts the enqueued message, so
// eventual delivery holds whenever the inbox write succeeded. The event
// is recorded into history regardless of delivery outcome so future
// context packing stays accurate.
func (d *Dispatcher) Dispatch(ctx context.Context, task, reason string, urgent bool) {
	msg := Pack(task, reason, d.state.Snapshot(), d.events.Recent(contextEvents), d.now())

	if err := d.inbox.Enqueue(msg); err != nil {
		log.Printf("[ERROR] wake enqueue (%s): %v", task, err)
	}
	if urgent {
		tctx, cancel := context.WithTimeout(ctx, urgentTimeout)
		if err := d.trigger.TriggerWake(tctx, msg); err != nil {
			log.Printf("[ERROR] urgent wake trigger (%s): %v", task, err)
		}
		cancel()
	}

	ev := model.WakeEvent{
		Timestamp: d.now(),
		Task:      task,
		Message:   reason,
		Urgent:    urgent,
	}
	d.events.Add(ev)
	if d.onEvent != nil {
		d.onEvent(ev)
	}
}

// AlertDirect sends an agent-bypassing notification. Best-effort only:
// failure is logged, never retried, never escalated.
func (d *Dispatcher) AlertDirect(ctx context.Context, text string) {
	if d.notifier == nil {
		return
	}
	tctx, cancel := context.WithTimeout(ctx, urgentTimeout)
	defer cancel()
	if err := d.notifier.Notify(tctx, text); err != nil {
		log.Printf("[ERROR] direct notification: %v", err)
	}
}
