// Package recorder mirrors ledger entries and wake dispatches into a
// durable store for offline analysis. The mirror is advisory: failures
// are logged by callers and never affect the accounting state.
package recorder

import "VitalSentinel/internal/model"

// Recorder persists audit history.
type Recorder interface {
	RecordEntry(e model.LedgerEntry) error
	RecordWake(ev model.WakeEvent) error
	Close() error
}

// Noop is used when no database is configured.
type Noop struct{}

func NewNoop() *Noop { return &Noop{} }

func (n *Noop) RecordEntry(_ model.LedgerEntry) error { return nil }
func (n *Noop) RecordWake(_ model.WakeEvent) error    { return nil }
func (n *Noop) Close() error                          { return nil }
