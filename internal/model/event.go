package model

import "time"

// WakeEvent is one dispatched wake, kept only in the bounded in-memory
// history for context packing. Not a durable audit record.
type WakeEvent struct {
	Timestamp time.Time `json:"timestamp"`
	Task      string    `json:"task"`
	Message   string    `json:"message"`
	Urgent    bool      `json:"urgent"`
}

// DecisionAction is one step the reasoning process reports having taken.
type DecisionAction struct {
	Type        string `json:"type"`
	Description string `json:"description"`
	Success     bool   `json:"success"`
}

// Decision is a self-reported record of what the reasoning process did
// after a wake. Append-only; never mutated once written.
type Decision struct {
	ID        string           `json:"id"`
	Timestamp time.Time        `json:"timestamp"`
	Trigger   string           `json:"trigger"`
	Context   string           `json:"context,omitempty"`
	Reasoning string           `json:"reasoning,omitempty"`
	Actions   []DecisionAction `json:"actions,omitempty"`
	Outcome   string           `json:"outcome,omitempty"`
	Tier      SurvivalTier     `json:"tier,omitempty"`
}

// CheckResult is what a heartbeat check reports back to the scheduler.
type CheckResult struct {
	ShouldWake bool
	Urgent     bool
	Message    string
}
