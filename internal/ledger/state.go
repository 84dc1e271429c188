package ledger

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"VitalSentinel/internal/model"
	"VitalSentinel/internal/tier"
)

// DefaultState is the documented fallback used whenever the durable state
// file is missing or unreadable. Fresh agents start at zero balance, which
// classifies as hibernate until income arrives.
func DefaultState(cfg model.LedgerConfig, now time.Time) *model.ResourceState {
	t := tier.Classify(0, cfg.Thresholds)
	return &model.ResourceState{
		Tier:         t,
		PreviousTier: t,
		Today:        model.TodayStats{Date: now.Format("2006-01-02")},
		Config:       cfg,
	}
}

// readState loads the persisted snapshot from disk.
func readState(filePath string) (*model.ResourceState, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}
	var state model.ResourceState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("parse state: %w", err)
	}
	return &state, nil
}

// writeState replaces the state file wholesale: marshal to a temp file in
// the same directory, then rename over the target. A crash mid-write leaves
// either the old file or a stray temp, never a truncated document.
func writeState(filePath string, state *model.ResourceState) error {
	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal state: %w", err)
	}
	dir := filepath.Dir(filePath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create state dir: %w", err)
	}
	tmp, err := os.CreateTemp(dir, ".state-*.json")
	if err != nil {
		return fmt.Errorf("create temp state: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write temp state: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("close temp state: %w", err)
	}
	if err := os.Rename(tmp.Name(), filePath); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replace state file: %w", err)
	}
	return nil
}
