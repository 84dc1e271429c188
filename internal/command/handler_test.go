package command

import (
	"path/filepath"
	"strings"
	"testing"

	"VitalSentinel/internal/decision"
	"VitalSentinel/internal/ledger"
	"VitalSentinel/internal/model"
	"VitalSentinel/internal/tier"
)

func newTestHandler(t *testing.T) (*Handler, *ledger.Ledger) {
	t.Helper()
	dir := t.TempDir()
	lg := ledger.New(filepath.Join(dir, "state.json"), model.LedgerConfig{Thresholds: tier.DefaultThresholds})
	lg.Load()
	return NewHandler(lg, decision.NewLog(filepath.Join(dir, "decisions"))), lg
}

func TestStatusCommand(t *testing.T) {
	h, lg := newTestHandler(t)
	lg.RecordIncome(model.KindTaskReward, 250_000, 1.25, "seed", nil)

	out := h.Handle("/status")
	for _, want := range []string{"normal", "250,000", "1.25"} {
		if !strings.Contains(out, want) {
			t.Errorf("status missing %q:\n%s", want, out)
		}
	}
}

func TestLedgerCommand(t *testing.T) {
	h, lg := newTestHandler(t)
	for i := 0; i < 15; i++ {
		lg.RecordIncome(model.KindTaskReward, int64(1000+i), 0, "entry", nil)
	}

	out := h.Handle("/ledger")
	if got := strings.Count(out, "task_reward"); got != 10 {
		t.Errorf("default ledger listing has %d entries, want 10:\n%s", got, out)
	}

	out = h.Handle("/ledger 3")
	if got := strings.Count(out, "task_reward"); got != 3 {
		t.Errorf("/ledger 3 listed %d entries:\n%s", got, out)
	}
	// Newest first: the largest amount tops the list.
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if !strings.Contains(lines[1], "1,014") {
		t.Errorf("expected newest entry first:\n%s", out)
	}

	empty, _ := newTestHandler(t)
	if out := empty.Handle("/ledger"); out != "No transactions recorded." {
		t.Errorf("empty ledger reply = %q", out)
	}
}

func TestRewardCommand(t *testing.T) {
	h, lg := newTestHandler(t)

	out := h.Handle("/reward 5000 helpful summary")
	if !strings.Contains(out, "5000") {
		t.Errorf("reward reply: %s", out)
	}
	snap := lg.Snapshot()
	if snap.TokenBalance != 5_000 {
		t.Fatalf("balance = %d, want 5000", snap.TokenBalance)
	}
	if len(snap.Entries) != 1 || snap.Entries[0].Kind != model.KindManualGift {
		t.Fatalf("expected one manual_gift entry, got %+v", snap.Entries)
	}
	if snap.Entries[0].Description != "helpful summary" {
		t.Fatalf("description = %q", snap.Entries[0].Description)
	}
}

func TestRewardRejectsBadAmounts(t *testing.T) {
	h, lg := newTestHandler(t)

	for _, cmd := range []string{
		"/reward -50 negative",
		"/reward 0 zero",
		"/reward banana fruit",
		"/reward 1.5 fractional",
		"/reward",
	} {
		out := h.Handle(cmd)
		if !strings.Contains(out, "Invalid") && !strings.Contains(out, "Usage") {
			t.Errorf("%q produced no visible error: %s", cmd, out)
		}
	}

	snap := lg.Snapshot()
	if snap.TokenBalance != 0 || len(snap.Entries) != 0 || lg.Dirty() {
		t.Fatalf("rejected rewards mutated state: balance=%d entries=%d dirty=%v",
			snap.TokenBalance, len(snap.Entries), lg.Dirty())
	}
}

func TestUnknownCommandShowsHelp(t *testing.T) {
	h, _ := newTestHandler(t)
	out := h.Handle("/dance")
	if !strings.Contains(out, "/status") || !strings.Contains(out, "/reward") {
		t.Errorf("help listing incomplete:\n%s", out)
	}
}
