package checks

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"VitalSentinel/internal/ledger"
	"VitalSentinel/internal/model"
	"VitalSentinel/internal/tier"
)

type fakeAlerter struct{ msgs []string }

func (f *fakeAlerter) AlertDirect(_ context.Context, text string) { f.msgs = append(f.msgs, text) }

type fakeProbe struct {
	ok  bool
	err error
}

func (f *fakeProbe) Check(context.Context, string) (bool, error) { return f.ok, f.err }

type fakeQuery struct {
	running bool
	err     error
}

func (f *fakeQuery) IsRunning(context.Context, string) (bool, error) { return f.running, f.err }

func newTestLedger(t *testing.T) *ledger.Ledger {
	t.Helper()
	lg := ledger.New(filepath.Join(t.TempDir(), "state.json"), model.LedgerConfig{
		Thresholds:      tier.DefaultThresholds,
		DailyTokenLimit: 100_000,
	})
	lg.Load()
	return lg
}

func TestEconomyDegradeToHibernateIsUrgent(t *testing.T) {
	lg := newTestLedger(t)
	alerts := &fakeAlerter{}
	task := Economy(lg, alerts)
	ctx := context.Background()

	lg.RecordIncome(model.KindTaskReward, 250_000, 0, "seed", nil)
	res := task.Check(ctx) // improve wake: hibernate -> normal
	if !res.ShouldWake || res.Urgent {
		t.Fatalf("improvement should wake normally, got %+v", res)
	}
	if !strings.Contains(res.Message, "improved") {
		t.Fatalf("improvement message: %s", res.Message)
	}
	if len(alerts.msgs) != 0 {
		t.Fatal("improvement must not fire the side-channel alert")
	}

	lg.RecordExpense(model.KindAPICall, 241_000, 0, "burn", nil)
	res = task.Check(ctx)
	if !res.ShouldWake || !res.Urgent {
		t.Fatalf("degrade to hibernate should be urgent, got %+v", res)
	}
	if !strings.Contains(res.Message, "normal") || !strings.Contains(res.Message, "hibernate") {
		t.Fatalf("message must name both tiers: %s", res.Message)
	}
	if len(alerts.msgs) != 1 {
		t.Fatalf("degradation should fire one direct alert, got %d", len(alerts.msgs))
	}

	// Once acknowledged, the same transition does not wake again.
	res = task.Check(ctx)
	if res.ShouldWake {
		t.Fatal("acknowledged transition woke a second time")
	}
}

func TestEconomyQuietWhenStable(t *testing.T) {
	lg := newTestLedger(t)
	task := Economy(lg, nil)

	if res := task.Check(context.Background()); res.ShouldWake {
		t.Fatalf("stable ledger should not wake, got %+v", res)
	}
}

func TestHealthCheckDegradesOnError(t *testing.T) {
	ctx := context.Background()

	res := Health(&fakeProbe{ok: true}, "http://svc/healthz").Check(ctx)
	if res.ShouldWake {
		t.Fatalf("healthy probe should not wake: %+v", res)
	}

	res = Health(&fakeProbe{ok: false}, "http://svc/healthz").Check(ctx)
	if !res.ShouldWake || res.Urgent {
		t.Fatalf("unhealthy probe should wake normally: %+v", res)
	}

	res = Health(&fakeProbe{err: errors.New("timeout")}, "http://svc/healthz").Check(ctx)
	if !res.ShouldWake || res.Urgent {
		t.Fatalf("probe error should degrade to an unhealthy wake: %+v", res)
	}
}

func TestProcessWatch(t *testing.T) {
	ctx := context.Background()

	res := ProcessWatch(&fakeQuery{running: true}, "agent").Check(ctx)
	if res.ShouldWake {
		t.Fatalf("running process should not wake: %+v", res)
	}

	res = ProcessWatch(&fakeQuery{running: false}, "agent").Check(ctx)
	if !res.ShouldWake || !res.Urgent {
		t.Fatalf("missing process should wake urgently: %+v", res)
	}

	// Query failure is "unknown", never a wake.
	res = ProcessWatch(&fakeQuery{err: errors.New("pgrep missing")}, "agent").Check(ctx)
	if res.ShouldWake {
		t.Fatalf("unknown status should not wake: %+v", res)
	}
}

func TestSpendGuardFiresOncePerDay(t *testing.T) {
	lg := newTestLedger(t)
	task := SpendGuard(lg)
	ctx := context.Background()

	lg.RecordExpense(model.KindAPICall, 50_000, 0, "normal use", nil)
	if res := task.Check(ctx); res.ShouldWake {
		t.Fatalf("under-limit spend should not wake: %+v", res)
	}

	lg.RecordExpense(model.KindAPICall, 60_000, 0, "heavy use", nil)
	res := task.Check(ctx)
	if !res.ShouldWake || res.Urgent {
		t.Fatalf("over-limit spend should wake normally: %+v", res)
	}

	if res := task.Check(ctx); res.ShouldWake {
		t.Fatal("spend guard fired twice for the same day")
	}
}
