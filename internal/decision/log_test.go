package decision

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"VitalSentinel/internal/model"
)

func TestRecentReturnsNewestFirst(t *testing.T) {
	l := NewLog(t.TempDir())
	base := time.Date(2026, 8, 26, 10, 0, 0, 0, time.UTC)

	for i := 0; i < 11; i++ {
		ts := base.Add(time.Duration(i) * time.Minute)
		l.SetClock(func() time.Time { return ts })
		l.Log(model.Decision{Trigger: fmt.Sprintf("trigger-%d", i)})
	}

	got := l.Recent(5)
	if len(got) != 5 {
		t.Fatalf("Recent(5) returned %d decisions", len(got))
	}
	for i, d := range got {
		want := fmt.Sprintf("trigger-%d", 10-i)
		if d.Trigger != want {
			t.Errorf("position %d: trigger = %s, want %s", i, d.Trigger, want)
		}
	}
	for i := 1; i < len(got); i++ {
		if got[i].Timestamp.After(got[i-1].Timestamp) {
			t.Fatalf("decisions not in descending order at %d", i)
		}
	}
}

func TestRecentSpansDays(t *testing.T) {
	l := NewLog(t.TempDir())

	day1 := time.Date(2026, 8, 25, 23, 0, 0, 0, time.UTC)
	l.SetClock(func() time.Time { return day1 })
	l.Log(model.Decision{Trigger: "yesterday"})

	day2 := day1.Add(12 * time.Hour)
	l.SetClock(func() time.Time { return day2 })
	l.Log(model.Decision{Trigger: "today"})

	got := l.Recent(5)
	if len(got) != 2 {
		t.Fatalf("Recent(5) returned %d, want 2", len(got))
	}
	if got[0].Trigger != "today" || got[1].Trigger != "yesterday" {
		t.Fatalf("wrong day order: %s, %s", got[0].Trigger, got[1].Trigger)
	}
}

func TestMalformedLinesSkipped(t *testing.T) {
	dir := t.TempDir()
	l := NewLog(dir)
	ts := time.Date(2026, 8, 26, 9, 0, 0, 0, time.UTC)
	l.SetClock(func() time.Time { return ts })

	l.Log(model.Decision{Trigger: "good-1"})

	path := filepath.Join(dir, filePrefix+"2026-08-26.jsonl")
	f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := f.WriteString("{this is not json}\n"); err != nil {
		t.Fatal(err)
	}
	f.Close()

	l.Log(model.Decision{Trigger: "good-2"})

	got := l.Recent(10)
	if len(got) != 2 {
		t.Fatalf("Recent returned %d decisions, want 2 with the bad line skipped", len(got))
	}
	if got[0].Trigger != "good-2" || got[1].Trigger != "good-1" {
		t.Fatalf("unexpected triggers: %s, %s", got[0].Trigger, got[1].Trigger)
	}
}

func TestLogReturnsIDOnWriteFailure(t *testing.T) {
	// Using a regular file as the log directory forces every write to fail.
	dir := filepath.Join(t.TempDir(), "blocked")
	if err := os.WriteFile(dir, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	l := NewLog(dir)
	id := l.Log(model.Decision{Trigger: "doomed"})
	if id == "" {
		t.Fatal("expected a generated id despite the write failure")
	}
}

func TestIDsUnique(t *testing.T) {
	l := NewLog(t.TempDir())
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		id := l.Log(model.Decision{Trigger: "x"})
		if seen[id] {
			t.Fatalf("duplicate id %s", id)
		}
		seen[id] = true
	}
}

func TestSummaryAndReport(t *testing.T) {
	l := NewLog(t.TempDir())
	l.Log(model.Decision{
		Trigger:   "economy",
		Reasoning: "balance dropped",
		Tier:      model.TierDanger,
		Actions:   []model.DecisionAction{{Type: "pause", Description: "paused background work", Success: true}},
		Outcome:   "spend reduced",
	})

	summary := l.Summary(5)
	if !strings.Contains(summary, "economy") || !strings.Contains(summary, "spend reduced") {
		t.Fatalf("summary missing fields:\n%s", summary)
	}

	report := l.Report(5)
	for _, want := range []string{"economy", "balance dropped", "paused background work", "danger"} {
		if !strings.Contains(report, want) {
			t.Fatalf("report missing %q:\n%s", want, report)
		}
	}

	empty := NewLog(t.TempDir())
	if got := empty.Summary(3); got != "No decisions recorded." {
		t.Fatalf("empty summary = %q", got)
	}
}
