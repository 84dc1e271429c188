package history

import (
	"fmt"
	"testing"
	"time"

	"VitalSentinel/internal/model"
)

func TestRingEvictsOldest(t *testing.T) {
	r := NewRing(3)
	for i := 1; i <= 5; i++ {
		r.Add(model.WakeEvent{Task: fmt.Sprintf("t%d", i), Timestamp: time.Now()})
	}
	if r.Len() != 3 {
		t.Fatalf("len = %d, want 3", r.Len())
	}
	recent := r.Recent(3)
	if recent[0].Task != "t5" || recent[1].Task != "t4" || recent[2].Task != "t3" {
		t.Fatalf("unexpected order: %s %s %s", recent[0].Task, recent[1].Task, recent[2].Task)
	}
}

func TestRecentBounds(t *testing.T) {
	r := NewRing(10)
	r.Add(model.WakeEvent{Task: "a"})
	r.Add(model.WakeEvent{Task: "b"})

	if got := r.Recent(5); len(got) != 2 {
		t.Fatalf("Recent(5) on 2 events returned %d", len(got))
	}
	if got := r.Recent(1); len(got) != 1 || got[0].Task != "b" {
		t.Fatalf("Recent(1) = %+v, want just b", got)
	}
	if got := r.Recent(0); len(got) != 2 {
		t.Fatalf("Recent(0) should return everything, got %d", len(got))
	}
}

func TestZeroCapacityUsesDefault(t *testing.T) {
	r := NewRing(0)
	for i := 0; i < DefaultCapacity+5; i++ {
		r.Add(model.WakeEvent{Task: "x"})
	}
	if r.Len() != DefaultCapacity {
		t.Fatalf("len = %d, want %d", r.Len(), DefaultCapacity)
	}
}
