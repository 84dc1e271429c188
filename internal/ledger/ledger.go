package ledger

import (
	"fmt"
	"log"
	"os"
	"sync"
	"time"

	"VitalSentinel/internal/model"
	"VitalSentinel/internal/tier"

	"github.com/google/uuid"
)

const (
	// historyCap bounds the in-state transaction history. Oldest evicted.
	historyCap = 500

	// expenseNoiseFloor keeps small recurring token debits out of the
	// bounded history. The balance still moves; only the entry is skipped.
	expenseNoiseFloor = 1000
)

// Ledger owns the durable resource accounting state. All mutation goes
// through RecordIncome/RecordExpense; everything else reads a copy.
type Ledger struct {
	mu       sync.Mutex
	state    *model.ResourceState
	filePath string
	dirty    bool
	now      func() time.Time
	onEntry  func(model.LedgerEntry)
}

// New creates a Ledger bound to filePath. Call Load before first use.
func New(filePath string, cfg model.LedgerConfig) *Ledger {
	now := time.Now
	return &Ledger{
		state:    DefaultState(cfg, now()),
		filePath: filePath,
		now:      now,
	}
}

// SetClock overrides the wall clock, for tests.
func (l *Ledger) SetClock(now func() time.Time) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.now = now
}

// SetEntryHook registers a callback invoked for every entry appended to
// the history, used to mirror entries into the audit recorder. The hook
// must not call back into the ledger.
func (l *Ledger) SetEntryHook(fn func(model.LedgerEntry)) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.onEntry = fn
}

// Load reads the durable state. Any read or parse failure falls back to
// the default state rather than propagating: a corrupt ledger file must
// never keep the daemon from starting. Always rollover-checks afterwards.
func (l *Ledger) Load() {
	l.mu.Lock()
	defer l.mu.Unlock()

	cfg := l.state.Config
	state, err := readState(l.filePath)
	if os.IsNotExist(err) {
		l.state = DefaultState(cfg, l.now())
	} else if err != nil {
		log.Printf("[WARN] ledger load failed, starting from defaults: %v", err)
		l.state = DefaultState(cfg, l.now())
		l.dirty = true
	} else {
		// Static config comes from the running process, not the file,
		// so threshold changes take effect on restart.
		state.Config = cfg
		l.state = state
	}
	l.rolloverLocked()
}

// Save writes the full state atomically, but only when something changed
// since the last save. On failure the dirty flag stays set so a later
// tick retries.
func (l *Ledger) Save() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.dirty {
		return nil
	}
	l.state.UpdatedAt = l.now()
	if err := writeState(l.filePath, l.state); err != nil {
		return fmt.Errorf("save ledger: %w", err)
	}
	l.dirty = false
	return nil
}

// Refresh performs the lazy day-rollover check. It is the extension point
// for implementations that reconcile against an external balance source.
func (l *Ledger) Refresh() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.rolloverLocked()
}

// RecordIncome credits the balances and always appends a history entry.
func (l *Ledger) RecordIncome(kind model.EntryKind, tokens int64, currency float64, desc string, meta map[string]string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.rolloverLocked()
	l.state.TokenBalance += tokens
	l.state.CurrencyBalance += currency
	l.state.Lifetime.TokensEarned += tokens
	l.state.Lifetime.CurrencyEarned += currency
	l.state.Today.TokensEarned += tokens
	l.state.Today.CurrencyEarned += currency

	l.appendEntryLocked(kind, model.DirectionIncome, tokens, currency, desc, meta)
	l.reclassifyLocked()
	l.dirty = true
}

// RecordExpense debits the balances and bumps the daily call count. The
// token balance is decremented unconditionally and may go negative; the
// hibernate tier covers every balance below the danger threshold. Entries
// below the noise floor are not added to the bounded history.
func (l *Ledger) RecordExpense(kind model.EntryKind, tokens int64, currency float64, desc string, meta map[string]string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.rolloverLocked()
	l.state.TokenBalance -= tokens
	l.state.CurrencyBalance -= currency
	l.state.Lifetime.TokensSpent += tokens
	l.state.Lifetime.CurrencySpent += currency
	l.state.Today.TokensSpent += tokens
	l.state.Today.CurrencySpent += currency
	l.state.Today.Calls++

	if tokens > expenseNoiseFloor || currency != 0 {
		l.appendEntryLocked(kind, model.DirectionExpense, tokens, currency, desc, meta)
	}
	l.reclassifyLocked()
	l.dirty = true
}

// AcknowledgeTier clears the pending tier transition once the economy
// check has reported it, so the same transition does not wake twice.
func (l *Ledger) AcknowledgeTier() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.state.PreviousTier != l.state.Tier {
		l.state.PreviousTier = l.state.Tier
		l.dirty = true
	}
}

// Snapshot returns a copy of the current state. The entry history is
// copied so callers cannot alias the ledger's internal slice.
func (l *Ledger) Snapshot() model.ResourceState {
	l.mu.Lock()
	defer l.mu.Unlock()

	snap := *l.state
	snap.Entries = make([]model.LedgerEntry, len(l.state.Entries))
	copy(snap.Entries, l.state.Entries)
	return snap
}

// Entries returns the most recent n history entries, newest first.
func (l *Ledger) Entries(n int) []model.LedgerEntry {
	l.mu.Lock()
	defer l.mu.Unlock()

	if n <= 0 || n > len(l.state.Entries) {
		n = len(l.state.Entries)
	}
	out := make([]model.LedgerEntry, 0, n)
	for i := len(l.state.Entries) - 1; i >= len(l.state.Entries)-n; i-- {
		out = append(out, l.state.Entries[i])
	}
	return out
}

// Dirty reports whether unsaved changes exist.
func (l *Ledger) Dirty() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.dirty
}

func (l *Ledger) appendEntryLocked(kind model.EntryKind, dir model.Direction, tokens int64, currency float64, desc string, meta map[string]string) {
	entry := model.LedgerEntry{
		ID:          uuid.NewString(),
		Timestamp:   l.now(),
		Kind:        kind,
		Direction:   dir,
		Description: desc,
		Meta:        meta,
	}
	// One entry per record call: tokens are the primary unit when present,
	// and a secondary currency amount rides along in the metadata.
	switch {
	case tokens != 0:
		entry.Amount = float64(tokens)
		entry.Unit = model.UnitToken
		if currency != 0 {
			if entry.Meta == nil {
				entry.Meta = map[string]string{}
			}
			entry.Meta["currency_amount"] = fmt.Sprintf("%.4f", currency)
		}
	default:
		entry.Amount = currency
		entry.Unit = model.UnitCurrency
	}

	l.state.Entries = append(l.state.Entries, entry)
	if len(l.state.Entries) > historyCap {
		l.state.Entries = l.state.Entries[len(l.state.Entries)-historyCap:]
	}
	if l.onEntry != nil {
		l.onEntry(entry)
	}
}

func (l *Ledger) reclassifyLocked() {
	next := tier.Classify(l.state.TokenBalance, l.state.Config.Thresholds)
	if next != l.state.Tier {
		l.state.PreviousTier = l.state.Tier
		l.state.Tier = next
	}
}

// rolloverLocked resets today's counters when the stored date no longer
// matches the wall clock. Lifetime totals are never touched.
func (l *Ledger) rolloverLocked() {
	today := l.now().Format("2006-01-02")
	if l.state.Today.Date == today {
		return
	}
	log.Printf("[INFO] ledger day rollover: %s -> %s", l.state.Today.Date, today)
	l.state.Today = model.TodayStats{Date: today}
	l.dirty = true
}
