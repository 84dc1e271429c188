package model

import "time"

// Unit identifies which balance an amount is denominated in.
type Unit string

const (
	UnitToken    Unit = "token"
	UnitCurrency Unit = "currency"
)

// Direction marks whether an entry adds to or drains the balance.
type Direction string

const (
	DirectionIncome  Direction = "income"
	DirectionExpense Direction = "expense"
)

// EntryKind is the transaction category of a ledger entry.
type EntryKind string

const (
	KindAPICall    EntryKind = "api_call"    // model/tool usage debits
	KindTaskReward EntryKind = "task_reward" // income credited by completed work
	KindManualGift EntryKind = "manual_gift" // operator-granted reward
	KindTransfer   EntryKind = "transfer"    // movement between external accounts
	KindAdjustment EntryKind = "adjustment"  // corrections, migrations
)

// LedgerEntry is one immutable transaction record. Entries are created only
// by the ledger's record operations and evicted oldest-first past the cap.
type LedgerEntry struct {
	ID          string            `json:"id"`
	Timestamp   time.Time         `json:"timestamp"`
	Kind        EntryKind         `json:"kind"`
	Direction   Direction         `json:"direction"`
	Amount      float64           `json:"amount"`
	Unit        Unit              `json:"unit"`
	Description string            `json:"description,omitempty"`
	Meta        map[string]string `json:"meta,omitempty"`
}

// LifetimeStats accumulates totals that survive day rollovers.
type LifetimeStats struct {
	TokensEarned   int64   `json:"tokens_earned"`
	TokensSpent    int64   `json:"tokens_spent"`
	CurrencyEarned float64 `json:"currency_earned"`
	CurrencySpent  float64 `json:"currency_spent"`
}

// TodayStats tracks the current calendar day. Reset on rollover.
type TodayStats struct {
	Date           string  `json:"date"` // YYYY-MM-DD
	TokensEarned   int64   `json:"tokens_earned"`
	TokensSpent    int64   `json:"tokens_spent"`
	CurrencyEarned float64 `json:"currency_earned"`
	CurrencySpent  float64 `json:"currency_spent"`
	Calls          int     `json:"calls"`
}

// TierThresholds maps each tier (hibernate excluded, pinned at 0) to the
// minimum token balance that qualifies for it. Must be strictly descending
// in tier order.
type TierThresholds struct {
	Rich   int64 `json:"rich" yaml:"rich"`
	Normal int64 `json:"normal" yaml:"normal"`
	Tight  int64 `json:"tight" yaml:"tight"`
	Danger int64 `json:"danger" yaml:"danger"`
}

// LedgerConfig is the static part of the persisted state.
type LedgerConfig struct {
	Thresholds      TierThresholds `json:"thresholds"`
	DailyTokenLimit int64          `json:"daily_token_limit"`
}

// ResourceState is the ledger's full persisted snapshot. Owned exclusively
// by the ledger; mutated only through its record operations.
type ResourceState struct {
	TokenBalance    int64          `json:"token_balance"`
	CurrencyBalance float64        `json:"currency_balance"`
	Tier            SurvivalTier   `json:"tier"`
	PreviousTier    SurvivalTier   `json:"previous_tier"`
	Lifetime        LifetimeStats  `json:"lifetime"`
	Today           TodayStats     `json:"today"`
	Entries         []LedgerEntry  `json:"entries"`
	Config          LedgerConfig   `json:"config"`
	UpdatedAt       time.Time      `json:"updated_at"`
}
