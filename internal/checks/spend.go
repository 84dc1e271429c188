package checks

import (
	"context"
	"fmt"

	"VitalSentinel/internal/ledger"
	"VitalSentinel/internal/model"
	"VitalSentinel/internal/scheduler"

	"github.com/dustin/go-humanize"
)

// SpendGuard wakes once per calendar day when today's token spend crosses
// the configured limit. A zero limit disables the guard.
func SpendGuard(lg *ledger.Ledger) scheduler.Task {
	warnedDate := ""
	return scheduler.Task{
		Name:     "spend-guard",
		Interval: 10,
		Check: func(ctx context.Context) model.CheckResult {
			snap := lg.Snapshot()
			limit := snap.Config.DailyTokenLimit
			if limit <= 0 || snap.Today.TokensSpent <= limit {
				return model.CheckResult{}
			}
			if warnedDate == snap.Today.Date {
				return model.CheckResult{}
			}
			warnedDate = snap.Today.Date
			return model.CheckResult{
				ShouldWake: true,
				Message: fmt.Sprintf("daily token spend %s exceeds limit %s",
					humanize.Comma(snap.Today.TokensSpent), humanize.Comma(limit)),
			}
		},
	}
}
