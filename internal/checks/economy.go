// Package checks holds the built-in heartbeat checks. Each constructor
// returns a scheduler.Task; external failures degrade to an unhealthy or
// unknown result and never escape the task boundary.
package checks

import (
	"context"
	"fmt"

	"VitalSentinel/internal/ledger"
	"VitalSentinel/internal/model"
	"VitalSentinel/internal/scheduler"

	"github.com/dustin/go-humanize"
)

// Alerter is the direct, agent-bypassing notification hook.
type Alerter interface {
	AlertDirect(ctx context.Context, text string)
}

// Economy watches for survival-tier transitions. Runs every tick: a tier
// change must wake the reasoning process on the tick it happens, not
// several ticks later. Degradation into danger or hibernate is urgent,
// and every degradation additionally fires the direct side-channel alert.
func Economy(lg *ledger.Ledger, alerts Alerter) scheduler.Task {
	return scheduler.Task{
		Name:     "economy",
		Interval: 1,
		Check: func(ctx context.Context) model.CheckResult {
			lg.Refresh()
			snap := lg.Snapshot()
			if snap.Tier == snap.PreviousTier {
				return model.CheckResult{}
			}
			from, to := snap.PreviousTier, snap.Tier
			lg.AcknowledgeTier()

			degraded := to.WorseThan(from)
			verb := "improved"
			if degraded {
				verb = "degraded"
			}
			msg := fmt.Sprintf("survival tier %s from %s to %s (balance %s tokens)",
				verb, from, to, humanize.Comma(snap.TokenBalance))

			if degraded && alerts != nil {
				alerts.AlertDirect(ctx, "⚠️ "+msg)
			}

			urgent := degraded && (to == model.TierDanger || to == model.TierHibernate)
			return model.CheckResult{ShouldWake: true, Urgent: urgent, Message: msg}
		},
	}
}
