package wake

import (
	"fmt"
	"strings"
	"time"

	"VitalSentinel/internal/model"

	"github.com/dustin/go-humanize"
)

// contextEvents is how many recent wakes ride along in each message.
const contextEvents = 5

// Pack composes the full wake message: trigger, resource snapshot, and
// recent wake history tagged with relative age and urgency. The goal is
// that the reasoning process can act without issuing further queries.
func Pack(task, reason string, state model.ResourceState, recent []model.WakeEvent, now time.Time) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("[wake] %s: %s\n", task, reason))
	b.WriteString(fmt.Sprintf("tier: %s | tokens: %s | currency: %.2f\n",
		state.Tier, humanize.Comma(state.TokenBalance), state.CurrencyBalance))
	b.WriteString(fmt.Sprintf("today: earned %s / spent %s tokens, %d calls\n",
		humanize.Comma(state.Today.TokensEarned), humanize.Comma(state.Today.TokensSpent), state.Today.Calls))

	if len(recent) > 0 {
		b.WriteString("recent wakes:\n")
		for _, ev := range recent {
			tag := ""
			if ev.Urgent {
				tag = " [urgent]"
			}
			b.WriteString(fmt.Sprintf("  - %s%s %s: %s\n", relAge(now.Sub(ev.Timestamp)), tag, ev.Task, ev.Message))
		}
	}
	return b.String()
}

// relAge renders a duration as a coarse human age tag.
func relAge(d time.Duration) string {
	switch {
	case d < 10*time.Second:
		return "just now"
	case d < time.Minute:
		return fmt.Sprintf("%ds ago", int(d.Seconds()))
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	default:
		return fmt.Sprintf("%dd ago", int(d.Hours()/24))
	}
}
