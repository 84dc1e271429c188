package decision

import (
	"fmt"
	"strings"
)

// Summary renders a one-line-per-decision digest of the n most recent
// decisions, newest first.
func (l *Log) Summary(n int) string {
	decisions := l.Recent(n)
	if len(decisions) == 0 {
		return "No decisions recorded."
	}
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Last %d decisions:\n", len(decisions)))
	for _, d := range decisions {
		b.WriteString(fmt.Sprintf("  %s  [%s] %s", d.Timestamp.Format("01-02 15:04"), d.Tier, d.Trigger))
		if d.Outcome != "" {
			b.WriteString(" → " + d.Outcome)
		}
		b.WriteString("\n")
	}
	return b.String()
}

// Report renders a full multi-line report including reasoning and actions.
func (l *Log) Report(n int) string {
	decisions := l.Recent(n)
	if len(decisions) == 0 {
		return "No decisions recorded."
	}
	var b strings.Builder
	for i, d := range decisions {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(fmt.Sprintf("%s | %s | tier=%s\n", d.Timestamp.Format("2006-01-02 15:04:05"), d.Trigger, d.Tier))
		if d.Reasoning != "" {
			b.WriteString("  reasoning: " + d.Reasoning + "\n")
		}
		for _, a := range d.Actions {
			mark := "✓"
			if !a.Success {
				mark = "✗"
			}
			b.WriteString(fmt.Sprintf("  %s %s: %s\n", mark, a.Type, a.Description))
		}
		if d.Outcome != "" {
			b.WriteString("  outcome: " + d.Outcome + "\n")
		}
	}
	return b.String()
}
