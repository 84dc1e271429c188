package command

import (
	"fmt"
	"strings"

	"VitalSentinel/internal/model"

	"github.com/dustin/go-humanize"
)

// FormatStatus renders the full resource report for the operator.
func FormatStatus(state model.ResourceState) string {
	var b strings.Builder

	b.WriteString("📟 VitalSentinel status\n\n")
	b.WriteString(fmt.Sprintf("Tier: %s", state.Tier))
	if state.PreviousTier != state.Tier {
		b.WriteString(fmt.Sprintf(" (was %s)", state.PreviousTier))
	}
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Tokens: %s\n", humanize.Comma(state.TokenBalance)))
	b.WriteString(fmt.Sprintf("Currency: %.2f\n\n", state.CurrencyBalance))

	b.WriteString(fmt.Sprintf("Today (%s):\n", state.Today.Date))
	b.WriteString(fmt.Sprintf("  earned %s / spent %s tokens, %d calls\n",
		humanize.Comma(state.Today.TokensEarned), humanize.Comma(state.Today.TokensSpent), state.Today.Calls))
	b.WriteString(fmt.Sprintf("  earned %.2f / spent %.2f currency\n\n",
		state.Today.CurrencyEarned, state.Today.CurrencySpent))

	b.WriteString("Lifetime:\n")
	b.WriteString(fmt.Sprintf("  earned %s / spent %s tokens\n",
		humanize.Comma(state.Lifetime.TokensEarned), humanize.Comma(state.Lifetime.TokensSpent)))
	b.WriteString(fmt.Sprintf("  earned %.2f / spent %.2f currency\n",
		state.Lifetime.CurrencyEarned, state.Lifetime.CurrencySpent))
	b.WriteString(fmt.Sprintf("\nHistory entries: %d\n", len(state.Entries)))
	if !state.UpdatedAt.IsZero() {
		b.WriteString(fmt.Sprintf("Last saved: %s\n", state.UpdatedAt.Format("2006-01-02 15:04:05")))
	}
	return b.String()
}

// FormatEntries renders transactions newest first, one line each.
func FormatEntries(entries []model.LedgerEntry) string {
	if len(entries) == 0 {
		return "No transactions recorded."
	}
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Last %d transactions (newest first):\n", len(entries)))
	for _, e := range entries {
		sign := "+"
		if e.Direction == model.DirectionExpense {
			sign = "-"
		}
		amount := fmt.Sprintf("%s%s %s", sign, humanize.Comma(int64(e.Amount)), e.Unit)
		if e.Unit == model.UnitCurrency {
			amount = fmt.Sprintf("%s%.2f %s", sign, e.Amount, e.Unit)
		}
		b.WriteString(fmt.Sprintf("  %s  %-12s %s", e.Timestamp.Format("01-02 15:04"), e.Kind, amount))
		if e.Description != "" {
			b.WriteString(" — " + e.Description)
		}
		b.WriteString("\n")
	}
	return b.String()
}
