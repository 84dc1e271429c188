// Package command implements the operator surface: status, ledger and
// reward commands arriving over the notifier's polling channel.
package command

import (
	"fmt"
	"strconv"
	"strings"

	"VitalSentinel/internal/decision"
	"VitalSentinel/internal/ledger"
	"VitalSentinel/internal/model"
)

const defaultLedgerCount = 10

// Handler resolves operator commands against the ledger and decision log.
type Handler struct {
	Ledger    *ledger.Ledger
	Decisions *decision.Log
}

// NewHandler wires a Handler.
func NewHandler(lg *ledger.Ledger, dl *decision.Log) *Handler {
	return &Handler{Ledger: lg, Decisions: dl}
}

// Handle processes one command line and returns the reply text.
func (h *Handler) Handle(cmd string) string {
	fields := strings.Fields(cmd)
	if len(fields) == 0 {
		return h.help()
	}

	switch fields[0] {
	case "/status":
		return FormatStatus(h.Ledger.Snapshot())

	case "/ledger":
		n := defaultLedgerCount
		if len(fields) > 1 {
			if v, err := strconv.Atoi(fields[1]); err == nil && v > 0 {
				n = v
			}
		}
		return FormatEntries(h.Ledger.Entries(n))

	case "/reward":
		return h.reward(fields[1:])

	case "/decisions":
		n := 5
		if len(fields) > 1 {
			if v, err := strconv.Atoi(fields[1]); err == nil && v > 0 {
				n = v
			}
		}
		return h.Decisions.Summary(n)

	default:
		return h.help()
	}
}

// reward credits a manual token gift. The amount must be a positive
// integer; anything else is rejected with no state mutation.
func (h *Handler) reward(args []string) string {
	if len(args) == 0 {
		return "Usage: /reward <tokens> [description]"
	}
	amount, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Sprintf("Invalid amount %q: must be a whole number of tokens.", args[0])
	}
	if amount <= 0 {
		return fmt.Sprintf("Invalid amount %d: must be positive.", amount)
	}
	desc := "operator reward"
	if len(args) > 1 {
		desc = strings.Join(args[1:], " ")
	}
	h.Ledger.RecordIncome(model.KindManualGift, amount, 0, desc, nil)
	snap := h.Ledger.Snapshot()
	return fmt.Sprintf("Recorded reward of %d tokens (%s). Balance: %d, tier: %s.",
		amount, desc, snap.TokenBalance, snap.Tier)
}

func (h *Handler) help() string {
	return "Available commands:\n" +
		"• /status — tier, balances, today and lifetime stats\n" +
		"• /ledger [n] — last n transactions (default 10)\n" +
		"• /reward <tokens> [description] — record an income entry\n" +
		"• /decisions [n] — recent decision summary"
}
