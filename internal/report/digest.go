// Package report sends a wall-clock scheduled daily digest through the
// direct notification channel. Unlike heartbeat ticks, the digest runs at
// a fixed local time and has no overlap concerns, so it rides on cron.
package report

import (
	"context"
	"fmt"
	"log"
	"time"

	"VitalSentinel/internal/command"
	"VitalSentinel/internal/decision"
	"VitalSentinel/internal/host"
	"VitalSentinel/internal/ledger"

	"github.com/robfig/cron/v3"
)

const sendTimeout = 30 * time.Second

// Digest owns the cron schedule for the daily operator report.
type Digest struct {
	cron      *cron.Cron
	ledger    *ledger.Ledger
	decisions *decision.Log
	notify    host.Notifier
}

// NewDigest creates a digest sender. notify may not be nil; callers that
// have no direct channel should not construct a Digest at all.
func NewDigest(lg *ledger.Ledger, dl *decision.Log, notify host.Notifier) *Digest {
	return &Digest{
		cron:      cron.New(cron.WithSeconds()),
		ledger:    lg,
		decisions: dl,
		notify:    notify,
	}
}

// Schedule registers the daily send at the given cron spec.
func (d *Digest) Schedule(spec string) error {
	if _, err := d.cron.AddFunc(spec, d.send); err != nil {
		return fmt.Errorf("register daily digest: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (d *Digest) Start() {
	d.cron.Start()
	log.Println("[INFO] daily digest scheduled")
}

// Stop stops the cron scheduler gracefully.
func (d *Digest) Stop() {
	d.cron.Stop()
}

func (d *Digest) send() {
	log.Println("[INFO] sending daily digest")
	text := command.FormatStatus(d.ledger.Snapshot()) + "\n" + d.decisions.Summary(5)

	ctx, cancel := context.WithTimeout(context.Background(), sendTimeout)
	defer cancel()
	if err := d.notify.Notify(ctx, text); err != nil {
		log.Printf("[ERROR] daily digest send: %v", err)
	}
}
