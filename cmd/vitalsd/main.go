package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"VitalSentinel/internal/checks"
	"VitalSentinel/internal/command"
	"VitalSentinel/internal/config"
	"VitalSentinel/internal/decision"
	"VitalSentinel/internal/history"
	"VitalSentinel/internal/host"
	"VitalSentinel/internal/ledger"
	"VitalSentinel/internal/model"
	"VitalSentinel/internal/notifier"
	"VitalSentinel/internal/recorder"
	"VitalSentinel/internal/report"
	"VitalSentinel/internal/scheduler"
	"VitalSentinel/internal/wake"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("[INFO] VitalSentinel starting...")

	// Load config
	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("[FATAL] load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[FATAL] config validation: %v", err)
	}

	// Resource ledger
	lg := ledger.New(cfg.Ledger.StateFile, model.LedgerConfig{
		Thresholds:      cfg.Ledger.Thresholds,
		DailyTokenLimit: cfg.Ledger.DailyTokenLimit,
	})
	lg.Load()

	// Decision log
	decisions := decision.NewLog(cfg.Decisions.Dir)

	// Audit recorder
	var rec recorder.Recorder
	if cfg.Database.SQLitePath != "" {
		sr, err := recorder.NewSQLiteRecorder(cfg.Database.SQLitePath)
		if err != nil {
			log.Printf("[WARN] init sqlite recorder failed, using noop: %v", err)
			rec = recorder.NewNoop()
		} else {
			rec = sr
			defer sr.Close()
		}
	} else {
		rec = recorder.NewNoop()
	}
	lg.SetEntryHook(func(e model.LedgerEntry) {
		if err := rec.RecordEntry(e); err != nil {
			log.Printf("[ERROR] record ledger entry: %v", err)
		}
	})

	// Host collaborators
	inbox := host.NewFileInbox(cfg.Agent.InboxFile)
	trigger, err := host.NewExecWakeTrigger(cfg.Agent.WakeCommand)
	if err != nil {
		log.Fatalf("[FATAL] init wake trigger: %v", err)
	}

	// Direct notification channel (optional)
	var tn *notifier.Telegram
	var direct host.Notifier
	if cfg.Telegram.BotToken != "" && cfg.Telegram.ChatID != "" {
		tn = notifier.NewTelegram(cfg.Telegram.BotToken, cfg.Telegram.ChatID, cfg.Proxy)
		direct = tn
	} else {
		log.Println("[WARN] telegram not configured, direct notifications disabled")
	}

	// Wake dispatch
	events := history.NewRing(history.DefaultCapacity)
	dispatcher := wake.NewDispatcher(inbox, trigger, direct, lg, events)
	dispatcher.SetAuditHook(func(ev model.WakeEvent) {
		if err := rec.RecordWake(ev); err != nil {
			log.Printf("[ERROR] record wake event: %v", err)
		}
	})

	// Context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Heartbeat scheduler and built-in checks
	sched := scheduler.New(ctx, time.Duration(cfg.Tick.IntervalSeconds)*time.Second, lg, dispatcher)
	sched.Register(checks.Economy(lg, dispatcher))
	sched.Register(checks.SpendGuard(lg))
	if cfg.Health.URL != "" {
		sched.Register(checks.Health(host.NewHTTPHealthProbe(cfg.Proxy), cfg.Health.URL))
	}
	if cfg.Agent.ProcessName != "" {
		sched.Register(checks.ProcessWatch(host.PgrepProcessQuery{}, cfg.Agent.ProcessName))
	}
	sched.Start()
	defer sched.Stop()

	// Daily digest and operator commands need the direct channel
	if tn != nil {
		digest := report.NewDigest(lg, decisions, tn)
		if err := digest.Schedule(cfg.Report.DailyCron); err != nil {
			log.Fatalf("[FATAL] schedule daily digest: %v", err)
		}
		digest.Start()
		defer digest.Stop()

		handler := command.NewHandler(lg, decisions)
		go tn.StartPolling(ctx, handler.Handle)
		log.Println("[INFO] operator command polling started")
	}

	log.Println("[INFO] VitalSentinel is running. Press Ctrl+C to stop.")

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Println("[INFO] shutdown signal received, stopping...")
	cancel()
	sched.Stop()
	if err := lg.Save(); err != nil {
		log.Printf("[ERROR] final ledger save: %v", err)
	}
	log.Println("[INFO] VitalSentinel stopped")
}
