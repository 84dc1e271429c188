package checks

import (
	"context"
	"fmt"
	"log"
	"time"

	"VitalSentinel/internal/host"
	"VitalSentinel/internal/model"
	"VitalSentinel/internal/scheduler"
)

const (
	healthTimeout  = 5 * time.Second
	processTimeout = 5 * time.Second
)

// Health probes a remote service every 5 ticks. A transport error counts
// as unhealthy; either way the result is a normal-severity wake.
func Health(probe host.HealthProbe, url string) scheduler.Task {
	return scheduler.Task{
		Name:     "health",
		Interval: 5,
		Check: func(ctx context.Context) model.CheckResult {
			tctx, cancel := context.WithTimeout(ctx, healthTimeout)
			defer cancel()

			ok, err := probe.Check(tctx, url)
			if err != nil {
				log.Printf("[WARN] health probe: %v", err)
				return model.CheckResult{
					ShouldWake: true,
					Message:    fmt.Sprintf("health probe for %s failed: %v", url, err),
				}
			}
			if !ok {
				return model.CheckResult{
					ShouldWake: true,
					Message:    fmt.Sprintf("service at %s reports unhealthy", url),
				}
			}
			return model.CheckResult{}
		},
	}
}

// ProcessWatch checks that a named external process is still running.
// A missing process is urgent; a failed query degrades to "unknown" and
// is only logged.
func ProcessWatch(query host.ProcessQuery, name string) scheduler.Task {
	return scheduler.Task{
		Name:     "process",
		Interval: 5,
		Check: func(ctx context.Context) model.CheckResult {
			tctx, cancel := context.WithTimeout(ctx, processTimeout)
			defer cancel()

			running, err := query.IsRunning(tctx, name)
			if err != nil {
				log.Printf("[WARN] process query %q: status unknown: %v", name, err)
				return model.CheckResult{}
			}
			if !running {
				return model.CheckResult{
					ShouldWake: true,
					Urgent:     true,
					Message:    fmt.Sprintf("watched process %q is not running", name),
				}
			}
			return model.CheckResult{}
		},
	}
}
