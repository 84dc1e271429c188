package host

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// ExecWakeTrigger runs a configured command to force the reasoning
// process awake, passing the wake message on stdin. The context deadline
// bounds the whole invocation.
type ExecWakeTrigger struct {
	argv []string
}

// NewExecWakeTrigger creates a trigger for the given command line.
func NewExecWakeTrigger(argv []string) (*ExecWakeTrigger, error) {
	if len(argv) == 0 {
		return nil, fmt.Errorf("wake command is empty")
	}
	return &ExecWakeTrigger{argv: argv}, nil
}

// TriggerWake executes the wake command.
func (t *ExecWakeTrigger) TriggerWake(ctx context.Context, text string) error {
	cmd := exec.CommandContext(ctx, t.argv[0], t.argv[1:]...)
	cmd.Stdin = strings.NewReader(text)
	out, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("wake command %q: %w (output: %s)", t.argv[0], err, strings.TrimSpace(string(out)))
	}
	return nil
}

// PgrepProcessQuery answers process-status queries with pgrep.
type PgrepProcessQuery struct{}

// IsRunning reports whether any process matches name. pgrep exits 1 for
// no match, which is a clean "not running", not an error.
func (PgrepProcessQuery) IsRunning(ctx context.Context, name string) (bool, error) {
	cmd := exec.CommandContext(ctx, "pgrep", "-x", name)
	err := cmd.Run()
	if err == nil {
		return true, nil
	}
	if exitErr, ok := err.(*exec.ExitError); ok && exitErr.ExitCode() == 1 {
		return false, nil
	}
	return false, fmt.Errorf("pgrep %q: %w", name, err)
}
