// Package decision persists self-reported decisions from the external
// reasoning process. Files are partitioned per calendar day, one JSON
// document per line, append-only.
package decision

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"VitalSentinel/internal/model"

	"github.com/google/uuid"
)

const filePrefix = "decisions-"

// Log appends decisions to day-partitioned files under a directory.
type Log struct {
	mu  sync.Mutex
	dir string
	now func() time.Time
}

// NewLog creates a decision log rooted at dir. The directory is created
// lazily on first write.
func NewLog(dir string) *Log {
	return &Log{dir: dir, now: time.Now}
}

// SetClock overrides the wall clock, for tests.
func (l *Log) SetClock(now func() time.Time) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.now = now
}

// Log assigns the decision an id and server timestamp and appends it to
// today's file. Write failures are logged and swallowed: the caller gets
// the generated id either way, because the reasoning process must not
// stall on our bookkeeping.
func (l *Log) Log(d model.Decision) string {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	d.ID = fmt.Sprintf("%d-%s", now.UnixNano(), uuid.NewString()[:8])
	d.Timestamp = now

	if err := l.appendLocked(d, now); err != nil {
		log.Printf("[ERROR] decision log write: %v", err)
	}
	return d.ID
}

func (l *Log) appendLocked(d model.Decision, now time.Time) error {
	if err := os.MkdirAll(l.dir, 0755); err != nil {
		return fmt.Errorf("create decision dir: %w", err)
	}
	line, err := json.Marshal(d)
	if err != nil {
		return fmt.Errorf("marshal decision: %w", err)
	}
	path := filepath.Join(l.dir, filePrefix+now.Format("2006-01-02")+".jsonl")
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("open decision file: %w", err)
	}
	defer f.Close()
	if _, err := f.Write(append(line, '\n')); err != nil {
		return fmt.Errorf("append decision: %w", err)
	}
	return nil
}

// Recent returns up to n decisions, newest first, scanning day files from
// the most recent backwards. Lines that fail to parse are skipped
// individually, never failing the whole scan.
func (l *Log) Recent(n int) []model.Decision {
	l.mu.Lock()
	defer l.mu.Unlock()

	if n <= 0 {
		return nil
	}
	files, err := l.dayFilesLocked()
	if err != nil {
		log.Printf("[WARN] decision log scan: %v", err)
		return nil
	}

	out := make([]model.Decision, 0, n)
	for _, path := range files {
		data, err := os.ReadFile(path)
		if err != nil {
			log.Printf("[WARN] decision log read %s: %v", path, err)
			continue
		}
		lines := strings.Split(strings.TrimSpace(string(data)), "\n")
		for i := len(lines) - 1; i >= 0 && len(out) < n; i-- {
			if strings.TrimSpace(lines[i]) == "" {
				continue
			}
			var d model.Decision
			if err := json.Unmarshal([]byte(lines[i]), &d); err != nil {
				log.Printf("[WARN] skipping malformed decision line in %s: %v", filepath.Base(path), err)
				continue
			}
			out = append(out, d)
		}
		if len(out) >= n {
			break
		}
	}
	return out
}

// dayFilesLocked lists decision files newest day first.
func (l *Log) dayFilesLocked() ([]string, error) {
	entries, err := os.ReadDir(l.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	var files []string
	for _, e := range entries {
		name := e.Name()
		if !e.IsDir() && strings.HasPrefix(name, filePrefix) && strings.HasSuffix(name, ".jsonl") {
			files = append(files, filepath.Join(l.dir, name))
		}
	}
	sort.Sort(sort.Reverse(sort.StringSlice(files)))
	return files, nil
}
