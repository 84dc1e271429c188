package host

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// FileInbox appends newline-framed messages to a file the hosting process
// polls. Embedded newlines are escaped so one message stays one line.
type FileInbox struct {
	mu   sync.Mutex
	path string
}

// NewFileInbox creates an inbox writing to path.
func NewFileInbox(path string) *FileInbox {
	return &FileInbox{path: path}
}

// Enqueue appends one message line.
func (i *FileInbox) Enqueue(text string) error {
	i.mu.Lock()
	defer i.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(i.path), 0755); err != nil {
		return fmt.Errorf("create inbox dir: %w", err)
	}
	f, err := os.OpenFile(i.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("open inbox: %w", err)
	}
	defer f.Close()

	line := strings.ReplaceAll(text, "\n", "\\n")
	if _, err := f.WriteString(line + "\n"); err != nil {
		return fmt.Errorf("append inbox message: %w", err)
	}
	return nil
}
