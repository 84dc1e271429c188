package host

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestFileInboxAppendsOneLinePerMessage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inbox", "agent_inbox.log")
	in := NewFileInbox(path)

	if err := in.Enqueue("first message"); err != nil {
		t.Fatalf("enqueue: %v", err)
	}
	if err := in.Enqueue("multi\nline\nmessage"); err != nil {
		t.Fatalf("enqueue: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("inbox holds %d lines, want 2:\n%s", len(lines), data)
	}
	if lines[0] != "first message" {
		t.Errorf("line 1 = %q", lines[0])
	}
	if lines[1] != "multi\\nline\\nmessage" {
		t.Errorf("embedded newlines not escaped: %q", lines[1])
	}
}
