package diag

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func TestLoggerWritesJSONLines(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "diag.jsonl")

	l := NewLogger(path, 1, 1)
	l.Log("hop_fired", map[string]interface{}{"cursor": 3})
	l.Log("mode_changed", map[string]interface{}{"mode": "HIGH"})
	if err := l.Close(); err != nil {
		t.Fatalf("Close() error: %v", err)
	}

	file, err := os.Open(path)
	if err != nil {
		t.Fatalf("expected log file at %s: %v", path, err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	var entries []LogEntry
	for scanner.Scan() {
		var entry LogEntry
		if err := json.Unmarshal(scanner.Bytes(), &entry); err != nil {
			t.Fatalf("failed to unmarshal log line %q: %v", scanner.Text(), err)
		}
		entries = append(entries, entry)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 log lines, got %d", len(entries))
	}
	if entries[0].Event != "hop_fired" {
		t.Errorf("expected first event 'hop_fired', got %q", entries[0].Event)
	}
	if entries[1].Event != "mode_changed" {
		t.Errorf("expected second event 'mode_changed', got %q", entries[1].Event)
	}
}

func TestLoggerRotate(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "diag.jsonl")

	l := NewLogger(path, 1, 3)
	l.Log("hop_fired", nil)
	if err := l.Rotate(); err != nil {
		t.Fatalf("Rotate() error: %v", err)
	}
	l.Log("hop_fired", nil)
	if err := l.Close(); err != nil {
		t.Fatalf("Close() error: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("failed to read log dir: %v", err)
	}
	if len(entries) < 2 {
		t.Fatalf("expected at least 2 files after rotation (current + backup), got %d", len(entries))
	}
}
