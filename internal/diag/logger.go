package diag

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/natefinch/lumberjack"
)

// LogEntry is one line of the rotating diagnostic log.
type LogEntry struct {
	Timestamp time.Time              `json:"ts"`
	Event     string                 `json:"event"`
	Fields    map[string]interface{} `json:"fields,omitempty"`
}

// Logger writes newline-delimited JSON diagnostic entries to a
// size-rotated file. Rotation itself is handled by lumberjack; this
// type only owns the JSON encoding and the write-side mutex.
type Logger struct {
	mu  sync.Mutex
	out *lumberjack.Logger
}

// NewLogger opens a rotating diagnostic log at path. maxSizeMB and
// maxBackups are forwarded to lumberjack; a maxSizeMB of 0 uses
// lumberjack's own default (100MB).
func NewLogger(path string, maxSizeMB, maxBackups int) *Logger {
	return &Logger{
		out: &lumberjack.Logger{
			Filename:   path,
			MaxSize:    maxSizeMB,
			MaxBackups: maxBackups,
			Compress:   true,
		},
	}
}

// Log writes one diagnostic entry. A marshal or write failure is
// reported to stderr rather than returned, since a diagnostic sink
// failing must never interrupt the coordination path that called it.
func (l *Logger) Log(event string, fields map[string]interface{}) {
	entry := LogEntry{Timestamp: time.Now().UTC(), Event: event, Fields: fields}

	l.mu.Lock()
	defer l.mu.Unlock()

	data, err := json.Marshal(entry)
	if err != nil {
		fmt.Fprintf(os.Stderr, "diag: failed to marshal entry: %v\n", err)
		return
	}
	if _, err := l.out.Write(append(data, '\n')); err != nil {
		fmt.Fprintf(os.Stderr, "diag: failed to write entry: %v\n", err)
	}
}

// Close closes the underlying rotated file.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.out.Close()
}

// Rotate forces an immediate rotation, as operators do ahead of
// shipping the current file off-device.
func (l *Logger) Rotate() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.out.Rotate()
}
