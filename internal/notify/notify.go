// Package notify delivers user-facing messages. Screens receive a Sink
// explicitly instead of overwriting a process-wide dispatcher, so there
// is never a single mutable global to race on.
package notify

import (
	"fmt"
	"io"
	"sync"
)

// Level classifies a message for display.
type Level int

const (
	LevelInfo Level = iota
	LevelWarn
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelInfo:
		return "info"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	}
	return "unknown"
}

// Sink receives user-facing messages.
type Sink interface {
	Notify(level Level, message string)
}

// WriterSink prints messages to a writer, one per line. Safe for
// concurrent use.
type WriterSink struct {
	mu sync.Mutex
	w  io.Writer
}

func NewWriterSink(w io.Writer) *WriterSink {
	return &WriterSink{w: w}
}

func (s *WriterSink) Notify(level Level, message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch level {
	case LevelInfo:
		fmt.Fprintln(s.w, message)
	default:
		fmt.Fprintf(s.w, "[%s] %s\n", level, message)
	}
}

// Fanout dispatches every message to each registered sink, in order.
type Fanout []Sink

func (f Fanout) Notify(level Level, message string) {
	for _, sink := range f {
		if sink != nil {
			sink.Notify(level, message)
		}
	}
}
