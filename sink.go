package daylog

import (
	"errors"
	"io"
	"os"
	"sync"
)

// ErrClosed is returned by a sink's Write after the sink has been closed.
var ErrClosed = errors.New("daylog: sink is closed")

// Sink is a destination that accepts rendered log lines.
//
// Write receives both the record and its rendered line and appends exactly
// one line per call. Sinks serialize their own writes, so a single sink is
// safe for concurrent use.
type Sink interface {
	Write(rec *Record, line string) error
	Close() error
}

// ConsoleSink writes rendered lines to a stream, one write per record,
// each followed by a line terminator. Stream write errors are returned to
// the caller, never swallowed.
type ConsoleSink struct {
	mu sync.Mutex
	w  io.Writer
}

// NewConsoleSink creates a [ConsoleSink] writing to w.
// If a nil writer is provided, [os.Stderr] is used instead.
func NewConsoleSink(w io.Writer) *ConsoleSink {
	if w == nil {
		w = os.Stderr
	}

	return &ConsoleSink{w: w}
}

// Write implements [Sink].
func (s *ConsoleSink) Write(_ *Record, line string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := io.WriteString(s.w, line+"\n")

	return err
}

// Close implements [Sink]. The sink does not own its stream, so Close is a
// no-op.
func (s *ConsoleSink) Close() error { return nil }
