package status

import (
	"fmt"
	"io"
	"os"
)

// Sink is a one-way channel for progress text. Emission is fire-and-forget;
// implementations must never block the job that emits.
type Sink interface {
	Emit(message string)
}

// ConsoleSink writes progress messages to a writer, one per line.
type ConsoleSink struct {
	w io.Writer
}

// NewConsoleSink creates a sink bound to w, defaulting to stderr.
func NewConsoleSink(w io.Writer) *ConsoleSink {
	if w == nil {
		w = os.Stderr
	}
	return &ConsoleSink{w: w}
}

func (s *ConsoleSink) Emit(message string) {
	fmt.Fprintln(s.w, message)
}

// NopSink discards all messages.
type NopSink struct{}

func (NopSink) Emit(string) {}
