package orchestrator

import (
	"fmt"
	"sync"
)

// ProgressReporter emits progress events through a buffered channel.
type ProgressReporter struct {
	mu     sync.RWMutex
	ch     chan ProgressEvent
	closed bool
}

// NewProgressReporter creates a ProgressReporter with a buffered channel of size 64.
func NewProgressReporter() *ProgressReporter {
	return &ProgressReporter{
		ch: make(chan ProgressEvent, 64),
	}
}

// Emit sends a progress event in a non-blocking fashion.
// If the channel is full or closed, the event is silently dropped.
func (pr *ProgressReporter) Emit(event ProgressEvent) {
	pr.mu.RLock()
	defer pr.mu.RUnlock()
	if pr.closed {
		return
	}
	select {
	case pr.ch <- event:
	default:
		// Drop the event if the channel is full.
	}
}

// Subscribe returns a read-only channel for consuming progress events.
func (pr *ProgressReporter) Subscribe() <-chan ProgressEvent {
	return pr.ch
}

// Close closes the progress event channel. It is safe to call more than once.
func (pr *ProgressReporter) Close() {
	pr.mu.Lock()
	defer pr.mu.Unlock()
	if pr.closed {
		return
	}
	pr.closed = true
	close(pr.ch)
}

// FormatProgress formats a ProgressEvent as a human-readable status line.
func FormatProgress(event ProgressEvent) string {
	name := event.Stage.String()
	switch event.Status {
	case ProgressPending:
		return fmt.Sprintf("  ○ %s (pending)", name)
	case ProgressWorking:
		return fmt.Sprintf("  ● %s agent working...", name)
	case ProgressComplete:
		return fmt.Sprintf("  ✓ %s complete", name)
	case ProgressFailed:
		return fmt.Sprintf("  ✗ %s failed: %s", name, event.Message)
	default:
		return fmt.Sprintf("  ? %s (unknown status)", name)
	}
}

// FormatRunHeader formats a run header for display.
// Returns: "[{topic}] research pipeline"
func FormatRunHeader(topic string) string {
	return fmt.Sprintf("[%s] research pipeline", topic)
}
