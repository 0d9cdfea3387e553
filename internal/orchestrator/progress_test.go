package orchestrator

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProgressReporter_EmitAndSubscribe(t *testing.T) {
	pr := NewProgressReporter()
	defer pr.Close()

	ch := pr.Subscribe()
	want := ProgressEvent{
		Topic:   "go",
		Stage:   StageAnalysis,
		Status:  ProgressWorking,
		Message: "generating",
	}

	pr.Emit(want)

	select {
	case got := <-ch:
		assert.Equal(t, want, got)
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for progress event")
	}
}

func TestProgressReporter_EmitWhenFull_DoesNotBlock(t *testing.T) {
	pr := NewProgressReporter()
	defer pr.Close()

	// The internal channel buffer is 64. Emitting 100 events must never block.
	done := make(chan struct{})
	go func() {
		for i := 0; i < 100; i++ {
			pr.Emit(ProgressEvent{Stage: StageResearch, Status: ProgressWorking})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Emit blocked when the channel was full")
	}
}

func TestProgressReporter_Close_ChannelClosed(t *testing.T) {
	pr := NewProgressReporter()
	ch := pr.Subscribe()

	pr.Emit(ProgressEvent{Stage: StageSummary, Status: ProgressComplete})
	pr.Close()

	var received []ProgressEvent
	for ev := range ch {
		received = append(received, ev)
	}
	require.Len(t, received, 1)
	assert.Equal(t, ProgressComplete, received[0].Status)
}

func TestProgressReporter_EmitAfterClose(t *testing.T) {
	pr := NewProgressReporter()
	pr.Close()
	pr.Close()

	assert.NotPanics(t, func() {
		pr.Emit(ProgressEvent{Stage: StageResearch, Status: ProgressWorking})
	})
}

func TestFormatProgress_AllStatuses(t *testing.T) {
	tests := []struct {
		name   string
		event  ProgressEvent
		expect string
	}{
		{
			name:   "pending",
			event:  ProgressEvent{Stage: StageResearch, Status: ProgressPending},
			expect: "  ○ research (pending)",
		},
		{
			name:   "working",
			event:  ProgressEvent{Stage: StageAnalysis, Status: ProgressWorking},
			expect: "  ● analysis agent working...",
		},
		{
			name:   "complete",
			event:  ProgressEvent{Stage: StageSummary, Status: ProgressComplete},
			expect: "  ✓ summary complete",
		},
		{
			name:   "failed",
			event:  ProgressEvent{Stage: StageResearch, Status: ProgressFailed, Message: "timeout"},
			expect: "  ✗ research failed: timeout",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expect, FormatProgress(tt.event))
		})
	}
}

func TestFormatRunHeader(t *testing.T) {
	assert.Equal(t, "[quantum computing] research pipeline", FormatRunHeader("quantum computing"))
}
