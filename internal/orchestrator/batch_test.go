package orchestrator

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runnerFunc adapts a function to Runner.
type runnerFunc func(ctx context.Context, topic string) (*Run, error)

func (f runnerFunc) Run(ctx context.Context, topic string) (*Run, error) { return f(ctx, topic) }

func TestRunBatch_ResultsInTopicOrder(t *testing.T) {
	r := runnerFunc(func(_ context.Context, topic string) (*Run, error) {
		if topic == "bad" {
			return nil, errors.New("boom")
		}
		return &Run{Topic: topic, Summary: "summary of " + topic}, nil
	})

	results := RunBatch(context.Background(), r, []string{"a", "bad", "c"}, 2)
	require.Len(t, results, 3)

	assert.Equal(t, "a", results[0].Topic)
	assert.Equal(t, "summary of a", results[0].Run.Summary)
	assert.Error(t, results[1].Err)
	assert.Nil(t, results[1].Run)
	assert.Equal(t, "summary of c", results[2].Run.Summary, "a failed topic must not stop the others")

	failed := Failed(results)
	require.Len(t, failed, 1)
	assert.Equal(t, "bad", failed[0].Topic)
}

func TestRunBatch_RespectsConcurrencyLimit(t *testing.T) {
	var inFlight, peak atomic.Int32
	r := runnerFunc(func(_ context.Context, topic string) (*Run, error) {
		n := inFlight.Add(1)
		for {
			old := peak.Load()
			if n <= old || peak.CompareAndSwap(old, n) {
				break
			}
		}
		time.Sleep(10 * time.Millisecond)
		inFlight.Add(-1)
		return &Run{Topic: topic}, nil
	})

	topics := []string{"1", "2", "3", "4", "5", "6"}
	results := RunBatch(context.Background(), r, topics, 2)
	require.Len(t, results, len(topics))
	assert.LessOrEqual(t, peak.Load(), int32(2))
	assert.Empty(t, Failed(results))
}

func TestRunBatch_WithPipeline(t *testing.T) {
	p, agents, _ := newRecordingPipeline(DefaultConfig(), "X", "Y", "Z")
	defer p.Close()

	results := RunBatch(context.Background(), p, []string{"one", "two", " "}, 0)
	require.Len(t, results, 3)
	assert.Equal(t, "Z", results[0].Run.FinalReport())
	assert.Equal(t, "Z", results[1].Run.FinalReport())
	assert.ErrorIs(t, results[2].Err, ErrEmptyTopic)
	assert.Equal(t, 2, agents[0].calls())
}
