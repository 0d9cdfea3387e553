package orchestrator

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Runner runs the pipeline for one topic.
type Runner interface {
	Run(ctx context.Context, topic string) (*Run, error)
}

// BatchResult holds the outcome of one topic in a batch.
type BatchResult struct {
	Topic string
	Run   *Run
	Err   error
}

// RunBatch runs independent pipelines for topics with at most concurrency
// in flight (1 if concurrency < 1). Each run is still sequential inside.
// A failing topic records its error and does not stop the others; results
// are returned in topic order.
func RunBatch(ctx context.Context, r Runner, topics []string, concurrency int) []BatchResult {
	if concurrency < 1 {
		concurrency = 1
	}
	results := make([]BatchResult, len(topics))

	var g errgroup.Group
	g.SetLimit(concurrency)
	for i, topic := range topics {
		g.Go(func() error {
			run, err := r.Run(ctx, topic)
			results[i] = BatchResult{Topic: topic, Run: run, Err: err}
			return nil
		})
	}
	_ = g.Wait()

	return results
}

// Failed returns the results that ended in an error.
func Failed(results []BatchResult) []BatchResult {
	var out []BatchResult
	for _, r := range results {
		if r.Err != nil {
			out = append(out, r)
		}
	}
	return out
}
