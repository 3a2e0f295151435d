package batch

import (
	"context"
	"fmt"

	"github.com/unyfilm/subgen/internal/processor"
)

// RunAll enumerates the catalog and processes each video in turn, one at
// a time. Items are independent: a failure is counted and the run moves
// on to the next identifier.
func (r *implRunner) RunAll(ctx context.Context) (Summary, error) {
	ids, err := r.store.ListAll(ctx)
	if err != nil {
		return Summary{}, fmt.Errorf("enumerate catalog: %w", err)
	}

	r.logger.Info(ctx, "Catalog contains %d videos", len(ids))

	var summary Summary
	for i, id := range ids {
		if err := ctx.Err(); err != nil {
			return summary, err
		}

		r.logger.Info(ctx, "[%d/%d] Processing %s", i+1, len(ids), id)
		res := r.processor.Process(ctx, id)
		summary.Results = append(summary.Results, res)
		if res.Outcome == processor.OutcomeFailed {
			summary.Failed++
		} else {
			summary.Succeeded++
		}
	}

	r.logger.Info(ctx, "Batch complete: %d succeeded, %d failed", summary.Succeeded, summary.Failed)
	return summary, nil
}

// RunOne processes a single video by identifier.
func (r *implRunner) RunOne(ctx context.Context, id string) processor.Result {
	return r.processor.Process(ctx, id)
}
