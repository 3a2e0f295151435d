package batch

import (
	"context"

	"github.com/unyfilm/subgen/internal/processor"
)

// Runner drives the subtitle pipeline over the catalog.
type Runner interface {
	// RunAll processes every catalog video sequentially. A per-item
	// failure never stops the run; only a failed catalog enumeration does.
	RunAll(ctx context.Context) (Summary, error)

	// RunOne processes a single video by identifier.
	RunOne(ctx context.Context, id string) processor.Result
}

// Summary aggregates a batch run. Skipped items count toward Succeeded.
type Summary struct {
	Succeeded int
	Failed    int
	Results   []processor.Result
}
