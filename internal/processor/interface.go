package processor

import "context"

// Processor runs the subtitle pipeline for a single catalog video.
type Processor interface {
	// Process never returns an error to the caller: per-item failures are
	// contained in the Result so one bad video cannot stop a batch.
	Process(ctx context.Context, id string) Result
}
