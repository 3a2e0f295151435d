package processor

// Outcome classifies the per-item result.
type Outcome int

const (
	// OutcomeSkipped means a subtitle artifact already existed.
	OutcomeSkipped Outcome = iota
	// OutcomeSucceeded means subtitles were generated and uploaded.
	OutcomeSucceeded
	// OutcomeFailed means a pipeline step failed; Err carries the cause.
	OutcomeFailed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSkipped:
		return "skipped"
	case OutcomeSucceeded:
		return "succeeded"
	case OutcomeFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Result is the outcome of processing one catalog video.
type Result struct {
	ID      string
	Outcome Outcome
	Err     error
}
