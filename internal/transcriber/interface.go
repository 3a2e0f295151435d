package transcriber

import (
	"context"

	"github.com/unyfilm/subgen/internal/subtitle"
)

// Info carries transcription metadata the engine reports alongside the
// segments.
type Info struct {
	Language string
	Duration float64
}

// Transcriber converts a local mono audio file into ordered, timed
// speech segments.
type Transcriber interface {
	Transcribe(ctx context.Context, audioPath string) ([]subtitle.Segment, Info, error)
}
