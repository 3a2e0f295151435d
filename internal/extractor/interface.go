package extractor

import "context"

// Extractor derives a mono 16kHz WAV file from a local video file.
type Extractor interface {
	Extract(ctx context.Context, videoPath, audioPath string) error
}
