package extractor

import (
	"context"
)

// Extract converts the video's audio track to 16kHz mono WAV, the input
// format the recognition engine expects. The tool's own console output is
// discarded; a non-zero exit surfaces as a single ExtractionError.
func (e *implExtractor) Extract(ctx context.Context, videoPath, audioPath string) error {
	e.logger.Info(ctx, "Extracting audio: %s", videoPath)

	args := []string{
		"-y",
		"-i", videoPath,
		"-vn",
		"-ac", "1", // mono
		"-ar", "16000", // 16kHz sample rate
		"-c:a", "pcm_s16le",
		audioPath,
	}

	if _, err := e.executor.Execute(ctx, e.cfg.BinaryPath, args...); err != nil {
		return &ExtractionError{VideoPath: videoPath, Err: err}
	}

	e.logger.Info(ctx, "Audio extracted: %s", audioPath)
	return nil
}
