package extractor

import "fmt"

// ExtractionError reports a failed ffmpeg invocation.
type ExtractionError struct {
	VideoPath string
	Err       error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("extract audio from %s: %v", e.VideoPath, e.Err)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}
