package transcriber

import (
	"context"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/unyfilm/subgen/internal/subtitle"
)

// Transcribe runs whisper.cpp against the audio file and returns the timed
// segments in start-time order. The engine is loaded fresh on every call;
// nothing is cached between items.
func (t *implTranscriber) Transcribe(ctx context.Context, audioPath string) ([]subtitle.Segment, Info, error) {
	outputPrefix := strings.TrimSuffix(audioPath, filepath.Ext(audioPath))

	t.logger.Info(ctx, "Transcribing %s (model=%s, lang=%s, beam=%d)",
		audioPath, filepath.Base(t.cfg.ModelPath), t.cfg.Language, t.cfg.BeamSize)

	// -oj writes a JSON sidecar next to the output prefix; the segment
	// offsets in it are millisecond integers.
	args := []string{
		"-m", t.cfg.ModelPath,
		"-f", audioPath,
		"-l", t.cfg.Language,
		"-t", strconv.Itoa(t.cfg.Threads),
		"-bs", strconv.Itoa(t.cfg.BeamSize),
		"-oj",
		"-of", outputPrefix,
	}
	if t.cfg.VADModelPath != "" {
		args = append(args, "--vad", "--vad-model", t.cfg.VADModelPath)
	}
	if t.cfg.Device == "cpu" {
		args = append(args, "-ng")
	}

	if _, err := t.executor.Execute(ctx, t.cfg.BinaryPath, args...); err != nil {
		return nil, Info{}, &TranscriptionError{AudioPath: audioPath, Err: err}
	}

	jsonPath := outputPrefix + ".json"
	data, err := os.ReadFile(jsonPath)
	if err != nil {
		return nil, Info{}, &TranscriptionError{AudioPath: audioPath, Err: err}
	}

	segments, info, err := parseEngineOutput(data)
	if err != nil {
		return nil, Info{}, &TranscriptionError{AudioPath: audioPath, Err: err}
	}
	if info.Language == "" {
		info.Language = t.cfg.Language
	}

	t.logger.Info(ctx, "Transcription completed: %d segments, %.1fs of speech", len(segments), info.Duration)
	return segments, info, nil
}
