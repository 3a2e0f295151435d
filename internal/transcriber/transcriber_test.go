package transcriber

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/unyfilm/subgen/internal/config"
	"github.com/unyfilm/subgen/internal/logger"
)

const engineJSON = `{
  "result": {"language": "es"},
  "transcription": [
    {"offsets": {"from": 0, "to": 1500}, "text": " hola"},
    {"offsets": {"from": 1500, "to": 2000}, "text": " mundo"}
  ]
}`

func TestParseEngineOutput(t *testing.T) {
	segments, info, err := parseEngineOutput([]byte(engineJSON))
	if err != nil {
		t.Fatalf("parseEngineOutput() error = %v", err)
	}

	if len(segments) != 2 {
		t.Fatalf("segment count = %d, want 2", len(segments))
	}
	if segments[0].Start != 0 || segments[0].End != 1.5 || segments[0].Text != "hola" {
		t.Errorf("segment 0 = %+v", segments[0])
	}
	if segments[1].Start != 1.5 || segments[1].End != 2.0 || segments[1].Text != "mundo" {
		t.Errorf("segment 1 = %+v", segments[1])
	}
	if info.Language != "es" {
		t.Errorf("language = %v, want es", info.Language)
	}
	if info.Duration != 2.0 {
		t.Errorf("duration = %v, want 2.0", info.Duration)
	}
}

func TestParseEngineOutputDropsEmptySegments(t *testing.T) {
	data := `{
  "transcription": [
    {"offsets": {"from": 0, "to": 500}, "text": "  "},
    {"offsets": {"from": 500, "to": 1000}, "text": " ok"}
  ]
}`
	segments, _, err := parseEngineOutput([]byte(data))
	if err != nil {
		t.Fatal(err)
	}
	if len(segments) != 1 || segments[0].Text != "ok" {
		t.Errorf("segments = %+v, want single 'ok' segment", segments)
	}
}

func TestParseEngineOutputSortsOutOfOrderSegments(t *testing.T) {
	data := `{
  "transcription": [
    {"offsets": {"from": 2000, "to": 3000}, "text": "second"},
    {"offsets": {"from": 0, "to": 1000}, "text": "first"}
  ]
}`
	segments, _, err := parseEngineOutput([]byte(data))
	if err != nil {
		t.Fatal(err)
	}
	if len(segments) != 2 || segments[0].Text != "first" || segments[1].Text != "second" {
		t.Errorf("segments not re-sorted by start time: %+v", segments)
	}
}

func TestParseEngineOutputInvalidJSON(t *testing.T) {
	if _, _, err := parseEngineOutput([]byte("not json")); err == nil {
		t.Error("parseEngineOutput() should fail for invalid JSON")
	}
}

// jsonWritingExecutor mimics whisper.cpp by writing the JSON sidecar the
// -of/-oj flags request.
type jsonWritingExecutor struct {
	payload string
	args    []string
	err     error
}

func (f *jsonWritingExecutor) Execute(ctx context.Context, name string, args ...string) (string, error) {
	f.args = args
	if f.err != nil {
		return "", f.err
	}
	for i, a := range args {
		if a == "-of" && i+1 < len(args) {
			if err := os.WriteFile(args[i+1]+".json", []byte(f.payload), 0644); err != nil {
				return "", err
			}
		}
	}
	return "", nil
}

func testConfig() config.WhisperConfig {
	return config.WhisperConfig{
		BinaryPath: "whisper-cli",
		ModelPath:  "models/ggml-large-v3.bin",
		Language:   "es",
		Device:     "auto",
		Threads:    4,
		BeamSize:   5,
	}
}

func TestTranscribe(t *testing.T) {
	exec := &jsonWritingExecutor{payload: engineJSON}
	tr := New(testConfig(), exec, logger.New("error"))

	audioPath := filepath.Join(t.TempDir(), "audio.wav")
	segments, info, err := tr.Transcribe(context.Background(), audioPath)
	if err != nil {
		t.Fatalf("Transcribe() error = %v", err)
	}

	if len(segments) != 2 {
		t.Errorf("segment count = %d, want 2", len(segments))
	}
	if info.Language != "es" {
		t.Errorf("language = %v, want es", info.Language)
	}

	joined := strings.Join(exec.args, " ")
	for _, fragment := range []string{"-m models/ggml-large-v3.bin", "-l es", "-bs 5", "-oj"} {
		if !strings.Contains(joined, fragment) {
			t.Errorf("engine args missing %q: %v", fragment, joined)
		}
	}
}

func TestTranscribeEngineFailure(t *testing.T) {
	exec := &jsonWritingExecutor{err: errors.New("exit status 3")}
	tr := New(testConfig(), exec, logger.New("error"))

	_, _, err := tr.Transcribe(context.Background(), filepath.Join(t.TempDir(), "audio.wav"))
	if err == nil {
		t.Fatal("Transcribe() should fail when the engine exits non-zero")
	}

	var trErr *TranscriptionError
	if !errors.As(err, &trErr) {
		t.Errorf("error type = %T, want *TranscriptionError", err)
	}
}

func TestTranscribeCPUDevice(t *testing.T) {
	cfg := testConfig()
	cfg.Device = "cpu"
	exec := &jsonWritingExecutor{payload: engineJSON}
	tr := New(cfg, exec, logger.New("error"))

	if _, _, err := tr.Transcribe(context.Background(), filepath.Join(t.TempDir(), "audio.wav")); err != nil {
		t.Fatal(err)
	}

	found := false
	for _, a := range exec.args {
		if a == "-ng" {
			found = true
		}
	}
	if !found {
		t.Errorf("cpu device should disable the GPU (-ng): %v", exec.args)
	}
}
