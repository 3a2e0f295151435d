package processor

import (
	"context"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/unyfilm/subgen/internal/config"
	"github.com/unyfilm/subgen/internal/logger"
	"github.com/unyfilm/subgen/internal/subtitle"
	"github.com/unyfilm/subgen/internal/transcriber"
)

type fakeStore struct {
	exists      bool
	existsErr   error
	downloadErr error
	uploadErr   error

	existsCalls   int
	downloadCalls int
	uploadCalls   int
	uploadID      string
	uploadLang    string
	uploaded      string
}

func (f *fakeStore) SubtitleExists(ctx context.Context, id, lang string) (bool, error) {
	f.existsCalls++
	return f.exists, f.existsErr
}

func (f *fakeStore) VideoURL(id string) string {
	return "https://store.test/video/upload/" + id + ".mp4"
}

func (f *fakeStore) Download(ctx context.Context, url, destPath string) error {
	f.downloadCalls++
	if f.downloadErr != nil {
		return f.downloadErr
	}
	return os.WriteFile(destPath, []byte("video bytes"), 0644)
}

func (f *fakeStore) UploadSubtitle(ctx context.Context, localPath, id, lang string) error {
	f.uploadCalls++
	if f.uploadErr != nil {
		return f.uploadErr
	}
	data, err := os.ReadFile(localPath)
	if err != nil {
		return err
	}
	f.uploaded = string(data)
	f.uploadID = id
	f.uploadLang = lang
	return nil
}

func (f *fakeStore) ListAll(ctx context.Context) ([]string, error) {
	return nil, nil
}

type fakeExtractor struct {
	calls int
	err   error
}

func (f *fakeExtractor) Extract(ctx context.Context, videoPath, audioPath string) error {
	f.calls++
	if f.err != nil {
		return f.err
	}
	return os.WriteFile(audioPath, []byte("audio bytes"), 0644)
}

type fakeTranscriber struct {
	calls    int
	segments []subtitle.Segment
	err      error
}

func (f *fakeTranscriber) Transcribe(ctx context.Context, audioPath string) ([]subtitle.Segment, transcriber.Info, error) {
	f.calls++
	if f.err != nil {
		return nil, transcriber.Info{}, f.err
	}
	return f.segments, transcriber.Info{Language: "es", Duration: 2.0}, nil
}

func testConfig(tempRoot string) *config.Config {
	return &config.Config{
		Whisper: config.WhisperConfig{Language: "es"},
		Paths:   config.PathsConfig{Temp: tempRoot},
	}
}

func assertWorkspaceClean(t *testing.T, tempRoot string) {
	t.Helper()
	entries, err := os.ReadDir(tempRoot)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("workspace not cleaned up: %d entries remain in %s", len(entries), tempRoot)
	}
}

func TestProcessSkipsWhenSubtitleExists(t *testing.T) {
	store := &fakeStore{exists: true}
	ext := &fakeExtractor{}
	tr := &fakeTranscriber{}
	tempRoot := t.TempDir()

	proc := New(testConfig(tempRoot), store, ext, tr, logger.New("error"))
	res := proc.Process(context.Background(), "clip1")

	if res.Outcome != OutcomeSkipped {
		t.Errorf("outcome = %v, want skipped", res.Outcome)
	}
	if store.downloadCalls != 0 || ext.calls != 0 || tr.calls != 0 || store.uploadCalls != 0 {
		t.Errorf("skipped item still did work: download=%d extract=%d transcribe=%d upload=%d",
			store.downloadCalls, ext.calls, tr.calls, store.uploadCalls)
	}
	assertWorkspaceClean(t, tempRoot)
}

func TestProcessLookupErrorFails(t *testing.T) {
	store := &fakeStore{existsErr: errors.New("store unreachable")}
	ext := &fakeExtractor{}
	tr := &fakeTranscriber{}
	tempRoot := t.TempDir()

	proc := New(testConfig(tempRoot), store, ext, tr, logger.New("error"))
	res := proc.Process(context.Background(), "clip1")

	if res.Outcome != OutcomeFailed {
		t.Errorf("outcome = %v, want failed", res.Outcome)
	}
	if res.Err == nil {
		t.Error("failed result should carry the lookup error")
	}
	if store.downloadCalls != 0 {
		t.Error("lookup failure must not trigger a download")
	}
}

func TestProcessSuccess(t *testing.T) {
	store := &fakeStore{}
	ext := &fakeExtractor{}
	tr := &fakeTranscriber{segments: []subtitle.Segment{
		{Start: 0.0, End: 1.5, Text: "hello"},
		{Start: 1.5, End: 2.0, Text: "world"},
	}}
	tempRoot := t.TempDir()

	proc := New(testConfig(tempRoot), store, ext, tr, logger.New("error"))
	res := proc.Process(context.Background(), "clip1")

	if res.Outcome != OutcomeSucceeded {
		t.Fatalf("outcome = %v (err=%v), want succeeded", res.Outcome, res.Err)
	}
	if store.uploadID != "clip1" || store.uploadLang != "es" {
		t.Errorf("upload tagged %s/%s, want clip1/es", store.uploadID, store.uploadLang)
	}

	want := "WEBVTT\n\n" +
		"1\n00:00:00.000 --> 00:00:01.500\nhello\n\n" +
		"2\n00:00:01.500 --> 00:00:02.000\nworld\n\n"
	if store.uploaded != want {
		t.Errorf("uploaded payload = %q, want %q", store.uploaded, want)
	}

	assertWorkspaceClean(t, tempRoot)
}

func TestProcessDownloadFailure(t *testing.T) {
	store := &fakeStore{downloadErr: errors.New("404")}
	ext := &fakeExtractor{}
	tr := &fakeTranscriber{}
	tempRoot := t.TempDir()

	proc := New(testConfig(tempRoot), store, ext, tr, logger.New("error"))
	res := proc.Process(context.Background(), "clip1")

	if res.Outcome != OutcomeFailed {
		t.Errorf("outcome = %v, want failed", res.Outcome)
	}
	if ext.calls != 0 || tr.calls != 0 || store.uploadCalls != 0 {
		t.Error("later steps ran after the download failed")
	}
	assertWorkspaceClean(t, tempRoot)
}

func TestProcessTranscriptionFailure(t *testing.T) {
	store := &fakeStore{}
	ext := &fakeExtractor{}
	tr := &fakeTranscriber{err: errors.New("engine crashed")}
	tempRoot := t.TempDir()

	proc := New(testConfig(tempRoot), store, ext, tr, logger.New("error"))
	res := proc.Process(context.Background(), "clip1")

	if res.Outcome != OutcomeFailed {
		t.Errorf("outcome = %v, want failed", res.Outcome)
	}
	if res.Err == nil || !strings.Contains(res.Err.Error(), "transcribe") {
		t.Errorf("err = %v, want a transcribe step error", res.Err)
	}
	if store.uploadCalls != 0 {
		t.Error("upload ran after transcription failed")
	}
	assertWorkspaceClean(t, tempRoot)
}

func TestProcessEmptyTranscript(t *testing.T) {
	// No speech recognized: a valid, content-free subtitle file is still
	// produced and uploaded.
	store := &fakeStore{}
	ext := &fakeExtractor{}
	tr := &fakeTranscriber{segments: nil}
	tempRoot := t.TempDir()

	proc := New(testConfig(tempRoot), store, ext, tr, logger.New("error"))
	res := proc.Process(context.Background(), "silent")

	if res.Outcome != OutcomeSucceeded {
		t.Fatalf("outcome = %v (err=%v), want succeeded", res.Outcome, res.Err)
	}
	if store.uploaded != "WEBVTT\n\n" {
		t.Errorf("uploaded payload = %q, want header-only document", store.uploaded)
	}
	assertWorkspaceClean(t, tempRoot)
}
