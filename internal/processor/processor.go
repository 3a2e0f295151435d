package processor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/unyfilm/subgen/internal/subtitle"
)

// Process runs the pipeline for one video: existence check, then
// download -> extract -> transcribe -> serialize -> upload inside a
// scoped temporary workspace that is removed on every exit path.
func (p *implProcessor) Process(ctx context.Context, id string) Result {
	startTime := time.Now()
	lang := p.cfg.Whisper.Language

	exists, err := p.store.SubtitleExists(ctx, id, lang)
	if err != nil {
		// A broken lookup blocks the item rather than risking duplicate
		// work against a store we cannot read.
		p.logger.Error(ctx, "Existence check failed for %s: %v", id, err)
		return Result{ID: id, Outcome: OutcomeFailed, Err: err}
	}
	if exists {
		p.logger.Info(ctx, "Subtitles already exist, skipping: %s", id)
		return Result{ID: id, Outcome: OutcomeSkipped}
	}

	workDir, err := os.MkdirTemp(p.cfg.Paths.Temp, "subgen-*")
	if err != nil {
		p.logger.Error(ctx, "Workspace creation failed for %s: %v", id, err)
		return Result{ID: id, Outcome: OutcomeFailed, Err: fmt.Errorf("create workspace: %w", err)}
	}
	defer func() {
		if err := os.RemoveAll(workDir); err != nil {
			p.logger.Warn(ctx, "Failed to remove workspace %s: %v", workDir, err)
		}
	}()

	if err := p.generate(ctx, id, lang, workDir); err != nil {
		p.logger.Error(ctx, "Processing failed for %s: %v", id, err)
		return Result{ID: id, Outcome: OutcomeFailed, Err: err}
	}

	p.logger.Info(ctx, "Subtitles generated for %s in %s", id, time.Since(startTime).Round(time.Millisecond))
	return Result{ID: id, Outcome: OutcomeSucceeded}
}

// generate runs the pipeline steps strictly in sequence; each step's
// output path feeds the next step's input path.
func (p *implProcessor) generate(ctx context.Context, id, lang, workDir string) error {
	videoPath := filepath.Join(workDir, "video.mp4")
	audioPath := filepath.Join(workDir, "audio.wav")
	srtPath := filepath.Join(workDir, "subtitles.srt")
	vttPath := filepath.Join(workDir, "subtitles.vtt")

	videoURL := p.store.VideoURL(id)
	p.logger.Info(ctx, "Downloading video %s", id)
	if err := p.store.Download(ctx, videoURL, videoPath); err != nil {
		return fmt.Errorf("download video: %w", err)
	}

	if err := p.extractor.Extract(ctx, videoPath, audioPath); err != nil {
		return fmt.Errorf("extract audio: %w", err)
	}

	segments, info, err := p.transcriber.Transcribe(ctx, audioPath)
	if err != nil {
		return fmt.Errorf("transcribe: %w", err)
	}
	p.logger.Debug(ctx, "Engine reported language=%s duration=%.1fs", info.Language, info.Duration)

	srt := subtitle.RenderSRT(segments)
	if err := os.WriteFile(srtPath, []byte(srt), 0644); err != nil {
		return fmt.Errorf("write srt: %w", err)
	}

	if err := os.WriteFile(vttPath, []byte(subtitle.SRTToVTT(srt)), 0644); err != nil {
		return fmt.Errorf("write vtt: %w", err)
	}

	p.logger.Info(ctx, "Uploading subtitles for %s (%d cues)", id, len(segments))
	if err := p.store.UploadSubtitle(ctx, vttPath, id, lang); err != nil {
		return fmt.Errorf("upload subtitles: %w", err)
	}

	return nil
}
