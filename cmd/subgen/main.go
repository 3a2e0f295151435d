package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/unyfilm/subgen/internal/batch"
	"github.com/unyfilm/subgen/internal/config"
	"github.com/unyfilm/subgen/internal/extractor"
	"github.com/unyfilm/subgen/internal/logger"
	"github.com/unyfilm/subgen/internal/mediastore"
	"github.com/unyfilm/subgen/internal/processor"
	"github.com/unyfilm/subgen/internal/transcriber"
	"github.com/unyfilm/subgen/pkg/executor"
)

const configFile = "config.yaml"

func main() {
	if len(os.Args) > 2 {
		fmt.Fprintf(os.Stderr, "usage: %s [video-id]\n", filepath.Base(os.Args[0]))
		os.Exit(1)
	}

	ctx := context.Background()

	// The only fatal error class: anything after this point is contained
	// per item and the process still exits 0.
	cfg, err := config.Load(configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Logging.Level)
	log.Info(ctx, "Subtitle generation pipeline")
	log.Info(ctx, "Store: %s | language: %s | model: %s | device: %s",
		cfg.Store.CloudName, cfg.Whisper.Language, filepath.Base(cfg.Whisper.ModelPath), cfg.Whisper.Device)

	if cfg.Paths.Temp != "" {
		if err := os.MkdirAll(cfg.Paths.Temp, 0755); err != nil {
			fmt.Fprintf(os.Stderr, "Configuration error: create temp directory: %v\n", err)
			os.Exit(1)
		}
	}

	exec := executor.New()
	store := mediastore.New(cfg.Store, log)
	ext := extractor.New(cfg.FFmpeg, exec, log)
	tr := transcriber.New(cfg.Whisper, exec, log)
	proc := processor.New(cfg, store, ext, tr, log)
	runner := batch.New(store, proc, log)

	// Ctrl+C stops the batch between items; the item in flight finishes
	// or fails on its own.
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var summary batch.Summary
	if len(os.Args) == 2 {
		res := runner.RunOne(ctx, os.Args[1])
		summary.Results = append(summary.Results, res)
		if res.Outcome == processor.OutcomeFailed {
			summary.Failed++
		} else {
			summary.Succeeded++
		}
	} else {
		summary, err = runner.RunAll(ctx)
		if err != nil {
			log.Error(ctx, "Batch aborted: %v", err)
			os.Exit(1)
		}
	}

	printSummary(summary)
}
