package transcriber

import (
	"github.com/unyfilm/subgen/internal/config"
	"github.com/unyfilm/subgen/internal/logger"
	"github.com/unyfilm/subgen/pkg/executor"
)

type implTranscriber struct {
	cfg      config.WhisperConfig
	executor executor.Executor
	logger   logger.Logger
}

// New creates a new Transcriber instance backed by a whisper.cpp binary
func New(cfg config.WhisperConfig, exec executor.Executor, log logger.Logger) Transcriber {
	return &implTranscriber{
		cfg:      cfg,
		executor: exec,
		logger:   log,
	}
}
