package extractor

import (
	"github.com/unyfilm/subgen/internal/config"
	"github.com/unyfilm/subgen/internal/logger"
	"github.com/unyfilm/subgen/pkg/executor"
)

type implExtractor struct {
	cfg      config.FFmpegConfig
	executor executor.Executor
	logger   logger.Logger
}

// New creates a new Extractor instance
func New(cfg config.FFmpegConfig, exec executor.Executor, log logger.Logger) Extractor {
	return &implExtractor{
		cfg:      cfg,
		executor: exec,
		logger:   log,
	}
}
