package processor

import (
	"github.com/unyfilm/subgen/internal/config"
	"github.com/unyfilm/subgen/internal/extractor"
	"github.com/unyfilm/subgen/internal/logger"
	"github.com/unyfilm/subgen/internal/mediastore"
	"github.com/unyfilm/subgen/internal/transcriber"
)

type implProcessor struct {
	cfg         *config.Config
	store       mediastore.Store
	extractor   extractor.Extractor
	transcriber transcriber.Transcriber
	logger      logger.Logger
}

// New creates a new Processor instance
func New(cfg *config.Config, store mediastore.Store, ext extractor.Extractor, tr transcriber.Transcriber, log logger.Logger) Processor {
	return &implProcessor{
		cfg:         cfg,
		store:       store,
		extractor:   ext,
		transcriber: tr,
		logger:      log,
	}
}
