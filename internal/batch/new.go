package batch

import (
	"github.com/unyfilm/subgen/internal/logger"
	"github.com/unyfilm/subgen/internal/mediastore"
	"github.com/unyfilm/subgen/internal/processor"
)

type implRunner struct {
	store     mediastore.Store
	processor processor.Processor
	logger    logger.Logger
}

// New creates a new Runner instance
func New(store mediastore.Store, proc processor.Processor, log logger.Logger) Runner {
	return &implRunner{
		store:     store,
		processor: proc,
		logger:    log,
	}
}
