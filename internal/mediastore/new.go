package mediastore

import (
	"fmt"
	"net/http"
	"time"

	"github.com/unyfilm/subgen/internal/config"
	"github.com/unyfilm/subgen/internal/logger"
)

const (
	defaultAPIBaseURL      = "https://api.cloudinary.com"
	defaultDeliveryBaseURL = "https://res.cloudinary.com"

	// pageSize is the maximum number of items requested per catalog page.
	pageSize = 100
)

type implStore struct {
	cfg             config.StoreConfig
	logger          logger.Logger
	httpClient      *http.Client
	apiBaseURL      string
	deliveryBaseURL string
}

// Option configures the store client.
type Option func(*implStore)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(s *implStore) {
		if client != nil {
			s.httpClient = client
		}
	}
}

// WithAPIBaseURL overrides the management API base URL.
func WithAPIBaseURL(base string) Option {
	return func(s *implStore) {
		if base != "" {
			s.apiBaseURL = base
		}
	}
}

// WithDeliveryBaseURL overrides the content delivery base URL.
func WithDeliveryBaseURL(base string) Option {
	return func(s *implStore) {
		if base != "" {
			s.deliveryBaseURL = base
		}
	}
}

// New creates a new Store client for the configured account
func New(cfg config.StoreConfig, log logger.Logger, opts ...Option) Store {
	s := &implStore{
		cfg:             cfg,
		logger:          log,
		httpClient:      &http.Client{Timeout: 5 * time.Minute},
		apiBaseURL:      defaultAPIBaseURL,
		deliveryBaseURL: defaultDeliveryBaseURL,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// subtitlePublicID names the subtitle artifact for a video and language.
func subtitlePublicID(id, lang string) string {
	return fmt.Sprintf("subtitles/%s_%s", id, lang)
}
