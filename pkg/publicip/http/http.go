package http

import (
	"net/http"
	"time"
)

// Fetcher finds the public IP address of the machine running it,
// querying JSON IP echo services one after the other.
type Fetcher struct {
	client    *http.Client
	timeout   time.Duration
	providers []Provider
	logger    Logger
	metrics   Metrics
}

func New(client *http.Client, options ...Option) (f *Fetcher, err error) {
	settings := newDefaultSettings()
	for _, option := range options {
		err = option(&settings)
		if err != nil {
			return nil, err
		}
	}

	return &Fetcher{
		client:    client,
		timeout:   settings.timeout,
		providers: settings.providers,
		logger:    settings.logger,
		metrics:   settings.metrics,
	}, nil
}

func (f *Fetcher) String() string {
	return "http"
}
