package dns

import (
	"time"
)

type Logger interface {
	Debug(s string)
}

type Metrics interface {
	ProviderAttempt(provider string, duration time.Duration, err error)
}

type noopLogger struct{}

func (noopLogger) Debug(string) {}

type noopMetrics struct{}

func (noopMetrics) ProviderAttempt(string, time.Duration, error) {}

// Fetcher finds the public IP address using DNS over TLS
// queries answered with the address of the client.
type Fetcher struct {
	providers []Provider
	clients   map[Provider]Client
	timeout   time.Duration
	logger    Logger
	metrics   Metrics
}

func New(options ...Option) (f *Fetcher, err error) {
	settings := newDefaultSettings()
	for _, option := range options {
		err = option(&settings)
		if err != nil {
			return nil, err
		}
	}

	clients := make(map[Provider]Client, len(settings.providers))
	for _, provider := range settings.providers {
		clients[provider] = newClient(provider.data(), settings.timeout)
	}

	return &Fetcher{
		providers: settings.providers,
		clients:   clients,
		timeout:   settings.timeout,
		logger:    settings.logger,
		metrics:   settings.metrics,
	}, nil
}

func (f *Fetcher) String() string {
	return "dns"
}
