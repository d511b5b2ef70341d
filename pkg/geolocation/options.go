package geolocation

import (
	"time"
)

type settings struct {
	providers []Provider
	timeout   time.Duration
	logger    Logger
	metrics   Metrics
}

func newDefaultSettings() settings {
	const defaultTimeout = 5 * time.Second
	return settings{
		providers: ListProviders(),
		timeout:   defaultTimeout,
		logger:    noopLogger{},
		metrics:   noopMetrics{},
	}
}

type Option func(s *settings) error

// SetProviders sets the providers to query, in fallback order.
func SetProviders(first Provider, providers ...Provider) Option {
	providers = append([]Provider{first}, providers...)
	return func(s *settings) (err error) {
		for _, provider := range providers {
			err = ValidateProvider(provider)
			if err != nil {
				return err
			}
		}
		s.providers = providers
		return nil
	}
}

// SetTimeout sets the timeout of each provider request.
func SetTimeout(timeout time.Duration) Option {
	return func(s *settings) (err error) {
		s.timeout = timeout
		return nil
	}
}

func SetLogger(logger Logger) Option {
	return func(s *settings) (err error) {
		s.logger = logger
		return nil
	}
}

func SetMetrics(metrics Metrics) Option {
	return func(s *settings) (err error) {
		s.metrics = metrics
		return nil
	}
}
