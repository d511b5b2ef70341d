package http

import "time"

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
