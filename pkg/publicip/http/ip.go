package http

import (
	"context"
	"errors"
	"fmt"
	"time"
)

var ErrAllProvidersFailed = errors.New("all public IP HTTP providers failed")

// IP tries each provider in order and returns the first address found.
// Failures of a single provider are only logged at the debug level.
func (f *Fetcher) IP(ctx context.Context) (publicIP string, err error) {
	for _, provider := range f.providers {
		err = ctx.Err()
		if err != nil {
			return "", err
		}

		publicIP, err = f.attempt(ctx, provider)
		if err == nil {
			return publicIP, nil
		}
		f.logger.Debug(fmt.Sprintf("public IP provider %s failed: %s", provider, err))
	}

	return "", fmt.Errorf("%w: tried %d providers", ErrAllProvidersFailed, len(f.providers))
}

func (f *Fetcher) attempt(ctx context.Context, provider Provider) (
	publicIP string, err error) {
	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	start := time.Now()
	publicIP, err = fetch(ctx, f.client, provider.data())
	f.metrics.ProviderAttempt(string(provider), time.Since(start), err)
	return publicIP, err
}
