package geolocation

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// Client looks up geolocation and network details of IP addresses,
// querying its providers one after the other until one succeeds.
type Client struct {
	client    *http.Client
	timeout   time.Duration
	names     []Provider
	providers []provider
	logger    Logger
	metrics   Metrics
}

func New(client *http.Client, options ...Option) (c *Client, err error) {
	settings := newDefaultSettings()
	for _, option := range options {
		err = option(&settings)
		if err != nil {
			return nil, fmt.Errorf("applying option: %w", err)
		}
	}

	providers := make([]provider, len(settings.providers))
	for i, name := range settings.providers {
		providers[i] = newProvider(name)
	}

	return &Client{
		client:    client,
		timeout:   settings.timeout,
		names:     settings.providers,
		providers: providers,
		logger:    settings.logger,
		metrics:   settings.metrics,
	}, nil
}

// Lookup returns the record of the first provider answering successfully
// for the given address. The address is expected to be already validated.
// If every provider fails, ErrLookupFailed is returned; the individual
// provider errors are only logged at the debug level.
func (c *Client) Lookup(ctx context.Context, address string) (record Record, err error) {
	address = strings.TrimSpace(address)
	for i, p := range c.providers {
		err = ctx.Err()
		if err != nil {
			return record, err
		}

		name := c.names[i]
		record, err = c.attempt(ctx, name, p, address)
		if err == nil {
			return record, nil
		}
		c.logger.Debug(fmt.Sprintf("geolocation provider %s failed for %s: %s",
			name, address, err))
	}

	return Record{}, ErrLookupFailed
}

func (c *Client) attempt(ctx context.Context, name Provider, p provider,
	address string) (record Record, err error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	start := time.Now()
	record, err = get(ctx, c.client, p, address)
	c.metrics.ProviderAttempt(string(name), time.Since(start), err)
	return record, err
}

// LookupMultiple looks up each of the given addresses concurrently,
// and returns the records in the order of the addresses given.
// The first error encountered cancels the other lookups.
func (c *Client) LookupMultiple(ctx context.Context, addresses []string) (
	records []Record, err error) {
	type recordWithError struct {
		index  int
		record Record
		err    error
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	channel := make(chan recordWithError)

	for index, address := range addresses {
		go func(index int, address string) {
			result := recordWithError{
				index: index,
			}
			result.record, result.err = c.Lookup(ctx, address)
			channel <- result
		}(index, address)
	}

	records = make([]Record, len(addresses))
	for range addresses {
		result := <-channel
		switch {
		// only collect the first error
		case err != nil:
		case result.err != nil:
			err = fmt.Errorf("looking up %s: %w", addresses[result.index], result.err)
			cancel() // stop other lookups
		default:
			records[result.index] = result.record
		}
	}

	if err != nil {
		return nil, err
	}

	return records, nil
}
