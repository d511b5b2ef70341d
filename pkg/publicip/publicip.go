// Package publicip finds the public IP address of the machine
// through an ordered chain of fetchers.
package publicip

import (
	"context"
	"errors"
	"fmt"

	"github.com/qdm12/ip-locator/pkg/publicip/dns"
	"github.com/qdm12/ip-locator/pkg/publicip/http"
)

type Logger interface {
	Debug(s string)
}

type ipFetcher interface {
	String() string
	IP(ctx context.Context) (ip string, err error)
}

type Fetcher struct {
	fetchers []ipFetcher
}

var (
	ErrNoFetchTypeSpecified = errors.New("at least one fetcher type must be specified")
	// ErrNoIPFound is the single error returned when every fetcher failed.
	ErrNoIPFound = errors.New("Unable to determine your IP") //nolint:stylecheck,revive
)

func NewFetcher(options ...Option) (f *Fetcher, err error) {
	settings := defaultSettings()
	for _, option := range options {
		err = option(&settings)
		if err != nil {
			return nil, fmt.Errorf("applying option: %w", err)
		}
	}

	f = new(Fetcher)

	if settings.http.enabled {
		options := append([]http.Option(nil), settings.http.options...)
		if settings.logger != nil {
			options = append(options, http.SetLogger(settings.logger))
		}
		subFetcher, err := http.New(settings.http.client, options...)
		if err != nil {
			return nil, fmt.Errorf("creating HTTP fetcher: %w", err)
		}
		f.fetchers = append(f.fetchers, subFetcher)
	}

	if settings.dns.enabled {
		options := append([]dns.Option(nil), settings.dns.options...)
		if settings.logger != nil {
			options = append(options, dns.SetLogger(settings.logger))
		}
		subFetcher, err := dns.New(options...)
		if err != nil {
			return nil, fmt.Errorf("creating DNS fetcher: %w", err)
		}
		f.fetchers = append(f.fetchers, subFetcher)
	}

	if len(f.fetchers) == 0 {
		return nil, ErrNoFetchTypeSpecified
	}

	return f, nil
}

// IP returns the public IP address found by the first fetcher
// to succeed. Individual fetcher errors are never returned.
func (f *Fetcher) IP(ctx context.Context) (ip string, err error) {
	for _, fetcher := range f.fetchers {
		ip, err = fetcher.IP(ctx)
		if err == nil {
			return ip, nil
		} else if ctx.Err() != nil {
			break
		}
	}
	return "", ErrNoIPFound
}
