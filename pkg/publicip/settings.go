package publicip

import (
	"net/http"

	"github.com/qdm12/ip-locator/pkg/publicip/dns"
	iphttp "github.com/qdm12/ip-locator/pkg/publicip/http"
)

type settings struct {
	http   httpSettings
	dns    dnsSettings
	logger Logger
}

type httpSettings struct {
	enabled bool
	client  *http.Client
	options []iphttp.Option
}

type dnsSettings struct {
	enabled bool
	options []dns.Option
}

func defaultSettings() settings {
	return settings{
		http: httpSettings{
			enabled: true,
			client:  &http.Client{},
		},
	}
}

type Option func(s *settings) error

// UseHTTP sets the HTTP client and options of the JSON echo
// providers, which are always tried first.
func UseHTTP(client *http.Client, options ...iphttp.Option) Option {
	return func(s *settings) error {
		s.http.enabled = true
		s.http.client = client
		s.http.options = options
		return nil
	}
}

// UseDNS enables the DNS over TLS providers, tried after
// the HTTP providers.
func UseDNS(options ...dns.Option) Option {
	return func(s *settings) error {
		s.dns.enabled = true
		s.dns.options = options
		return nil
	}
}

// DisableHTTP disables the HTTP providers.
func DisableHTTP() Option {
	return func(s *settings) error {
		s.http.enabled = false
		return nil
	}
}

// SetLogger sets the logger given to every sub fetcher.
func SetLogger(logger Logger) Option {
	return func(s *settings) error {
		s.logger = logger
		return nil
	}
}
