package resolver

import (
	"context"
	"net"
	"net/http"
	"time"
)

// New returns a resolver sending its UDP queries to the DNS server
// at address, or the Go default resolver if address is empty.
func New(address string, timeout time.Duration) *net.Resolver {
	if address == "" {
		return net.DefaultResolver
	}

	dialer := net.Dialer{Timeout: timeout}
	return &net.Resolver{
		PreferGo: true,
		Dial: func(ctx context.Context, _, _ string) (net.Conn, error) {
			const protocol = "udp"
			return dialer.DialContext(ctx, protocol, address)
		},
	}
}

// NewHTTPClient returns an HTTP client resolving hostnames with
// the resolver given.
func NewHTTPClient(resolver *net.Resolver, timeout time.Duration) *http.Client {
	dialer := &net.Dialer{Resolver: resolver}
	transport := http.DefaultTransport.(*http.Transport).Clone() //nolint:forcetypeassert
	transport.DialContext = dialer.DialContext
	return &http.Client{
		Timeout:   timeout,
		Transport: transport,
	}
}
