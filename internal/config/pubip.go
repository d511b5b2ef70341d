package config

import (
	"fmt"
	"net/url"
	"time"

	"github.com/qdm12/gosettings"
	"github.com/qdm12/gosettings/reader"
	"github.com/qdm12/gosettings/validate"
	"github.com/qdm12/gotree"
	"github.com/qdm12/ip-locator/pkg/publicip/dns"
	"github.com/qdm12/ip-locator/pkg/publicip/http"
)

const all = "all"

type PubIP struct {
	HTTPProviders []string
	HTTPTimeout   time.Duration
	DNSEnabled    *bool
	DNSProviders  []string
	DNSTimeout    time.Duration
}

func (p *PubIP) setDefaults() {
	p.HTTPProviders = gosettings.DefaultSlice(p.HTTPProviders, []string{all})
	const defaultHTTPTimeout = 5 * time.Second
	p.HTTPTimeout = gosettings.DefaultComparable(p.HTTPTimeout, defaultHTTPTimeout)
	p.DNSEnabled = gosettings.DefaultPointer(p.DNSEnabled, false)
	p.DNSProviders = gosettings.DefaultSlice(p.DNSProviders, []string{all})
	const defaultDNSTimeout = 3 * time.Second
	p.DNSTimeout = gosettings.DefaultComparable(p.DNSTimeout, defaultDNSTimeout)
}

func (p PubIP) Validate() (err error) {
	err = validateHTTPProviders(p.HTTPProviders)
	if err != nil {
		return fmt.Errorf("HTTP providers: %w", err)
	}

	err = p.validateDNSProviders()
	if err != nil {
		return fmt.Errorf("DNS providers: %w", err)
	}

	for name, timeout := range map[string]time.Duration{
		"HTTP timeout": p.HTTPTimeout,
		"DNS timeout":  p.DNSTimeout,
	} {
		if timeout < 0 {
			return fmt.Errorf("%s: %w: %s", name, ErrTimeoutNegative, timeout)
		}
	}

	return nil
}

func (p PubIP) String() string {
	return p.toLinesNode().String()
}

func (p PubIP) toLinesNode() (node *gotree.Node) {
	node = gotree.New("Public IP fetching")

	node.Appendf("HTTP timeout: %s", p.HTTPTimeout)
	childNode := node.Appendf("HTTP providers")
	for _, provider := range p.HTTPProviders {
		childNode.Appendf(provider)
	}

	node.Appendf("DNS enabled: %s", gosettings.BoolToYesNo(p.DNSEnabled))
	if *p.DNSEnabled {
		node.Appendf("DNS timeout: %s", p.DNSTimeout)
		childNode := node.Appendf("DNS over TLS providers")
		for _, provider := range p.DNSProviders {
			childNode.Appendf(provider)
		}
	}

	return node
}

// ToHTTPOptions assumes the settings have been validated.
func (p PubIP) ToHTTPOptions() (options []http.Option) {
	providers := stringsToHTTPProviders(p.HTTPProviders)
	return []http.Option{
		http.SetProviders(providers[0], providers[1:]...),
		http.SetTimeout(p.HTTPTimeout),
	}
}

// stringsToHTTPProviders keeps the order given, expanding "all"
// in place and removing duplicates.
func stringsToHTTPProviders(providerStrings []string) (providers []http.Provider) {
	seen := make(map[http.Provider]struct{}, len(providerStrings))
	add := func(provider http.Provider) {
		if _, ok := seen[provider]; ok {
			return
		}
		seen[provider] = struct{}{}
		providers = append(providers, provider)
	}

	for _, providerString := range providerStrings {
		if providerString == all {
			for _, provider := range http.ListProviders() {
				add(provider)
			}
			continue
		}

		url, err := url.Parse(providerString)
		if err == nil && url.Scheme == "https" {
			add(http.CustomProvider(url))
			continue
		}

		add(http.Provider(providerString))
	}

	return providers
}

// ToDNSOptions assumes the settings have been validated.
func (p PubIP) ToDNSOptions() (options []dns.Option) {
	seen := make(map[dns.Provider]struct{}, len(p.DNSProviders))
	providers := make([]dns.Provider, 0, len(p.DNSProviders))
	for _, providerString := range p.DNSProviders {
		candidates := []dns.Provider{dns.Provider(providerString)}
		if providerString == all {
			candidates = dns.ListProviders()
		}
		for _, provider := range candidates {
			if _, ok := seen[provider]; ok {
				continue
			}
			seen[provider] = struct{}{}
			providers = append(providers, provider)
		}
	}

	return []dns.Option{
		dns.SetTimeout(p.DNSTimeout),
		dns.SetProviders(providers[0], providers[1:]...),
	}
}

func (p PubIP) validateDNSProviders() (err error) {
	if len(p.DNSProviders) == 0 {
		return fmt.Errorf("%w", ErrNoProviderSpecified)
	}

	availableProviders := dns.ListProviders()
	validChoices := make([]string, len(availableProviders)+1)
	for i, provider := range availableProviders {
		validChoices[i] = string(provider)
	}
	validChoices[len(validChoices)-1] = all
	return validate.AreAllOneOf(p.DNSProviders, validChoices)
}

func validateHTTPProviders(providerStrings []string) (err error) {
	if len(providerStrings) == 0 {
		return fmt.Errorf("%w", ErrNoProviderSpecified)
	}

	availableProviders := http.ListProviders()
	choices := make([]string, len(availableProviders)+1)
	for i, provider := range availableProviders {
		choices[i] = string(provider)
	}
	choices[len(choices)-1] = all

	for _, providerString := range providerStrings {
		// Custom URL check
		url, err := url.Parse(providerString)
		if err == nil && url.Scheme == "https" {
			continue
		}

		err = validate.IsOneOf(providerString, choices...)
		if err != nil {
			return err
		}
	}

	return nil
}

func (p *PubIP) read(r *reader.Reader) (err error) {
	p.HTTPProviders = r.CSV("PUBLICIP_HTTP_PROVIDERS", reader.ForceLowercase(false))
	p.HTTPTimeout, err = r.Duration("PUBLICIP_HTTP_TIMEOUT")
	if err != nil {
		return err
	}

	p.DNSEnabled, err = r.BoolPtr("PUBLICIP_DNS_ENABLED")
	if err != nil {
		return err
	}
	p.DNSProviders = r.CSV("PUBLICIP_DNS_PROVIDERS")
	p.DNSTimeout, err = r.Duration("PUBLICIP_DNS_TIMEOUT")
	return err
}
