package config

import (
	"fmt"
	"time"

	"github.com/qdm12/gosettings"
	"github.com/qdm12/gosettings/reader"
	"github.com/qdm12/gosettings/validate"
	"github.com/qdm12/gotree"
	"github.com/qdm12/ip-locator/pkg/geolocation"
)

type Geolocation struct {
	Providers []string
	Timeout   time.Duration
}

func (g *Geolocation) setDefaults() {
	g.Providers = gosettings.DefaultSlice(g.Providers, []string{all})
	const defaultTimeout = 5 * time.Second
	g.Timeout = gosettings.DefaultComparable(g.Timeout, defaultTimeout)
}

func (g Geolocation) Validate() (err error) {
	if len(g.Providers) == 0 {
		return fmt.Errorf("providers: %w", ErrNoProviderSpecified)
	}

	availableProviders := geolocation.ListProviders()
	choices := make([]string, len(availableProviders)+1)
	for i, provider := range availableProviders {
		choices[i] = string(provider)
	}
	choices[len(choices)-1] = all
	err = validate.AreAllOneOf(g.Providers, choices)
	if err != nil {
		return fmt.Errorf("providers: %w", err)
	}

	if g.Timeout < 0 {
		return fmt.Errorf("%w: %s", ErrTimeoutNegative, g.Timeout)
	}

	return nil
}

func (g Geolocation) String() string {
	return g.toLinesNode().String()
}

func (g Geolocation) toLinesNode() *gotree.Node {
	node := gotree.New("Geolocation")
	node.Appendf("Timeout: %s", g.Timeout)
	childNode := node.Appendf("Providers")
	for _, provider := range g.Providers {
		childNode.Appendf(provider)
	}
	return node
}

// ToOptions assumes the settings have been validated.
func (g Geolocation) ToOptions() (options []geolocation.Option) {
	seen := make(map[geolocation.Provider]struct{}, len(g.Providers))
	providers := make([]geolocation.Provider, 0, len(g.Providers))
	for _, providerString := range g.Providers {
		candidates := []geolocation.Provider{geolocation.Provider(providerString)}
		if providerString == all {
			candidates = geolocation.ListProviders()
		}
		for _, provider := range candidates {
			if _, ok := seen[provider]; ok {
				continue
			}
			seen[provider] = struct{}{}
			providers = append(providers, provider)
		}
	}

	return []geolocation.Option{
		geolocation.SetProviders(providers[0], providers[1:]...),
		geolocation.SetTimeout(g.Timeout),
	}
}

func (g *Geolocation) read(r *reader.Reader) (err error) {
	g.Providers = r.CSV("GEOLOCATION_PROVIDERS")
	g.Timeout, err = r.Duration("GEOLOCATION_TIMEOUT")
	return err
}
