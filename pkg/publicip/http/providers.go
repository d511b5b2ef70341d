package http

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

type Provider string

const (
	Ipify    Provider = "ipify"
	Ipinfo   Provider = "ipinfo"
	Ifconfig Provider = "ifconfig"
)

// ListProviders returns the built-in providers in their
// default fallback order.
func ListProviders() []Provider {
	return []Provider{
		Ipify,
		Ipinfo,
		Ifconfig,
	}
}

var ErrUnknownProvider = errors.New("unknown public IP echo HTTP provider")

func ValidateProvider(provider Provider) error {
	if strings.HasPrefix(string(provider), "url:https://") { // custom HTTP url
		return nil
	}

	for _, possible := range ListProviders() {
		if provider == possible {
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrUnknownProvider, provider)
}

type providerData struct {
	url string
	// keys are the JSON fields holding the address, by priority.
	keys []string
}

func (provider Provider) data() providerData {
	switch provider {
	case Ipify:
		return providerData{
			url:  "https://api.ipify.org?format=json",
			keys: []string{"ip"},
		}
	case Ipinfo:
		return providerData{
			url:  "https://ipinfo.io/json",
			keys: []string{"ip"},
		}
	case Ifconfig:
		return providerData{
			url:  "https://ifconfig.co/json",
			keys: []string{"ip", "ip_addr"},
		}
	}

	if s := string(provider); strings.HasPrefix(s, "url:") {
		return providerData{
			url:  strings.TrimPrefix(s, "url:"),
			keys: []string{"ip", "ip_addr"},
		}
	}

	panic(`provider unknown: "` + string(provider) + `"`)
}

// CustomProvider creates a provider with a custom HTTPS URL.
// The URL must answer a JSON object with the address in
// its "ip" or "ip_addr" field.
func CustomProvider(httpsURL *url.URL) Provider { //nolint:interfacer
	return Provider("url:" + httpsURL.String())
}
