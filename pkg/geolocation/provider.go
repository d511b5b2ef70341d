package geolocation

import (
	"errors"
	"fmt"
	"io"
)

type Provider string

const (
	Ipapi   Provider = "ipapi"
	Ipwhois Provider = "ipwhois"
)

// ListProviders returns the providers in their default fallback order.
func ListProviders() []Provider {
	return []Provider{
		Ipapi,
		Ipwhois,
	}
}

var ErrUnknownProvider = errors.New("unknown geolocation provider")

func ValidateProvider(provider Provider) error {
	for _, possible := range ListProviders() {
		if provider == possible {
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrUnknownProvider, provider)
}

type provider interface {
	url(address string) string
	// normalize decodes the response body and returns the record,
	// or an error wrapping errNoMatch if the payload signals a failure.
	normalize(address string, body io.Reader) (record Record, err error)
}

func newProvider(providerName Provider) provider { //nolint:ireturn
	switch providerName {
	case Ipapi:
		return &ipapi{}
	case Ipwhois:
		return &ipwhois{}
	default:
		panic(fmt.Sprintf("provider %s not implemented", providerName))
	}
}
