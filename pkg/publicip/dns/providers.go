package dns

import (
	"errors"
	"fmt"

	"github.com/miekg/dns"
)

type Provider string

const (
	Cloudflare Provider = "cloudflare"
	OpenDNS    Provider = "opendns"
)

func ListProviders() []Provider {
	return []Provider{
		Cloudflare,
		OpenDNS,
	}
}

var ErrUnknownProvider = errors.New("unknown public IP echo DNS provider")

func ValidateProvider(provider Provider) error {
	for _, possible := range ListProviders() {
		if provider == possible {
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrUnknownProvider, provider)
}

type providerData struct {
	// Address is the DNS over TLS server hostname.
	Address string
	TLSName string
	fqdn    string
	class   dns.Class
	qType   dns.Type
}

func (p Provider) data() providerData {
	switch p {
	case Cloudflare:
		return providerData{
			Address: "1dot1dot1dot1.cloudflare-dns.com",
			TLSName: "cloudflare-dns.com",
			fqdn:    "whoami.cloudflare.",
			class:   dns.ClassCHAOS,
			qType:   dns.Type(dns.TypeTXT),
		}
	case OpenDNS:
		return providerData{
			Address: "dns.opendns.com",
			TLSName: "dns.opendns.com",
			fqdn:    "myip.opendns.com.",
			class:   dns.ClassINET,
			qType:   dns.Type(dns.TypeANY),
		}
	}
	panic(`provider unknown: "` + string(p) + `"`)
}
