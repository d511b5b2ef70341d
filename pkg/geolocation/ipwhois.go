package geolocation

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/url"

	"github.com/qdm12/ip-locator/pkg/ipaddress"
)

type ipwhois struct{}

func (p *ipwhois) url(address string) string {
	return "https://ipwho.is/" + url.PathEscape(address)
}

type ipwhoisResponse struct {
	Success     json.RawMessage    `json:"success"`
	Message     flexString         `json:"message"`
	Country     flexString         `json:"country"`
	CountryCode flexString         `json:"country_code"`
	Region      flexString         `json:"region"`
	City        flexString         `json:"city"`
	Postal      flexString         `json:"postal"`
	Latitude    flexNumber         `json:"latitude"`
	Longitude   flexNumber         `json:"longitude"`
	Connection  *ipwhoisConnection `json:"connection"`
	Timezone    *ipwhoisTimezone   `json:"timezone"`
}

type ipwhoisConnection struct {
	ASN flexString `json:"asn"`
	Org flexString `json:"org"`
	ISP flexString `json:"isp"`
}

func (c *ipwhoisConnection) isp() string {
	if c == nil {
		return ""
	}
	return firstNonEmpty(c.ISP, c.Org)
}

func (c *ipwhoisConnection) org() string {
	if c == nil {
		return ""
	}
	return string(c.Org)
}

func (c *ipwhoisConnection) asn() string {
	if c == nil {
		return ""
	}
	return formatASN(c.ASN)
}

type ipwhoisTimezone struct {
	ID  flexString `json:"id"`
	UTC flexString `json:"utc"`
}

func (t *ipwhoisTimezone) id() string {
	if t == nil {
		return ""
	}
	return string(t.ID)
}

func (t *ipwhoisTimezone) utc() string {
	if t == nil {
		return ""
	}
	return string(t.UTC)
}

func (p *ipwhois) normalize(address string, body io.Reader) (record Record, err error) {
	var data *ipwhoisResponse
	err = json.NewDecoder(body).Decode(&data)
	if err != nil {
		return record, fmt.Errorf("decoding JSON response: %w", err)
	}

	switch {
	case data == nil:
		return record, fmt.Errorf("%w: empty payload", errNoMatch)
	case bytes.Equal(bytes.TrimSpace(data.Success), []byte("false")):
		return record, fmt.Errorf("%w: %s", errNoMatch, data.Message)
	}

	return Record{
		IP:        address,
		Version:   ipaddress.FamilyOf(address).String(),
		ISP:       data.Connection.isp(),
		Org:       data.Connection.org(),
		ASN:       data.Connection.asn(),
		Country:   joinNonEmpty(data.Country, data.CountryCode),
		Region:    string(data.Region),
		City:      string(data.City),
		Postal:    string(data.Postal),
		Latitude:  data.Latitude.value,
		Longitude: data.Longitude.value,
		Timezone:  data.Timezone.id(),
		UTCOffset: data.Timezone.utc(),
		Source:    string(Ipwhois),
	}, nil
}
