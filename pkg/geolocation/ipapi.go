package geolocation

import (
	"encoding/json"
	"fmt"
	"io"
	"net/url"

	"github.com/qdm12/ip-locator/pkg/ipaddress"
)

type ipapi struct{}

func (p *ipapi) url(address string) string {
	return "https://ipapi.co/" + url.PathEscape(address) + "/json/"
}

type ipapiResponse struct {
	Error       flexBool   `json:"error"`
	Reason      flexString `json:"reason"`
	Org         flexString `json:"org"`
	ASNOrg      flexString `json:"asn_org"`
	Company     flexString `json:"company"`
	ASN         flexString `json:"asn"`
	CountryName flexString `json:"country_name"`
	CountryCode flexString `json:"country_code"`
	Region      flexString `json:"region"`
	RegionCode  flexString `json:"region_code"`
	City        flexString `json:"city"`
	Postal      flexString `json:"postal"`
	Latitude    flexNumber `json:"latitude"`
	Lat         flexNumber `json:"lat"`
	Longitude   flexNumber `json:"longitude"`
	Lon         flexNumber `json:"lon"`
	Timezone    flexString `json:"timezone"`
	UTCOffset   flexString `json:"utc_offset"`
}

func (p *ipapi) normalize(address string, body io.Reader) (record Record, err error) {
	var data *ipapiResponse
	err = json.NewDecoder(body).Decode(&data)
	if err != nil {
		return record, fmt.Errorf("decoding JSON response: %w", err)
	}

	switch {
	case data == nil:
		return record, fmt.Errorf("%w: empty payload", errNoMatch)
	case bool(data.Error):
		return record, fmt.Errorf("%w: %s", errNoMatch, data.Reason)
	}

	return Record{
		IP:        address,
		Version:   ipaddress.FamilyOf(address).String(),
		ISP:       firstNonEmpty(data.Org, data.ASNOrg, data.Company),
		Org:       string(data.Org),
		ASN:       formatASN(data.ASN),
		Country:   joinNonEmpty(data.CountryName, data.CountryCode),
		Region:    firstNonEmpty(data.Region, data.RegionCode),
		City:      string(data.City),
		Postal:    string(data.Postal),
		Latitude:  firstNumber(data.Latitude, data.Lat),
		Longitude: firstNumber(data.Longitude, data.Lon),
		Timezone:  string(data.Timezone),
		UTCOffset: string(data.UTCOffset),
		Source:    string(Ipapi),
	}, nil
}
