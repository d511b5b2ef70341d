// Package view projects geolocation records into display strings.
package view

import (
	"net/url"
	"strconv"

	"github.com/qdm12/ip-locator/pkg/geolocation"
)

// ViewModel holds the display strings of a lookup result.
type ViewModel struct {
	IP        string `json:"ip"`
	Version   string `json:"version"`
	ISP       string `json:"isp"`
	Org       string `json:"org"`
	ASN       string `json:"asn"`
	Country   string `json:"country"`
	Region    string `json:"region"`
	City      string `json:"city"`
	Postal    string `json:"postal"`
	Latitude  string `json:"lat"`
	Longitude string `json:"lon"`
	Timezone  string `json:"timezone"`
	UTCOffset string `json:"utc"`
	MapLink   string `json:"mapLink"`
	ShowMap   bool   `json:"showMap"`
}

// Project maps the record to its view model. The map link is only
// set when both coordinates are present, otherwise it is "#".
func Project(record geolocation.Record) ViewModel {
	viewModel := ViewModel{
		IP:        record.IP,
		Version:   record.Version,
		ISP:       record.ISP,
		Org:       record.Org,
		ASN:       record.ASN,
		Country:   record.Country,
		Region:    record.Region,
		City:      record.City,
		Postal:    record.Postal,
		Latitude:  formatCoordinate(record.Latitude),
		Longitude: formatCoordinate(record.Longitude),
		Timezone:  record.Timezone,
		UTCOffset: record.UTCOffset,
		MapLink:   "#",
	}

	if record.Latitude != nil && record.Longitude != nil {
		viewModel.MapLink = mapLink(viewModel.Latitude, viewModel.Longitude)
		viewModel.ShowMap = true
	}

	return viewModel
}

func formatCoordinate(coordinate *float64) string {
	if coordinate == nil {
		return ""
	}
	return strconv.FormatFloat(*coordinate, 'f', -1, 64)
}

func mapLink(latitude, longitude string) string {
	latitude = url.QueryEscape(latitude)
	longitude = url.QueryEscape(longitude)
	return "https://www.openstreetmap.org/?mlat=" + latitude +
		"&mlon=" + longitude +
		"#map=10/" + latitude + "/" + longitude
}
