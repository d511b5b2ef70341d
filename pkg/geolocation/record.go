package geolocation

// Record is the provider agnostic result of a successful lookup.
// String fields are empty when unknown, and the coordinates are
// nil when absent or not finite numbers.
type Record struct {
	IP        string   `json:"ip"`
	Version   string   `json:"version"`
	ISP       string   `json:"isp"`
	Org       string   `json:"org"`
	ASN       string   `json:"asn"`
	Country   string   `json:"country"`
	Region    string   `json:"region"`
	City      string   `json:"city"`
	Postal    string   `json:"postal"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
	Timezone  string   `json:"timezone"`
	UTCOffset string   `json:"utc"`
	// Source is the name of the provider which answered.
	Source string `json:"source"`
}
