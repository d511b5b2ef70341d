package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"testing/fstest"

	"github.com/qdm12/ip-locator/pkg/geolocation"
	"github.com/qdm12/ip-locator/pkg/ipaddress"
	"github.com/stretchr/testify/assert"
)

type fakeService struct {
	records map[string]geolocation.Record
}

func (f *fakeService) Lookup(_ context.Context, input string) (
	record geolocation.Record, err error) {
	_, err = ipaddress.Validate(input)
	if err != nil {
		return record, err
	}
	record, ok := f.records[input]
	if !ok {
		return record, geolocation.ErrLookupFailed
	}
	return record, nil
}

type noopLogger struct{}

func (noopLogger) Debug(string) {}
func (noopLogger) Info(string)  {}
func (noopLogger) Warn(string)  {}
func (noopLogger) Error(string) {}

func Test_newHandler(t *testing.T) {
	t.Parallel()

	latitude, longitude := 37.42, -122.08
	records := map[string]geolocation.Record{
		"8.8.8.8": {
			IP: "8.8.8.8", Version: "IPv4", City: "Mountain View",
			Latitude: &latitude, Longitude: &longitude, Source: "ipapi",
		},
		"2001:db8::1": {IP: "2001:db8::1", Version: "IPv6", Source: "ipwhois"},
	}
	assets := fstest.MapFS{
		"index.html": {Data: []byte("<html></html>")},
	}
	metricsHandler := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("metrics"))
	})

	testCases := map[string]struct {
		rootURL    string
		service    *fakeService
		metrics    http.Handler
		path       string
		remoteAddr string
		headers    map[string]string
		status     int
		body       string
		jsonBody   bool
	}{
		"lookup IPv4": {
			service:  &fakeService{records: records},
			path:     "/api/v1/lookup/8.8.8.8",
			status:   http.StatusOK,
			jsonBody: true,
			body: `{"record":{"ip":"8.8.8.8","version":"IPv4","isp":"","org":"","asn":"",` +
				`"country":"","region":"","city":"Mountain View","postal":"",` +
				`"latitude":37.42,"longitude":-122.08,"timezone":"","utc":"","source":"ipapi"},` +
				`"view":{"ip":"8.8.8.8","version":"IPv4","isp":"","org":"","asn":"",` +
				`"country":"","region":"","city":"Mountain View","postal":"",` +
				`"lat":"37.42","lon":"-122.08","timezone":"","utc":"",` +
				`"mapLink":"https://www.openstreetmap.org/?mlat=37.42&mlon=-122.08#map=10/37.42/-122.08",` +
				`"showMap":true}}`,
		},
		"lookup escaped IPv6": {
			service:  &fakeService{records: records},
			path:     "/api/v1/lookup/2001%3Adb8%3A%3A1",
			status:   http.StatusOK,
			jsonBody: true,
			body: `{"record":{"ip":"2001:db8::1","version":"IPv6","isp":"","org":"","asn":"",` +
				`"country":"","region":"","city":"","postal":"","timezone":"","utc":"","source":"ipwhois"},` +
				`"view":{"ip":"2001:db8::1","version":"IPv6","isp":"","org":"","asn":"",` +
				`"country":"","region":"","city":"","postal":"","lat":"","lon":"",` +
				`"timezone":"","utc":"","mapLink":"#","showMap":false}}`,
		},
		"lookup invalid address": {
			service:  &fakeService{records: records},
			path:     "/api/v1/lookup/999.1.1.1",
			status:   http.StatusBadRequest,
			jsonBody: true,
			body:     `{"error":"Please enter a valid IPv4 or IPv6 address."}`,
		},
		"lookup failed": {
			service:  &fakeService{records: records},
			path:     "/api/v1/lookup/1.1.1.1",
			status:   http.StatusBadGateway,
			jsonBody: true,
			body:     `{"error":"Lookup failed across providers. Please try again later."}`,
		},
		"self": {
			service:  &fakeService{},
			path:     "/api/v1/self",
			status:   http.StatusOK,
			jsonBody: true,
			body:     `{"ip":"192.0.2.1"}`,
		},
		"self IPv6 caller": {
			service:    &fakeService{},
			path:       "/api/v1/self",
			remoteAddr: "[2001:db8::1]:5555",
			status:     http.StatusOK,
			jsonBody:   true,
			body:       `{"ip":"2001:db8::1"}`,
		},
		"self behind proxy": {
			service:    &fakeService{},
			path:       "/api/v1/self",
			remoteAddr: "10.0.0.2:5555",
			headers:    map[string]string{"X-Forwarded-For": "198.51.100.7"},
			status:     http.StatusOK,
			jsonBody:   true,
			body:       `{"ip":"198.51.100.7"}`,
		},
		"self failed": {
			service:    &fakeService{},
			path:       "/api/v1/self",
			remoteAddr: "@unix-socket",
			status:     http.StatusBadRequest,
			jsonBody:   true,
			body:       `{"error":"Unable to determine your IP"}`,
		},
		"self lookup": {
			service:    &fakeService{records: records},
			path:       "/api/v1/self/lookup",
			remoteAddr: "[2001:db8::1]:5555",
			status:     http.StatusOK,
			jsonBody:   true,
			body: `{"record":{"ip":"2001:db8::1","version":"IPv6","isp":"","org":"","asn":"",` +
				`"country":"","region":"","city":"","postal":"","timezone":"","utc":"","source":"ipwhois"},` +
				`"view":{"ip":"2001:db8::1","version":"IPv6","isp":"","org":"","asn":"",` +
				`"country":"","region":"","city":"","postal":"","lat":"","lon":"",` +
				`"timezone":"","utc":"","mapLink":"#","showMap":false}}`,
		},
		"self lookup failed": {
			service:    &fakeService{records: records},
			path:       "/api/v1/self/lookup",
			remoteAddr: "@unix-socket",
			status:     http.StatusBadRequest,
			jsonBody:   true,
			body:       `{"error":"Unable to determine your IP"}`,
		},
		"metrics enabled": {
			service: &fakeService{},
			metrics: metricsHandler,
			path:    "/metrics",
			status:  http.StatusOK,
			body:    "metrics",
		},
		"metrics disabled": {
			service: &fakeService{},
			path:    "/metrics",
			status:  http.StatusOK,
			body:    "<html></html>",
		},
		"assets": {
			service: &fakeService{},
			path:    "/",
			status:  http.StatusOK,
			body:    "<html></html>",
		},
		"root URL lookup": {
			rootURL:  "/locator/",
			service:  &fakeService{},
			path:     "/locator/api/v1/self",
			status:   http.StatusOK,
			jsonBody: true,
			body:     `{"ip":"192.0.2.1"}`,
		},
		"root URL assets": {
			rootURL: "/locator",
			service: &fakeService{},
			path:    "/locator/unknown",
			status:  http.StatusOK,
			body:    "<html></html>",
		},
		"outside root URL": {
			rootURL: "/locator",
			service: &fakeService{},
			path:    "/other",
			status:  http.StatusNotFound,
			body:    "404 page not found\n",
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			handler := newHandler(testCase.rootURL, assets, testCase.service,
				testCase.metrics, noopLogger{})
			request := httptest.NewRequest(http.MethodGet, testCase.path, nil)
			if testCase.remoteAddr != "" {
				request.RemoteAddr = testCase.remoteAddr
			}
			for key, value := range testCase.headers {
				request.Header.Set(key, value)
			}
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, request)

			assert.Equal(t, testCase.status, w.Code)
			if testCase.jsonBody {
				assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
				assert.JSONEq(t, testCase.body, w.Body.String())
			} else {
				assert.Equal(t, testCase.body, w.Body.String())
			}
		})
	}
}
