package geolocation

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type debugRecorder struct {
	lines []string
}

func (d *debugRecorder) Debug(s string) { d.lines = append(d.lines, s) }

type attemptRecorder struct {
	providers []string
	failures  int
}

func (a *attemptRecorder) ProviderAttempt(provider string, _ time.Duration, err error) {
	a.providers = append(a.providers, provider)
	if err != nil {
		a.failures++
	}
}

func Test_New(t *testing.T) {
	t.Parallel()

	_, err := New(http.DefaultClient, SetProviders("unknown"))
	require.ErrorIs(t, err, ErrUnknownProvider)
	assert.EqualError(t, err, "applying option: unknown geolocation provider: unknown")

	client, err := New(http.DefaultClient, SetProviders(Ipwhois, Ipapi))
	require.NoError(t, err)
	assert.Equal(t, []Provider{Ipwhois, Ipapi}, client.names)
}

func Test_Client_Lookup(t *testing.T) {
	t.Parallel()

	t.Run("first provider answers", func(t *testing.T) {
		t.Parallel()

		transport := httpmock.NewMockTransport()
		transport.RegisterResponder(http.MethodGet, "https://ipapi.co/8.8.8.8/json/",
			httpmock.NewStringResponder(http.StatusOK, `{"org":"GOOGLE","asn":"AS15169"}`))

		client, err := New(&http.Client{Transport: transport})
		require.NoError(t, err)

		record, err := client.Lookup(context.Background(), " 8.8.8.8 ")

		require.NoError(t, err)
		assert.Equal(t, Record{
			IP:      "8.8.8.8",
			Version: "IPv4",
			ISP:     "GOOGLE",
			Org:     "GOOGLE",
			ASN:     "AS15169",
			Source:  "ipapi",
		}, record)
		assert.Equal(t, 1, transport.GetTotalCallCount())
	})

	t.Run("falls back to second provider", func(t *testing.T) {
		t.Parallel()

		transport := httpmock.NewMockTransport()
		transport.RegisterResponder(http.MethodGet, "https://ipapi.co/8.8.8.8/json/",
			httpmock.NewStringResponder(http.StatusOK, `{"error":true,"reason":"RateLimited"}`))
		transport.RegisterResponder(http.MethodGet, "https://ipwho.is/8.8.8.8",
			httpmock.NewStringResponder(http.StatusOK,
				`{"success":true,"country":"United States","country_code":"US"}`))

		logger := &debugRecorder{}
		metrics := &attemptRecorder{}
		client, err := New(&http.Client{Transport: transport},
			SetLogger(logger), SetMetrics(metrics))
		require.NoError(t, err)

		record, err := client.Lookup(context.Background(), "8.8.8.8")

		require.NoError(t, err)
		assert.Equal(t, "ipwhois", record.Source)
		assert.Equal(t, "United States US", record.Country)
		assert.Equal(t, []string{"ipapi", "ipwhois"}, metrics.providers)
		assert.Equal(t, 1, metrics.failures)
		assert.Equal(t, []string{"geolocation provider ipapi failed for 8.8.8.8: " +
			"provider returned no match: RateLimited"}, logger.lines)
	})

	t.Run("all providers fail", func(t *testing.T) {
		t.Parallel()

		transport := httpmock.NewMockTransport()
		transport.RegisterResponder(http.MethodGet, "https://ipapi.co/8.8.8.8/json/",
			httpmock.NewStringResponder(http.StatusTooManyRequests, "slow down"))
		transport.RegisterResponder(http.MethodGet, "https://ipwho.is/8.8.8.8",
			httpmock.NewErrorResponder(errors.New("dial error")))

		metrics := &attemptRecorder{}
		client, err := New(&http.Client{Transport: transport}, SetMetrics(metrics))
		require.NoError(t, err)

		record, err := client.Lookup(context.Background(), "8.8.8.8")

		require.ErrorIs(t, err, ErrLookupFailed)
		assert.EqualError(t, err, "Lookup failed across providers. Please try again later.")
		assert.Equal(t, Record{}, record)
		assert.Equal(t, 2, metrics.failures)
	})

	t.Run("bad status counts as failure", func(t *testing.T) {
		t.Parallel()

		transport := httpmock.NewMockTransport()
		transport.RegisterNoResponder(
			httpmock.NewStringResponder(http.StatusBadGateway, "upstream\ndown"))

		logger := &debugRecorder{}
		client, err := New(&http.Client{Transport: transport},
			SetProviders(Ipwhois), SetLogger(logger))
		require.NoError(t, err)

		_, err = client.Lookup(context.Background(), "1.1.1.1")

		require.ErrorIs(t, err, ErrLookupFailed)
		require.Len(t, logger.lines, 1)
		assert.Contains(t, logger.lines[0], "bad HTTP status received: 502 Bad Gateway (upstreamdown)")
	})

	t.Run("canceled context", func(t *testing.T) {
		t.Parallel()

		transport := httpmock.NewMockTransport()
		client, err := New(&http.Client{Transport: transport})
		require.NoError(t, err)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err = client.Lookup(ctx, "1.1.1.1")

		require.ErrorIs(t, err, context.Canceled)
		assert.Zero(t, transport.GetTotalCallCount())
	})
}

func Test_Client_LookupMultiple(t *testing.T) {
	t.Parallel()

	transport := httpmock.NewMockTransport()
	transport.RegisterResponder(http.MethodGet, "https://ipapi.co/1.1.1.1/json/",
		httpmock.NewStringResponder(http.StatusOK, `{"city":"Sydney"}`))
	transport.RegisterResponder(http.MethodGet, "https://ipapi.co/8.8.8.8/json/",
		httpmock.NewStringResponder(http.StatusOK, `{"city":"Mountain View"}`))

	client, err := New(&http.Client{Transport: transport}, SetProviders(Ipapi))
	require.NoError(t, err)

	records, err := client.LookupMultiple(context.Background(),
		[]string{"8.8.8.8", "1.1.1.1"})

	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "Mountain View", records[0].City)
	assert.Equal(t, "Sydney", records[1].City)

	_, err = client.LookupMultiple(context.Background(), []string{"9.9.9.9"})
	require.ErrorIs(t, err, ErrLookupFailed)
}
