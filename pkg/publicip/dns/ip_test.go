package dns

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/miekg/dns"
	"github.com/qdm12/ip-locator/pkg/publicip/dns/mock_dns"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Fetcher_IP(t *testing.T) {
	t.Parallel()

	t.Run("second provider answers", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)

		cloudflare := mock_dns.NewMockClient(ctrl)
		cloudflare.EXPECT().
			ExchangeContext(gomock.Any(), gomock.Any(), "1dot1dot1dot1.cloudflare-dns.com:853").
			Return(nil, time.Duration(0), errors.New("tls handshake timeout"))
		opendns := mock_dns.NewMockClient(ctrl)
		opendns.EXPECT().
			ExchangeContext(gomock.Any(), gomock.Any(), "dns.opendns.com:853").
			Return(&dns.Msg{Answer: []dns.RR{&dns.TXT{Txt: []string{"1.2.3.4"}}}},
				time.Millisecond, nil)

		fetcher := &Fetcher{
			providers: []Provider{Cloudflare, OpenDNS},
			clients: map[Provider]Client{
				Cloudflare: cloudflare,
				OpenDNS:    opendns,
			},
			timeout: time.Second,
			logger:  noopLogger{},
			metrics: noopMetrics{},
		}

		publicIP, err := fetcher.IP(context.Background())

		require.NoError(t, err)
		assert.Equal(t, "1.2.3.4", publicIP)
	})

	t.Run("all providers fail", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)

		client := mock_dns.NewMockClient(ctrl)
		client.EXPECT().
			ExchangeContext(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(&dns.Msg{}, time.Millisecond, nil)

		fetcher := &Fetcher{
			providers: []Provider{Cloudflare},
			clients:   map[Provider]Client{Cloudflare: client},
			timeout:   time.Second,
			logger:    noopLogger{},
			metrics:   noopMetrics{},
		}

		_, err := fetcher.IP(context.Background())

		require.ErrorIs(t, err, ErrAllProvidersFailed)
	})
}

func Test_New(t *testing.T) {
	t.Parallel()

	fetcher, err := New(SetProviders(OpenDNS), SetTimeout(time.Second))
	require.NoError(t, err)
	assert.Equal(t, []Provider{OpenDNS}, fetcher.providers)
	assert.Len(t, fetcher.clients, 1)
	assert.Equal(t, time.Second, fetcher.timeout)

	_, err = New(SetProviders("invalid"))
	assert.EqualError(t, err, "unknown public IP echo DNS provider: invalid")
}
