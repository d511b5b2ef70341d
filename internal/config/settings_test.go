package config

import (
	"testing"
	"time"

	"github.com/qdm12/gosettings/reader"
	"github.com/qdm12/ip-locator/pkg/geolocation"
	"github.com/qdm12/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Settings_String(t *testing.T) {
	t.Parallel()

	var defaultSettings Config
	defaultSettings.SetDefaults()

	s := defaultSettings.String()

	const expected = `Settings summary:
├── HTTP client
|   └── Timeout: 10s
├── Resolver: use Go default resolver
├── Server
|   ├── Listening address: :8080
|   ├── Root URL: /
|   └── Assets: embedded
├── Public IP fetching
|   ├── HTTP timeout: 5s
|   ├── HTTP providers
|   |   └── all
|   └── DNS enabled: no
├── Geolocation
|   ├── Timeout: 5s
|   └── Providers
|       └── all
├── Health
|   └── Server listening address: 127.0.0.1:9999
├── Metrics
|   └── Path: /metrics
└── Logger
    ├── Level: INFO
    └── Caller: hidden`
	assert.Equal(t, expected, s)
}

func Test_Config_Validate(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		modify     func(c *Config)
		errWrapped error
	}{
		"defaults": {
			modify: func(*Config) {},
		},
		"relative root URL": {
			modify:     func(c *Config) { c.Server.RootURL = "locator" },
			errWrapped: ErrRootURLNotAbsolute,
		},
		"missing assets directory": {
			modify:     func(c *Config) { c.Server.AssetsDir = ptrTo("/does/not/exist") },
			errWrapped: ErrAssetsDirNotFound,
		},
		"custom HTTP provider": {
			modify: func(c *Config) {
				c.PubIP.HTTPProviders = []string{"https://example.com/ip", "ipify"}
			},
		},
		"resolver address without host": {
			modify:     func(c *Config) { c.Resolver.Address = ptrTo(":53") },
			errWrapped: ErrAddressHostEmpty,
		},
		"resolver timeout too low": {
			modify:     func(c *Config) { c.Resolver.Timeout = time.Millisecond },
			errWrapped: ErrTimeoutTooLow,
		},
		"negative geolocation timeout": {
			modify:     func(c *Config) { c.Geolocation.Timeout = -time.Second },
			errWrapped: ErrTimeoutNegative,
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			var config Config
			testCase.modify(&config)
			config.SetDefaults()

			err := config.Validate()

			assert.ErrorIs(t, err, testCase.errWrapped)
		})
	}

	t.Run("unknown geolocation provider", func(t *testing.T) {
		t.Parallel()

		var config Config
		config.Geolocation.Providers = []string{"maxmind"}
		config.SetDefaults()

		err := config.Validate()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "geolocation settings: providers: ")
	})
}

func Test_stringsToHTTPProviders(t *testing.T) {
	t.Parallel()

	providers := stringsToHTTPProviders([]string{
		"ifconfig", "all", "https://example.com/ip",
	})

	assert.Equal(t, []string{"ifconfig", "ipify", "ipinfo", "url:https://example.com/ip"},
		func() (s []string) {
			for _, provider := range providers {
				s = append(s, string(provider))
			}
			return s
		}())
}

func Test_Geolocation_ToOptions(t *testing.T) {
	t.Parallel()

	settings := Geolocation{Providers: []string{"ipwhois", "all"}}
	settings.setDefaults()

	options := settings.ToOptions()

	require.Len(t, options, 2)
	_, err := geolocation.New(nil, options...)
	require.NoError(t, err)
}

func Test_parseLogLevel(t *testing.T) {
	t.Parallel()

	level, err := parseLogLevel("WARNING")
	require.NoError(t, err)
	assert.Equal(t, log.LevelWarn, level)

	_, err = parseLogLevel("verbose")
	require.ErrorIs(t, err, ErrLogLevelUnknown)
}

func Test_Config_Read(t *testing.T) { //nolint:paralleltest
	t.Setenv("PORT", "")
	t.Setenv("LISTENING_ADDRESS", ":8000")
	t.Setenv("RESOLVER_ADDRESS", "1.1.1.1")
	t.Setenv("ROOT_URL", "/Locator")
	t.Setenv("PUBLICIP_HTTP_PROVIDERS", "ifconfig,https://Example.com/IP")
	t.Setenv("PUBLICIP_DNS_ENABLED", "yes")
	t.Setenv("GEOLOCATION_PROVIDERS", "ipwhois")
	t.Setenv("GEOLOCATION_TIMEOUT", "2s")
	t.Setenv("METRICS_ENABLED", "no")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_CALLER", "short")

	r := reader.New(reader.Settings{})
	warner := &warnfRecorder{}

	var config Config
	err := config.Read(r, warner)
	require.NoError(t, err)
	config.SetDefaults()

	assert.Equal(t, ":8000", config.Server.ListeningAddress)
	assert.Equal(t, "1.1.1.1:53", *config.Resolver.Address)
	assert.Equal(t, "/Locator", config.Server.RootURL)
	assert.Equal(t, []string{"ifconfig", "https://Example.com/IP"}, config.PubIP.HTTPProviders)
	assert.True(t, *config.PubIP.DNSEnabled)
	assert.Equal(t, []string{"ipwhois"}, config.Geolocation.Providers)
	assert.Equal(t, 2*time.Second, config.Geolocation.Timeout)
	assert.False(t, *config.Metrics.Enabled)
	assert.Equal(t, log.LevelDebug, *config.Logger.Level)
	assert.True(t, *config.Logger.Caller)
	assert.Empty(t, warner.lines)
}

type warnfRecorder struct {
	lines []string
}

func (w *warnfRecorder) Warnf(format string, _ ...interface{}) {
	w.lines = append(w.lines, format)
}
