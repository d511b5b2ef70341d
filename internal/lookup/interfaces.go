package lookup

import (
	"context"

	"github.com/qdm12/ip-locator/internal/view"
	"github.com/qdm12/ip-locator/pkg/geolocation"
)

//go:generate mockgen -destination=mock_$GOPACKAGE/$GOFILE . SelfResolver,Geolocator,Display

type SelfResolver interface {
	IP(ctx context.Context) (publicIP string, err error)
}

type Geolocator interface {
	Lookup(ctx context.Context, address string) (record geolocation.Record, err error)
	LookupMultiple(ctx context.Context, addresses []string) (records []geolocation.Record, err error)
}

type Metrics interface {
	LookupDone(pipeline string, err error)
}

type Logger interface {
	Debug(s string)
	Info(s string)
}

// Display is the target the interactive flows report to.
type Display interface {
	ShowStatus(message string)
	HideStatus()
	ShowError(message string)
	ClearError()
	Render(viewModel view.ViewModel)
}

type noopMetrics struct{}

func (noopMetrics) LookupDone(string, error) {}
