package server

import (
	"context"

	"github.com/qdm12/ip-locator/pkg/geolocation"
)

type Service interface {
	Lookup(ctx context.Context, input string) (record geolocation.Record, err error)
}

type Logger interface {
	Debug(s string)
	Info(s string)
	Warn(s string)
	Error(s string)
}
