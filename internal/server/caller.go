package server

import (
	"fmt"
	"net"
	"net/http"

	"github.com/qdm12/ip-locator/pkg/ipaddress"
	"github.com/qdm12/ip-locator/pkg/publicip"
)

// callerAddress returns the IP address of the client sending the request.
// The remote address is rewritten by middleware.RealIP from the
// True-Client-IP, X-Real-IP or X-Forwarded-For headers when present.
func callerAddress(r *http.Request) (address string, err error) {
	address = r.RemoteAddr
	host, _, err := net.SplitHostPort(address)
	if err == nil {
		address = host
	}

	_, err = ipaddress.Validate(address)
	if err != nil {
		return "", fmt.Errorf("%w: remote address %q", publicip.ErrNoIPFound, r.RemoteAddr)
	}
	return address, nil
}
