package http

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type roundTripFunc func(r *http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) {
	return f(r)
}

func Test_fetch(t *testing.T) {
	t.Parallel()

	errDummy := errors.New("dummy")

	canceledCtx, cancel := context.WithCancel(context.Background())
	cancel()

	data := providerData{
		url:  "https://ifconfig.co/json",
		keys: []string{"ip", "ip_addr"},
	}

	testCases := map[string]struct {
		ctx         context.Context
		status      int
		httpContent []byte
		httpErr     error
		publicIP    string
		err         error
	}{
		"canceled context": {
			ctx: canceledCtx,
			err: errors.New(`Get "https://ifconfig.co/json": context canceled`),
		},
		"http error": {
			ctx:     context.Background(),
			httpErr: errDummy,
			err:     errors.New(`Get "https://ifconfig.co/json": dummy`),
		},
		"bad status": {
			ctx:         context.Background(),
			status:      http.StatusTooManyRequests,
			httpContent: []byte("slow\ndown"),
			err:         errors.New("bad HTTP status received: 429 Too Many Requests (slowdown)"),
		},
		"malformed body": {
			ctx:         context.Background(),
			status:      http.StatusOK,
			httpContent: []byte(`<html>`),
			err:         errors.New("decoding JSON response: invalid character '<' looking for beginning of value"),
		},
		"no address field": {
			ctx:         context.Background(),
			status:      http.StatusOK,
			httpContent: []byte(`{"country":"FR"}`),
			err:         errors.New("no IP address found: in fields ip, ip_addr"),
		},
		"empty primary field": {
			ctx:         context.Background(),
			status:      http.StatusOK,
			httpContent: []byte(`{"ip":"","ip_addr":"1.67.201.251"}`),
			publicIP:    "1.67.201.251",
		},
		"primary field": {
			ctx:         context.Background(),
			status:      http.StatusOK,
			httpContent: []byte(`{"ip":"2001:db8::1","ip_addr":"1.67.201.251"}`),
			publicIP:    "2001:db8::1",
		},
		"field not a string": {
			ctx:         context.Background(),
			status:      http.StatusOK,
			httpContent: []byte(`{"ip":12}`),
			err:         errors.New("no IP address found: in fields ip, ip_addr"),
		},
		"malformed address": {
			ctx:         context.Background(),
			status:      http.StatusOK,
			httpContent: []byte(`{"ip":"not an ip"}`),
			err:         errors.New(`IP address malformed: "not an ip" in field ip`),
		},
		"malformed primary field falls back": {
			ctx:         context.Background(),
			status:      http.StatusOK,
			httpContent: []byte(`{"ip":"not an ip","ip_addr":"1.67.201.251"}`),
			publicIP:    "1.67.201.251",
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			client := &http.Client{
				Transport: roundTripFunc(func(r *http.Request) (*http.Response, error) {
					assert.Equal(t, data.url, r.URL.String())
					assert.Equal(t, "application/json", r.Header.Get("Accept"))
					err := r.Context().Err()
					if err != nil {
						return nil, err
					} else if testCase.httpErr != nil {
						return nil, testCase.httpErr
					}
					return &http.Response{
						StatusCode: testCase.status,
						Body:       io.NopCloser(bytes.NewReader(testCase.httpContent)),
					}, nil
				}),
			}

			publicIP, err := fetch(testCase.ctx, client, data)

			if testCase.err != nil {
				require.Error(t, err)
				assert.Equal(t, testCase.err.Error(), err.Error())
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, testCase.publicIP, publicIP)
		})
	}
}
