package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/qdm12/ip-locator/pkg/ipaddress"
)

var (
	ErrBadHTTPStatus = errors.New("bad HTTP status received")
	ErrNoIPFound     = errors.New("no IP address found")
	ErrIPMalformed   = errors.New("IP address malformed")
)

func fetch(ctx context.Context, client *http.Client, data providerData) (
	publicIP string, err error) {
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, data.url, nil)
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	request.Header.Set("Accept", "application/json")

	response, err := client.Do(request)
	if err != nil {
		return "", err
	}
	defer response.Body.Close()

	if response.StatusCode < http.StatusOK || response.StatusCode >= http.StatusMultipleChoices {
		return "", fmt.Errorf("%w: %d %s (%s)", ErrBadHTTPStatus,
			response.StatusCode, http.StatusText(response.StatusCode),
			bodyToSingleLine(response.Body))
	}

	var fields map[string]any
	err = json.NewDecoder(response.Body).Decode(&fields)
	if err != nil {
		return "", fmt.Errorf("decoding JSON response: %w", err)
	}

	var malformedErr error
	for _, key := range data.keys {
		value, _ := fields[key].(string)
		value = strings.TrimSpace(value)
		if value == "" {
			continue
		}

		_, err = ipaddress.Validate(value)
		if err != nil {
			if malformedErr == nil {
				malformedErr = fmt.Errorf("%w: %q in field %s", ErrIPMalformed, value, key)
			}
			continue
		}
		return value, nil
	}

	if malformedErr != nil {
		return "", malformedErr
	}
	return "", fmt.Errorf("%w: in fields %s", ErrNoIPFound, strings.Join(data.keys, ", "))
}

func bodyToSingleLine(body io.Reader) (s string) {
	const maxBytes = 512
	b, err := io.ReadAll(io.LimitReader(body, maxBytes))
	if err != nil {
		return ""
	}
	line := strings.ReplaceAll(string(b), "\n", "")
	line = strings.ReplaceAll(line, "\r", "")
	return line
}
