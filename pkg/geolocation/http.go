package geolocation

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
)

func get(ctx context.Context, client *http.Client, p provider,
	address string) (record Record, err error) {
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, p.url(address), nil)
	if err != nil {
		return record, fmt.Errorf("creating request: %w", err)
	}
	request.Header.Set("Accept", "application/json")

	response, err := client.Do(request)
	if err != nil {
		return record, fmt.Errorf("doing request: %w", err)
	}
	defer response.Body.Close()

	switch {
	case response.StatusCode == http.StatusForbidden,
		response.StatusCode == http.StatusTooManyRequests:
		return record, fmt.Errorf("%w (%s)", ErrTooManyRequests,
			bodyToSingleLine(response.Body))
	case response.StatusCode < http.StatusOK,
		response.StatusCode >= http.StatusMultipleChoices:
		return record, fmt.Errorf("%w: %d %s (%s)", ErrBadHTTPStatus,
			response.StatusCode, http.StatusText(response.StatusCode),
			bodyToSingleLine(response.Body))
	}

	return p.normalize(address, response.Body)
}

func bodyToSingleLine(body io.Reader) (s string) {
	b, err := io.ReadAll(body)
	if err != nil {
		return ""
	}
	data := string(b)
	return toSingleLine(data)
}

func toSingleLine(s string) (line string) {
	line = strings.ReplaceAll(s, "\n", "")
	line = strings.ReplaceAll(line, "\r", "")
	line = strings.ReplaceAll(line, "  ", " ")
	line = strings.ReplaceAll(line, "  ", " ")
	return line
}
