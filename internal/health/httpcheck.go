package health

import (
	"context"
	"fmt"
	"net/http"
)

// CheckHTTP verifies the HTTP client can reach the given URL,
// typically one of the providers used.
func CheckHTTP(ctx context.Context, client *http.Client, url string) (err error) {
	request, err := http.NewRequestWithContext(ctx, http.MethodHead, url, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}

	response, err := client.Do(request)
	if err != nil {
		return fmt.Errorf("performing request: %w", err)
	}
	_ = response.Body.Close()

	if response.StatusCode >= http.StatusInternalServerError {
		return fmt.Errorf("%w: %d", ErrHTTPStatusCodeNotOK, response.StatusCode)
	}

	return nil
}
