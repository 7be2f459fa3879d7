package ontario

import (
	"fmt"
	"strings"

	"github.com/go-resty/resty/v2"
)

const maxErrorBody = 200

// APIError is a non-2xx response from the provider, carrying the status and
// a truncated body for diagnostics.
type APIError struct {
	Status int
	URL    string
	Body   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("ontario: HTTP %d for %s: %s", e.Status, e.URL, e.Body)
}

func newAPIError(resp *resty.Response) error {
	body := strings.TrimSpace(string(resp.Body()))
	if len(body) > maxErrorBody {
		body = body[:maxErrorBody]
	}
	return &APIError{
		Status: resp.StatusCode(),
		URL:    resp.Request.URL,
		Body:   body,
	}
}
