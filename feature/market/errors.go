package market

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
)

var (
	// ErrTimeout reports an API call that exceeded its deadline.
	ErrTimeout = errors.New("market: request timed out")
	// ErrConnection reports a network failure before any response arrived.
	ErrConnection = errors.New("market: connection failed")
)

// StatusError reports a non-success HTTP status from the marketplace.
type StatusError struct {
	Status int
	Body   string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("market: unexpected status %d", e.Status)
	}
	return fmt.Sprintf("market: unexpected status %d: %s", e.Status, e.Body)
}

// classify maps a transport error onto the package taxonomy so callers can
// branch with errors.Is.
func classify(err error) error {
	var netErr net.Error
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return fmt.Errorf("%w: %v", ErrTimeout, err)
	case errors.As(err, &netErr) && netErr.Timeout():
		return fmt.Errorf("%w: %v", ErrTimeout, err)
	default:
		return fmt.Errorf("%w: %v", ErrConnection, err)
	}
}

// newStatusError drains up to 512 bytes of the response body for context.
func newStatusError(resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
	return &StatusError{Status: resp.StatusCode, Body: strings.TrimSpace(string(body))}
}
