package webapi

import (
	"context"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// defaultRetryAfter is the delay used when a rate limited response has no
// usable Retry-After header.
const defaultRetryAfter = 2 * time.Second

// withRetry calls attempt until it returns something other than a rate
// limited response.
//
// On 429 it waits for the advertised Retry-After delay (or 2 seconds) and
// tries again. There is no attempt limit and the delay never grows. Errors
// from attempt are returned immediately, and every other status is handed
// back to the caller untouched.
func (c *Client) withRetry(ctx context.Context, attempt func() (*http.Response, error)) (*http.Response, error) {
	for {
		resp, err := attempt()
		if err != nil {
			return nil, err
		}
		if resp.StatusCode != http.StatusTooManyRequests {
			return resp, nil
		}

		delay := retryAfter(resp.Header)
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()

		c.logDebugf("webapi: rate limited, retrying in %s", delay)
		if err := c.sleep(ctx, delay); err != nil {
			return nil, err
		}
	}
}

// retryAfter reads the Retry-After header as whole seconds.
func retryAfter(h http.Header) time.Duration {
	secs, err := strconv.ParseUint(strings.TrimSpace(h.Get("Retry-After")), 10, 32)
	if err != nil {
		return defaultRetryAfter
	}
	return time.Duration(secs) * time.Second
}

// sleep waits for the specified duration or until context is cancelled.
func sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
