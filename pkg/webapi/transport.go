package webapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// do sends r through the retry engine.
func (c *Client) do(ctx context.Context, r *Request) (*http.Response, error) {
	return c.withRetry(ctx, func() (*http.Response, error) {
		req, err := r.build(ctx, c.baseURL)
		if err != nil {
			return nil, fmt.Errorf("webapi: failed to create request: %w", err)
		}
		return c.send(req)
	})
}

// send executes a single HTTP request.
func (c *Client) send(req *http.Request) (*http.Response, error) {
	c.logDebugf("webapi: %s %s", req.Method, req.URL.Redacted())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &TransportError{Method: req.Method, URL: req.URL.Redacted(), Err: err}
	}
	return resp, nil
}

// apiErrorBody is the error envelope of the Web API.
type apiErrorBody struct {
	Error struct {
		Status  int    `json:"status"`
		Message string `json:"message"`
	} `json:"error"`
}

// readBody reads and closes the response body. Unsuccessful statuses are
// returned as *StatusError.
func readBody(resp *http.Response) ([]byte, error) {
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		te := &TransportError{Err: fmt.Errorf("failed to read response: %w", err)}
		if resp.Request != nil {
			te.Method = resp.Request.Method
			te.URL = resp.Request.URL.Redacted()
		}
		return nil, te
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		statusErr := &StatusError{StatusCode: resp.StatusCode}
		var apiErr apiErrorBody
		if json.Unmarshal(body, &apiErr) == nil {
			statusErr.Message = apiErr.Error.Message
		}
		return nil, statusErr
	}

	return body, nil
}

func decode(data []byte, v any) error {
	if err := json.Unmarshal(data, v); err != nil {
		return &DecodeError{Err: err}
	}
	return nil
}

// load sends r and decodes the JSON body into T. Use for GET requests
// that should not be cached.
func load[T any](ctx context.Context, c *Client, r *Request) (T, error) {
	var result T

	resp, err := c.do(ctx, r)
	if err != nil {
		return result, err
	}
	body, err := readBody(resp)
	if err != nil {
		return result, err
	}
	if err := decode(body, &result); err != nil {
		return result, err
	}

	return result, nil
}

// loadCached is load behind the response cache.
//
// A cache hit is decoded and returned without contacting the network,
// however old it is. On a miss the raw body is written back under
// bucket/key after it decodes successfully.
func loadCached[T any](ctx context.Context, c *Client, r *Request, bucket, key string) (Cached[T], error) {
	var result Cached[T]

	if c.cache != nil {
		if entry, ok := c.cache.Get(ctx, bucket, key); ok {
			if err := decode(entry.Data, &result.Data); err != nil {
				return result, err
			}
			c.logDebugf("webapi: cache hit %s/%s", bucket, key)
			result.FromCache = true
			result.CachedAt = entry.Modified
			return result, nil
		}
	}

	resp, err := c.do(ctx, r)
	if err != nil {
		return result, err
	}
	body, err := readBody(resp)
	if err != nil {
		return result, err
	}
	if err := decode(body, &result.Data); err != nil {
		return result, err
	}

	c.storeCached(ctx, bucket, key, body)
	return result, nil
}

// storeCached writes body to the cache. Failures are only logged.
func (c *Client) storeCached(ctx context.Context, bucket, key string, body []byte) {
	if c.cache == nil {
		return
	}
	if err := c.cache.Set(ctx, bucket, key, body); err != nil {
		c.logDebugf("webapi: failed to cache %s/%s: %v", bucket, key, err)
	}
}

// sendEmptyJSON sends r with an empty JSON object as body and discards
// the response. Use for PUT and DELETE requests.
func (c *Client) sendEmptyJSON(ctx context.Context, r *Request) error {
	r.body = []byte("{}")

	resp, err := c.do(ctx, r)
	if err != nil {
		return err
	}
	_, err = readBody(resp)
	return err
}
