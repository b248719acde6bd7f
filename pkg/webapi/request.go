package webapi

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// Request is an authenticated Web API request.
//
// The method, path and token are fixed once built. Query parameters may
// be appended with Param until the request is dispatched.
type Request struct {
	Method string
	Path   string
	Query  url.Values

	token string
	body  []byte
}

// newRequest builds an authenticated request for path, relative to the
// API base URL.
func (c *Client) newRequest(method, path string) (*Request, error) {
	tok, err := c.tokens.Token()
	if err != nil {
		return nil, &AuthError{Err: err}
	}
	if tok.AccessToken == "" {
		return nil, &AuthError{Err: errors.New("empty access token")}
	}

	return &Request{
		Method: method,
		Path:   path,
		Query:  url.Values{},
		token:  tok.AccessToken,
	}, nil
}

func (c *Client) get(path string) (*Request, error) {
	return c.newRequest(http.MethodGet, path)
}

func (c *Client) put(path string) (*Request, error) {
	return c.newRequest(http.MethodPut, path)
}

func (c *Client) delete(path string) (*Request, error) {
	return c.newRequest(http.MethodDelete, path)
}

// Param appends a query parameter and returns the request for chaining.
func (r *Request) Param(key, value string) *Request {
	r.Query.Add(key, value)
	return r
}

// clone returns a copy of the request with its own query parameters.
func (r *Request) clone() *Request {
	cp := *r
	cp.Query = make(url.Values, len(r.Query))
	for k, v := range r.Query {
		cp.Query[k] = append([]string(nil), v...)
	}
	return &cp
}

// build creates a fresh *http.Request. It is called once per attempt so
// retries never reuse a consumed body.
func (r *Request) build(ctx context.Context, baseURL string) (*http.Request, error) {
	u := baseURL + strings.TrimPrefix(r.Path, "/")
	if len(r.Query) > 0 {
		u += "?" + r.Query.Encode()
	}

	var body io.Reader
	if r.body != nil {
		body = bytes.NewReader(r.body)
	}

	req, err := http.NewRequestWithContext(ctx, r.Method, u, body)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Authorization", "Bearer "+r.token)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)
	if r.body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return req, nil
}

const userAgent = "spindle/1.0"
