package wire

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"
)

// Baseline option values applied when neither the call nor the builder
// supplies one.
const (
	DefaultTimeout         = 10
	DefaultConnectTimeout  = 5
	DefaultFollowRedirects = true
	DefaultMaxRedirects    = 5
)

// Client issues HTTP calls against a base URL through a Transport.
// It is produced by a Builder, holds no per-call mutable state, and is
// safe for concurrent use when its Transport is.
type Client struct {
	baseURL   string
	transport Transport
	defaults  defaults
}

// defaults holds the client-level option values, already merged over
// the fixed baseline at build time.
type defaults struct {
	headers         map[string]string
	timeout         int
	connectTimeout  int
	skipSSL         bool
	followRedirects bool
	maxRedirects    int
}

// Options carries the per-call overrides for a single request. Every
// recognized option is an explicit typed field; a nil pointer means
// "not specified, use the client default".
type Options struct {
	// Headers are merged over the client's default headers; on a key
	// collision the per-call value wins.
	Headers map[string]string

	// Query is used as-is; there is no default query to merge with.
	Query url.Values

	// Body must already be serialized: a string or a []byte. Any other
	// type is rejected — the client never JSON-encodes bodies on the
	// caller's behalf.
	Body any

	Timeout         *int
	ConnectTimeout  *int
	SkipSSL         *bool
	FollowRedirects *bool
	MaxRedirects    *int
}

// BaseURL returns the client's base URL, trailing slashes stripped.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Transport returns the transport the client dispatches through.
func (c *Client) Transport() Transport {
	return c.transport
}

// WithBaseURL returns a new Client that shares this client's transport
// and defaults but targets a different base URL. The receiver is never
// modified; the two clients share no mutable state.
func (c *Client) WithBaseURL(baseURL string) *Client {
	derived := &Client{
		baseURL:   strings.TrimRight(baseURL, "/"),
		transport: c.transport,
		defaults:  c.defaults,
	}
	derived.defaults.headers = make(map[string]string, len(c.defaults.headers))
	for key, value := range c.defaults.headers {
		derived.defaults.headers[key] = value
	}
	return derived
}

// Do builds a fully-resolved Request for the method/endpoint pair,
// dispatches it through the transport, and normalizes the outcome.
// The method token is uppercased at this boundary regardless of how
// the caller spells it.
//
// Transport failures are returned unchanged and no Response is
// produced for them. Status codes are never interpreted here: a 4xx or
// 5xx completes normally.
func (c *Client) Do(ctx context.Context, method, endpoint string, opts *Options) (*Response, error) {
	req, err := c.NewRequest(method, endpoint, opts)
	if err != nil {
		return nil, err
	}
	return c.Send(ctx, req)
}

// Get issues a GET request to the endpoint.
func (c *Client) Get(ctx context.Context, endpoint string, opts *Options) (*Response, error) {
	return c.Do(ctx, "GET", endpoint, opts)
}

// Post issues a POST request to the endpoint.
func (c *Client) Post(ctx context.Context, endpoint string, opts *Options) (*Response, error) {
	return c.Do(ctx, "POST", endpoint, opts)
}

// Put issues a PUT request to the endpoint.
func (c *Client) Put(ctx context.Context, endpoint string, opts *Options) (*Response, error) {
	return c.Do(ctx, "PUT", endpoint, opts)
}

// Patch issues a PATCH request to the endpoint.
func (c *Client) Patch(ctx context.Context, endpoint string, opts *Options) (*Response, error) {
	return c.Do(ctx, "PATCH", endpoint, opts)
}

// Delete issues a DELETE request to the endpoint.
func (c *Client) Delete(ctx context.Context, endpoint string, opts *Options) (*Response, error) {
	return c.Do(ctx, "DELETE", endpoint, opts)
}

// NewRequest resolves (method, endpoint, per-call options) into an
// immutable Request. Resolution order for every option: per-call value
// if present, else client default (which was itself merged over the
// fixed baseline at build time). Building a request has no side
// effects; the same inputs always produce an equal descriptor.
func (c *Client) NewRequest(method, endpoint string, opts *Options) (*Request, error) {
	if opts == nil {
		opts = &Options{}
	}

	target := endpoint
	if c.baseURL != "" {
		target = c.baseURL + "/" + strings.TrimLeft(endpoint, "/")
	}

	headers := make(map[string]string, len(c.defaults.headers)+len(opts.Headers))
	for key, value := range c.defaults.headers {
		headers[key] = value
	}
	for key, value := range opts.Headers {
		headers[key] = value
	}

	query := make(url.Values, len(opts.Query))
	for key, values := range opts.Query {
		query[key] = append([]string(nil), values...)
	}

	body, err := coerceBody(opts.Body)
	if err != nil {
		return nil, err
	}

	return &Request{
		Method:          strings.ToUpper(method),
		URL:             target,
		Headers:         headers,
		Query:           query,
		Body:            body,
		Timeout:         intValue(opts.Timeout, c.defaults.timeout),
		ConnectTimeout:  intValue(opts.ConnectTimeout, c.defaults.connectTimeout),
		SkipSSL:         boolValue(opts.SkipSSL, c.defaults.skipSSL),
		FollowRedirects: boolValue(opts.FollowRedirects, c.defaults.followRedirects),
		MaxRedirects:    intValue(opts.MaxRedirects, c.defaults.maxRedirects),
	}, nil
}

// Send dispatches an already-built request and normalizes the raw
// result. Only the transport call is timed; building is excluded.
func (c *Client) Send(ctx context.Context, req *Request) (*Response, error) {
	start := time.Now()
	raw, err := c.transport.Send(ctx, req)
	elapsed := time.Since(start)
	if err != nil {
		return nil, err
	}

	status := 0
	headers := make(map[string]string)
	body := ""
	if raw != nil {
		status = raw.Status
		if raw.Headers != nil {
			headers = raw.Headers
		}
		body = raw.Body
	}

	return &Response{
		StatusCode: status,
		Headers:    headers,
		Body:       decodeBody(body),
		Duration:   elapsed,
	}, nil
}

// coerceBody accepts the pre-serialized body forms. Structured values
// are rejected rather than silently JSON-encoded.
func coerceBody(v any) ([]byte, error) {
	switch b := v.(type) {
	case nil:
		return nil, nil
	case []byte:
		return b, nil
	case string:
		return []byte(b), nil
	default:
		return nil, fmt.Errorf("unsupported body type %T: serialize the body to a string or []byte first", v)
	}
}

func intValue(v *int, fallback int) int {
	if v != nil {
		return *v
	}
	return fallback
}

func boolValue(v *bool, fallback bool) bool {
	if v != nil {
		return *v
	}
	return fallback
}
