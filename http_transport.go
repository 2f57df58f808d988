package wire

import (
	"bytes"
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"
)

// HTTPTransport is the default Transport, backed by net/http. Every
// call gets its own http.Client configured from the request's timeout,
// SSL, and redirect options, so a single HTTPTransport is safe to
// share across goroutines.
type HTTPTransport struct{}

// NewHTTPTransport creates the default net/http-backed transport.
func NewHTTPTransport() *HTTPTransport {
	return &HTTPTransport{}
}

// Send executes the request and returns the raw status, headers, and
// body. All failure modes surface as *TransportError.
func (t *HTTPTransport) Send(ctx context.Context, req *Request) (*RawResult, error) {
	target := req.URL
	if len(req.Query) > 0 {
		sep := "?"
		if strings.Contains(target, "?") {
			sep = "&"
		}
		target += sep + req.Query.Encode()
	}

	var bodyReader io.Reader
	if req.Body != nil {
		bodyReader = bytes.NewReader(req.Body)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, target, bodyReader)
	if err != nil {
		return nil, &TransportError{Message: "building request for " + target, Err: err}
	}

	for key, value := range req.Headers {
		httpReq.Header.Set(key, value)
	}

	httpResp, err := t.newEngine(req).Do(httpReq)
	if err != nil {
		return nil, &TransportError{Message: fmt.Sprintf("%s %s failed", req.Method, target), Err: err}
	}
	defer httpResp.Body.Close()

	rawBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, &TransportError{Message: "reading response body", Err: err}
	}

	headers := make(map[string]string, len(httpResp.Header))
	for key, values := range httpResp.Header {
		headers[key] = strings.Join(values, ", ")
	}

	return &RawResult{
		Status:  httpResp.StatusCode,
		Headers: headers,
		Body:    string(rawBody),
	}, nil
}

// newEngine builds a per-call http.Client from the request's protocol
// options. A fresh client per call keeps the transport reentrant with
// no shared mutable state.
func (t *HTTPTransport) newEngine(req *Request) *http.Client {
	dialer := &net.Dialer{}
	if req.ConnectTimeout > 0 {
		dialer.Timeout = time.Duration(req.ConnectTimeout) * time.Second
	}

	engine := &http.Client{
		Transport: &http.Transport{
			DialContext: dialer.DialContext,
			TLSClientConfig: &tls.Config{
				InsecureSkipVerify: req.SkipSSL,
			},
		},
	}

	if req.Timeout > 0 {
		engine.Timeout = time.Duration(req.Timeout) * time.Second
	}

	if !req.FollowRedirects {
		engine.CheckRedirect = func(_ *http.Request, _ []*http.Request) error {
			return http.ErrUseLastResponse
		}
	} else {
		max := req.MaxRedirects
		engine.CheckRedirect = func(_ *http.Request, via []*http.Request) error {
			if len(via) > max {
				return fmt.Errorf("stopped after %d redirects", max)
			}
			return nil
		}
	}

	return engine
}
