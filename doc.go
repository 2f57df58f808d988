// Package wire is a small, composable HTTP client façade for REST-style
// calls. A Builder accumulates base configuration (base URL, default
// headers, timeouts, SSL policy) and produces an immutable Client; the
// Client turns each call into a fully-resolved Request, dispatches it
// through a swappable Transport, and normalizes the outcome into a
// Response with automatic JSON decoding and wall-clock timing.
//
// Basic Usage:
//
//	c := wire.NewBuilder("https://api.example.com").
//	    BaseHeaders(map[string]string{"Authorization": "Bearer token"}).
//	    Timeout(15).
//	    Build()
//
//	resp, err := c.Get(context.Background(), "/users", &wire.Options{
//	    Query: url.Values{"limit": {"10"}},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Printf("Status: %d\n", resp.StatusCode)
//	if v, ok := resp.Body.JSON(); ok {
//	    fmt.Printf("Decoded: %v\n", v)
//	}
//
// Sending a serialized body:
//
//	resp, err := c.Post(context.Background(), "/users", &wire.Options{
//	    Headers: map[string]string{"Content-Type": "application/json"},
//	    Body:    `{"name":"John"}`,
//	})
//
// The Client never interprets status codes: a 404 or 500 completes
// normally as a Response and the decision is left to the caller. Only
// transport-level failures (connection refused, DNS failure, timeout,
// TLS failure) surface as errors, always of type *TransportError.
//
// Thread Safety:
//
// Client holds no per-call mutable state and is safe for concurrent use
// as long as its Transport is; HTTPTransport, the default, creates a
// fresh connection handle per call and is safe. Builder instances are
// for sequential fluent construction only.
package wire
