package wire

import (
	"context"
	"fmt"
	"strings"
)

// RawResult is what a Transport hands back: the wire-level status,
// parsed headers, and the body exactly as received. No decoding is
// applied at this layer.
type RawResult struct {
	Status  int
	Headers map[string]string
	Body    string
}

// Transport is the boundary a concrete network backend must satisfy.
// Send executes the fully-resolved request and returns the raw result,
// or a *TransportError when the call cannot be completed at all
// (connection refused, DNS failure, timeout expiry, TLS failure,
// backend initialization failure).
//
// Implementations must be safe for concurrent Send calls if the Client
// using them is shared across goroutines.
type Transport interface {
	Send(ctx context.Context, req *Request) (*RawResult, error)
}

// TransportError is the single error kind the transport layer
// produces. It carries the backend's diagnostic message; the Client
// propagates it to the caller unchanged, with no retry or wrapping.
type TransportError struct {
	Message string
	Err     error
}

// Error returns the diagnostic message.
func (e *TransportError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("transport: %s: %v", e.Message, e.Err)
	}
	return "transport: " + e.Message
}

// Unwrap returns the underlying backend error, if any.
func (e *TransportError) Unwrap() error {
	return e.Err
}

// ParseRawHeaders parses a raw header block into a header mapping.
// Lines are split on CRLF, each line on its first colon, and both
// sides are trimmed. Lines without a colon — the status line included —
// are silently dropped.
func ParseRawHeaders(block string) map[string]string {
	headers := make(map[string]string)
	for _, line := range strings.Split(block, "\r\n") {
		idx := strings.Index(line, ":")
		if idx < 0 {
			continue
		}
		key := strings.TrimSpace(line[:idx])
		value := strings.TrimSpace(line[idx+1:])
		headers[key] = value
	}
	return headers
}

// SplitRawResponse separates a combined response buffer into its parsed
// header mapping and body string, for engines that return headers and
// body in a single buffer together with the header-block byte length.
func SplitRawResponse(buf []byte, headerLen int) (map[string]string, string) {
	if headerLen < 0 {
		headerLen = 0
	}
	if headerLen > len(buf) {
		headerLen = len(buf)
	}
	return ParseRawHeaders(string(buf[:headerLen])), string(buf[headerLen:])
}
