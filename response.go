package wire

import (
	"encoding/json"
	"time"
)

// Response is the normalized outcome of one completed call. It is
// constructed by the Client and never mutated afterwards.
type Response struct {
	// StatusCode is the HTTP status; 0 means the transport supplied
	// no status.
	StatusCode int

	// Headers are the response headers as the transport parsed them.
	Headers map[string]string

	// Body is the decoded-or-raw response payload.
	Body Body

	// Duration is the wall-clock span of the transport call only;
	// request construction is not included.
	Duration time.Duration
}

// Body is the two-branch result of the unconditional JSON decode
// attempt applied to every response payload: either the decoded
// structured value, or the original raw string when the payload is not
// valid JSON. There is no content-type check; decode success alone
// decides.
type Body struct {
	raw     string
	decoded any
	isJSON  bool
}

// decodeBody attempts to parse raw as JSON. An empty or non-JSON
// payload degrades to the raw branch; that is not an error.
func decodeBody(raw string) Body {
	var v any
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		return Body{raw: raw}
	}
	return Body{raw: raw, decoded: v, isJSON: true}
}

// JSON returns the decoded structured value and true when the payload
// parsed as valid JSON.
func (b Body) JSON() (any, bool) {
	return b.decoded, b.isJSON
}

// Raw returns the payload exactly as the transport produced it.
func (b Body) Raw() string {
	return b.raw
}

// IsJSON reports whether the payload decoded as valid JSON.
func (b Body) IsJSON() bool {
	return b.isJSON
}

// Value returns the decoded structured value when the payload is JSON,
// otherwise the raw string.
func (b Body) Value() any {
	if b.isJSON {
		return b.decoded
	}
	return b.raw
}

// Unmarshal re-decodes the raw payload into v using encoding/json.
func (b Body) Unmarshal(v any) error {
	return json.Unmarshal([]byte(b.raw), v)
}

// DurationMillis returns the transport call span in milliseconds.
func (r *Response) DurationMillis() float64 {
	return float64(r.Duration) / float64(time.Millisecond)
}

// GetHeader returns the value of the named header, or "" when absent.
// Lookup is exact-case, matching how the transport stored the header.
func (r *Response) GetHeader(key string) string {
	return r.Headers[key]
}

// IsSuccess returns true if the response status code is in the 2xx range
func (r *Response) IsSuccess() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// IsRedirect returns true if the response status code is in the 3xx range
func (r *Response) IsRedirect() bool {
	return r.StatusCode >= 300 && r.StatusCode < 400
}

// IsClientError returns true if the response status code is in the 4xx range
func (r *Response) IsClientError() bool {
	return r.StatusCode >= 400 && r.StatusCode < 500
}

// IsServerError returns true if the response status code is in the 5xx range
func (r *Response) IsServerError() bool {
	return r.StatusCode >= 500 && r.StatusCode < 600
}
