package wire

import (
	"net/url"
)

// Request is the fully-resolved description of one outgoing call. The
// Client builds a fresh Request per call with every default already
// merged in; nothing downstream joins URLs or resolves options again.
// A Request is never mutated after construction.
type Request struct {
	// Method is the HTTP method, uppercased at the boundary.
	Method string

	// URL is the complete target, base URL and endpoint already joined.
	// Query parameters are not part of it; the transport appends them.
	URL string

	// Headers holds the merge-resolved header set, case-sensitive as
	// stored.
	Headers map[string]string

	// Query holds unencoded query parameters. Encoding happens inside
	// the transport so test doubles see the caller's values verbatim.
	Query url.Values

	// Body is the outgoing payload, already serialized by the caller.
	// nil means no body.
	Body []byte

	// Timeout and ConnectTimeout are in seconds; zero means no explicit
	// limit enforced by this layer.
	Timeout        int
	ConnectTimeout int

	// SkipSSL disables certificate verification when true.
	SkipSSL bool

	FollowRedirects bool
	MaxRedirects    int
}
