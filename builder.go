package wire

import (
	"strings"
)

// Defaults is the typed bundle of client-level option values a Builder
// accumulates. A nil pointer leaves the corresponding baseline value in
// effect; Headers merge key-wise across repeated applications while
// scalar fields replace.
type Defaults struct {
	Headers         map[string]string
	Timeout         *int
	ConnectTimeout  *int
	SkipSSL         *bool
	FollowRedirects *bool
	MaxRedirects    *int
}

// Builder is the fluent configuration surface for a Client. It is
// meant for sequential construction:
//
//	c := wire.NewBuilder("https://api.example.com").
//	    Timeout(15).
//	    SkipSSL(false).
//	    Build()
type Builder struct {
	baseURL   string
	transport Transport
	defaults  Defaults
}

// NewBuilder starts a builder for the given base URL. Trailing slashes
// are stripped immediately; pass "" to make every endpoint an absolute
// URL.
func NewBuilder(baseURL string) *Builder {
	return &Builder{baseURL: strings.TrimRight(baseURL, "/")}
}

// WithTransport sets the transport the built client dispatches
// through. When never called, Build falls back to NewHTTPTransport.
func (b *Builder) WithTransport(t Transport) *Builder {
	b.transport = t
	return b
}

// WithDefaults merges a Defaults bundle into the accumulated state,
// field by field: headers combine key-wise, set scalar fields replace,
// unset ones leave the previous value alone.
func (b *Builder) WithDefaults(d Defaults) *Builder {
	if len(d.Headers) > 0 {
		if b.defaults.Headers == nil {
			b.defaults.Headers = make(map[string]string, len(d.Headers))
		}
		for key, value := range d.Headers {
			b.defaults.Headers[key] = value
		}
	}
	if d.Timeout != nil {
		b.defaults.Timeout = d.Timeout
	}
	if d.ConnectTimeout != nil {
		b.defaults.ConnectTimeout = d.ConnectTimeout
	}
	if d.SkipSSL != nil {
		b.defaults.SkipSSL = d.SkipSSL
	}
	if d.FollowRedirects != nil {
		b.defaults.FollowRedirects = d.FollowRedirects
	}
	if d.MaxRedirects != nil {
		b.defaults.MaxRedirects = d.MaxRedirects
	}
	return b
}

// BaseHeaders merges headers sent with every request built by the
// resulting client.
func (b *Builder) BaseHeaders(headers map[string]string) *Builder {
	return b.WithDefaults(Defaults{Headers: headers})
}

// Timeout sets the default overall timeout in seconds.
func (b *Builder) Timeout(seconds int) *Builder {
	return b.WithDefaults(Defaults{Timeout: &seconds})
}

// ConnectTimeout sets the default connect timeout in seconds.
func (b *Builder) ConnectTimeout(seconds int) *Builder {
	return b.WithDefaults(Defaults{ConnectTimeout: &seconds})
}

// SkipSSL sets whether certificate verification is skipped by default.
func (b *Builder) SkipSSL(enabled bool) *Builder {
	return b.WithDefaults(Defaults{SkipSSL: &enabled})
}

// FollowRedirects sets whether redirects are followed by default.
func (b *Builder) FollowRedirects(enabled bool) *Builder {
	return b.WithDefaults(Defaults{FollowRedirects: &enabled})
}

// MaxRedirects sets the default redirect limit.
func (b *Builder) MaxRedirects(n int) *Builder {
	return b.WithDefaults(Defaults{MaxRedirects: &n})
}

// Build produces a Client seeded with the accumulated defaults merged
// over the fixed baseline (timeout 10s, connect timeout 5s, SSL
// verification on, redirects followed up to 5). The builder can keep
// being used afterwards; the client copies what it needs.
func (b *Builder) Build() *Client {
	transport := b.transport
	if transport == nil {
		transport = NewHTTPTransport()
	}

	resolved := defaults{
		headers:         make(map[string]string, len(b.defaults.Headers)),
		timeout:         DefaultTimeout,
		connectTimeout:  DefaultConnectTimeout,
		followRedirects: DefaultFollowRedirects,
		maxRedirects:    DefaultMaxRedirects,
	}
	for key, value := range b.defaults.Headers {
		resolved.headers[key] = value
	}
	if b.defaults.Timeout != nil {
		resolved.timeout = *b.defaults.Timeout
	}
	if b.defaults.ConnectTimeout != nil {
		resolved.connectTimeout = *b.defaults.ConnectTimeout
	}
	if b.defaults.SkipSSL != nil {
		resolved.skipSSL = *b.defaults.SkipSSL
	}
	if b.defaults.FollowRedirects != nil {
		resolved.followRedirects = *b.defaults.FollowRedirects
	}
	if b.defaults.MaxRedirects != nil {
		resolved.maxRedirects = *b.defaults.MaxRedirects
	}

	return &Client{
		baseURL:   b.baseURL,
		transport: transport,
		defaults:  resolved,
	}
}
