package wire

import (
	"net/url"
	"reflect"
	"testing"
)

func newTestClient(baseURL string) *Client {
	return NewBuilder(baseURL).
		WithTransport(NewRecorderTransport()).
		Build()
}

func TestNewRequest_URLComposition(t *testing.T) {
	tests := []struct {
		name     string
		baseURL  string
		endpoint string
		expected string
	}{
		{
			name:     "Endpoint with leading slash",
			baseURL:  "https://api.example.com",
			endpoint: "/users",
			expected: "https://api.example.com/users",
		},
		{
			name:     "Endpoint without leading slash",
			baseURL:  "https://api.example.com",
			endpoint: "users",
			expected: "https://api.example.com/users",
		},
		{
			name:     "Base with trailing slash",
			baseURL:  "https://api.example.com/",
			endpoint: "/users",
			expected: "https://api.example.com/users",
		},
		{
			name:     "Base with multiple trailing slashes",
			baseURL:  "https://api.example.com///",
			endpoint: "///users",
			expected: "https://api.example.com/users",
		},
		{
			name:     "Empty base keeps endpoint untouched",
			baseURL:  "",
			endpoint: "https://absolute.example.com/users",
			expected: "https://absolute.example.com/users",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(tt.baseURL)
			req, err := client.NewRequest("GET", tt.endpoint, nil)
			if err != nil {
				t.Fatalf("NewRequest failed: %v", err)
			}
			if req.URL != tt.expected {
				t.Errorf("URL = %s, want %s", req.URL, tt.expected)
			}
		})
	}
}

func TestNewRequest_HeaderMergePerCallWins(t *testing.T) {
	client := NewBuilder("https://api.example.com").
		WithTransport(NewRecorderTransport()).
		BaseHeaders(map[string]string{
			"Accept":     "text/plain",
			"User-Agent": "wire",
		}).
		Build()

	req, err := client.NewRequest("GET", "/users", &Options{
		Headers: map[string]string{"Accept": "application/json"},
	})
	if err != nil {
		t.Fatalf("NewRequest failed: %v", err)
	}

	if req.Headers["Accept"] != "application/json" {
		t.Errorf("Expected per-call Accept to win, got %s", req.Headers["Accept"])
	}
	if req.Headers["User-Agent"] != "wire" {
		t.Errorf("Expected default User-Agent kept, got %s", req.Headers["User-Agent"])
	}
}

func TestNewRequest_BaselineDefaults(t *testing.T) {
	client := newTestClient("https://api.example.com")

	req, err := client.NewRequest("GET", "/users", nil)
	if err != nil {
		t.Fatalf("NewRequest failed: %v", err)
	}

	if req.Timeout != 10 {
		t.Errorf("Expected baseline timeout 10, got %d", req.Timeout)
	}
	if req.ConnectTimeout != 5 {
		t.Errorf("Expected baseline connect timeout 5, got %d", req.ConnectTimeout)
	}
	if req.SkipSSL {
		t.Error("Expected baseline skipSSL false")
	}
	if !req.FollowRedirects {
		t.Error("Expected baseline followRedirects true")
	}
	if req.MaxRedirects != 5 {
		t.Errorf("Expected baseline maxRedirects 5, got %d", req.MaxRedirects)
	}
}

func TestNewRequest_PerCallOverridesClientDefaults(t *testing.T) {
	client := NewBuilder("https://api.example.com").
		WithTransport(NewRecorderTransport()).
		Timeout(30).
		SkipSSL(true).
		Build()

	perCallTimeout := 2
	follow := false
	req, err := client.NewRequest("GET", "/users", &Options{
		Timeout:         &perCallTimeout,
		FollowRedirects: &follow,
	})
	if err != nil {
		t.Fatalf("NewRequest failed: %v", err)
	}

	if req.Timeout != 2 {
		t.Errorf("Expected per-call timeout 2, got %d", req.Timeout)
	}
	if !req.SkipSSL {
		t.Error("Expected client default skipSSL true to apply")
	}
	if req.FollowRedirects {
		t.Error("Expected per-call followRedirects false to apply")
	}
	if req.ConnectTimeout != 5 {
		t.Errorf("Expected baseline connect timeout 5, got %d", req.ConnectTimeout)
	}
}

func TestNewRequest_Idempotent(t *testing.T) {
	client := NewBuilder("https://api.example.com").
		WithTransport(NewRecorderTransport()).
		BaseHeaders(map[string]string{"Accept": "application/json"}).
		Build()

	opts := &Options{
		Headers: map[string]string{"X-Trace": "abc"},
		Query:   url.Values{"page": {"2"}},
		Body:    `{"name":"John"}`,
	}

	first, err := client.NewRequest("POST", "/users", opts)
	if err != nil {
		t.Fatalf("NewRequest failed: %v", err)
	}
	second, err := client.NewRequest("POST", "/users", opts)
	if err != nil {
		t.Fatalf("NewRequest failed: %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Errorf("Expected identical descriptors, got\n%+v\nand\n%+v", first, second)
	}
}

func TestNewRequest_QueryIsCopiedNotShared(t *testing.T) {
	client := newTestClient("https://api.example.com")

	query := url.Values{"page": {"1"}}
	req, err := client.NewRequest("GET", "/users", &Options{Query: query})
	if err != nil {
		t.Fatalf("NewRequest failed: %v", err)
	}

	query.Set("page", "99")
	if got := req.Query.Get("page"); got != "1" {
		t.Errorf("Descriptor query mutated through caller's map, got page=%s", got)
	}
}

func TestNewRequest_RejectsStructuredBody(t *testing.T) {
	client := newTestClient("https://api.example.com")

	_, err := client.NewRequest("POST", "/users", &Options{
		Body: map[string]string{"name": "John"},
	})
	if err == nil {
		t.Fatal("Expected an error for an unserialized structured body")
	}
}

func TestNewRequest_BodyForms(t *testing.T) {
	client := newTestClient("https://api.example.com")

	req, err := client.NewRequest("POST", "/users", &Options{Body: []byte("raw-bytes")})
	if err != nil {
		t.Fatalf("NewRequest failed: %v", err)
	}
	if string(req.Body) != "raw-bytes" {
		t.Errorf("Expected []byte body kept, got %q", string(req.Body))
	}

	req, err = client.NewRequest("GET", "/users", nil)
	if err != nil {
		t.Fatalf("NewRequest failed: %v", err)
	}
	if req.Body != nil {
		t.Errorf("Expected absent body to stay nil, got %q", string(req.Body))
	}
}
