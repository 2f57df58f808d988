package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
)

func newFlaggedCommand(t *testing.T, args ...string) *cobra.Command {
	t.Helper()
	cmd := &cobra.Command{Use: "test"}
	addRequestFlags(cmd, true)
	if err := cmd.ParseFlags(args); err != nil {
		t.Fatalf("Error parsing flags: %v", err)
	}
	return cmd
}

func TestBuildOptions_HeadersAndQuery(t *testing.T) {
	cmd := newFlaggedCommand(t,
		"-H", "Accept: application/json",
		"-H", "X-Trace:abc",
		"-q", "page=2",
		"-q", "tag=a",
		"-q", "tag=b",
		"-d", `{"name":"John"}`,
	)

	opts, err := buildOptions(cmd)
	if err != nil {
		t.Fatalf("buildOptions failed: %v", err)
	}

	if opts.Headers["Accept"] != "application/json" {
		t.Errorf("Expected Accept header, got %v", opts.Headers)
	}
	if opts.Headers["X-Trace"] != "abc" {
		t.Errorf("Expected whitespace trimmed, got %v", opts.Headers)
	}
	if opts.Query.Get("page") != "2" {
		t.Errorf("Expected page=2, got %v", opts.Query)
	}
	if got := opts.Query["tag"]; len(got) != 2 {
		t.Errorf("Expected repeated query values kept, got %v", got)
	}
	if opts.Body != `{"name":"John"}` {
		t.Errorf("Expected body set, got %v", opts.Body)
	}
}

func TestBuildOptions_UnsetFlagsStayNil(t *testing.T) {
	cmd := newFlaggedCommand(t)

	opts, err := buildOptions(cmd)
	if err != nil {
		t.Fatalf("buildOptions failed: %v", err)
	}

	if opts.Timeout != nil || opts.ConnectTimeout != nil || opts.SkipSSL != nil ||
		opts.FollowRedirects != nil || opts.MaxRedirects != nil {
		t.Errorf("Expected all option pointers nil, got %+v", opts)
	}
	if opts.Body != nil {
		t.Errorf("Expected no body, got %v", opts.Body)
	}
}

func TestBuildOptions_SetFlagsBecomeOverrides(t *testing.T) {
	cmd := newFlaggedCommand(t,
		"--timeout", "2",
		"--insecure",
		"--no-follow",
		"--max-redirects", "1",
	)

	opts, err := buildOptions(cmd)
	if err != nil {
		t.Fatalf("buildOptions failed: %v", err)
	}

	if opts.Timeout == nil || *opts.Timeout != 2 {
		t.Errorf("Expected timeout override 2, got %v", opts.Timeout)
	}
	if opts.SkipSSL == nil || !*opts.SkipSSL {
		t.Errorf("Expected skipSSL override, got %v", opts.SkipSSL)
	}
	if opts.FollowRedirects == nil || *opts.FollowRedirects {
		t.Errorf("Expected followRedirects false, got %v", opts.FollowRedirects)
	}
	if opts.MaxRedirects == nil || *opts.MaxRedirects != 1 {
		t.Errorf("Expected maxRedirects override 1, got %v", opts.MaxRedirects)
	}
}

func TestBuildOptions_MalformedHeader(t *testing.T) {
	cmd := newFlaggedCommand(t, "-H", "no-separator")

	if _, err := buildOptions(cmd); err == nil {
		t.Fatal("Expected an error for a malformed header flag")
	}
}

func TestBuildOptions_MalformedQuery(t *testing.T) {
	cmd := newFlaggedCommand(t, "-q", "novalue")

	if _, err := buildOptions(cmd); err == nil {
		t.Fatal("Expected an error for a malformed query flag")
	}
}

func TestBuildClient_FromURL(t *testing.T) {
	cmd := newFlaggedCommand(t)

	client, endpoint, err := buildClient(cmd, "https://api.example.com/users?limit=5")
	if err != nil {
		t.Fatalf("buildClient failed: %v", err)
	}
	if client.BaseURL() != "https://api.example.com" {
		t.Errorf("Expected base URL split off, got %s", client.BaseURL())
	}
	if endpoint != "/users?limit=5" {
		t.Errorf("Expected endpoint with query, got %s", endpoint)
	}
}

func TestBuildClient_FromProfile(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "wire.yaml")
	content := `
defaultProfile: staging
profiles:
  staging:
    baseUrl: https://staging.example.com
    headers:
      Accept: application/json
`
	if err := os.WriteFile(configPath, []byte(content), 0o600); err != nil {
		t.Fatalf("Error writing config: %v", err)
	}

	cmd := newFlaggedCommand(t, "--config", configPath)

	client, endpoint, err := buildClient(cmd, "/users")
	if err != nil {
		t.Fatalf("buildClient failed: %v", err)
	}
	if client.BaseURL() != "https://staging.example.com" {
		t.Errorf("Expected profile base URL, got %s", client.BaseURL())
	}
	if endpoint != "/users" {
		t.Errorf("Expected endpoint kept relative, got %s", endpoint)
	}
}

func TestBuildClient_AbsoluteURLBypassesProfileBase(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "wire.yaml")
	content := `
defaultProfile: staging
profiles:
  staging:
    baseUrl: https://staging.example.com
`
	if err := os.WriteFile(configPath, []byte(content), 0o600); err != nil {
		t.Fatalf("Error writing config: %v", err)
	}

	cmd := newFlaggedCommand(t, "--config", configPath)

	client, endpoint, err := buildClient(cmd, "https://other.example.com/v2/items")
	if err != nil {
		t.Fatalf("buildClient failed: %v", err)
	}
	if client.BaseURL() != "https://other.example.com" {
		t.Errorf("Expected absolute URL to win, got %s", client.BaseURL())
	}
	if endpoint != "/v2/items" {
		t.Errorf("Expected path split off, got %s", endpoint)
	}
}
