package cli

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/tidwall/gjson"

	"github.com/lalaz-foundation/wire"
	"github.com/lalaz-foundation/wire/internal/config"
	"github.com/lalaz-foundation/wire/internal/output"
	"github.com/lalaz-foundation/wire/pkg/jsonschema"
)

// addRequestFlags registers the flag set shared by every request
// command. withBody additionally registers the payload flag.
func addRequestFlags(cmd *cobra.Command, withBody bool) {
	cmd.Flags().StringArrayP("header", "H", []string{}, "HTTP header as 'Name: Value' (repeatable)")
	cmd.Flags().StringArrayP("query", "q", []string{}, "Query parameter as key=value (repeatable)")
	cmd.Flags().IntP("timeout", "t", 0, "Request timeout in seconds")
	cmd.Flags().Int("connect-timeout", 0, "Connect timeout in seconds")
	cmd.Flags().BoolP("insecure", "k", false, "Skip TLS certificate verification")
	cmd.Flags().Bool("no-follow", false, "Do not follow redirects")
	cmd.Flags().Int("max-redirects", 0, "Maximum number of redirects to follow")
	cmd.Flags().BoolP("verbose", "v", false, "Enable verbose output")
	cmd.Flags().Bool("no-color", false, "Disable colored output")
	cmd.Flags().StringP("output", "o", "text", "Output format: text, json, or yaml")
	cmd.Flags().String("extract", "", "Print only the value at this gjson path of the response body")
	cmd.Flags().String("schema", "", "Validate the response body against this JSON Schema file")
	cmd.Flags().String("config", "", "Path to a YAML profile file")
	cmd.Flags().String("profile", "", "Profile name from the config file")

	if withBody {
		cmd.Flags().StringP("data", "d", "", "Request body, sent as-is")
	}
}

// executeRequest is the shared path behind every request command: it
// builds a client, resolves the descriptor, dispatches it, and renders
// the outcome.
func executeRequest(cmd *cobra.Command, method, rawURL string) error {
	client, endpoint, err := buildClient(cmd, rawURL)
	if err != nil {
		return err
	}

	opts, err := buildOptions(cmd)
	if err != nil {
		return err
	}

	req, err := client.NewRequest(method, endpoint, opts)
	if err != nil {
		return err
	}

	verbose, _ := cmd.Flags().GetBool("verbose")
	noColor, _ := cmd.Flags().GetBool("no-color")
	format, _ := cmd.Flags().GetString("output")
	if !output.TerminalSupportsColor() {
		noColor = true
	}
	formatter := output.GetFormatter(output.OutputFormat(format), verbose, noColor)

	fmt.Fprint(cmd.OutOrStdout(), formatter.FormatRequest(req))

	resp, err := client.Send(context.Background(), req)
	if err != nil {
		return err
	}

	fmt.Fprint(cmd.OutOrStdout(), formatter.FormatResponse(resp))

	if path, _ := cmd.Flags().GetString("extract"); path != "" {
		if err := printExtract(cmd, resp, path); err != nil {
			return err
		}
	}

	if schemaPath, _ := cmd.Flags().GetString("schema"); schemaPath != "" {
		if err := validateSchema(cmd, resp, schemaPath); err != nil {
			return err
		}
	}

	return nil
}

// buildClient resolves the target client and endpoint. With a profile
// config the argument is an endpoint relative to the profile's base
// URL (absolute URLs still work); without one the argument is split
// into base URL and path.
func buildClient(cmd *cobra.Command, rawURL string) (*wire.Client, string, error) {
	configPath, _ := cmd.Flags().GetString("config")

	if configPath != "" {
		file, err := config.Load(configPath)
		if err != nil {
			return nil, "", err
		}
		profileName, _ := cmd.Flags().GetString("profile")
		profile, err := file.Profile(profileName)
		if err != nil {
			return nil, "", err
		}

		endpoint := rawURL
		if strings.HasPrefix(rawURL, "http://") || strings.HasPrefix(rawURL, "https://") {
			// Absolute URL bypasses the profile's base.
			base, path := parseURL(rawURL)
			return profile.Builder().Build().WithBaseURL(base), path, nil
		}
		return profile.Builder().Build(), endpoint, nil
	}

	base, path := parseURL(rawURL)
	return wire.NewBuilder(base).Build(), path, nil
}

// buildOptions converts the command's flags into per-call options.
// Only flags the user actually set become overrides; everything else
// falls back to the client defaults.
func buildOptions(cmd *cobra.Command) (*wire.Options, error) {
	opts := &wire.Options{}

	headerFlags, _ := cmd.Flags().GetStringArray("header")
	if len(headerFlags) > 0 {
		opts.Headers = make(map[string]string, len(headerFlags))
		for _, header := range headerFlags {
			parts := strings.SplitN(header, ":", 2)
			if len(parts) != 2 {
				return nil, fmt.Errorf("invalid header %q, expected 'Name: Value'", header)
			}
			opts.Headers[strings.TrimSpace(parts[0])] = strings.TrimSpace(parts[1])
		}
	}

	queryFlags, _ := cmd.Flags().GetStringArray("query")
	if len(queryFlags) > 0 {
		opts.Query = make(url.Values, len(queryFlags))
		for _, pair := range queryFlags {
			parts := strings.SplitN(pair, "=", 2)
			if len(parts) != 2 {
				return nil, fmt.Errorf("invalid query parameter %q, expected key=value", pair)
			}
			opts.Query.Add(parts[0], parts[1])
		}
	}

	if cmd.Flags().Lookup("data") != nil {
		if body, _ := cmd.Flags().GetString("data"); body != "" {
			opts.Body = body
		}
	}

	if cmd.Flags().Changed("timeout") {
		timeout, _ := cmd.Flags().GetInt("timeout")
		opts.Timeout = &timeout
	}
	if cmd.Flags().Changed("connect-timeout") {
		connectTimeout, _ := cmd.Flags().GetInt("connect-timeout")
		opts.ConnectTimeout = &connectTimeout
	}
	if cmd.Flags().Changed("insecure") {
		insecure, _ := cmd.Flags().GetBool("insecure")
		opts.SkipSSL = &insecure
	}
	if cmd.Flags().Changed("no-follow") {
		noFollow, _ := cmd.Flags().GetBool("no-follow")
		follow := !noFollow
		opts.FollowRedirects = &follow
	}
	if cmd.Flags().Changed("max-redirects") {
		maxRedirects, _ := cmd.Flags().GetInt("max-redirects")
		opts.MaxRedirects = &maxRedirects
	}

	return opts, nil
}

// printExtract pulls one value out of a JSON response body.
func printExtract(cmd *cobra.Command, resp *wire.Response, path string) error {
	if !resp.Body.IsJSON() {
		return fmt.Errorf("cannot extract %q: response body is not JSON", path)
	}
	result := gjson.Get(resp.Body.Raw(), path)
	if !result.Exists() {
		return fmt.Errorf("path %q not found in response body", path)
	}
	fmt.Fprintln(cmd.OutOrStdout(), result.String())
	return nil
}

// validateSchema checks the response body against a schema file and
// fails the command when the body does not conform.
func validateSchema(cmd *cobra.Command, resp *wire.Response, schemaPath string) error {
	schema, err := os.ReadFile(schemaPath)
	if err != nil {
		return fmt.Errorf("reading schema file: %w", err)
	}

	result, err := jsonschema.Validate(resp.Body.Raw(), string(schema))
	if err != nil {
		return err
	}
	if !result.Valid {
		return fmt.Errorf("response body failed schema validation: %s", result.Summary())
	}

	fmt.Fprintln(cmd.OutOrStdout(), "Schema: valid")
	return nil
}

// parseURL splits a URL into base URL and path
func parseURL(fullURL string) (string, string) {
	if !strings.HasPrefix(fullURL, "http://") && !strings.HasPrefix(fullURL, "https://") {
		fullURL = "http://" + fullURL
	}

	parsedURL, err := url.Parse(fullURL)
	if err != nil {
		return fullURL, "/"
	}

	baseURL := fmt.Sprintf("%s://%s", parsedURL.Scheme, parsedURL.Host)
	if parsedURL.User != nil {
		baseURL = fmt.Sprintf("%s://%s@%s", parsedURL.Scheme, parsedURL.User.String(), parsedURL.Host)
	}

	path := parsedURL.Path
	if path == "" {
		path = "/"
	}
	if parsedURL.RawQuery != "" {
		path = path + "?" + parsedURL.RawQuery
	}

	return baseURL, path
}
