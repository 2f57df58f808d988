package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/lalaz-foundation/wire"
)

// Formatter renders requests and responses as human-readable text.
type Formatter struct {
	Verbose bool
	NoColor bool
	scheme  *ColorScheme
}

// NewFormatter creates a new text formatter with the given options
func NewFormatter(verbose, noColor bool) *Formatter {
	scheme := DefaultColorScheme()
	if noColor {
		scheme = NoColorScheme()
	}
	return &Formatter{
		Verbose: verbose,
		NoColor: noColor,
		scheme:  scheme,
	}
}

// FormatRequest formats an outgoing request for display
func (f *Formatter) FormatRequest(req *wire.Request) string {
	var buf strings.Builder

	fullURL := req.URL
	if len(req.Query) > 0 {
		sep := "?"
		if strings.Contains(fullURL, "?") {
			sep = "&"
		}
		fullURL += sep + req.Query.Encode()
	}

	buf.WriteString(fmt.Sprintf("▶ REQUEST: %s %s\n",
		f.scheme.Method.Sprint(req.Method),
		f.scheme.URL.Sprint(fullURL)))

	if f.Verbose || len(req.Headers) > 0 {
		buf.WriteString("  Headers:\n")
		for key, value := range req.Headers {
			buf.WriteString(fmt.Sprintf("    %s: %s\n",
				f.scheme.HeaderKey.Sprint(key),
				f.scheme.HeaderValue.Sprint(value)))
		}
	}

	if req.Body != nil {
		buf.WriteString("  Body: ")
		buf.WriteString(formatJSONString(string(req.Body)))
		buf.WriteString("\n")
	}

	if f.Verbose {
		buf.WriteString(fmt.Sprintf("  Timeout: %ds (connect %ds)\n", req.Timeout, req.ConnectTimeout))
		if req.SkipSSL {
			buf.WriteString("  SSL verification: disabled\n")
		}
	}

	return buf.String()
}

// FormatResponse formats a normalized response for display
func (f *Formatter) FormatResponse(resp *wire.Response) string {
	var buf strings.Builder

	statusColor := f.scheme.StatusError
	if resp.IsSuccess() {
		statusColor = f.scheme.StatusOK
	} else if resp.IsRedirect() {
		statusColor = f.scheme.StatusWarn
	}

	buf.WriteString(fmt.Sprintf("◀ RESPONSE: %s (%.1fms)\n",
		statusColor.Sprint(statusLine(resp.StatusCode)),
		resp.DurationMillis()))

	if f.Verbose {
		buf.WriteString("  Headers:\n")
		for key, value := range resp.Headers {
			buf.WriteString(fmt.Sprintf("    %s: %s\n",
				f.scheme.HeaderKey.Sprint(key),
				f.scheme.HeaderValue.Sprint(value)))
		}
	}

	if raw := resp.Body.Raw(); raw != "" {
		buf.WriteString("  Body:\n")
		buf.WriteString(formatJSONString(raw))
		buf.WriteString("\n")
	}

	return buf.String()
}

// statusLine renders "201 Created" style status text; unknown and
// sentinel codes fall back to the bare number.
func statusLine(code int) string {
	text := http.StatusText(code)
	if text == "" {
		return fmt.Sprintf("%d", code)
	}
	return fmt.Sprintf("%d %s", code, text)
}

// formatJSONString attempts to pretty-print a JSON string
func formatJSONString(s string) string {
	var prettyJSON bytes.Buffer
	err := json.Indent(&prettyJSON, []byte(s), "  ", "  ")
	if err != nil {
		return s
	}
	return prettyJSON.String()
}
