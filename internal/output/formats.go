package output

import (
	"encoding/json"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/lalaz-foundation/wire"
)

// OutputFormat represents the available output formats
type OutputFormat string

const (
	// FormatText is the default human-readable text format
	FormatText OutputFormat = "text"
	// FormatJSON outputs in JSON format
	FormatJSON OutputFormat = "json"
	// FormatYAML outputs in YAML format
	FormatYAML OutputFormat = "yaml"
)

// FormatProvider is an interface for different output formatters
type FormatProvider interface {
	FormatRequest(req *wire.Request) string
	FormatResponse(resp *wire.Response) string
}

// RequestData is the structured rendering of an outgoing request
type RequestData struct {
	Method    string            `json:"method" yaml:"method"`
	URL       string            `json:"url" yaml:"url"`
	Headers   map[string]string `json:"headers,omitempty" yaml:"headers,omitempty"`
	Query     map[string]string `json:"query,omitempty" yaml:"query,omitempty"`
	Body      string            `json:"body,omitempty" yaml:"body,omitempty"`
	Timestamp string            `json:"timestamp" yaml:"timestamp"`
}

// ResponseData is the structured rendering of a normalized response
type ResponseData struct {
	StatusCode int               `json:"statusCode" yaml:"statusCode"`
	Headers    map[string]string `json:"headers,omitempty" yaml:"headers,omitempty"`
	Body       any               `json:"body,omitempty" yaml:"body,omitempty"`
	DurationMs float64           `json:"durationMs" yaml:"durationMs"`
	Timestamp  string            `json:"timestamp" yaml:"timestamp"`
}

// GetFormatter returns the formatter for the requested output format,
// falling back to text for anything unrecognized.
func GetFormatter(format OutputFormat, verbose, noColor bool) FormatProvider {
	switch format {
	case FormatJSON:
		return &JSONFormatter{Verbose: verbose}
	case FormatYAML:
		return &YAMLFormatter{Verbose: verbose}
	default:
		return NewFormatter(verbose, noColor)
	}
}

func requestData(req *wire.Request) RequestData {
	query := make(map[string]string, len(req.Query))
	for key := range req.Query {
		query[key] = req.Query.Get(key)
	}
	return RequestData{
		Method:    req.Method,
		URL:       req.URL,
		Headers:   req.Headers,
		Query:     query,
		Body:      string(req.Body),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
}

func responseData(resp *wire.Response) ResponseData {
	return ResponseData{
		StatusCode: resp.StatusCode,
		Headers:    resp.Headers,
		Body:       resp.Body.Value(),
		DurationMs: resp.DurationMillis(),
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
	}
}

// JSONFormatter renders requests and responses as JSON documents.
type JSONFormatter struct {
	Verbose bool
}

// FormatRequest renders the request as an indented JSON object
func (f *JSONFormatter) FormatRequest(req *wire.Request) string {
	data := requestData(req)
	if !f.Verbose {
		data.Headers = nil
	}
	out, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Sprintf("error formatting request: %v", err)
	}
	return string(out) + "\n"
}

// FormatResponse renders the response as an indented JSON object
func (f *JSONFormatter) FormatResponse(resp *wire.Response) string {
	data := responseData(resp)
	if !f.Verbose {
		data.Headers = nil
	}
	out, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Sprintf("error formatting response: %v", err)
	}
	return string(out) + "\n"
}

// YAMLFormatter renders requests and responses as YAML documents.
type YAMLFormatter struct {
	Verbose bool
}

// FormatRequest renders the request as a YAML document
func (f *YAMLFormatter) FormatRequest(req *wire.Request) string {
	data := requestData(req)
	if !f.Verbose {
		data.Headers = nil
	}
	out, err := yaml.Marshal(data)
	if err != nil {
		return fmt.Sprintf("error formatting request: %v", err)
	}
	return string(out)
}

// FormatResponse renders the response as a YAML document
func (f *YAMLFormatter) FormatResponse(resp *wire.Response) string {
	data := responseData(resp)
	if !f.Verbose {
		data.Headers = nil
	}
	out, err := yaml.Marshal(data)
	if err != nil {
		return fmt.Sprintf("error formatting response: %v", err)
	}
	return string(out)
}
