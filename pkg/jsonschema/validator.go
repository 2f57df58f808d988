// Package jsonschema checks JSON documents, typically response bodies,
// against a JSON Schema.
package jsonschema

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// Failure is one schema violation.
type Failure struct {
	Location string
	Message  string
}

func (f Failure) String() string {
	if f.Location == "" {
		return f.Message
	}
	return fmt.Sprintf("%s: %s", f.Location, f.Message)
}

// Result is the outcome of validating one document.
type Result struct {
	Valid    bool
	Failures []Failure
}

// Summary joins all failures into one line for display.
func (r *Result) Summary() string {
	if r.Valid {
		return "valid"
	}
	parts := make([]string, len(r.Failures))
	for i, f := range r.Failures {
		parts[i] = f.String()
	}
	return strings.Join(parts, "; ")
}

// Validate checks a JSON document against a JSON Schema. A schema that
// does not compile or a document that is not JSON at all is an error;
// a document that merely violates the schema is a non-error Result
// with Valid false.
func Validate(document, schema string) (*Result, error) {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("schema.json", strings.NewReader(schema)); err != nil {
		return nil, fmt.Errorf("invalid schema: %w", err)
	}
	compiled, err := compiler.Compile("schema.json")
	if err != nil {
		return nil, fmt.Errorf("invalid schema: %w", err)
	}

	var value any
	if err := json.Unmarshal([]byte(document), &value); err != nil {
		return nil, fmt.Errorf("invalid JSON document: %w", err)
	}

	if err := compiled.Validate(value); err != nil {
		var validationErr *jsonschema.ValidationError
		if errors.As(err, &validationErr) {
			return &Result{Failures: collectFailures(validationErr)}, nil
		}
		return &Result{Failures: []Failure{{Message: err.Error()}}}, nil
	}

	return &Result{Valid: true}, nil
}

// collectFailures flattens the validation error tree leaf-first.
func collectFailures(err *jsonschema.ValidationError) []Failure {
	var failures []Failure
	if len(err.Causes) == 0 {
		return []Failure{{Location: err.InstanceLocation, Message: err.Message}}
	}
	for _, cause := range err.Causes {
		failures = append(failures, collectFailures(cause)...)
	}
	return failures
}
