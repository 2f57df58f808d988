package jsonschema

import (
	"strings"
	"testing"
)

const userSchema = `{
	"type": "object",
	"required": ["id", "name"],
	"properties": {
		"id": {"type": "integer"},
		"name": {"type": "string", "minLength": 1},
		"email": {"type": "string"}
	}
}`

func TestValidate_ValidDocument(t *testing.T) {
	result, err := Validate(`{"id": 1, "name": "John"}`, userSchema)
	if err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if !result.Valid {
		t.Errorf("Expected valid document, got failures: %s", result.Summary())
	}
	if result.Summary() != "valid" {
		t.Errorf("Unexpected summary %q", result.Summary())
	}
}

func TestValidate_SchemaViolations(t *testing.T) {
	result, err := Validate(`{"id": "oops", "name": ""}`, userSchema)
	if err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if result.Valid {
		t.Fatal("Expected schema violations")
	}
	if len(result.Failures) < 2 {
		t.Errorf("Expected failures for id and name, got %v", result.Failures)
	}
	summary := result.Summary()
	if !strings.Contains(summary, "/id") || !strings.Contains(summary, "/name") {
		t.Errorf("Expected failure locations in summary, got %q", summary)
	}
}

func TestValidate_MissingRequiredField(t *testing.T) {
	result, err := Validate(`{"id": 1}`, userSchema)
	if err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if result.Valid {
		t.Fatal("Expected a required-field violation")
	}
}

func TestValidate_InvalidSchemaIsAnError(t *testing.T) {
	if _, err := Validate(`{}`, `{"type": 42}`); err == nil {
		t.Fatal("Expected an error for a schema that does not compile")
	}
}

func TestValidate_NonJSONDocumentIsAnError(t *testing.T) {
	if _, err := Validate("plain text response", userSchema); err == nil {
		t.Fatal("Expected an error for a non-JSON document")
	}
}
