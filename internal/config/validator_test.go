package config

import (
	"strings"
	"testing"
)

func intPtr(v int) *int { return &v }

func TestValidateFile_Valid(t *testing.T) {
	file := &File{
		Profiles: map[string]Profile{
			"prod": {BaseURL: "https://api.example.com", Timeout: intPtr(10)},
		},
	}

	if errs := ValidateFile(file); len(errs) != 0 {
		t.Errorf("Expected no errors, got %v", errs)
	}
}

func TestValidateFile_NoProfiles(t *testing.T) {
	errs := ValidateFile(&File{})
	if len(errs) != 1 || errs[0].Path != "profiles" {
		t.Errorf("Expected a profiles error, got %v", errs)
	}
}

func TestValidateFile_UnknownDefaultProfile(t *testing.T) {
	file := &File{
		DefaultProfile: "ghost",
		Profiles: map[string]Profile{
			"prod": {BaseURL: "https://api.example.com"},
		},
	}

	errs := ValidateFile(file)
	if len(errs) != 1 || errs[0].Path != "defaultProfile" {
		t.Errorf("Expected a defaultProfile error, got %v", errs)
	}
}

func TestValidateFile_ProfileErrors(t *testing.T) {
	file := &File{
		Profiles: map[string]Profile{
			"broken": {
				Timeout:        intPtr(-1),
				ConnectTimeout: intPtr(-2),
				MaxRedirects:   intPtr(-3),
			},
		},
	}

	errs := ValidateFile(file)
	if len(errs) != 4 {
		t.Fatalf("Expected 4 errors (baseUrl + three negatives), got %v", errs)
	}
	for _, err := range errs {
		if !strings.HasPrefix(err.Path, "profiles.broken.") {
			t.Errorf("Unexpected error path %s", err.Path)
		}
		if err.Error() == "" {
			t.Error("Expected a message")
		}
	}
}
