package config

import (
	"fmt"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Path    string
	Message string
}

// Error returns the error message
func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Path, e.Message)
}

// ValidateFile validates a loaded profile file
func ValidateFile(file *File) []ValidationError {
	var errors []ValidationError

	if len(file.Profiles) == 0 {
		errors = append(errors, ValidationError{
			Path:    "profiles",
			Message: "at least one profile is required",
		})
	}

	if file.DefaultProfile != "" {
		if _, ok := file.Profiles[file.DefaultProfile]; !ok {
			errors = append(errors, ValidationError{
				Path:    "defaultProfile",
				Message: fmt.Sprintf("profile %q is not defined", file.DefaultProfile),
			})
		}
	}

	for name, profile := range file.Profiles {
		errors = append(errors, validateProfile(name, profile)...)
	}

	return errors
}

func validateProfile(name string, p Profile) []ValidationError {
	var errors []ValidationError

	path := func(field string) string {
		return fmt.Sprintf("profiles.%s.%s", name, field)
	}

	if p.BaseURL == "" {
		errors = append(errors, ValidationError{
			Path:    path("baseUrl"),
			Message: "baseUrl is required",
		})
	}
	if p.Timeout != nil && *p.Timeout < 0 {
		errors = append(errors, ValidationError{
			Path:    path("timeout"),
			Message: "timeout must not be negative",
		})
	}
	if p.ConnectTimeout != nil && *p.ConnectTimeout < 0 {
		errors = append(errors, ValidationError{
			Path:    path("connectTimeout"),
			Message: "connectTimeout must not be negative",
		})
	}
	if p.MaxRedirects != nil && *p.MaxRedirects < 0 {
		errors = append(errors, ValidationError{
			Path:    path("maxRedirects"),
			Message: "maxRedirects must not be negative",
		})
	}

	return errors
}
