// Package config loads named client profiles from a YAML file. A
// profile bundles a base URL with the default headers and option
// values the CLI seeds a client builder with.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/lalaz-foundation/wire"
)

// File represents the top-level configuration
type File struct {
	DefaultProfile string             `yaml:"defaultProfile,omitempty"`
	Profiles       map[string]Profile `yaml:"profiles"`
}

// Profile represents one named client configuration. Pointer fields
// distinguish "not set, use the baseline" from an explicit value.
type Profile struct {
	BaseURL         string            `yaml:"baseUrl"`
	Headers         map[string]string `yaml:"headers,omitempty"`
	Timeout         *int              `yaml:"timeout,omitempty"`
	ConnectTimeout  *int              `yaml:"connectTimeout,omitempty"`
	SkipSSL         *bool             `yaml:"skipSsl,omitempty"`
	FollowRedirects *bool             `yaml:"followRedirects,omitempty"`
	MaxRedirects    *int              `yaml:"maxRedirects,omitempty"`
}

// Load reads and validates a profile file
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	if errs := ValidateFile(&file); len(errs) > 0 {
		return nil, fmt.Errorf("invalid config file %s: %s", path, errs[0].Error())
	}

	return &file, nil
}

// Profile returns the named profile, or the default profile when name
// is empty.
func (f *File) Profile(name string) (Profile, error) {
	if name == "" {
		name = f.DefaultProfile
	}
	if name == "" {
		return Profile{}, fmt.Errorf("no profile requested and no defaultProfile set")
	}
	profile, ok := f.Profiles[name]
	if !ok {
		return Profile{}, fmt.Errorf("profile %q not found", name)
	}
	return profile, nil
}

// Defaults converts the profile into the builder's defaults bundle.
func (p Profile) Defaults() wire.Defaults {
	return wire.Defaults{
		Headers:         p.Headers,
		Timeout:         p.Timeout,
		ConnectTimeout:  p.ConnectTimeout,
		SkipSSL:         p.SkipSSL,
		FollowRedirects: p.FollowRedirects,
		MaxRedirects:    p.MaxRedirects,
	}
}

// Builder seeds a client builder from the profile.
func (p Profile) Builder() *wire.Builder {
	return wire.NewBuilder(p.BaseURL).WithDefaults(p.Defaults())
}
