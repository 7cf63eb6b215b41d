package content

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

//go:embed profile.toml
var defaultProfileTOML []byte

// Sentinel errors for profile loading.
var (
	// ErrUnsupportedFormat indicates a profile file extension other than
	// .toml, .yaml or .yml.
	ErrUnsupportedFormat = errors.New("unsupported profile format")
	// ErrEmptyProfile indicates the profile file decoded to no content.
	ErrEmptyProfile = errors.New("profile has no content")
)

// Format names a profile encoding.
type Format string

// Supported profile encodings.
const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

// Default returns the embedded profile.
func Default() (Profile, error) {
	p, err := Decode(defaultProfileTOML, FormatTOML)
	if err != nil {
		return Profile{}, fmt.Errorf("content: embedded profile: %w", err)
	}
	return p, nil
}

// Load reads a profile from path. An empty path selects the embedded profile.
// The encoding is chosen by file extension.
func Load(path string) (Profile, error) {
	if path == "" {
		return Default()
	}

	format, err := FormatOf(path)
	if err != nil {
		return Profile{}, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Profile{}, fmt.Errorf("content: reading %s: %w", path, err)
	}

	p, err := Decode(data, format)
	if err != nil {
		return Profile{}, fmt.Errorf("content: %s: %w", filepath.Base(path), err)
	}
	return p, nil
}

// FormatOf maps a file path to its profile encoding.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("content: %w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// Decode parses data in the given format. A document that decodes to an
// empty profile is rejected with ErrEmptyProfile.
func Decode(data []byte, format Format) (Profile, error) {
	var p Profile
	switch format {
	case FormatTOML:
		if err := toml.Unmarshal(data, &p); err != nil {
			return Profile{}, fmt.Errorf("parsing TOML: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &p); err != nil {
			return Profile{}, fmt.Errorf("parsing YAML: %w", err)
		}
	default:
		return Profile{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	if p.IsZero() {
		return Profile{}, ErrEmptyProfile
	}
	return p, nil
}
