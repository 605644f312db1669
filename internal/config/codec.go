package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/alan/release-notes/cmd"
	"github.com/cbroglie/mustache"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Encoding is a serialization format for configurations
type Encoding string

const (
	// EncodingJSON is the format of the original configuration editor
	EncodingJSON Encoding = "json"
	// EncodingYAML matches the state file
	EncodingYAML Encoding = "yaml"
	// EncodingTOML is offered for hand-edited configurations
	EncodingTOML Encoding = "toml"
)

// ParseEncoding converts a format name to Encoding
func ParseEncoding(s string) (Encoding, error) {
	switch strings.ToLower(s) {
	case "json":
		return EncodingJSON, nil
	case "yaml", "yml":
		return EncodingYAML, nil
	case "toml":
		return EncodingTOML, nil
	default:
		return "", fmt.Errorf("unknown config format %q (expected json, yaml or toml)", s)
	}
}

// EncodingFromPath derives the encoding from a file extension
func EncodingFromPath(path string) (Encoding, error) {
	return ParseEncoding(strings.TrimPrefix(filepath.Ext(path), "."))
}

// DecodeConfig parses a configuration
func DecodeConfig(data []byte, encoding Encoding) (*cmd.Config, error) {
	var cfg cmd.Config
	var err error

	switch encoding {
	case EncodingJSON:
		decoder := json.NewDecoder(bytes.NewReader(data))
		decoder.DisallowUnknownFields()
		err = decoder.Decode(&cfg)
	case EncodingYAML:
		err = yaml.Unmarshal(data, &cfg)
	case EncodingTOML:
		err = toml.Unmarshal(data, &cfg)
	default:
		return nil, fmt.Errorf("unsupported config format %q", encoding)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s config: %w", encoding, err)
	}

	return &cfg, nil
}

// EncodeConfig serializes a configuration
func EncodeConfig(cfg *cmd.Config, encoding Encoding) ([]byte, error) {
	var data []byte
	var err error

	switch encoding {
	case EncodingJSON:
		data, err = json.MarshalIndent(cfg, "", "  ")
		if err == nil {
			data = append(data, '\n')
		}
	case EncodingYAML:
		data, err = yaml.Marshal(cfg)
	case EncodingTOML:
		data, err = toml.Marshal(cfg)
	default:
		return nil, fmt.Errorf("unsupported config format %q", encoding)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to marshal %s config: %w", encoding, err)
	}

	return data, nil
}

// ValidateConfig checks that a configuration can be rendered: every dialect's
// templates must parse and area titles must be unique.
func ValidateConfig(cfg *cmd.Config) error {
	if cfg.RepoName == "" {
		return fmt.Errorf("repoName is required")
	}

	formats := cfg.Templates.Formats()
	if len(formats) == 0 {
		return fmt.Errorf("at least one of the asciidoc or markdown templates is required")
	}

	titles := make(map[string]bool, len(cfg.Areas))
	for i, area := range cfg.Areas {
		if area.Title == "" {
			return fmt.Errorf("area %d has no title", i)
		}
		if titles[area.Title] {
			return fmt.Errorf("duplicate area title %q", area.Title)
		}
		titles[area.Title] = true

		if overwrite := area.TextOverwriteTemplate(); overwrite != "" {
			if _, err := mustache.ParseString(overwrite); err != nil {
				return fmt.Errorf("invalid text overwrite template of area %q: %w", area.Title, err)
			}
		}
	}

	for _, format := range formats {
		tmpl, err := cfg.Templates.For(format)
		if err != nil {
			return err
		}
		if tmpl.Pages.ReleaseNotes == "" {
			return fmt.Errorf("%s releaseNotes page template is required", format)
		}
		if tmpl.PRs.Other == "" {
			return fmt.Errorf("%s _other_ PR template is required", format)
		}

		for _, t := range []struct{ name, text string }{
			{"releaseNotes", tmpl.Pages.ReleaseNotes},
			{"patchReleaseNotes", tmpl.Pages.PatchReleaseNotes},
			{"breaking", tmpl.PRs.Breaking},
			{"deprecation", tmpl.PRs.Deprecation},
			{"_other_", tmpl.PRs.Other},
			{"prGroup", tmpl.PRGroup},
		} {
			if _, err := mustache.ParseString(t.text); err != nil {
				return fmt.Errorf("invalid %s %s template: %w", format, t.name, err)
			}
		}
	}

	return nil
}
