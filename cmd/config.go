// Package cmd defines core data structures for release-notes configuration and state.
package cmd

import "fmt"

// OutputFormat represents the markup dialect a document is rendered in
type OutputFormat string

const (
	// OutputFormatAuto picks the dialect from the version being released
	OutputFormatAuto OutputFormat = "auto"
	// OutputFormatMarkdown renders Markdown documents
	OutputFormatMarkdown OutputFormat = "markdown"
	// OutputFormatAsciidoc renders AsciiDoc documents
	OutputFormatAsciidoc OutputFormat = "asciidoc"
)

// ParseOutputFormat converts a string to OutputFormat
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch s {
	case "", "auto":
		return OutputFormatAuto, nil
	case "markdown", "md":
		return OutputFormatMarkdown, nil
	case "asciidoc", "adoc":
		return OutputFormatAsciidoc, nil
	default:
		return "", fmt.Errorf("unknown output format %q (expected auto, markdown or asciidoc)", s)
	}
}

// BracketHandling controls what happens to [bracketed] tags in PR titles
type BracketHandling string

const (
	// BracketHandlingStrip removes every bracket group
	BracketHandlingStrip BracketHandling = "strip"
	// BracketHandlingKeep leaves bracket groups untouched
	BracketHandlingKeep BracketHandling = "keep"
	// BracketHandlingVisualizations turns a leading visualization tool tag into an "in *Tool*" suffix
	BracketHandlingVisualizations BracketHandling = "visualizations"
)

// ParseBracketHandling converts a string to BracketHandling
func ParseBracketHandling(s string) BracketHandling {
	switch s {
	case "keep":
		return BracketHandlingKeep
	case "visualizations":
		return BracketHandlingVisualizations
	default:
		return BracketHandlingStrip // Default to strip for empty or unknown values
	}
}

// Config describes how PRs of one repository are classified and rendered
type Config struct {
	RepoName       string           `json:"repoName" yaml:"repo_name" toml:"repoName"`
	ExcludedLabels []string         `json:"excludedLabels" yaml:"excluded_labels" toml:"excludedLabels"`
	IncludedLabels []string         `json:"includedLabels,omitempty" yaml:"included_labels,omitempty" toml:"includedLabels,omitempty"`
	Areas          []AreaDefinition `json:"areas" yaml:"areas" toml:"areas"`
	Templates      Templates        `json:"templates" yaml:"templates" toml:"templates"`
}

// AreaDefinition is a named product area that PRs are grouped under
type AreaDefinition struct {
	Title    string       `json:"title" yaml:"title" toml:"title"`
	Labels   []string     `json:"labels,omitempty" yaml:"labels,omitempty" toml:"labels,omitempty"`
	Priority int          `json:"priority,omitempty" yaml:"priority,omitempty" toml:"priority,omitempty"`
	Options  *AreaOptions `json:"options,omitempty" yaml:"options,omitempty" toml:"options,omitempty"`
}

// AreaOptions tweaks how PRs of a single area are rendered
type AreaOptions struct {
	BracketHandling       BracketHandling `json:"bracketHandling,omitempty" yaml:"bracket_handling,omitempty" toml:"bracketHandling,omitempty"`
	TextOverwriteTemplate string          `json:"textOverwriteTemplate,omitempty" yaml:"text_overwrite_template,omitempty" toml:"textOverwriteTemplate,omitempty"`
}

// BracketHandling returns the area's bracket handling, defaulting to strip
func (a AreaDefinition) BracketHandling() BracketHandling {
	if a.Options == nil {
		return BracketHandlingStrip
	}
	return ParseBracketHandling(string(a.Options.BracketHandling))
}

// TextOverwriteTemplate returns the template replacing the area's PR list, if any
func (a AreaDefinition) TextOverwriteTemplate() string {
	if a.Options == nil {
		return ""
	}
	return a.Options.TextOverwriteTemplate
}

// Templates holds one template bundle per output dialect
type Templates struct {
	Asciidoc *OutputTemplate `json:"asciidoc,omitempty" yaml:"asciidoc,omitempty" toml:"asciidoc,omitempty"`
	Markdown *OutputTemplate `json:"markdown,omitempty" yaml:"markdown,omitempty" toml:"markdown,omitempty"`
}

// For returns the template bundle for the given dialect
func (t Templates) For(format OutputFormat) (*OutputTemplate, error) {
	switch format {
	case OutputFormatAsciidoc:
		if t.Asciidoc != nil {
			return t.Asciidoc, nil
		}
	case OutputFormatMarkdown:
		if t.Markdown != nil {
			return t.Markdown, nil
		}
	default:
		return nil, fmt.Errorf("output format %q must be resolved before rendering", format)
	}
	return nil, fmt.Errorf("configuration has no %s templates", format)
}

// Formats lists the dialects that have a template bundle
func (t Templates) Formats() []OutputFormat {
	var formats []OutputFormat
	if t.Asciidoc != nil {
		formats = append(formats, OutputFormatAsciidoc)
	}
	if t.Markdown != nil {
		formats = append(formats, OutputFormatMarkdown)
	}
	return formats
}

// OutputTemplate is the set of Mustache templates for one dialect
type OutputTemplate struct {
	Pages   PageTemplates `json:"pages" yaml:"pages" toml:"pages"`
	PRs     PRTemplates   `json:"prs" yaml:"prs" toml:"prs"`
	PRGroup string        `json:"prGroup" yaml:"pr_group" toml:"prGroup"`
}

// PageTemplates are the outer document templates
type PageTemplates struct {
	ReleaseNotes      string `json:"releaseNotes" yaml:"release_notes" toml:"releaseNotes"`
	PatchReleaseNotes string `json:"patchReleaseNotes,omitempty" yaml:"patch_release_notes,omitempty" toml:"patchReleaseNotes,omitempty"`
}

// Page returns the page template for a release, falling back to the
// general page when no patch variant exists
func (p PageTemplates) Page(isPatchRelease bool) string {
	if isPatchRelease && p.PatchReleaseNotes != "" {
		return p.PatchReleaseNotes
	}
	return p.ReleaseNotes
}

// PRTemplates are the per-PR line templates keyed by release-note type
type PRTemplates struct {
	Breaking    string `json:"breaking,omitempty" yaml:"breaking,omitempty" toml:"breaking,omitempty"`
	Deprecation string `json:"deprecation,omitempty" yaml:"deprecation,omitempty" toml:"deprecation,omitempty"`
	Other       string `json:"_other_" yaml:"_other_" toml:"_other_"`
}

// ForType returns the template for a release-note type ("breaking",
// "deprecation", ...), falling back to the _other_ template
func (p PRTemplates) ForType(noteType string) string {
	switch noteType {
	case "breaking":
		if p.Breaking != "" {
			return p.Breaking
		}
	case "deprecation":
		if p.Deprecation != "" {
			return p.Deprecation
		}
	}
	return p.Other
}

// State represents the structure of release-notes.yaml
type State struct {
	Org            string             `yaml:"org"`
	ActiveTemplate string             `yaml:"active_template,omitempty"`
	Overrides      map[string]*Config `yaml:"overrides,omitempty"` // template id -> user modified config
}
