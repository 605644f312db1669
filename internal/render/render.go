// Package render turns a classified PR list into a release-notes document using
// the Mustache templates of a configuration.
package render

import (
	"fmt"
	"sort"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/alan/release-notes/cmd"
	"github.com/alan/release-notes/internal/github"
	"github.com/alan/release-notes/internal/prutil"
	"github.com/cbroglie/mustache"
)

// OtherGroupTitle is the group title used for PRs that match no area
const OtherGroupTitle = "Other"

// markdownSince is the first version whose release notes are written in Markdown
var markdownSince = semver.MustParse("9.0.0")

// Options describe the release a document is rendered for
type Options struct {
	Version        string // vX.Y.Z
	Format         cmd.OutputFormat
	IsPatchRelease bool
	ReleaseDate    string // rendered as serverlessReleaseDate
}

// Result is a rendered document plus the PRs that could not be classified
type Result struct {
	Output       string
	Sections     Sections
	MissingLabel []github.PR
}

// Sections are the rendered category blocks substituted into the page template
type Sections struct {
	Breaking             string
	Deprecations         string
	Features             string
	Enhancements         string
	Fixes                string
	EnhancementsAndFixes string
}

// NewOptions derives render options from a version string. Patch releases are
// versions with a non-zero patch number. An auto format is resolved against the
// dialects the templates provide.
func NewOptions(version string, format cmd.OutputFormat, templates cmd.Templates) (Options, error) {
	v, err := semver.NewVersion(version)
	if err != nil {
		return Options{}, fmt.Errorf("invalid version %s: %w", version, err)
	}

	resolved, err := ResolveFormat(v, format, templates)
	if err != nil {
		return Options{}, err
	}

	return Options{
		Version:        version,
		Format:         resolved,
		IsPatchRelease: v.Patch() != 0,
	}, nil
}

// ResolveFormat picks the output dialect. Auto selects Markdown from 9.0.0 on and
// AsciiDoc before, falling back to whichever dialect the templates provide.
func ResolveFormat(version *semver.Version, requested cmd.OutputFormat, templates cmd.Templates) (cmd.OutputFormat, error) {
	if requested != cmd.OutputFormatAuto && requested != "" {
		if _, err := templates.For(requested); err != nil {
			return "", err
		}
		return requested, nil
	}

	preferred := cmd.OutputFormatAsciidoc
	if !version.LessThan(markdownSince) {
		preferred = cmd.OutputFormatMarkdown
	}
	if _, err := templates.For(preferred); err == nil {
		return preferred, nil
	}

	available := templates.Formats()
	if len(available) == 0 {
		return "", fmt.Errorf("configuration has no templates")
	}
	return available[0], nil
}

// Render renders the release-notes page for prs. It never mutates cfg or prs.
func Render(cfg *cmd.Config, prs []github.PR, opts Options) (*Result, error) {
	tmpl, err := cfg.Templates.For(opts.Format)
	if err != nil {
		return nil, err
	}

	r := &renderer{
		config:   cfg,
		template: tmpl,
		version:  strings.TrimPrefix(opts.Version, "v"),
		parsed:   make(map[string]*mustache.Template),
	}

	groups := prutil.GroupPRs(prs)
	sections, err := r.sections(groups)
	if err != nil {
		return nil, err
	}

	output, err := r.render(tmpl.Pages.Page(opts.IsPatchRelease), r.pageContext(opts, sections))
	if err != nil {
		return nil, fmt.Errorf("failed to render page template: %w", err)
	}

	return &Result{
		Output:       strings.TrimSpace(output),
		Sections:     sections,
		MissingLabel: groups.MissingLabel,
	}, nil
}

type renderer struct {
	config   *cmd.Config
	template *cmd.OutputTemplate
	version  string
	parsed   map[string]*mustache.Template
}

func (r *renderer) sections(groups prutil.Groups) (Sections, error) {
	var s Sections
	var err error

	if s.Breaking, err = r.renderList(groups.Breaking, "breaking"); err != nil {
		return s, err
	}
	if s.Deprecations, err = r.renderList(groups.Deprecations, "deprecation"); err != nil {
		return s, err
	}
	if s.Features, err = r.renderByArea(groups.Features, "feature"); err != nil {
		return s, err
	}
	if s.Enhancements, err = r.renderByArea(groups.Enhancements, "enhancement"); err != nil {
		return s, err
	}
	if s.Fixes, err = r.renderByArea(groups.Fixes, "fix"); err != nil {
		return s, err
	}
	combined := prutil.MergePRs(groups.Enhancements, groups.Fixes)
	if s.EnhancementsAndFixes, err = r.renderByArea(combined, "enhancement"); err != nil {
		return s, err
	}

	return s, nil
}

// renderList renders PRs one per line with default title normalization
func (r *renderer) renderList(prs []github.PR, noteType string) (string, error) {
	lines := make([]string, 0, len(prs))
	for _, pr := range prs {
		line, err := r.renderPR(pr, noteType, cmd.BracketHandlingStrip)
		if err != nil {
			return "", err
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n"), nil
}

// renderByArea renders PRs grouped by area in alphabetical order, followed by an
// "Other" group for PRs matching no area.
func (r *renderer) renderByArea(prs []github.PR, noteType string) (string, error) {
	grouped := prutil.GroupByArea(prs, r.config.Areas)
	hasPRGroups := len(r.config.Areas) > 1

	var output []string
	for _, area := range sortedAreas(r.config.Areas) {
		areaPRs, ok := grouped.Areas[area.Title]
		if !ok {
			continue
		}

		var body string
		var err error
		if overwrite := area.TextOverwriteTemplate(); overwrite != "" {
			body, err = r.render(overwrite, map[string]interface{}{"version": r.version})
			if err != nil {
				return "", fmt.Errorf("failed to render text overwrite template of area %s: %w", area.Title, err)
			}
		} else {
			lines := make([]string, 0, len(areaPRs))
			for _, pr := range areaPRs {
				line, err := r.renderPR(pr, noteType, area.BracketHandling())
				if err != nil {
					return "", err
				}
				lines = append(lines, line)
			}
			body = strings.Join(lines, "\n")
		}

		group, err := r.renderGroup(area.Title, body, hasPRGroups)
		if err != nil {
			return "", err
		}
		output = append(output, group)
	}

	if len(grouped.Unmatched) > 0 {
		body, err := r.renderList(grouped.Unmatched, noteType)
		if err != nil {
			return "", err
		}
		group, err := r.renderGroup(OtherGroupTitle, body, hasPRGroups)
		if err != nil {
			return "", err
		}
		output = append(output, group)
	}

	return strings.Join(output, "\n"), nil
}

func (r *renderer) renderGroup(title, prs string, hasPRGroups bool) (string, error) {
	out, err := r.render(r.template.PRGroup, map[string]interface{}{
		"groupTitle":  title,
		"prs":         prs,
		"hasPRGroups": hasPRGroups,
		"version":     r.version,
	})
	if err != nil {
		return "", fmt.Errorf("failed to render group template for %s: %w", title, err)
	}
	return out, nil
}

func (r *renderer) renderPR(pr github.PR, noteType string, handling cmd.BracketHandling) (string, error) {
	note := prutil.ExtractReleaseNotes(pr, handling)

	context := map[string]interface{}{
		"title":  note.Title,
		"number": pr.Number,
	}
	if note.Type == prutil.ReleaseNoteTypeReleaseNoteDetails {
		context["details"] = note.Details
	}

	out, err := r.render(r.template.PRs.ForType(noteType), context)
	if err != nil {
		return "", fmt.Errorf("failed to render PR #%d: %w", pr.Number, err)
	}
	return out, nil
}

func (r *renderer) pageContext(opts Options, s Sections) map[string]interface{} {
	return map[string]interface{}{
		"version":               r.version,
		"minorVersion":          minorVersion(r.version),
		"nextMajorVersion":      nextMajorVersion(r.version),
		"isPatchRelease":        opts.IsPatchRelease,
		"serverlessReleaseDate": opts.ReleaseDate,
		"versionWithoutPeriods": strings.ReplaceAll(r.version, ".", ""),
		"prs": map[string]interface{}{
			"breaking":             s.Breaking,
			"deprecations":         s.Deprecations,
			"features":             s.Features,
			"enhancements":         s.Enhancements,
			"fixes":                s.Fixes,
			"enhancementsAndFixes": s.EnhancementsAndFixes,
		},
	}
}

// render renders a template, parsing each distinct template text only once
func (r *renderer) render(text string, context map[string]interface{}) (string, error) {
	tmpl, ok := r.parsed[text]
	if !ok {
		var err error
		tmpl, err = mustache.ParseString(text)
		if err != nil {
			return "", err
		}
		r.parsed[text] = tmpl
	}
	return tmpl.Render(context)
}

// sortedAreas returns the areas ordered by title, each title once
func sortedAreas(areas []cmd.AreaDefinition) []cmd.AreaDefinition {
	seen := make(map[string]bool, len(areas))
	sorted := make([]cmd.AreaDefinition, 0, len(areas))
	for _, area := range areas {
		if seen[area.Title] {
			continue
		}
		seen[area.Title] = true
		sorted = append(sorted, area)
	}

	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := strings.ToLower(sorted[i].Title), strings.ToLower(sorted[j].Title)
		if a != b {
			return a < b
		}
		return sorted[i].Title < sorted[j].Title
	})
	return sorted
}

// minorVersion turns "8.12.1" into "8.12"
func minorVersion(version string) string {
	if i := strings.LastIndex(version, "."); i >= 0 {
		return version[:i]
	}
	return version
}

// nextMajorVersion turns "8.12.1" into "9.0.0"
func nextMajorVersion(version string) string {
	v, err := semver.NewVersion(version)
	if err != nil {
		return ""
	}
	return fmt.Sprintf("%d.0.0", v.Major()+1)
}
