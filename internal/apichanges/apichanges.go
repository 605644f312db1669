// Package apichanges turns the "Dev Docs" sections of plugin API change PRs into
// AsciiDoc for the breaking plugin changes page.
package apichanges

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/alan/release-notes/internal/github"
	"github.com/cbroglie/mustache"
)

var (
	devDocRegex       = regexp.MustCompile(`(?i)(#+) (?:Dev[- ]?Docs?|(?:Plugin)?[- ]?API[- ]?(?:Changes)?)\s+([\S\s]*)`)
	checklistRegex    = regexp.MustCompile(`\n### Checklist[\S\s]*`)
	kibanaRegex       = regexp.MustCompile(`(?i)(\s)Kibana(\s)`)
	markdownLinkRegex = regexp.MustCompile(`\[([^\]]+)\]\(([^)]+)\)`)
	headingRegex      = regexp.MustCompile(`(?m)^#{1,6}\s*(.*)$`)
	titleTagRegex     = regexp.MustCompile(`^\[[^\]]+]\s*`)
)

// nextHeadingRegexes[n] matches a heading of level n or higher and everything after it
var nextHeadingRegexes = func() []*regexp.Regexp {
	regexes := make([]*regexp.Regexp, 7)
	for level := 1; level <= 6; level++ {
		regexes[level] = regexp.MustCompile(fmt.Sprintf(`(?im)^#{1,%d} [\s\S]*`, level))
	}
	return regexes
}()

const entryTemplate = `[[breaking_plugin_{{version}}_{{pr}}]]
.{{{title}}}
[%collapsible]
====

{{{text}}}

*via https://github.com/{{repository}}/pull/{{pr}}[#{{pr}}]*

====`

// Entry is one PR's API change description
type Entry struct {
	PR    int
	State string
	Title string
	Text  string // AsciiDoc, empty when the PR has no dev docs section
}

// ExtractContent returns the text below a "Dev Docs" or "API Changes" heading, up
// to the next heading of the same or a higher level.
func ExtractContent(body string) (string, bool) {
	body = strings.ReplaceAll(body, "\r\n", "\n")

	match := devDocRegex.FindStringSubmatch(body)
	if match == nil {
		return "", false
	}
	level, text := min(len(match[1]), 6), match[2]

	return strings.TrimSpace(nextHeadingRegexes[level].ReplaceAllString(text, "")), true
}

// CleanupMarkdown drops a PR checklist that made it into the text and replaces
// Kibana with the {kib} attribute of the docs.
func CleanupMarkdown(markdown string) string {
	markdown = checklistRegex.ReplaceAllString(markdown, "")
	return kibanaRegex.ReplaceAllString(markdown, "${1}{kib}${2}")
}

// ConvertMarkdownToAsciidoc converts links and turns headings into bold text
func ConvertMarkdownToAsciidoc(markdown string) string {
	markdown = markdownLinkRegex.ReplaceAllString(markdown, "${2}[${1}]")
	return headingRegex.ReplaceAllString(markdown, "**${1}**")
}

// CleanupIssueTitle removes a leading [Tag] from a title
func CleanupIssueTitle(title string) string {
	return titleTagRegex.ReplaceAllString(title, "")
}

// Entries converts PRs into entries. PRs without a dev docs section are returned
// separately so they can be reported.
func Entries(prs []github.PR) (entries, missing []Entry) {
	for _, pr := range prs {
		entry := Entry{
			PR:    pr.Number,
			State: pr.State,
			Title: CleanupIssueTitle(pr.Title),
		}
		if content, ok := ExtractContent(pr.Body); ok {
			entry.Text = ConvertMarkdownToAsciidoc(CleanupMarkdown(content))
		}

		if entry.Text == "" {
			missing = append(missing, entry)
			continue
		}
		entries = append(entries, entry)
	}
	return entries, missing
}

// Render renders entries as collapsible AsciiDoc blocks separated by blank lines
func Render(repository, version string, entries []Entry) (string, error) {
	tmpl, err := mustache.ParseString(entryTemplate)
	if err != nil {
		return "", fmt.Errorf("failed to parse api changes template: %w", err)
	}

	blocks := make([]string, 0, len(entries))
	for _, entry := range entries {
		block, err := tmpl.Render(map[string]interface{}{
			"version":    version,
			"pr":         entry.PR,
			"title":      entry.Title,
			"text":       entry.Text,
			"repository": repository,
		})
		if err != nil {
			return "", fmt.Errorf("failed to render api changes of PR #%d: %w", entry.PR, err)
		}
		blocks = append(blocks, block)
	}
	return strings.Join(blocks, "\n\n"), nil
}
