// Package prutil turns raw pull requests into release-note entries: it normalizes
// titles, extracts release-note sections from PR bodies and classifies PRs by
// release-note label and product area.
package prutil

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/alan/release-notes/cmd"
)

// Options controls how a title is normalized
type Options struct {
	BracketHandling cmd.BracketHandling
	// OriginalTitle is the PR title a release-note override was taken from.
	// Visualizations handling falls back to its leading bracket tag.
	OriginalTitle string
}

var (
	versionTagRegex     = regexp.MustCompile(`\s*\[\d+\.\d+(\.\d+)?\]\s*`)
	issueRefRegex       = regexp.MustCompile(`\s*\(?#\d{2,}\)?\s*`)
	bracketGroupRegex   = regexp.MustCompile(`\s*\[[^\]]+\]\s*`)
	leadingBracketRegex = regexp.MustCompile(`^\s*\[([^\]]+)\]\s*`)
	leadingPunctRegex   = regexp.MustCompile(`^[\s:-]+`)
	trailingPunctRegex  = regexp.MustCompile(`[\s.:-]+$`)
	multiSpaceRegex     = regexp.MustCompile(`\s{2,}`)
)

// visualizationTools maps the lower-cased bracket tag to its display name
var visualizationTools = map[string]string{
	"lens":      "Lens",
	"tsvb":      "TSVB",
	"timelion":  "Timelion",
	"vega":      "Vega",
	"visualize": "Visualize",
	"canvas":    "Canvas",
}

var toolMentionRegexes = func() map[string]*regexp.Regexp {
	regexes := make(map[string]*regexp.Regexp, len(visualizationTools))
	for _, name := range visualizationTools {
		regexes[name] = regexp.MustCompile(`(?i)\b(in|to) ` + regexp.QuoteMeta(name) + `\b`)
	}
	return regexes
}()

// NormalizeTitle produces a clean, capitalized release-note title from a PR title
// or a release-note override.
func NormalizeTitle(title string, opts Options) string {
	text := removeReferences(title)

	switch opts.BracketHandling {
	case cmd.BracketHandlingKeep:
	case cmd.BracketHandlingVisualizations:
		text = applyVisualizationTag(text, removeReferences(opts.OriginalTitle))
	default:
		text = bracketGroupRegex.ReplaceAllString(text, " ")
	}

	return capitalize(cleanup(text))
}

// removeReferences drops version tags like [7.12] and issue references like (#1234)
func removeReferences(title string) string {
	text := versionTagRegex.ReplaceAllString(title, " ")
	return issueRefRegex.ReplaceAllString(text, " ")
}

// applyVisualizationTag rewrites a leading tool tag into an "in *Tool*" suffix.
// Tags that are not visualization tools are dropped like in strip mode.
func applyVisualizationTag(text, originalTitle string) string {
	var tag string
	if m := leadingBracketRegex.FindStringSubmatch(text); m != nil {
		tag = m[1]
		text = text[len(m[0]):]
	} else if m := leadingBracketRegex.FindStringSubmatch(originalTitle); m != nil {
		tag = m[1]
	}

	text = bracketGroupRegex.ReplaceAllString(text, " ")

	tool, ok := visualizationTools[strings.ToLower(strings.TrimSpace(tag))]
	if !ok {
		return text
	}

	text = cleanup(text)
	mention := toolMentionRegexes[tool]
	if mention.MatchString(text) {
		return mention.ReplaceAllString(text, "${1} *"+tool+"*")
	}
	return text + " in *" + tool + "*"
}

// cleanup trims separators and trailing periods and collapses whitespace
func cleanup(text string) string {
	text = leadingPunctRegex.ReplaceAllString(text, "")
	text = trailingPunctRegex.ReplaceAllString(text, "")
	text = multiSpaceRegex.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

func capitalize(text string) string {
	r, size := utf8.DecodeRuneInString(text)
	if r == utf8.RuneError {
		return text
	}
	return string(unicode.ToUpper(r)) + text[size:]
}
