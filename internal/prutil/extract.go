package prutil

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/alan/release-notes/cmd"
	"github.com/alan/release-notes/internal/github"
)

// ReleaseNoteType tells where the text of a release-note entry came from
type ReleaseNoteType string

const (
	// ReleaseNoteTypeTitle means the normalized PR title is used
	ReleaseNoteTypeTitle ReleaseNoteType = "title"
	// ReleaseNoteTypeReleaseNoteTitle means a short release-note section replaced the title
	ReleaseNoteTypeReleaseNoteTitle ReleaseNoteType = "releaseNoteTitle"
	// ReleaseNoteTypeReleaseNoteDetails means the section was too long to be a title
	// and is carried verbatim as details next to the normalized PR title
	ReleaseNoteTypeReleaseNoteDetails ReleaseNoteType = "releaseNoteDetails"
)

// maxReleaseNoteTitleLength is the longest single-line note still used as a title
const maxReleaseNoteTitleLength = 120

// ReleaseNoteDetail is the resolved text of one release-note entry
type ReleaseNoteDetail struct {
	Type          ReleaseNoteType
	Title         string
	OriginalTitle string
	Details       string // only set for ReleaseNoteTypeReleaseNoteDetails
}

// releaseNoteRegex matches a "Release Notes:" style label at the start of a line and
// captures everything up to the next blank line or the end of the text. The note
// may start on the line after the label but never after a blank line.
var releaseNoteRegex = regexp.MustCompile(`(?is)(?:^|\n)[ \t>#*_]*release[ \t-]?notes?\b[^\w\n]*\n?[^\w\n]*(\S.*?)(?:\n[ \t]*\n|$)`)

// FindReleaseNote returns the release-note section of a PR body, if there is one
func FindReleaseNote(markdown string) (string, bool) {
	if markdown == "" {
		return "", false
	}
	markdown = strings.ReplaceAll(markdown, "\r\n", "\n")

	m := releaseNoteRegex.FindStringSubmatch(markdown)
	if m == nil {
		return "", false
	}

	note := strings.TrimSpace(m[1])
	if note == "" {
		return "", false
	}
	return note, true
}

// ExtractReleaseNotes resolves the title (and possibly details) a PR is listed with
func ExtractReleaseNotes(pr github.PR, handling cmd.BracketHandling) ReleaseNoteDetail {
	note, found := FindReleaseNote(pr.Body)
	if !found {
		return ReleaseNoteDetail{
			Type:          ReleaseNoteTypeTitle,
			Title:         NormalizeTitle(pr.Title, Options{BracketHandling: handling}),
			OriginalTitle: pr.Title,
		}
	}

	if utf8.RuneCountInString(note) > maxReleaseNoteTitleLength || strings.Contains(note, "\n") {
		return ReleaseNoteDetail{
			Type:          ReleaseNoteTypeReleaseNoteDetails,
			Title:         NormalizeTitle(pr.Title, Options{BracketHandling: handling}),
			OriginalTitle: pr.Title,
			Details:       note,
		}
	}

	return ReleaseNoteDetail{
		Type:          ReleaseNoteTypeReleaseNoteTitle,
		Title:         NormalizeTitle(note, Options{BracketHandling: handling, OriginalTitle: pr.Title}),
		OriginalTitle: pr.Title,
	}
}
