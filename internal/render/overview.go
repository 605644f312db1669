package render

import (
	"github.com/alan/release-notes/cmd"
	"github.com/alan/release-notes/internal/github"
	"github.com/alan/release-notes/internal/prutil"
)

// Category is one release-note category of an overview
type Category struct {
	Title  string
	Groups []Group
}

// Group holds the entries of one area within a category
type Group struct {
	Title   string
	Entries []Entry
}

// Entry is a PR with the title that will appear in the release notes
type Entry struct {
	Number int
	Title  string
	Type   prutil.ReleaseNoteType
	URL    string
}

// Overview classifies prs the same way Render does and returns the resulting
// structure without applying any template. Empty categories are omitted.
func Overview(cfg *cmd.Config, prs []github.PR) []Category {
	groups := prutil.GroupPRs(prs)

	candidates := []struct {
		title  string
		prs    []github.PR
		byArea bool
	}{
		{"Breaking changes", groups.Breaking, false},
		{"Deprecations", groups.Deprecations, false},
		{"Features", groups.Features, true},
		{"Enhancements", groups.Enhancements, true},
		{"Fixes", groups.Fixes, true},
	}

	var categories []Category
	for _, c := range candidates {
		if len(c.prs) == 0 {
			continue
		}
		category := Category{Title: c.title}
		if c.byArea {
			category.Groups = overviewByArea(cfg.Areas, c.prs)
		} else {
			category.Groups = []Group{{Entries: entries(c.prs, cmd.BracketHandlingStrip)}}
		}
		categories = append(categories, category)
	}
	return categories
}

func overviewByArea(areas []cmd.AreaDefinition, prs []github.PR) []Group {
	grouped := prutil.GroupByArea(prs, areas)

	var result []Group
	for _, area := range sortedAreas(areas) {
		if areaPRs, ok := grouped.Areas[area.Title]; ok {
			result = append(result, Group{Title: area.Title, Entries: entries(areaPRs, area.BracketHandling())})
		}
	}
	if len(grouped.Unmatched) > 0 {
		result = append(result, Group{Title: OtherGroupTitle, Entries: entries(grouped.Unmatched, cmd.BracketHandlingStrip)})
	}
	return result
}

func entries(prs []github.PR, handling cmd.BracketHandling) []Entry {
	result := make([]Entry, 0, len(prs))
	for _, pr := range prs {
		note := prutil.ExtractReleaseNotes(pr, handling)
		result = append(result, Entry{
			Number: pr.Number,
			Title:  note.Title,
			Type:   note.Type,
			URL:    pr.URL,
		})
	}
	return result
}
