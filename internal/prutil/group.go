package prutil

import (
	"log/slog"
	"strings"

	"github.com/alan/release-notes/cmd"
	"github.com/alan/release-notes/internal/github"
)

// ReleaseNoteLabelPrefix marks the labels that classify a PR
const ReleaseNoteLabelPrefix = "release_note:"

// Groups holds PRs bucketed by their release_note:* label
type Groups struct {
	Fixes        []github.PR
	Enhancements []github.PR
	Features     []github.PR
	Deprecations []github.PR
	Breaking     []github.PR
	MissingLabel []github.PR
}

// AreaGroups holds PRs of one category split by product area
type AreaGroups struct {
	Areas     map[string][]github.PR // area title -> PRs
	Unmatched []github.PR
}

// GroupPRs buckets PRs by release-note category. PRs without any release_note:*
// label land in MissingLabel only. A PR with several category labels appears in
// each matching bucket. Unknown release_note:* suffixes are ignored.
func GroupPRs(prs []github.PR) Groups {
	var groups Groups

	for _, pr := range prs {
		labels := pr.LabelsWithPrefix(ReleaseNoteLabelPrefix)
		if len(labels) == 0 {
			groups.MissingLabel = append(groups.MissingLabel, pr)
			continue
		}

		for _, label := range labels {
			switch strings.TrimPrefix(label, ReleaseNoteLabelPrefix) {
			case "fix":
				groups.Fixes = append(groups.Fixes, pr)
			case "enhancement":
				groups.Enhancements = append(groups.Enhancements, pr)
			case "feature":
				groups.Features = append(groups.Features, pr)
			case "deprecation":
				groups.Deprecations = append(groups.Deprecations, pr)
			case "breaking":
				groups.Breaking = append(groups.Breaking, pr)
			default:
				slog.Debug("Ignoring unknown release note label", "pr", pr.Number, "label", label)
			}
		}
	}

	return groups
}

// GroupByArea assigns every PR to the matching area with the highest priority.
// Ties go to the area defined first.
func GroupByArea(prs []github.PR, areas []cmd.AreaDefinition) AreaGroups {
	groups := AreaGroups{Areas: make(map[string][]github.PR)}

	for _, pr := range prs {
		area, ok := FindArea(pr, areas)
		if !ok {
			groups.Unmatched = append(groups.Unmatched, pr)
			continue
		}
		groups.Areas[area.Title] = append(groups.Areas[area.Title], pr)
	}

	return groups
}

// FindArea returns the highest priority area whose labels intersect the PR's labels
func FindArea(pr github.PR, areas []cmd.AreaDefinition) (cmd.AreaDefinition, bool) {
	best := -1
	for i, area := range areas {
		if !areaMatches(pr, area) {
			continue
		}
		if best < 0 || area.Priority > areas[best].Priority {
			best = i
		}
	}

	if best < 0 {
		return cmd.AreaDefinition{}, false
	}
	return areas[best], true
}

func areaMatches(pr github.PR, area cmd.AreaDefinition) bool {
	for _, label := range area.Labels {
		if pr.HasLabel(label) {
			return true
		}
	}
	return false
}

// MergePRs concatenates PR lists, keeping the first occurrence of each PR number
func MergePRs(lists ...[]github.PR) []github.PR {
	seen := make(map[int]bool)
	var merged []github.PR
	for _, list := range lists {
		for _, pr := range list {
			if seen[pr.Number] {
				continue
			}
			seen[pr.Number] = true
			merged = append(merged, pr)
		}
	}
	return merged
}
