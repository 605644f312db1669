package prutil

import (
	"fmt"
	"log/slog"
	"regexp"

	"github.com/Masterminds/semver/v3"
	"github.com/alan/release-notes/internal/github"
)

var (
	versionLabelRegex = regexp.MustCompile(`^v\d+\.\d+\.\d+$`)
	patchLabelRegex   = regexp.MustCompile(`^v?\d+\.\d+\.\d+$`)
)

// IsVersionLabel reports whether a label looks like vX.Y.Z
func IsVersionLabel(label string) bool {
	return versionLabelRegex.MatchString(label)
}

// FilterByLabels drops PRs carrying an excluded label and, when included is not
// empty, PRs carrying none of the included labels.
func FilterByLabels(prs []github.PR, excluded, included []string) []github.PR {
	var filtered []github.PR
	for _, pr := range prs {
		if hasAnyLabel(pr, excluded) {
			continue
		}
		if len(included) > 0 && !hasAnyLabel(pr, included) {
			continue
		}
		filtered = append(filtered, pr)
	}
	return filtered
}

// FilterForVersion drops PRs that carry a version label lower than version, since
// those were already shipped in an earlier release. Labels in ignoredVersions do
// not count.
func FilterForVersion(prs []github.PR, version string, ignoredVersions []string) ([]github.PR, error) {
	target, err := semver.NewVersion(version)
	if err != nil {
		return nil, fmt.Errorf("invalid target version %s: %w", version, err)
	}

	ignored := make(map[string]bool, len(ignoredVersions))
	for _, v := range ignoredVersions {
		ignored[v] = true
	}

	var filtered []github.PR
	for _, pr := range prs {
		if shipped, label := shippedEarlier(pr, target, ignored); shipped {
			slog.Debug("Skipping PR already released in an earlier version", "pr", pr.Number, "label", label)
			continue
		}
		filtered = append(filtered, pr)
	}
	return filtered, nil
}

func shippedEarlier(pr github.PR, target *semver.Version, ignored map[string]bool) (bool, string) {
	for _, label := range pr.Labels {
		if !IsVersionLabel(label.Name) || ignored[label.Name] {
			continue
		}
		v, err := semver.NewVersion(label.Name)
		if err != nil {
			continue
		}
		if v.LessThan(target) {
			return true, label.Name
		}
	}
	return false, ""
}

// HasDuplicatePatchLabels reports whether two or more labels are patch versions of
// the target's minor release, which usually means a PR was labelled for the wrong
// patch.
func HasDuplicatePatchLabels(labels []string, targetVersion string) bool {
	if targetVersion == "" {
		return false
	}
	target, err := semver.NewVersion(targetVersion)
	if err != nil {
		return false
	}

	count := 0
	for _, label := range labels {
		if !patchLabelRegex.MatchString(label) {
			continue
		}
		v, err := semver.NewVersion(label)
		if err != nil {
			continue
		}
		if v.Major() == target.Major() && v.Minor() == target.Minor() {
			count++
		}
	}
	return count >= 2
}

func hasAnyLabel(pr github.PR, labels []string) bool {
	for _, label := range labels {
		if pr.HasLabel(label) {
			return true
		}
	}
	return false
}
