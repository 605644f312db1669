package github

import (
	"fmt"
	"sort"

	"github.com/Masterminds/semver/v3"
)

// pastMinorsChecked is how many minors before the target are checked for unreleased labels
const pastMinorsChecked = 2

type labelVersion struct {
	label   string
	version *semver.Version
}

// parseVersions parses version strings, skipping anything that is not a version
func parseVersions(values []string) []labelVersion {
	var parsed []labelVersion
	for _, value := range values {
		v, err := semver.NewVersion(value)
		if err != nil {
			continue
		}
		parsed = append(parsed, labelVersion{label: value, version: v})
	}
	sort.SliceStable(parsed, func(i, j int) bool {
		return parsed[i].version.LessThan(parsed[j].version)
	})
	return parsed
}

// UpcomingVersions returns the version labels newer than the newest release, oldest first
func UpcomingVersions(labels, releaseTags []string) []string {
	releases := parseVersions(releaseTags)

	var latest *semver.Version
	for _, release := range releases {
		if release.version.Prerelease() != "" {
			continue
		}
		latest = release.version
	}

	var upcoming []string
	for _, label := range parseVersions(labels) {
		if latest == nil || label.version.GreaterThan(latest) {
			upcoming = append(upcoming, label.label)
		}
	}
	return upcoming
}

// UnreleasedPastLabels returns version labels below target that have no release.
// Only the target's own minor and the two minors before it are checked, so PRs
// labelled for a version that was never shipped can be pulled into target.
func UnreleasedPastLabels(labels, releaseTags []string, target string) ([]string, error) {
	targetVersion, err := semver.NewVersion(target)
	if err != nil {
		return nil, fmt.Errorf("invalid target version %s: %w", target, err)
	}

	released := make(map[string]bool)
	for _, release := range parseVersions(releaseTags) {
		released[release.version.String()] = true
	}

	below := parseVersions(labels)
	minors := minorsBefore(below, targetVersion)

	var unreleased []string
	for _, label := range below {
		if !label.version.LessThan(targetVersion) {
			continue
		}
		if !minors[minorKey(label.version)] {
			continue
		}
		if released[label.version.String()] {
			continue
		}
		unreleased = append(unreleased, label.label)
	}
	return unreleased, nil
}

// minorsBefore returns the target's minor plus the closest earlier minors found in versions
func minorsBefore(versions []labelVersion, target *semver.Version) map[string]bool {
	minors := map[string]bool{minorKey(target): true}

	found := 0
	for i := len(versions) - 1; i >= 0 && found < pastMinorsChecked; i-- {
		v := versions[i].version
		if !v.LessThan(target) {
			continue
		}
		key := minorKey(v)
		if minors[key] {
			continue
		}
		minors[key] = true
		found++
	}
	return minors
}

func minorKey(v *semver.Version) string {
	return fmt.Sprintf("%d.%d", v.Major(), v.Minor())
}
