package commands

import (
	"fmt"
	"regexp"
	"strings"
)

var versionArgRegex = regexp.MustCompile(`^v\d+\.\d+\.\d+$`)

// ValidateVersion ensures a version argument has the form vX.Y.Z
func ValidateVersion(version string) error {
	if !versionArgRegex.MatchString(version) {
		return fmt.Errorf("invalid version %q, expected the form vX.Y.Z (e.g. v8.12.0)", version)
	}
	return nil
}

// ValidateVersions validates every version in the list
func ValidateVersions(versions []string) error {
	for _, version := range versions {
		if err := ValidateVersion(version); err != nil {
			return err
		}
	}
	return nil
}

// ValidateOutputPath rejects output paths that point at the state file
func ValidateOutputPath(output, stateFile string) error {
	if output == "" {
		return nil
	}
	if strings.EqualFold(strings.TrimSpace(output), strings.TrimSpace(stateFile)) {
		return fmt.Errorf("output file %s would overwrite the state file", output)
	}
	return nil
}
