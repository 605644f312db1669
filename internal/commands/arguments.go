package commands

import (
	"fmt"
	"strings"
)

// ParseVersionArg extracts and validates the version argument. A missing "v"
// prefix is added, so 8.12.0 and v8.12.0 are equivalent.
func ParseVersionArg(args []string) (string, error) {
	if len(args) == 0 {
		return "", fmt.Errorf("version is required")
	}

	version := strings.TrimSpace(args[0])
	if version != "" && !strings.HasPrefix(version, "v") {
		version = "v" + version
	}

	if err := ValidateVersion(version); err != nil {
		return "", err
	}
	return version, nil
}

// ParseVersionList normalizes a list of version flags the same way as ParseVersionArg
func ParseVersionList(values []string) ([]string, error) {
	var versions []string
	for _, value := range values {
		for _, part := range strings.Split(value, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			version, err := ParseVersionArg([]string{part})
			if err != nil {
				return nil, err
			}
			versions = append(versions, version)
		}
	}
	return versions, nil
}
