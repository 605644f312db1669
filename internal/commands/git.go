package commands

import (
	"fmt"
	"os/exec"
	"regexp"
	"strings"
)

var (
	sshRemoteRegex   = regexp.MustCompile(`^git@github\.com:([^/]+)/([^/]+?)(?:\.git)?$`)
	httpsRemoteRegex = regexp.MustCompile(`^https://github\.com/([^/]+)/([^/]+?)(?:\.git)?/?$`)
)

// GitRepoInfo holds the GitHub coordinates of the current git checkout
type GitRepoInfo struct {
	Org  string
	Repo string
}

// DetectGitRepoInfo reads org and repository from the origin remote
func DetectGitRepoInfo() (*GitRepoInfo, error) {
	if !IsGitRepository() {
		return nil, fmt.Errorf("not in a git repository")
	}

	output, err := exec.Command("git", "remote", "get-url", "origin").Output()
	if err != nil {
		return nil, fmt.Errorf("failed to read git remote: %w", err)
	}

	org, repo, err := ParseRemoteURL(strings.TrimSpace(string(output)))
	if err != nil {
		return nil, err
	}
	return &GitRepoInfo{Org: org, Repo: repo}, nil
}

// IsGitRepository checks if the current directory is a git repository
func IsGitRepository() bool {
	return exec.Command("git", "rev-parse", "--git-dir").Run() == nil
}

// ParseRemoteURL extracts org and repo from SSH and HTTPS GitHub remote URLs
func ParseRemoteURL(remoteURL string) (string, string, error) {
	if matches := sshRemoteRegex.FindStringSubmatch(remoteURL); len(matches) == 3 {
		return matches[1], matches[2], nil
	}
	if matches := httpsRemoteRegex.FindStringSubmatch(remoteURL); len(matches) == 3 {
		return matches[1], matches[2], nil
	}
	return "", "", fmt.Errorf("unable to parse GitHub remote URL: %s", remoteURL)
}
