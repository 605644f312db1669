package github

import (
	"strings"
	"time"
)

// PR represents a merged pull request as seen by the release-notes pipeline
type PR struct {
	Number   int        `json:"number"`
	Title    string     `json:"title"`
	Body     string     `json:"body,omitempty"` // empty when the PR has no description
	State    string     `json:"state,omitempty"`
	Labels   []Label    `json:"labels"`
	Author   string     `json:"author,omitempty"`
	URL      string     `json:"url,omitempty"`
	MergedAt *time.Time `json:"mergedAt,omitempty"`
}

// Label represents a GitHub label attached to a PR
type Label struct {
	Name  string `json:"name"`
	Color string `json:"color,omitempty"`
}

// LabelNames returns the names of all labels on the PR
func (p PR) LabelNames() []string {
	names := make([]string, 0, len(p.Labels))
	for _, label := range p.Labels {
		names = append(names, label.Name)
	}
	return names
}

// HasLabel reports whether the PR carries a label with exactly this name
func (p PR) HasLabel(name string) bool {
	for _, label := range p.Labels {
		if label.Name == name {
			return true
		}
	}
	return false
}

// LabelsWithPrefix returns the label names starting with prefix
func (p PR) LabelsWithPrefix(prefix string) []string {
	var names []string
	for _, label := range p.Labels {
		if strings.HasPrefix(label.Name, prefix) {
			names = append(names, label.Name)
		}
	}
	return names
}

// Release represents a published GitHub release
type Release struct {
	TagName    string
	Name       string
	Draft      bool
	Prerelease bool
}

// Progress reports how far a paginated PR search has come
type Progress struct {
	Page       int
	LastPage   int
	Fetched    int
	Percentage float64
	Done       bool
}
