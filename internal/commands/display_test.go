package commands

import (
	"bytes"
	"strings"
	"testing"

	"github.com/alan/release-notes/internal/github"
	"github.com/fatih/color"
)

func init() {
	color.NoColor = true
}

func numberedPRs(numbers ...int) []github.PR {
	var result []github.PR
	for _, n := range numbers {
		result = append(result, github.PR{Number: n})
	}
	return result
}

func TestDisplayMissingLabelWarning(t *testing.T) {
	tests := []struct {
		name         string
		prs          []github.PR
		wantContains []string
		wantEmpty    bool
	}{
		{
			name:         "some PRs missing labels",
			prs:          numberedPRs(12, 34),
			wantContains: []string{"⚠️", "2 PR(s)", "#12, #34"},
		},
		{
			name:      "nothing missing",
			prs:       nil,
			wantEmpty: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			DisplayMissingLabelWarning(&buf, tt.prs)

			if tt.wantEmpty {
				if buf.Len() != 0 {
					t.Errorf("DisplayMissingLabelWarning() wrote %q, want nothing", buf.String())
				}
				return
			}
			for _, expected := range tt.wantContains {
				if !strings.Contains(buf.String(), expected) {
					t.Errorf("DisplayMissingLabelWarning() = %q, want to contain %q", buf.String(), expected)
				}
			}
		})
	}
}

func TestDisplayDuplicatePatchWarning(t *testing.T) {
	var buf bytes.Buffer
	DisplayDuplicatePatchWarning(&buf, numberedPRs(7))

	if !strings.Contains(buf.String(), "1 PR(s) are labelled for more than one patch release: #7") {
		t.Errorf("DisplayDuplicatePatchWarning() = %q", buf.String())
	}
}

func TestDisplaySuccess(t *testing.T) {
	var buf bytes.Buffer
	DisplaySuccess(&buf, "Wrote %s", "notes.md")

	if buf.String() != "✅ Wrote notes.md\n" {
		t.Errorf("DisplaySuccess() = %q", buf.String())
	}
}

func TestFormatProgress(t *testing.T) {
	tests := []struct {
		name     string
		progress github.Progress
		expected string
	}{
		{
			name:     "first page",
			progress: github.Progress{Page: 1, LastPage: 4, Fetched: 100, Percentage: 0.25},
			expected: "Fetching PRs...  25% (page 1/4, 100 PRs)",
		},
		{
			name:     "done",
			progress: github.Progress{Page: 4, LastPage: 4, Fetched: 350, Percentage: 1, Done: true},
			expected: "Fetched 350 PR(s)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatProgress(tt.progress); got != tt.expected {
				t.Errorf("FormatProgress() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestProgressPrinter(t *testing.T) {
	var buf bytes.Buffer
	printer := ProgressPrinter(&buf)

	printer(github.Progress{Page: 1, LastPage: 1, Fetched: 3, Percentage: 1})
	printer(github.Progress{Page: 1, LastPage: 1, Fetched: 3, Percentage: 1, Done: true})

	expected := "\rFetching PRs... 100% (page 1/1, 3 PRs)\rFetched 3 PR(s)\n"
	if buf.String() != expected {
		t.Errorf("ProgressPrinter() wrote %q, want %q", buf.String(), expected)
	}
}
