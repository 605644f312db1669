package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/alan/release-notes/internal/github"
	"github.com/fatih/color"
)

var (
	successColor = color.New(color.FgGreen, color.Bold)
	warningColor = color.New(color.FgYellow, color.Bold)
	headingColor = color.New(color.FgCyan, color.Bold)
	dimColor     = color.New(color.FgHiBlack)
)

// DisplaySuccess prints a success line
func DisplaySuccess(w io.Writer, format string, args ...interface{}) {
	successColor.Fprintf(w, "✅ "+format+"\n", args...)
}

// DisplayWarning prints a warning line
func DisplayWarning(w io.Writer, format string, args ...interface{}) {
	warningColor.Fprintf(w, "⚠️  "+format+"\n", args...)
}

// DisplayHeading prints a section heading
func DisplayHeading(w io.Writer, format string, args ...interface{}) {
	headingColor.Fprintf(w, format+"\n", args...)
}

// formatPRNumbers lists PR numbers as "#1, #2"
func formatPRNumbers(prs []github.PR) string {
	numbers := make([]string, 0, len(prs))
	for _, pr := range prs {
		numbers = append(numbers, fmt.Sprintf("#%d", pr.Number))
	}
	return strings.Join(numbers, ", ")
}

// DisplayMissingLabelWarning reports PRs that carry no release_note label
func DisplayMissingLabelWarning(w io.Writer, prs []github.PR) {
	if len(prs) == 0 {
		return
	}
	DisplayWarning(w, "%d PR(s) have no release_note:* label and were not included: %s",
		len(prs), formatPRNumbers(prs))
}

// DisplayDuplicatePatchWarning reports PRs labelled for several patches of the target's minor
func DisplayDuplicatePatchWarning(w io.Writer, prs []github.PR) {
	if len(prs) == 0 {
		return
	}
	DisplayWarning(w, "%d PR(s) are labelled for more than one patch release: %s",
		len(prs), formatPRNumbers(prs))
}

// FormatProgress renders a progress event as a single status line
func FormatProgress(p github.Progress) string {
	if p.Done {
		return fmt.Sprintf("Fetched %d PR(s)", p.Fetched)
	}
	return fmt.Sprintf("Fetching PRs... %3.0f%% (page %d/%d, %d PRs)",
		p.Percentage*100, p.Page, p.LastPage, p.Fetched)
}

// ProgressPrinter returns a progress callback that rewrites one status line on w
func ProgressPrinter(w io.Writer) func(github.Progress) {
	return func(p github.Progress) {
		line := FormatProgress(p)
		if p.Done {
			dimColor.Fprintf(w, "\r%s\n", line)
			return
		}
		dimColor.Fprintf(w, "\r%s", line)
	}
}
