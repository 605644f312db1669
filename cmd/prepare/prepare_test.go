package prepare

import (
	"bytes"
	"testing"

	"github.com/alan/release-notes/cmd"
	"github.com/alan/release-notes/internal/github"
	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	color.NoColor = true
}

func labelled(number int, title, body string, labels ...string) github.PR {
	pr := github.PR{Number: number, Title: title, Body: body}
	for _, label := range labels {
		pr.Labels = append(pr.Labels, github.Label{Name: label})
	}
	return pr
}

func TestPrepareRun(t *testing.T) {
	pc := &PrepareCommand{ShowOriginal: true}
	pc.Config = &cmd.Config{
		RepoName: "kibana",
		Areas: []cmd.AreaDefinition{
			{Title: "Search", Labels: []string{"Team:Search"}},
			{Title: "Dashboard", Labels: []string{"Feature:Dashboard"}},
		},
	}

	prs := []github.PR{
		labelled(1, "[Search] fix query (#99)", "", "release_note:fix", "Team:Search", "v8.12.1"),
		labelled(2, "Add panel", "Release notes: Adds a new panel type", "release_note:feature", "Feature:Dashboard", "v8.12.1"),
		labelled(3, "Tweak", "", "v8.12.1", "v8.12.2"),
	}

	var out bytes.Buffer
	require.NoError(t, pc.Run(&out, "v8.12.1", prs))
	output := out.String()

	assert.Contains(t, output, "Release notes for v8.12.1 (kibana, 3 PRs)")
	assert.Contains(t, output, "Features\n  Dashboard\n    #2      Adds a new panel type [release note]\n")
	assert.Contains(t, output, "Fixes\n  Search\n    #1      Fix query\n")
	assert.Contains(t, output, "was: [Search] fix query (#99)")
	assert.Contains(t, output, "1 PR(s) have no release_note:* label and were not included: #3")
	assert.Contains(t, output, "1 PR(s) are labelled for more than one patch release: #3")
	assert.Less(t, bytes.Index(out.Bytes(), []byte("Features")), bytes.Index(out.Bytes(), []byte("Fixes")))
}

func TestTypeMarker(t *testing.T) {
	assert.Equal(t, "", typeMarker("title"))
	assert.Equal(t, " [release note]", typeMarker("releaseNoteTitle"))
	assert.Equal(t, " [+ details]", typeMarker("releaseNoteDetails"))
}
