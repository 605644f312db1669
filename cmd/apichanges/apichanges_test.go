package apichanges

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
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

func newCommand() *APIChangesCommand {
	ac := &APIChangesCommand{}
	ac.State = &cmd.State{Org: "elastic"}
	ac.Config = &cmd.Config{RepoName: "kibana"}
	return ac
}

func testPRs() []github.PR {
	return []github.PR{
		{Number: 101, State: "closed", Title: "[Core] Remove foo", Body: "Summary\n\n## Dev Docs\n\nThe foo service was removed from Kibana core."},
		{Number: 102, State: "closed", Title: "Rename bar", Body: "No docs here"},
	}
}

func TestAPIChangesRun(t *testing.T) {
	var out, errOut bytes.Buffer
	require.NoError(t, newCommand().Run(&out, &errOut, "v8.12.0", testPRs()))

	output := out.String()
	assert.True(t, strings.HasPrefix(output, "[[breaking_plugin_v8.12.0_101]]\n.Remove foo\n"))
	assert.Contains(t, output, "The foo service was removed from {kib} core.")
	assert.Contains(t, output, "*via https://github.com/elastic/kibana/pull/101[#101]*")
	assert.NotContains(t, output, "102")

	assert.Contains(t, errOut.String(), "1 PR(s) have no Dev Docs section:")
	assert.Contains(t, errOut.String(), "https://github.com/elastic/kibana/pull/102 Rename bar (closed)")
}

func TestAPIChangesRunWritesOutputFile(t *testing.T) {
	output := filepath.Join(t.TempDir(), "api.asciidoc")
	ac := newCommand()
	ac.Output = output

	var out, errOut bytes.Buffer
	require.NoError(t, ac.Run(&out, &errOut, "v8.12.0", testPRs()[:1]))

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Contains(t, string(data), "[[breaking_plugin_v8.12.0_101]]")
	assert.Empty(t, out.String())
	assert.Contains(t, errOut.String(), "Wrote 1 API change(s) for v8.12.0 to "+output)
}

func TestAPIChangesRunNothingFound(t *testing.T) {
	var out, errOut bytes.Buffer
	require.NoError(t, newCommand().Run(&out, &errOut, "v8.12.0", nil))

	assert.Empty(t, out.String())
	assert.Contains(t, errOut.String(), "No PRs with a Dev Docs section found for v8.12.0")
}

func TestAPIChangesCommandRequiresOrg(t *testing.T) {
	stateFile := filepath.Join(t.TempDir(), "release-notes.yaml")
	loadState := func(string) (*cmd.State, error) {
		return &cmd.State{}, nil
	}

	command := NewAPIChangesCmd(&stateFile, loadState)
	command.SetArgs([]string{"8.12.0"})
	command.SetOut(&bytes.Buffer{})
	command.SetErr(&bytes.Buffer{})

	assert.ErrorContains(t, command.Execute(), "organization is not configured")
}
