// Package prepare implements the prepare command that reviews the PRs of a version before generating notes.
package prepare

import (
	"fmt"
	"io"
	"os"

	"github.com/alan/release-notes/cmd"
	"github.com/alan/release-notes/internal/commands"
	"github.com/alan/release-notes/internal/github"
	"github.com/alan/release-notes/internal/prutil"
	"github.com/alan/release-notes/internal/render"
	"github.com/spf13/cobra"
)

// PrepareCommand encapsulates the prepare command
type PrepareCommand struct {
	commands.BaseCommand
	Input           string
	IgnoredVersions []string
	ShowOriginal    bool
}

// NewPrepareCmd creates and returns the prepare command
func NewPrepareCmd(globalStateFile *string, loadState func(string) (*cmd.State, error)) *cobra.Command {
	pc := &PrepareCommand{}

	command := &cobra.Command{
		Use:   "prepare <version>",
		Short: "Review how the PRs of a version will be grouped and titled",
		Long: `Prepare prints every PR of the version grouped by category and area, with
the title it will get in the release notes. PRs that cannot be classified
because they lack a release_note:* label, and PRs labelled for more than one
patch of the same minor, are reported so their labels can be fixed on GitHub.

Requires GITHUB_TOKEN environment variable to be set unless --input is given.`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cobraCmd *cobra.Command, args []string) error {
			version, err := commands.ParseVersionArg(args)
			if err != nil {
				return err
			}
			ignored, err := commands.ParseVersionList(pc.IgnoredVersions)
			if err != nil {
				return err
			}

			pc.StateFile = globalStateFile
			pc.LoadState = loadState
			if err := pc.Init(cobraCmd.Context()); err != nil {
				return err
			}

			prs, err := pc.PRsForVersion(version, pc.Input, ignored, os.Stderr)
			if err != nil {
				return err
			}
			return pc.Run(cobraCmd.OutOrStdout(), version, prs)
		},
	}

	command.Flags().StringVarP(&pc.Input, "input", "i", "", "Read PRs from a JSON file written by fetch instead of GitHub")
	command.Flags().StringSliceVar(&pc.IgnoredVersions, "ignore-version", nil, "Version labels that do not mark a PR as already released (repeatable)")
	command.Flags().BoolVar(&pc.ShowOriginal, "show-original", false, "Show the original PR title next to changed titles")

	return command
}

// Run prints the overview of prs
func (pc *PrepareCommand) Run(w io.Writer, version string, prs []github.PR) error {
	original := make(map[int]string, len(prs))
	for _, pr := range prs {
		original[pr.Number] = pr.Title
	}

	commands.DisplayHeading(w, "Release notes for %s (%s, %d PRs)", version, pc.Config.RepoName, len(prs))

	for _, category := range render.Overview(pc.Config, prs) {
		fmt.Fprintln(w)
		commands.DisplayHeading(w, "%s", category.Title)
		for _, group := range category.Groups {
			indent := "  "
			if group.Title != "" {
				fmt.Fprintf(w, "  %s\n", group.Title)
				indent = "    "
			}
			for _, entry := range group.Entries {
				fmt.Fprintf(w, "%s#%-6d %s%s\n", indent, entry.Number, entry.Title, typeMarker(entry.Type))
				if pc.ShowOriginal && original[entry.Number] != entry.Title {
					fmt.Fprintf(w, "%s        was: %s\n", indent, original[entry.Number])
				}
			}
		}
	}

	fmt.Fprintln(w)
	groups := prutil.GroupPRs(prs)
	commands.DisplayMissingLabelWarning(w, groups.MissingLabel)
	commands.DisplayDuplicatePatchWarning(w, commands.DuplicatePatchPRs(prs, version))

	return nil
}

// typeMarker flags entries whose text does not come from the PR title
func typeMarker(t prutil.ReleaseNoteType) string {
	switch t {
	case prutil.ReleaseNoteTypeReleaseNoteTitle:
		return " [release note]"
	case prutil.ReleaseNoteTypeReleaseNoteDetails:
		return " [+ details]"
	default:
		return ""
	}
}
