// Package versions implements the versions command listing the versions release notes can be generated for.
package versions

import (
	"fmt"
	"io"

	"github.com/alan/release-notes/cmd"
	"github.com/alan/release-notes/internal/commands"
	"github.com/alan/release-notes/internal/github"
	"github.com/spf13/cobra"
)

// VersionsCommand encapsulates the versions command
type VersionsCommand struct {
	commands.BaseCommand
	Check string
}

// NewVersionsCmd creates and returns the versions command
func NewVersionsCmd(globalStateFile *string, loadState func(string) (*cmd.State, error)) *cobra.Command {
	vc := &VersionsCommand{}

	command := &cobra.Command{
		Use:   "versions",
		Short: "List upcoming release versions",
		Long: `Versions lists the version labels (vX.Y.Z) of the repository that are newer
than its latest published release.

With --check, it instead lists the earlier version labels that never got a
release; PRs labelled with them are included when generating notes for the
checked version.

Requires GITHUB_TOKEN environment variable to be set.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cobraCmd *cobra.Command, _ []string) error {
			vc.StateFile = globalStateFile
			vc.LoadState = loadState
			if err := vc.Init(cobraCmd.Context()); err != nil {
				return err
			}
			if vc.Check != "" {
				version, err := commands.ParseVersionArg([]string{vc.Check})
				if err != nil {
					return err
				}
				vc.Check = version
			}
			if err := vc.InitGitHub(); err != nil {
				return err
			}

			data, err := vc.GitHubClient.GetVersionData(vc.Context)
			if err != nil {
				return err
			}
			return vc.Run(cobraCmd.OutOrStdout(), data)
		},
	}

	command.Flags().StringVar(&vc.Check, "check", "", "List unreleased earlier versions that roll into this version")

	return command
}

// Run prints the versions derived from the repository's labels and releases
func (vc *VersionsCommand) Run(w io.Writer, data *github.VersionData) error {
	if vc.Check != "" {
		unreleased, err := github.UnreleasedPastLabels(data.Labels, data.ReleaseTags, vc.Check)
		if err != nil {
			return err
		}
		if len(unreleased) == 0 {
			fmt.Fprintf(w, "All earlier versions of %s have been released.\n", vc.Check)
			return nil
		}
		commands.DisplayWarning(w, "PRs of these unreleased versions will be included in %s:", vc.Check)
		for _, version := range unreleased {
			fmt.Fprintf(w, "  %s\n", version)
		}
		return nil
	}

	upcoming := github.UpcomingVersions(data.Labels, data.ReleaseTags)
	if len(upcoming) == 0 {
		fmt.Fprintln(w, "No upcoming versions found.")
		return nil
	}
	commands.DisplayHeading(w, "Upcoming versions of %s:", vc.repositoryName())
	for _, version := range upcoming {
		fmt.Fprintf(w, "  %s\n", version)
	}
	return nil
}

// repositoryName names the repository versions are listed for
func (vc *VersionsCommand) repositoryName() string {
	if vc.GitHubClient != nil {
		return vc.GitHubClient.Repository()
	}
	if vc.Config != nil {
		return vc.Config.RepoName
	}
	return "the repository"
}
