// Package apichanges implements the api-changes command that collects plugin API change notes.
package apichanges

import (
	"fmt"
	"io"
	"os"

	"github.com/alan/release-notes/cmd"
	"github.com/alan/release-notes/internal/apichanges"
	"github.com/alan/release-notes/internal/commands"
	"github.com/alan/release-notes/internal/github"
	"github.com/spf13/cobra"
)

// APIChangesCommand encapsulates the api-changes command
type APIChangesCommand struct {
	commands.BaseCommand
	IncludeOpen bool
	Output      string
}

// NewAPIChangesCmd creates and returns the api-changes command
func NewAPIChangesCmd(globalStateFile *string, loadState func(string) (*cmd.State, error)) *cobra.Command {
	ac := &APIChangesCommand{}

	command := &cobra.Command{
		Use:   "api-changes <version>",
		Short: "Collect the plugin API changes of a version as AsciiDoc",
		Long: `Collect the PRs of a version labelled release_note:plugin_api_changes and
render the "Dev Docs" section of each PR description as a collapsible
AsciiDoc block. PRs without such a section are listed so their authors can
be asked to add one.

Requires GITHUB_TOKEN environment variable to be set.`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cobraCmd *cobra.Command, args []string) error {
			version, err := commands.ParseVersionArg(args)
			if err != nil {
				return err
			}
			if err := commands.ValidateOutputPath(ac.Output, *globalStateFile); err != nil {
				return err
			}

			ac.StateFile = globalStateFile
			ac.LoadState = loadState
			if err := ac.Init(cobraCmd.Context()); err != nil {
				return err
			}
			if err := ac.InitGitHub(); err != nil {
				return err
			}

			prs, err := commands.FetchAPIChangePRs(ac.Context, ac.GitHubClient,
				ac.State.Org, ac.Config.RepoName, version, ac.IncludeOpen)
			if err != nil {
				return err
			}
			return ac.Run(cobraCmd.OutOrStdout(), cobraCmd.ErrOrStderr(), version, prs)
		},
	}

	command.Flags().BoolVar(&ac.IncludeOpen, "include-open", false, "Also include PRs that are still open")
	command.Flags().StringVarP(&ac.Output, "output", "o", "", "Write the AsciiDoc to this file instead of stdout")

	return command
}

// Run renders the API change entries of prs
func (ac *APIChangesCommand) Run(w, errW io.Writer, version string, prs []github.PR) error {
	entries, missing := apichanges.Entries(prs)

	repository := fmt.Sprintf("%s/%s", ac.State.Org, ac.Config.RepoName)
	output, err := apichanges.Render(repository, version, entries)
	if err != nil {
		return err
	}

	if ac.Output != "" {
		if err := os.WriteFile(ac.Output, []byte(output+"\n"), 0644); err != nil { //nolint:gosec // notes are meant to be shared
			return fmt.Errorf("failed to write api changes: %w", err)
		}
		commands.DisplaySuccess(errW, "Wrote %d API change(s) for %s to %s", len(entries), version, ac.Output)
	} else if len(entries) > 0 {
		fmt.Fprintln(w, output)
	}

	if len(entries) == 0 {
		commands.DisplayWarning(errW, "No PRs with a Dev Docs section found for %s", version)
	}
	if len(missing) > 0 {
		commands.DisplayWarning(errW, "%d PR(s) have no Dev Docs section:", len(missing))
		for _, entry := range missing {
			fmt.Fprintf(errW, "  https://github.com/%s/pull/%d %s (%s)\n", repository, entry.PR, entry.Title, entry.State)
		}
	}
	return nil
}
