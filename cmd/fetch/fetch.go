// Package fetch implements the fetch command that caches the PRs of a version to a JSON file.
package fetch

import (
	"fmt"
	"io"
	"os"

	"github.com/alan/release-notes/cmd"
	"github.com/alan/release-notes/internal/commands"
	"github.com/alan/release-notes/internal/github"
	"github.com/alan/release-notes/internal/prutil"
	"github.com/spf13/cobra"
)

// FetchCommand encapsulates the fetch command with common functionality
type FetchCommand struct {
	commands.BaseCommand
	Output          string
	IgnoredVersions []string
}

// NewFetchCmd creates and returns the fetch command
func NewFetchCmd(globalStateFile *string, loadState func(string) (*cmd.State, error)) *cobra.Command {
	fetchCmd := &FetchCommand{}

	command := &cobra.Command{
		Use:   "fetch <version>",
		Short: "Fetch the merged PRs of a version and store them in a JSON file",
		Long: `Fetch searches the merged PRs labelled with the version, applies the
active template's excluded and included labels, drops PRs that already shipped
in an earlier version and writes the result to a JSON file.

The file can be passed to prepare and generate with --input, so notes can be
iterated on without hitting the GitHub API again.

Requires GITHUB_TOKEN environment variable to be set.`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cobraCmd *cobra.Command, args []string) error {
			version, err := commands.ParseVersionArg(args)
			if err != nil {
				return err
			}
			ignored, err := commands.ParseVersionList(fetchCmd.IgnoredVersions)
			if err != nil {
				return err
			}

			fetchCmd.StateFile = globalStateFile
			fetchCmd.LoadState = loadState
			if err := fetchCmd.Init(cobraCmd.Context()); err != nil {
				return err
			}

			output := fetchCmd.Output
			if output == "" {
				output = DefaultOutput(version)
			}
			if err := commands.ValidateOutputPath(output, *globalStateFile); err != nil {
				return err
			}

			prs, err := fetchCmd.PRsForVersion(version, "", ignored, os.Stderr)
			if err != nil {
				return err
			}
			return fetchCmd.Run(cobraCmd.OutOrStdout(), output, prs)
		},
	}

	command.Flags().StringVarP(&fetchCmd.Output, "output", "o", "", "JSON file to write (default prs-<version>.json)")
	command.Flags().StringSliceVar(&fetchCmd.IgnoredVersions, "ignore-version", nil, "Version labels that do not mark a PR as already released (repeatable)")

	return command
}

// DefaultOutput is the cache file used for a version when --output is not set
func DefaultOutput(version string) string {
	return fmt.Sprintf("prs-%s.json", version)
}

// Run writes the PRs to output and prints a summary per category
func (fc *FetchCommand) Run(w io.Writer, output string, prs []github.PR) error {
	if err := commands.SavePRs(output, prs); err != nil {
		return err
	}

	groups := prutil.GroupPRs(prs)
	commands.DisplaySuccess(w, "Saved %d PR(s) to %s", len(prs), output)
	fmt.Fprintf(w, "  Breaking changes: %d\n", len(groups.Breaking))
	fmt.Fprintf(w, "  Deprecations:     %d\n", len(groups.Deprecations))
	fmt.Fprintf(w, "  Features:         %d\n", len(groups.Features))
	fmt.Fprintf(w, "  Enhancements:     %d\n", len(groups.Enhancements))
	fmt.Fprintf(w, "  Fixes:            %d\n", len(groups.Fixes))
	commands.DisplayMissingLabelWarning(w, groups.MissingLabel)

	return nil
}
