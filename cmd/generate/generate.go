// Package generate implements the generate command that renders the release notes of a version.
package generate

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/alan/release-notes/cmd"
	"github.com/alan/release-notes/internal/commands"
	"github.com/alan/release-notes/internal/github"
	"github.com/alan/release-notes/internal/render"
	"github.com/spf13/cobra"
)

// previewWidth is the word-wrap width of terminal previews
const previewWidth = 100

// GenerateCommand encapsulates the generate command
type GenerateCommand struct {
	commands.BaseCommand
	Input           string
	Format          string
	ReleaseDate     string
	Output          string
	Preview         bool
	Watch           bool
	IgnoredVersions []string
}

// NewGenerateCmd creates and returns the generate command
func NewGenerateCmd(globalStateFile *string, loadState func(string) (*cmd.State, error)) *cobra.Command {
	gc := &GenerateCommand{}

	command := &cobra.Command{
		Use:   "generate <version>",
		Short: "Render the release notes of a version",
		Long: `Generate renders the release notes of a version with the active template.

The format defaults to auto, which picks Markdown from 9.0.0 on and AsciiDoc
for earlier versions. The document is written to stdout unless --output is
given. With --watch the notes are rendered again whenever the state file
changes, so template edits can be reviewed without fetching the PRs again.

Requires GITHUB_TOKEN environment variable to be set unless --input is given.`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cobraCmd *cobra.Command, args []string) error {
			version, err := commands.ParseVersionArg(args)
			if err != nil {
				return err
			}
			ignored, err := commands.ParseVersionList(gc.IgnoredVersions)
			if err != nil {
				return err
			}
			if _, err := cmd.ParseOutputFormat(gc.Format); err != nil {
				return err
			}
			if err := commands.ValidateOutputPath(gc.Output, *globalStateFile); err != nil {
				return err
			}

			gc.StateFile = globalStateFile
			gc.LoadState = loadState
			if err := gc.Init(cobraCmd.Context()); err != nil {
				return err
			}

			prs, err := gc.PRsForVersion(version, gc.Input, ignored, cobraCmd.ErrOrStderr())
			if err != nil {
				return err
			}

			if err := gc.Run(cobraCmd.OutOrStdout(), cobraCmd.ErrOrStderr(), version, prs); err != nil {
				return err
			}
			if !gc.Watch {
				return nil
			}
			return gc.watch(cobraCmd, version, prs)
		},
	}

	command.Flags().StringVarP(&gc.Input, "input", "i", "", "Read PRs from a JSON file written by fetch instead of GitHub")
	command.Flags().StringVar(&gc.Format, "format", "auto", "Output format: auto, markdown or asciidoc")
	command.Flags().StringVar(&gc.ReleaseDate, "release-date", "", "Release date shown by templates that use serverlessReleaseDate")
	command.Flags().StringVarP(&gc.Output, "output", "o", "", "Write the notes to this file instead of stdout")
	command.Flags().BoolVar(&gc.Preview, "preview", false, "Show Markdown output formatted for the terminal")
	command.Flags().BoolVarP(&gc.Watch, "watch", "w", false, "Render again whenever the state file changes")
	command.Flags().StringSliceVar(&gc.IgnoredVersions, "ignore-version", nil, "Version labels that do not mark a PR as already released (repeatable)")

	return command
}

// Run renders the notes for prs and writes them to the output file or w.
// Warnings go to errW so they never end up in the document.
func (gc *GenerateCommand) Run(w, errW io.Writer, version string, prs []github.PR) error {
	format, err := cmd.ParseOutputFormat(gc.Format)
	if err != nil {
		return err
	}

	opts, err := render.NewOptions(version, format, gc.Config.Templates)
	if err != nil {
		return err
	}
	opts.ReleaseDate = gc.ReleaseDate

	result, err := render.Render(gc.Config, prs, opts)
	if err != nil {
		return err
	}
	slog.Debug("Rendered release notes", "version", version, "format", opts.Format, "prs", len(prs))

	if gc.Output != "" {
		if err := os.WriteFile(gc.Output, []byte(result.Output+"\n"), 0644); err != nil { //nolint:gosec // notes are meant to be shared
			return fmt.Errorf("failed to write release notes: %w", err)
		}
		commands.DisplaySuccess(errW, "Wrote %s release notes for %s to %s", opts.Format, version, gc.Output)
	} else if err := gc.print(w, errW, opts.Format, result.Output); err != nil {
		return err
	}

	commands.DisplayMissingLabelWarning(errW, result.MissingLabel)
	return nil
}

func (gc *GenerateCommand) print(w, errW io.Writer, format cmd.OutputFormat, output string) error {
	if !gc.Preview {
		_, err := fmt.Fprintln(w, output)
		return err
	}
	if format != cmd.OutputFormatMarkdown {
		commands.DisplayWarning(errW, "Preview is only available for markdown, printing %s as is", format)
		_, err := fmt.Fprintln(w, output)
		return err
	}

	preview, err := render.Preview(output, previewWidth)
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(w, preview)
	return err
}

// watch renders the notes again on every change of the state file until interrupted
func (gc *GenerateCommand) watch(cobraCmd *cobra.Command, version string, prs []github.PR) error {
	ctx, stop := signal.NotifyContext(gc.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errW := cobraCmd.ErrOrStderr()
	commands.DisplayHeading(errW, "Watching %s for changes, press Ctrl+C to stop", *gc.StateFile)

	return WatchFile(ctx, *gc.StateFile, func() {
		if err := gc.Init(ctx); err != nil {
			commands.DisplayWarning(errW, "Failed to reload %s: %v", *gc.StateFile, err)
			return
		}
		if err := gc.Run(cobraCmd.OutOrStdout(), errW, version, prs); err != nil {
			commands.DisplayWarning(errW, "Failed to render release notes: %v", err)
		}
	})
}
