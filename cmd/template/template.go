// Package template implements the template command for selecting, inspecting and
// customizing configuration templates.
package template

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/alan/release-notes/cmd"
	"github.com/alan/release-notes/internal/commands"
	"github.com/alan/release-notes/internal/config"
	"github.com/spf13/cobra"
)

// TemplateCommand encapsulates the template subcommands
type TemplateCommand struct {
	commands.BaseCommand
}

// NewTemplateCmd creates and returns the template command with its subcommands
func NewTemplateCmd(globalStateFile *string, loadState func(string) (*cmd.State, error), saveState func(string, *cmd.State) error) *cobra.Command {
	tc := &TemplateCommand{}
	tc.StateFile = globalStateFile
	tc.LoadState = loadState
	tc.SaveState = saveState

	command := &cobra.Command{
		Use:   "template",
		Short: "Manage configuration templates",
		Long: `Templates bundle the repository, labels, areas and output templates used to
generate release notes. Built-in templates can be customized by importing a
modified configuration; the changes are kept in the state file.`,
	}

	command.AddCommand(tc.newListCmd())
	command.AddCommand(tc.newUseCmd())
	command.AddCommand(tc.newShowCmd())
	command.AddCommand(tc.newImportCmd())
	command.AddCommand(tc.newResetCmd())

	return command
}

func (tc *TemplateCommand) newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:          "list",
		Short:        "List the available templates",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cobraCmd *cobra.Command, _ []string) error {
			if err := tc.Init(cobraCmd.Context()); err != nil {
				return err
			}
			return tc.List(cobraCmd.OutOrStdout())
		},
	}
}

func (tc *TemplateCommand) newUseCmd() *cobra.Command {
	return &cobra.Command{
		Use:          "use <id>",
		Short:        "Select the template used by fetch, prepare and generate",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cobraCmd *cobra.Command, args []string) error {
			if err := tc.Init(cobraCmd.Context()); err != nil {
				return err
			}
			return tc.Use(cobraCmd.OutOrStdout(), args[0])
		},
	}
}

func (tc *TemplateCommand) newShowCmd() *cobra.Command {
	var format, output string
	var defaults bool

	command := &cobra.Command{
		Use:   "show [id]",
		Short: "Print a template's configuration",
		Long: `Show prints the configuration of a template, including your changes unless
--default is set. Without an id the active template is shown. The output can be
edited and imported again with 'template import'.`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cobraCmd *cobra.Command, args []string) error {
			if err := tc.Init(cobraCmd.Context()); err != nil {
				return err
			}
			id := tc.Store.ActiveTemplateID()
			if len(args) == 1 {
				id = args[0]
			}
			encoding, err := config.ParseEncoding(format)
			if err != nil {
				return err
			}
			return tc.Show(cobraCmd.OutOrStdout(), id, encoding, defaults, output)
		},
	}

	command.Flags().StringVar(&format, "format", "yaml", "Output format (json, yaml, toml)")
	command.Flags().StringVarP(&output, "output", "o", "", "Write to this file instead of stdout")
	command.Flags().BoolVar(&defaults, "default", false, "Show the built-in configuration without your changes")

	return command
}

func (tc *TemplateCommand) newImportCmd() *cobra.Command {
	var id, format string

	command := &cobra.Command{
		Use:   "import <file>",
		Short: "Import a configuration as changes to a template",
		Long: `Import reads a configuration file and stores it as your version of a
template (the active one unless --id is given). The configuration is validated
first; every Mustache template must parse. Importing the unchanged default
configuration removes your changes.`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cobraCmd *cobra.Command, args []string) error {
			if err := tc.Init(cobraCmd.Context()); err != nil {
				return err
			}
			if id == "" {
				id = tc.Store.ActiveTemplateID()
			}
			return tc.Import(cobraCmd.OutOrStdout(), id, args[0], format)
		},
	}

	command.Flags().StringVar(&id, "id", "", "Template to store the configuration for (defaults to the active template)")
	command.Flags().StringVar(&format, "format", "", "Input format (json, yaml, toml), derived from the file extension by default")

	return command
}

func (tc *TemplateCommand) newResetCmd() *cobra.Command {
	return &cobra.Command{
		Use:          "reset <id>",
		Short:        "Discard your changes to a template",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cobraCmd *cobra.Command, args []string) error {
			if err := tc.Init(cobraCmd.Context()); err != nil {
				return err
			}
			return tc.Reset(cobraCmd.OutOrStdout(), args[0])
		},
	}
}

// List prints all templates and marks the active and modified ones
func (tc *TemplateCommand) List(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "\tID\tNAME\tSTATUS")
	for _, info := range tc.Store.TemplateInfos() {
		marker := ""
		if info.Active {
			marker = "*"
		}
		status := "default"
		if info.Modified {
			status = "modified"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", marker, info.ID, info.Name, status)
	}
	return tw.Flush()
}

// Use activates a template
func (tc *TemplateCommand) Use(w io.Writer, id string) error {
	if err := tc.Store.SetActive(id); err != nil {
		return err
	}
	if err := tc.SaveStateWithErrorHandling(); err != nil {
		return err
	}
	commands.DisplaySuccess(w, "Active template is now %s", id)
	return nil
}

// Show writes a template's configuration to w or to output
func (tc *TemplateCommand) Show(w io.Writer, id string, encoding config.Encoding, defaults bool, output string) error {
	var cfg *cmd.Config
	var err error
	if defaults {
		cfg, err = tc.Store.Default(id)
	} else {
		cfg, err = tc.Store.Config(id)
	}
	if err != nil {
		return err
	}

	data, err := config.EncodeConfig(cfg, encoding)
	if err != nil {
		return err
	}

	if output == "" {
		_, err = w.Write(data)
		return err
	}
	if err := os.WriteFile(output, data, 0600); err != nil {
		return fmt.Errorf("failed to write %s: %w", output, err)
	}
	commands.DisplaySuccess(w, "Wrote %s configuration to %s", id, output)
	return nil
}

// Import validates a configuration file and stores it for a template
func (tc *TemplateCommand) Import(w io.Writer, id, filename, format string) error {
	encoding, err := importEncoding(filename, format)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(filename) //nolint:gosec // filename is from command-line argument
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", filename, err)
	}

	cfg, err := config.DecodeConfig(data, encoding)
	if err != nil {
		return err
	}
	if err := config.ValidateConfig(cfg); err != nil {
		return fmt.Errorf("invalid configuration in %s: %w", filename, err)
	}

	if err := tc.Store.SetConfig(id, cfg); err != nil {
		return err
	}
	if err := tc.SaveStateWithErrorHandling(); err != nil {
		return err
	}

	if tc.Store.HasChanges(id) {
		commands.DisplaySuccess(w, "Imported %s as changes to template %s", filename, id)
	} else {
		commands.DisplaySuccess(w, "%s matches the default of template %s, changes removed", filename, id)
	}
	return nil
}

// Reset discards the changes to a template
func (tc *TemplateCommand) Reset(w io.Writer, id string) error {
	if err := tc.Store.Discard(id); err != nil {
		return err
	}
	if err := tc.SaveStateWithErrorHandling(); err != nil {
		return err
	}
	commands.DisplaySuccess(w, "Template %s reset to its default", id)
	return nil
}

func importEncoding(filename, format string) (config.Encoding, error) {
	if format != "" {
		return config.ParseEncoding(format)
	}
	return config.EncodingFromPath(filename)
}
