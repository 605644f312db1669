// Package config implements the config command for initializing and updating the release-notes state file.
package config

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alan/release-notes/cmd"
	"github.com/alan/release-notes/internal/commands"
	"github.com/alan/release-notes/internal/config"
	"github.com/spf13/cobra"
)

// NewConfigCmd creates and returns the config command
func NewConfigCmd(globalStateFile *string, loadState func(string) (*cmd.State, error), saveState func(string, *cmd.State) error) *cobra.Command {
	var (
		org      string
		template string
	)

	cobraCmd := &cobra.Command{
		Use:   "config",
		Short: "Initialize or update the release-notes state file",
		Long: `Config creates or updates the state file with the GitHub organization
and the active configuration template.

When run from a git repository, the organization is detected from the git
remote origin unless --org is given. The repository itself comes from the
active template's repoName.`,
		SilenceUsage: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runConfigWithGitDetection(os.Stdout, *globalStateFile, org, template, loadState, saveState, detectOrg)
		},
	}

	cobraCmd.Flags().StringVarP(&org, "org", "o", "", "GitHub organization (auto-detected from git if available)")
	cobraCmd.Flags().StringVarP(&template, "template", "t", "", "Configuration template to activate (see 'template list')")

	return cobraCmd
}

// detectOrg reads the organization from the git remote
func detectOrg() (string, error) {
	info, err := commands.DetectGitRepoInfo()
	if err != nil {
		return "", err
	}
	return info.Org, nil
}

// runConfigWithGitDetection handles state creation with git auto-detection of the org
func runConfigWithGitDetection(
	w io.Writer,
	stateFile, org, template string,
	loadState func(string) (*cmd.State, error),
	saveState func(string, *cmd.State) error,
	detect func() (string, error),
) error {
	state, isUpdate := loadOrCreateState(stateFile, loadState)

	if org == "" {
		org = state.Org
	}
	if org == "" {
		if detected, err := detect(); err == nil {
			org = detected
			slog.Info("Auto-detected organization", "org", org)
		} else {
			slog.Debug("Could not detect organization from git", "error", err)
		}
	}
	if org == "" {
		return fmt.Errorf("organization is required (use --org flag or run from a git repository)")
	}
	state.Org = org

	store := config.NewStore(state)
	if template != "" {
		if err := store.SetActive(template); err != nil {
			return err
		}
	} else {
		state.ActiveTemplate = store.ActiveTemplateID()
	}

	if err := saveState(stateFile, state); err != nil {
		return fmt.Errorf("failed to save configuration: %w", err)
	}

	return displayConfigSuccess(w, stateFile, store, isUpdate)
}

// displayConfigSuccess shows the configuration success message
func displayConfigSuccess(w io.Writer, stateFile string, store *config.Store, isUpdate bool) error {
	cfg, err := store.ActiveConfig()
	if err != nil {
		return err
	}

	action := "initialized"
	if isUpdate {
		action = "updated"
	}
	commands.DisplaySuccess(w, "Successfully %s %s with:", action, stateFile)
	fmt.Fprintf(w, "  Organization: %s\n", store.State().Org)
	fmt.Fprintf(w, "  Repository:   %s\n", cfg.RepoName)
	fmt.Fprintf(w, "  Template:     %s\n", store.ActiveTemplateID())
	return nil
}

// loadOrCreateState loads the existing state or creates a new one
func loadOrCreateState(stateFile string, loadState func(string) (*cmd.State, error)) (*cmd.State, bool) {
	if state, err := loadState(stateFile); err == nil {
		return state, true
	}
	return &cmd.State{}, false
}
