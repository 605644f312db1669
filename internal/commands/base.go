// Package commands holds the plumbing shared by the CLI commands.
package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/alan/release-notes/cmd"
	"github.com/alan/release-notes/internal/config"
	"github.com/alan/release-notes/internal/github"
)

// BaseCommand provides common fields and initialization for all commands
type BaseCommand struct {
	StateFile    *string
	LoadState    func(string) (*cmd.State, error)
	SaveState    func(string, *cmd.State) error
	GitHubClient *github.Client
	Context      context.Context
	State        *cmd.State
	Store        *config.Store
	Config       *cmd.Config
}

// Init loads the state file and resolves the active configuration
func (bc *BaseCommand) Init(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	bc.Context = ctx

	state, err := bc.LoadState(*bc.StateFile)
	if err != nil {
		return err
	}
	bc.State = state
	bc.Store = config.NewStore(state)

	cfg, err := bc.Store.ActiveConfig()
	if err != nil {
		return err
	}
	bc.Config = cfg

	return nil
}

// InitGitHub creates the GitHub client bound to the configured repository
func (bc *BaseCommand) InitGitHub() error {
	if bc.State == nil || bc.Config == nil {
		return fmt.Errorf("command is not initialized")
	}
	if bc.State.Org == "" {
		return fmt.Errorf("organization is not configured, run 'release-notes config --org <org>' first")
	}

	token, err := getGitHubToken()
	if err != nil {
		return err
	}
	bc.GitHubClient = github.NewClient(bc.Context, token).WithRepository(bc.State.Org, bc.Config.RepoName)

	return nil
}

// getGitHubToken retrieves and validates the GitHub token
func getGitHubToken() (string, error) {
	token := os.Getenv("GITHUB_TOKEN")
	if token == "" {
		return "", fmt.Errorf("GITHUB_TOKEN environment variable is required")
	}
	return token, nil
}

// SaveStateWithErrorHandling persists the current state
func (bc *BaseCommand) SaveStateWithErrorHandling() error {
	if err := bc.SaveState(*bc.StateFile, bc.State); err != nil {
		return fmt.Errorf("failed to save state: %w", err)
	}
	return nil
}
