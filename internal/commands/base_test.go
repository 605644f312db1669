package commands

import (
	"context"
	"errors"
	"testing"

	"github.com/alan/release-notes/cmd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBaseCommand_Init(t *testing.T) {
	stateFile := "release-notes.yaml"

	tests := []struct {
		name         string
		loadState    func(string) (*cmd.State, error)
		wantRepoName string
		wantErr      bool
	}{
		{
			name: "default template",
			loadState: func(string) (*cmd.State, error) {
				return &cmd.State{Org: "elastic"}, nil
			},
			wantRepoName: "kibana",
		},
		{
			name: "selected template",
			loadState: func(string) (*cmd.State, error) {
				return &cmd.State{Org: "elastic", ActiveTemplate: "endpoint"}, nil
			},
			wantRepoName: "endpoint-dev",
		},
		{
			name: "override wins",
			loadState: func(string) (*cmd.State, error) {
				return &cmd.State{
					Org:            "elastic",
					ActiveTemplate: "kibana",
					Overrides:      map[string]*cmd.Config{"kibana": {RepoName: "kibana-fork"}},
				}, nil
			},
			wantRepoName: "kibana-fork",
		},
		{
			name: "state load error",
			loadState: func(string) (*cmd.State, error) {
				return nil, errors.New("failed to read state file")
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bc := &BaseCommand{StateFile: &stateFile, LoadState: tt.loadState}

			err := bc.Init(context.Background())
			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.NotNil(t, bc.Store)
			assert.Equal(t, tt.wantRepoName, bc.Config.RepoName)
		})
	}
}

func TestBaseCommand_InitGitHub(t *testing.T) {
	stateFile := "release-notes.yaml"

	tests := []struct {
		name     string
		org      string
		token    string
		wantRepo string
		errMsg   string
	}{
		{name: "bound to configured repository", org: "elastic", token: "test-token", wantRepo: "elastic/kibana"},
		{name: "missing org", org: "", token: "test-token", errMsg: "organization is not configured"},
		{name: "missing token", org: "elastic", token: "", errMsg: "GITHUB_TOKEN"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("GITHUB_TOKEN", tt.token)

			bc := &BaseCommand{
				StateFile: &stateFile,
				LoadState: func(string) (*cmd.State, error) { return &cmd.State{Org: tt.org}, nil },
			}
			require.NoError(t, bc.Init(context.Background()))

			err := bc.InitGitHub()
			if tt.errMsg != "" {
				assert.ErrorContains(t, err, tt.errMsg)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantRepo, bc.GitHubClient.Repository())
		})
	}
}

func TestBaseCommand_InitGitHubRequiresInit(t *testing.T) {
	bc := &BaseCommand{}
	assert.ErrorContains(t, bc.InitGitHub(), "not initialized")
}

func TestBaseCommand_SaveStateWithErrorHandling(t *testing.T) {
	stateFile := "release-notes.yaml"
	var saved *cmd.State

	bc := &BaseCommand{
		StateFile: &stateFile,
		State:     &cmd.State{Org: "elastic"},
		SaveState: func(path string, state *cmd.State) error {
			assert.Equal(t, stateFile, path)
			saved = state
			return nil
		},
	}
	require.NoError(t, bc.SaveStateWithErrorHandling())
	assert.Equal(t, "elastic", saved.Org)

	bc.SaveState = func(string, *cmd.State) error { return errors.New("disk full") }
	assert.EqualError(t, bc.SaveStateWithErrorHandling(), "failed to save state: disk full")
}
