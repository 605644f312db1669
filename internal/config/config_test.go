package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alan/release-notes/cmd"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestLoadState(t *testing.T) {
	tests := []struct {
		name             string
		fileContent      string
		wantErr          bool
		wantErrMsg       string
		expectedOrg      string
		expectedTemplate string
	}{
		{
			name: "valid state",
			fileContent: `org: elastic
active_template: security`,
			wantErr:          false,
			expectedOrg:      "elastic",
			expectedTemplate: "security",
		},
		{
			name: "state with override",
			fileContent: `org: elastic
active_template: kibana
overrides:
  kibana:
    repo_name: kibana
    excluded_labels:
      - backport`,
			wantErr:          false,
			expectedOrg:      "elastic",
			expectedTemplate: "kibana",
		},
		{
			name:        "file not found",
			fileContent: "",
			wantErr:     true,
			wantErrMsg:  "failed to read state file",
		},
		{
			name:        "invalid yaml",
			fileContent: "invalid: yaml: content: [",
			wantErr:     true,
			wantErrMsg:  "failed to parse state file",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tempDir := t.TempDir()
			stateFile := filepath.Join(tempDir, "release-notes.yaml")

			if tt.name != "file not found" {
				if err := os.WriteFile(stateFile, []byte(tt.fileContent), 0644); err != nil {
					t.Fatalf("failed to write test file: %v", err)
				}
			}

			state, err := LoadState(stateFile)

			if tt.wantErr {
				if err == nil {
					t.Errorf("LoadState() expected error, got nil")
					return
				}
				if tt.wantErrMsg != "" && !strings.Contains(err.Error(), tt.wantErrMsg) {
					t.Errorf("LoadState() error = %v, want error containing %v", err, tt.wantErrMsg)
				}
				return
			}

			if err != nil {
				t.Errorf("LoadState() unexpected error = %v", err)
				return
			}

			if state.Org != tt.expectedOrg {
				t.Errorf("LoadState() org = %v, want %v", state.Org, tt.expectedOrg)
			}

			if state.ActiveTemplate != tt.expectedTemplate {
				t.Errorf("LoadState() active template = %v, want %v", state.ActiveTemplate, tt.expectedTemplate)
			}
		})
	}
}

func TestLoadOrDefaultState(t *testing.T) {
	state, err := LoadOrDefaultState(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("LoadOrDefaultState() unexpected error = %v", err)
	}
	if state.ActiveTemplate != "kibana" {
		t.Errorf("LoadOrDefaultState() active template = %v, want kibana", state.ActiveTemplate)
	}

	badFile := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(badFile, []byte("org: ["), 0644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}
	if _, err := LoadOrDefaultState(badFile); err == nil {
		t.Errorf("LoadOrDefaultState() expected parse error, got nil")
	}
}

func TestSaveState(t *testing.T) {
	tests := []struct {
		name  string
		state *cmd.State
	}{
		{
			name:  "minimal state",
			state: &cmd.State{Org: "elastic", ActiveTemplate: "kibana"},
		},
		{
			name: "state with override",
			state: &cmd.State{
				Org:            "elastic",
				ActiveTemplate: "observability",
				Overrides: map[string]*cmd.Config{
					"observability": {
						RepoName:       "kibana",
						ExcludedLabels: []string{"backport"},
						Areas: []cmd.AreaDefinition{
							{Title: "Logs", Labels: []string{"Team:obs-ux-logs"}, Priority: 2},
						},
					},
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stateFile := filepath.Join(t.TempDir(), "release-notes.yaml")

			if err := SaveState(stateFile, tt.state); err != nil {
				t.Fatalf("SaveState() unexpected error = %v", err)
			}

			info, err := os.Stat(stateFile)
			if err != nil {
				t.Fatalf("SaveState() did not create file: %v", err)
			}
			if info.Mode().Perm() != 0600 {
				t.Errorf("SaveState() file mode = %v, want 0600", info.Mode().Perm())
			}

			loaded, err := LoadState(stateFile)
			if err != nil {
				t.Fatalf("SaveState() created invalid file: %v", err)
			}

			if loaded.Org != tt.state.Org {
				t.Errorf("SaveState() saved org = %v, want %v", loaded.Org, tt.state.Org)
			}
			if loaded.ActiveTemplate != tt.state.ActiveTemplate {
				t.Errorf("SaveState() saved template = %v, want %v", loaded.ActiveTemplate, tt.state.ActiveTemplate)
			}
			if len(loaded.Overrides) != len(tt.state.Overrides) {
				t.Errorf("SaveState() saved %d overrides, want %d", len(loaded.Overrides), len(tt.state.Overrides))
			}
			for id, override := range tt.state.Overrides {
				if loaded.Overrides[id].Areas[0].Priority != override.Areas[0].Priority {
					t.Errorf("SaveState() lost area priority of %s", id)
				}
			}
		})
	}
}

func TestSaveStateKeepsModifiedTemplates(t *testing.T) {
	for _, id := range []string{"kibana", "observability"} {
		t.Run(id, func(t *testing.T) {
			store := NewStore(&cmd.State{Org: "elastic"})
			cfg, err := store.Default(id)
			if err != nil {
				t.Fatalf("Default(%q) error = %v", id, err)
			}
			cfg.ExcludedLabels = append(cfg.ExcludedLabels, "wip")
			if err := store.SetConfig(id, cfg); err != nil {
				t.Fatalf("SetConfig() error = %v", err)
			}

			stateFile := filepath.Join(t.TempDir(), "release-notes.yaml")
			if err := SaveState(stateFile, store.State()); err != nil {
				t.Fatalf("SaveState() error = %v", err)
			}
			loaded, err := LoadState(stateFile)
			if err != nil {
				t.Fatalf("LoadState() error = %v", err)
			}

			if diff := cmp.Diff(cfg, loaded.Overrides[id], cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("override changed after saving (-want +got):\n%s", diff)
			}

			// Reverting the change must drop the override again
			reloaded := NewStore(loaded)
			reverted, _ := reloaded.Config(id)
			reverted.ExcludedLabels = reverted.ExcludedLabels[:len(reverted.ExcludedLabels)-1]
			if err := reloaded.SetConfig(id, reverted); err != nil {
				t.Fatalf("SetConfig() error = %v", err)
			}
			if reloaded.HasChanges(id) {
				t.Errorf("HasChanges(%q) = true after reverting to the default", id)
			}
		})
	}
}
