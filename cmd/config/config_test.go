package config

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/alan/release-notes/cmd"
	"github.com/fatih/color"
)

func init() {
	color.NoColor = true
}

func TestRunConfig(t *testing.T) {
	tests := []struct {
		name         string
		org          string
		template     string
		existing     *cmd.State
		detected     string
		saveError    bool
		wantOrg      string
		wantTemplate string
		wantErrMsg   string
		wantOutput   []string
	}{
		{
			name:         "new state with flag",
			org:          "elastic",
			wantOrg:      "elastic",
			wantTemplate: "kibana",
			wantOutput:   []string{"initialized", "Organization: elastic", "Repository:   kibana"},
		},
		{
			name:         "org detected from git",
			detected:     "acme",
			template:     "security",
			wantOrg:      "acme",
			wantTemplate: "security",
			wantOutput:   []string{"Template:     security"},
		},
		{
			name:         "existing org kept",
			existing:     &cmd.State{Org: "elastic", ActiveTemplate: "observability"},
			detected:     "ignored",
			wantOrg:      "elastic",
			wantTemplate: "observability",
			wantOutput:   []string{"updated"},
		},
		{
			name:         "flag overrides existing org",
			org:          "other",
			existing:     &cmd.State{Org: "elastic"},
			wantOrg:      "other",
			wantTemplate: "kibana",
		},
		{
			name:       "no org available",
			wantErrMsg: "organization is required",
		},
		{
			name:       "unknown template",
			org:        "elastic",
			template:   "nope",
			wantErrMsg: `unknown template "nope"`,
		},
		{
			name:       "save error",
			org:        "elastic",
			saveError:  true,
			wantErrMsg: "failed to save configuration: save error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var saved *cmd.State

			loadState := func(string) (*cmd.State, error) {
				if tt.existing != nil {
					return tt.existing, nil
				}
				return nil, errors.New("file not found")
			}
			saveState := func(_ string, state *cmd.State) error {
				if tt.saveError {
					return errors.New("save error")
				}
				saved = state
				return nil
			}
			detect := func() (string, error) {
				if tt.detected == "" {
					return "", errors.New("not in a git repository")
				}
				return tt.detected, nil
			}

			var out bytes.Buffer
			err := runConfigWithGitDetection(&out, "release-notes.yaml", tt.org, tt.template, loadState, saveState, detect)

			if tt.wantErrMsg != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErrMsg) {
					t.Fatalf("runConfigWithGitDetection() error = %v, want %q", err, tt.wantErrMsg)
				}
				return
			}
			if err != nil {
				t.Fatalf("runConfigWithGitDetection() unexpected error = %v", err)
			}

			if saved.Org != tt.wantOrg {
				t.Errorf("Org = %v, want %v", saved.Org, tt.wantOrg)
			}
			if saved.ActiveTemplate != tt.wantTemplate {
				t.Errorf("ActiveTemplate = %v, want %v", saved.ActiveTemplate, tt.wantTemplate)
			}
			for _, expected := range tt.wantOutput {
				if !strings.Contains(out.String(), expected) {
					t.Errorf("output = %q, want to contain %q", out.String(), expected)
				}
			}
		})
	}
}
