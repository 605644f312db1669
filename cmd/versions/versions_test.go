package versions

import (
	"bytes"
	"strings"
	"testing"

	"github.com/alan/release-notes/cmd"
	"github.com/alan/release-notes/internal/github"
	"github.com/fatih/color"
)

func init() {
	color.NoColor = true
}

func TestVersionsRun(t *testing.T) {
	data := &github.VersionData{
		Labels:      []string{"v8.11.0", "v8.11.1", "v8.12.0", "v8.12.1", "v8.13.0"},
		ReleaseTags: []string{"v8.11.0", "v8.12.0"},
	}

	tests := []struct {
		name         string
		check        string
		data         *github.VersionData
		wantContains []string
		wantMissing  []string
	}{
		{
			name:         "upcoming versions",
			data:         data,
			wantContains: []string{"Upcoming versions of kibana:", "v8.12.1", "v8.13.0"},
			wantMissing:  []string{"v8.11.1"},
		},
		{
			name:         "check lists unreleased labels",
			check:        "v8.12.1",
			data:         data,
			wantContains: []string{"will be included in v8.12.1", "v8.11.1"},
			wantMissing:  []string{"v8.13.0"},
		},
		{
			name:         "check with everything released",
			check:        "v8.11.1",
			data:         &github.VersionData{Labels: []string{"v8.11.0"}, ReleaseTags: []string{"v8.11.0"}},
			wantContains: []string{"All earlier versions of v8.11.1 have been released."},
		},
		{
			name:         "nothing upcoming",
			data:         &github.VersionData{Labels: []string{"v1.0.0"}, ReleaseTags: []string{"v1.0.0"}},
			wantContains: []string{"No upcoming versions found."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vc := &VersionsCommand{Check: tt.check}
			vc.Config = &cmd.Config{RepoName: "kibana"}

			var out bytes.Buffer
			if err := vc.Run(&out, tt.data); err != nil {
				t.Fatalf("Run() error = %v", err)
			}

			for _, expected := range tt.wantContains {
				if !strings.Contains(out.String(), expected) {
					t.Errorf("Run() output = %q, want to contain %q", out.String(), expected)
				}
			}
			for _, unexpected := range tt.wantMissing {
				if strings.Contains(out.String(), unexpected) {
					t.Errorf("Run() output = %q, must not contain %q", out.String(), unexpected)
				}
			}
		})
	}
}
