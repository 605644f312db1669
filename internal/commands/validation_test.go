package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateVersion(t *testing.T) {
	tests := []struct {
		version string
		wantErr bool
	}{
		{version: "v8.12.0"},
		{version: "v10.0.15"},
		{version: "8.12.0", wantErr: true},
		{version: "v8.12", wantErr: true},
		{version: "v8.12.0-beta1", wantErr: true},
		{version: "", wantErr: true},
		{version: " v8.12.0", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.version, func(t *testing.T) {
			err := ValidateVersion(tt.version)
			if tt.wantErr {
				assert.ErrorContains(t, err, "expected the form vX.Y.Z")
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateVersions(t *testing.T) {
	assert.NoError(t, ValidateVersions(nil))
	assert.NoError(t, ValidateVersions([]string{"v1.0.0", "v1.0.1"}))
	assert.Error(t, ValidateVersions([]string{"v1.0.0", "latest"}))
}

func TestValidateOutputPath(t *testing.T) {
	tests := []struct {
		name    string
		output  string
		wantErr bool
	}{
		{name: "stdout", output: ""},
		{name: "separate file", output: "notes.md"},
		{name: "state file", output: "release-notes.yaml", wantErr: true},
		{name: "state file different case", output: "Release-Notes.yaml", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateOutputPath(tt.output, "release-notes.yaml")
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
