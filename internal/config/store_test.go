package config

import (
	"testing"

	"github.com/alan/release-notes/cmd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreActiveTemplate(t *testing.T) {
	store := NewStore(&cmd.State{})
	assert.Equal(t, "kibana", store.ActiveTemplateID())

	require.NoError(t, store.SetActive("security"))
	assert.Equal(t, "security", store.ActiveTemplateID())
	assert.Equal(t, "security", store.State().ActiveTemplate)

	err := store.SetActive("nope")
	assert.ErrorContains(t, err, `unknown template "nope"`)
	assert.Equal(t, "security", store.ActiveTemplateID())

	stale := NewStore(&cmd.State{ActiveTemplate: "removed"})
	assert.Equal(t, "kibana", stale.ActiveTemplateID())
}

func TestStoreSetConfig(t *testing.T) {
	store := NewStore(&cmd.State{})

	cfg, err := store.Config("kibana")
	require.NoError(t, err)
	assert.False(t, store.HasChanges("kibana"))

	cfg.ExcludedLabels = append(cfg.ExcludedLabels, "Team:Custom")
	require.NoError(t, store.SetConfig("kibana", cfg))
	assert.True(t, store.HasChanges("kibana"))

	got, err := store.Config("kibana")
	require.NoError(t, err)
	assert.Contains(t, got.ExcludedLabels, "Team:Custom")

	def, err := store.Default("kibana")
	require.NoError(t, err)
	assert.NotContains(t, def.ExcludedLabels, "Team:Custom")

	// Saving a config equal to the default removes the override
	require.NoError(t, store.SetConfig("kibana", def))
	assert.False(t, store.HasChanges("kibana"))
	assert.Empty(t, store.State().Overrides)
}

func TestStoreSetConfigTreatsEmptyAsNil(t *testing.T) {
	store := NewStore(&cmd.State{})

	cfg, err := store.Default("security")
	require.NoError(t, err)
	require.Nil(t, cfg.IncludedLabels)
	cfg.IncludedLabels = []string{}

	require.NoError(t, store.SetConfig("security", cfg))
	assert.False(t, store.HasChanges("security"))
}

func TestStoreDiscard(t *testing.T) {
	store := NewStore(&cmd.State{
		Overrides: map[string]*cmd.Config{"endpoint": {RepoName: "custom"}},
	})

	assert.True(t, store.HasChanges("endpoint"))
	got, err := store.Config("endpoint")
	require.NoError(t, err)
	assert.Equal(t, "custom", got.RepoName)

	require.NoError(t, store.Discard("endpoint"))
	assert.False(t, store.HasChanges("endpoint"))

	got, err = store.Config("endpoint")
	require.NoError(t, err)
	assert.Equal(t, "endpoint-dev", got.RepoName)

	assert.Error(t, store.Discard("unknown"))
}

func TestStoreTemplateInfos(t *testing.T) {
	store := NewStore(&cmd.State{
		ActiveTemplate: "observability",
		Overrides:      map[string]*cmd.Config{"kibana": {RepoName: "kibana"}},
	})

	infos := store.TemplateInfos()
	require.NotEmpty(t, infos)

	byID := make(map[string]TemplateInfo)
	for _, info := range infos {
		byID[info.ID] = info
	}

	assert.True(t, byID["observability"].Active)
	assert.False(t, byID["kibana"].Active)
	assert.True(t, byID["kibana"].Modified)
	assert.False(t, byID["security"].Modified)
	assert.Equal(t, "Kibana", byID["kibana"].Name)
}

func TestStoreUnknownTemplate(t *testing.T) {
	store := NewStore(&cmd.State{})

	_, err := store.Config("unknown")
	assert.Error(t, err)

	err = store.SetConfig("unknown", &cmd.Config{})
	assert.Error(t, err)
}

func TestStoreActiveConfig(t *testing.T) {
	store := NewStore(&cmd.State{ActiveTemplate: "endpoint"})
	cfg, err := store.ActiveConfig()
	require.NoError(t, err)
	assert.Equal(t, "endpoint-dev", cfg.RepoName)
}
