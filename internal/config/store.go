package config

import (
	"fmt"

	"github.com/alan/release-notes/cmd"
	"github.com/alan/release-notes/internal/config/templates"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// TemplateInfo describes a template together with its state
type TemplateInfo struct {
	ID       string
	Name     string
	Active   bool
	Modified bool
}

// Store resolves configurations from the built-in templates and the user's
// overrides kept in the state.
type Store struct {
	state *cmd.State
}

// NewStore creates a store operating on state
func NewStore(state *cmd.State) *Store {
	return &Store{state: state}
}

// State returns the underlying state, e.g. for saving it
func (s *Store) State() *cmd.State {
	return s.state
}

// TemplateInfos lists all templates with their active and modified flags
func (s *Store) TemplateInfos() []TemplateInfo {
	active := s.ActiveTemplateID()
	var infos []TemplateInfo
	for _, info := range templates.All() {
		infos = append(infos, TemplateInfo{
			ID:       info.ID,
			Name:     info.Name,
			Active:   info.ID == active,
			Modified: s.HasChanges(info.ID),
		})
	}
	return infos
}

// ActiveTemplateID returns the selected template, defaulting to kibana
func (s *Store) ActiveTemplateID() string {
	if _, ok := templates.Get(s.state.ActiveTemplate); ok {
		return s.state.ActiveTemplate
	}
	return templates.DefaultID
}

// SetActive selects the template used by default
func (s *Store) SetActive(id string) error {
	if _, ok := templates.Get(id); !ok {
		return unknownTemplateError(id)
	}
	s.state.ActiveTemplate = id
	return nil
}

// Default returns the unmodified configuration of a template
func (s *Store) Default(id string) (*cmd.Config, error) {
	info, ok := templates.Get(id)
	if !ok {
		return nil, unknownTemplateError(id)
	}
	return info.Config(), nil
}

// Config returns a template's configuration including the user's changes
func (s *Store) Config(id string) (*cmd.Config, error) {
	if override, ok := s.state.Overrides[id]; ok && override != nil {
		if _, known := templates.Get(id); !known {
			return nil, unknownTemplateError(id)
		}
		return override, nil
	}
	return s.Default(id)
}

// ActiveConfig returns the configuration of the active template
func (s *Store) ActiveConfig() (*cmd.Config, error) {
	return s.Config(s.ActiveTemplateID())
}

// SetConfig stores cfg as the template's configuration. A configuration equal to
// the template default removes the override instead.
func (s *Store) SetConfig(id string, cfg *cmd.Config) error {
	def, err := s.Default(id)
	if err != nil {
		return err
	}

	if cmp.Equal(def, cfg, cmpopts.EquateEmpty()) {
		delete(s.state.Overrides, id)
		return nil
	}

	if s.state.Overrides == nil {
		s.state.Overrides = make(map[string]*cmd.Config)
	}
	s.state.Overrides[id] = cfg
	return nil
}

// Discard drops the user's changes to a template
func (s *Store) Discard(id string) error {
	if _, ok := templates.Get(id); !ok {
		return unknownTemplateError(id)
	}
	delete(s.state.Overrides, id)
	return nil
}

// HasChanges reports whether the user modified a template
func (s *Store) HasChanges(id string) bool {
	override, ok := s.state.Overrides[id]
	return ok && override != nil
}

func unknownTemplateError(id string) error {
	var ids []string
	for _, info := range templates.All() {
		ids = append(ids, info.ID)
	}
	return fmt.Errorf("unknown template %q (available: %v)", id, ids)
}
