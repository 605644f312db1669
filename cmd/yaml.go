package cmd

import (
	"strings"
	"unicode"

	"gopkg.in/yaml.v3"
)

// templateText is a template written to YAML without losing whitespace.
// yaml.v3 writes multi-line strings as block scalars, which drop a leading
// empty line, so such templates are double-quoted instead.
type templateText string

func (t templateText) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: string(t)}
	if strings.TrimLeftFunc(node.Value, unicode.IsSpace) != node.Value {
		node.Style = yaml.DoubleQuotedStyle
	}
	return node, nil
}

// MarshalYAML writes the templates with the same keys as the struct tags
func (t OutputTemplate) MarshalYAML() (interface{}, error) {
	type pages struct {
		ReleaseNotes      templateText `yaml:"release_notes"`
		PatchReleaseNotes templateText `yaml:"patch_release_notes,omitempty"`
	}
	type prs struct {
		Breaking    templateText `yaml:"breaking,omitempty"`
		Deprecation templateText `yaml:"deprecation,omitempty"`
		Other       templateText `yaml:"_other_"`
	}

	return struct {
		Pages   pages        `yaml:"pages"`
		PRs     prs          `yaml:"prs"`
		PRGroup templateText `yaml:"pr_group"`
	}{
		Pages: pages{
			ReleaseNotes:      templateText(t.Pages.ReleaseNotes),
			PatchReleaseNotes: templateText(t.Pages.PatchReleaseNotes),
		},
		PRs: prs{
			Breaking:    templateText(t.PRs.Breaking),
			Deprecation: templateText(t.PRs.Deprecation),
			Other:       templateText(t.PRs.Other),
		},
		PRGroup: templateText(t.PRGroup),
	}, nil
}

// MarshalYAML writes the options with the same keys as the struct tags
func (o AreaOptions) MarshalYAML() (interface{}, error) {
	return struct {
		BracketHandling       BracketHandling `yaml:"bracket_handling,omitempty"`
		TextOverwriteTemplate templateText    `yaml:"text_overwrite_template,omitempty"`
	}{
		BracketHandling:       o.BracketHandling,
		TextOverwriteTemplate: templateText(o.TextOverwriteTemplate),
	}, nil
}
