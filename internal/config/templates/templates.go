// Package templates holds the built-in release-notes configurations.
package templates

import "github.com/alan/release-notes/cmd"

// DefaultID is the template used when none has been selected
const DefaultID = "kibana"

// Info describes a built-in configuration template
type Info struct {
	ID    string
	Name  string
	build func() *cmd.Config
}

// Config returns a fresh copy of the template's default configuration
func (i Info) Config() *cmd.Config {
	return i.build()
}

var builtin = []Info{
	{ID: "kibana", Name: "Kibana", build: kibana},
	{ID: "security", Name: "Security", build: security},
	{ID: "observability", Name: "Observability", build: observability},
	{ID: "endpoint", Name: "Endpoint", build: endpoint},
	{ID: "serverless", Name: "Serverless Security", build: serverless},
}

// All returns every built-in template in display order
func All() []Info {
	return append([]Info(nil), builtin...)
}

// Get looks up a built-in template by id
func Get(id string) (Info, bool) {
	for _, info := range builtin {
		if info.ID == id {
			return info, true
		}
	}
	return Info{}, false
}
