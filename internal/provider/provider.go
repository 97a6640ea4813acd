// Package provider is the provider table: every supported backend with its
// settings schema, initial settings and client construction recipe.
package provider

import (
	"fmt"
	"maps"

	"github.com/nulzo/prism-registry/internal/settings"
)

// Client is a handle able to issue requests to one provider. Construction never
// performs network I/O; the concrete type depends on the provider.
type Client interface {
	Provider() string
}

// Recipe builds a client from settings that already passed validation.
type Recipe func(v *settings.Validated) (Client, error)

// Descriptor is one row of the provider table.
type Descriptor struct {
	ID      string
	Label   string
	Icon    string
	Schema  settings.Schema
	Initial settings.Values
	Build   Recipe
}

// InitialSettings returns a copy of the provider defaults.
func (d Descriptor) InitialSettings() settings.Values {
	return maps.Clone(d.Initial)
}

// RequiresAuth reports whether the schema declares an API key field.
func (d Descriptor) RequiresAuth() bool {
	f, ok := d.Schema.Field("apiKey")
	return ok && f.Required
}

// Table is the immutable, ordered provider table.
type Table struct {
	entries []Descriptor
	index   map[string]int
}

// NewTable indexes descs and reports integrity problems: empty or duplicate ids,
// missing recipes, and initial settings naming fields the schema does not declare.
func NewTable(descs []Descriptor) (*Table, []string) {
	var problems []string

	t := &Table{index: make(map[string]int, len(descs))}
	for _, d := range descs {
		if d.ID == "" {
			problems = append(problems, "provider with empty id")
			continue
		}
		if _, dup := t.index[d.ID]; dup {
			problems = append(problems, fmt.Sprintf("duplicate provider id %q", d.ID))
			continue
		}
		if d.Build == nil {
			problems = append(problems, fmt.Sprintf("provider %q has no construction recipe", d.ID))
		}
		for k := range d.Initial {
			if !d.Schema.Has(k) {
				problems = append(problems, fmt.Sprintf("provider %q: initial setting %q is not in its schema", d.ID, k))
			}
		}
		t.index[d.ID] = len(t.entries)
		t.entries = append(t.entries, d)
	}

	return t, problems
}

// Get looks a provider up by exact id.
func (t *Table) Get(id string) (Descriptor, bool) {
	i, ok := t.index[id]
	if !ok {
		return Descriptor{}, false
	}
	return t.entries[i], true
}

// List returns the descriptors in declaration order.
func (t *Table) List() []Descriptor {
	out := make([]Descriptor, len(t.entries))
	copy(out, t.entries)
	return out
}

func (t *Table) Len() int { return len(t.entries) }
