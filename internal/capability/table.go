package capability

import (
	"fmt"
	"slices"

	"github.com/nulzo/prism-registry/pkg/api"
)

// Table is the immutable model capability table. It is safe for concurrent reads.
type Table struct {
	templates map[string]Template
	order     []string
	models    []Model
	index     map[string]int
	fallback  string
}

// NewTable builds a table and returns every integrity problem found: malformed
// patterns, duplicate template or model names, dangling template references and
// an unknown fallback. A table with problems must not be used.
func NewTable(templates []Template, models []Model, fallback string) (*Table, []string) {
	var problems []string

	t := &Table{
		templates: make(map[string]Template, len(templates)),
		index:     make(map[string]int, len(models)),
		fallback:  fallback,
	}

	for _, tpl := range templates {
		if _, dup := t.templates[tpl.Name]; dup {
			problems = append(problems, fmt.Sprintf("duplicate capability template %q", tpl.Name))
			continue
		}
		for role, patterns := range tpl.Inputs {
			if !role.Valid() {
				problems = append(problems, fmt.Sprintf("template %q: unknown role %q", tpl.Name, role))
			}
			for _, p := range patterns {
				if !ValidPattern(p) {
					problems = append(problems, fmt.Sprintf("template %q: malformed media type pattern %q", tpl.Name, p))
				}
			}
		}
		t.templates[tpl.Name] = tpl
		t.order = append(t.order, tpl.Name)
	}

	for _, m := range models {
		if _, dup := t.index[m.Name]; dup {
			problems = append(problems, fmt.Sprintf("duplicate model %q", m.Name))
			continue
		}
		if _, ok := t.templates[m.Template]; !ok {
			problems = append(problems, fmt.Sprintf("model %q references undeclared template %q", m.Name, m.Template))
		}
		t.index[m.Name] = len(t.models)
		t.models = append(t.models, m)
	}

	if _, ok := t.templates[fallback]; !ok {
		problems = append(problems, fmt.Sprintf("default template %q is not declared", fallback))
	}

	return t, problems
}

// Lookup returns the model entry and whether it was found.
func (t *Table) Lookup(name string) (Model, bool) {
	i, ok := t.index[name]
	if !ok {
		return Model{}, false
	}
	return t.models[i], true
}

// TemplateFor resolves the template applying to name, falling back to the
// default template for unknown models. The bool reports an explicit hit.
func (t *Table) TemplateFor(name string) (Template, bool) {
	if m, ok := t.Lookup(name); ok {
		return t.templates[m.Template], true
	}
	return t.templates[t.fallback], false
}

// Resolve returns the accepted patterns for name and role. It never fails:
// unknown models use the default template, an unknown role yields an empty set.
func (t *Table) Resolve(name string, role api.Role) []string {
	tpl, _ := t.TemplateFor(name)
	return tpl.For(role)
}

// IsAllowed reports whether mediaType may be attached for role on model name.
func (t *Table) IsAllowed(name string, role api.Role, mediaType string) bool {
	tpl, _ := t.TemplateFor(name)
	return MatchAny(tpl.Inputs[role], mediaType)
}

// Names lists model names in declaration order.
func (t *Table) Names() []string {
	out := make([]string, len(t.models))
	for i, m := range t.models {
		out[i] = m.Name
	}
	return out
}

// Models returns a copy of the model entries in declaration order.
func (t *Table) Models() []Model {
	return slices.Clone(t.models)
}

// ModelsFor lists the entries recorded for provider, in declaration order.
func (t *Table) ModelsFor(provider string) []Model {
	var out []Model
	for _, m := range t.models {
		if m.Provider == provider {
			out = append(out, m)
		}
	}
	return out
}

// Template returns a declared template by name.
func (t *Table) Template(name string) (Template, bool) {
	tpl, ok := t.templates[name]
	return tpl, ok
}

// Templates returns the declared templates in declaration order.
func (t *Table) Templates() []Template {
	out := make([]Template, len(t.order))
	for i, name := range t.order {
		out[i] = t.templates[name]
	}
	return out
}

// Fallback is the name of the default template.
func (t *Table) Fallback() string { return t.fallback }
