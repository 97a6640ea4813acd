// Package settings implements the declarative connection-settings schema every
// provider publishes: field metadata for rendering forms, and a validator that
// walks the schema once and reports every violation.
package settings

import (
	"maps"
	"strings"
)

// FieldType is the semantic type of a settings field.
type FieldType string

const (
	String FieldType = "string"
	URL    FieldType = "url"
	Bool   FieldType = "bool"
	Enum   FieldType = "enum"
)

// Field describes one configuration field.
type Field struct {
	Name        string
	Type        FieldType
	Required    bool
	Default     any
	Sensitive   bool
	Title       string
	Description string
	Options     []string // Enum only
}

// Schema is an ordered list of fields; order is the form order.
type Schema struct {
	Fields []Field
}

// Values is a raw or merged settings object as decoded from JSON.
type Values map[string]any

func (s Schema) Field(name string) (Field, bool) {
	for _, f := range s.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// Has reports whether the schema declares a field named name.
func (s Schema) Has(name string) bool {
	_, ok := s.Field(name)
	return ok
}

// Localize returns a copy of the schema with Title and Description passed through t.
func (s Schema) Localize(t func(key string) string) Schema {
	out := Schema{Fields: make([]Field, len(s.Fields))}
	for i, f := range s.Fields {
		f.Title = t(f.Title)
		f.Description = t(f.Description)
		f.Options = append([]string(nil), f.Options...)
		out.Fields[i] = f
	}
	return out
}

// Merge overlays user on top of initial. Unset user values (nil or "") do not
// hide an initial value. Neither argument is modified.
func Merge(initial, user Values) Values {
	out := make(Values, len(initial)+len(user))
	maps.Copy(out, initial)
	for k, v := range user {
		if isUnset(v) {
			if _, ok := out[k]; ok {
				continue
			}
		}
		out[k] = v
	}
	return out
}

// FillRequired returns values with every required field that has no value and
// no default set to a well-formed sample of its type.
func (s Schema) FillRequired(values Values) Values {
	out := maps.Clone(values)
	if out == nil {
		out = Values{}
	}
	for _, f := range s.Fields {
		if !f.Required || f.Default != nil || !isUnset(out[f.Name]) {
			continue
		}
		out[f.Name] = sample(f)
	}
	return out
}

func sample(f Field) any {
	switch f.Type {
	case URL:
		return "https://example.com"
	case Bool:
		return false
	case Enum:
		if len(f.Options) > 0 {
			return f.Options[0]
		}
	}
	return "placeholder"
}

func isUnset(v any) bool {
	if v == nil {
		return true
	}
	if s, ok := v.(string); ok {
		return strings.TrimSpace(s) == ""
	}
	return false
}
