package settings

import (
	"maps"
	"slices"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/nulzo/prism-registry/internal/i18n"
	"github.com/nulzo/prism-registry/pkg/api"
)

// validate is safe for concurrent use once built.
var validate = validator.New(validator.WithRequiredStructEnabled())

// Validated is a settings object that passed Schema.Validate. It can only be
// obtained from Validate, so client construction never sees unchecked input.
type Validated struct {
	provider string
	schema   Schema
	values   Values
}

func (v *Validated) Provider() string { return v.provider }

// String returns a string field, or "" when unset.
func (v *Validated) String(name string) string {
	s, _ := v.values[name].(string)
	return s
}

func (v *Validated) Bool(name string) bool {
	b, _ := v.values[name].(bool)
	return b
}

// Values returns a copy of the validated values, defaults applied.
func (v *Validated) Values() Values {
	return maps.Clone(v.values)
}

// Redacted returns a copy with sensitive fields masked.
func (v *Validated) Redacted() Values {
	out := maps.Clone(v.values)
	for _, f := range v.schema.Fields {
		if !f.Sensitive {
			continue
		}
		if s, ok := out[f.Name].(string); ok && s != "" {
			out[f.Name] = mask(s)
		}
	}
	return out
}

func mask(s string) string {
	r := []rune(s)
	if len(r) <= 8 {
		return strings.Repeat("*", len(r))
	}
	return string(r[:3]) + strings.Repeat("*", len(r)-7) + string(r[len(r)-4:])
}

// Validate checks raw against the schema. It never stops at the first problem:
// the returned *api.SchemaError lists violations in field order, unknown keys last.
// Optional fields left unset take their default.
func (s Schema) Validate(provider string, raw Values, loc i18n.Localizer) (*Validated, error) {
	values := make(Values, len(s.Fields))
	var violations []api.Violation

	for _, f := range s.Fields {
		v, present := raw[f.Name]
		if !present || isUnset(v) {
			if f.Required {
				violations = append(violations, api.Violation{
					Field:   f.Name,
					Kind:    api.ViolationMissing,
					Message: loc.T("violation.missing", f.Title),
				})
				continue
			}
			if f.Default != nil {
				values[f.Name] = f.Default
			}
			continue
		}

		if violation, ok := checkField(f, v, loc); !ok {
			violations = append(violations, violation)
			continue
		}
		values[f.Name] = normalize(f, v)
	}

	unknown := make([]string, 0)
	for k := range raw {
		if !s.Has(k) {
			unknown = append(unknown, k)
		}
	}
	sort.Strings(unknown)
	for _, k := range unknown {
		violations = append(violations, api.Violation{
			Field:   k,
			Kind:    api.ViolationUnknown,
			Message: loc.T("violation.unknown", k),
		})
	}

	if len(violations) > 0 {
		return nil, &api.SchemaError{Provider: provider, Violations: violations}
	}

	return &Validated{provider: provider, schema: s, values: values}, nil
}

func checkField(f Field, v any, loc i18n.Localizer) (api.Violation, bool) {
	bad := func(kind api.ViolationKind, msg string) (api.Violation, bool) {
		return api.Violation{Field: f.Name, Kind: kind, Message: msg}, false
	}

	switch f.Type {
	case Bool:
		if _, ok := v.(bool); !ok {
			return bad(api.ViolationType, loc.T("violation.type", f.Title, "boolean"))
		}
	case String, URL, Enum:
		s, ok := v.(string)
		if !ok {
			return bad(api.ViolationType, loc.T("violation.type", f.Title, "string"))
		}
		s = strings.TrimSpace(s)
		if f.Type == URL && validate.Var(s, "http_url") != nil {
			return bad(api.ViolationFormat, loc.T("violation.format.url", f.Title))
		}
		if f.Type == Enum && !slices.Contains(f.Options, s) {
			return bad(api.ViolationFormat, loc.T("violation.format.enum", f.Title, strings.Join(f.Options, ", ")))
		}
	}
	return api.Violation{}, true
}

func normalize(f Field, v any) any {
	if s, ok := v.(string); ok && f.Type != String {
		return strings.TrimSpace(s)
	}
	return v
}
