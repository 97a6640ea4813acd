package settings

import "github.com/invopop/jsonschema"

// JSONSchema renders the schema as a JSON Schema document for form builders.
// Sensitive fields are marked writeOnly.
func (s Schema) JSONSchema(id, title string) *jsonschema.Schema {
	props := jsonschema.NewProperties()
	required := make([]string, 0)

	for _, f := range s.Fields {
		p := &jsonschema.Schema{
			Title:       f.Title,
			Description: f.Description,
			Default:     f.Default,
			WriteOnly:   f.Sensitive,
		}
		switch f.Type {
		case Bool:
			p.Type = "boolean"
		case URL:
			p.Type = "string"
			p.Format = "uri"
		case Enum:
			p.Type = "string"
			for _, o := range f.Options {
				p.Enum = append(p.Enum, o)
			}
		default:
			p.Type = "string"
		}
		props.Set(f.Name, p)

		if f.Required {
			required = append(required, f.Name)
		}
	}

	return &jsonschema.Schema{
		Version:              jsonschema.Version,
		ID:                   jsonschema.ID(id),
		Title:                title,
		Type:                 "object",
		Properties:           props,
		Required:             required,
		AdditionalProperties: jsonschema.FalseSchema,
	}
}
