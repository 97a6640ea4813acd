package provider

import "github.com/nulzo/prism-registry/internal/settings"

func apiKeyField() settings.Field {
	return settings.Field{
		Name:        "apiKey",
		Type:        settings.String,
		Required:    true,
		Sensitive:   true,
		Title:       "field.apiKey.title",
		Description: "field.apiKey.description",
	}
}

func baseURLField(def string) settings.Field {
	f := settings.Field{
		Name:        "baseURL",
		Type:        settings.URL,
		Title:       "field.baseURL.title",
		Description: "field.baseURL.description",
	}
	if def != "" {
		f.Default = def
	}
	return f
}

func stringField(name string, required, sensitive bool) settings.Field {
	return settings.Field{
		Name:        name,
		Type:        settings.String,
		Required:    required,
		Sensitive:   sensitive,
		Title:       "field." + name + ".title",
		Description: "field." + name + ".description",
	}
}

// compatibilityField is the strictness flag for OpenAI style endpoints.
func compatibilityField() settings.Field {
	return settings.Field{
		Name:        "compatibility",
		Type:        settings.Enum,
		Options:     []string{"strict", "compatible"},
		Default:     "compatible",
		Title:       "field.compatibility.title",
		Description: "field.compatibility.description",
	}
}
