package v1

import (
	"github.com/nulzo/prism-registry/internal/provider"
	"github.com/nulzo/prism-registry/internal/settings"
)

type fieldView struct {
	Name        string   `json:"name"`
	Type        string   `json:"type"`
	Required    bool     `json:"required"`
	Sensitive   bool     `json:"sensitive"`
	Default     any      `json:"default,omitempty"`
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	Options     []string `json:"options,omitempty"`
}

type providerView struct {
	ID              string          `json:"id"`
	Label           string          `json:"label"`
	Icon            string          `json:"icon"`
	RequiresAuth    bool            `json:"requires_auth"`
	InitialSettings settings.Values `json:"initial_settings"`
	Fields          []fieldView     `json:"fields"`
}

func newProviderView(d provider.Descriptor) providerView {
	fields := make([]fieldView, 0, len(d.Schema.Fields))
	for _, f := range d.Schema.Fields {
		fields = append(fields, fieldView{
			Name:        f.Name,
			Type:        string(f.Type),
			Required:    f.Required,
			Sensitive:   f.Sensitive,
			Default:     f.Default,
			Title:       f.Title,
			Description: f.Description,
			Options:     f.Options,
		})
	}

	initial := d.InitialSettings()
	if initial == nil {
		initial = settings.Values{}
	}

	return providerView{
		ID:              d.ID,
		Label:           d.Label,
		Icon:            d.Icon,
		RequiresAuth:    d.RequiresAuth(),
		InitialSettings: initial,
		Fields:          fields,
	}
}

func list[T any](data []T) map[string]any {
	if data == nil {
		data = []T{}
	}
	return map[string]any{
		"object": "list",
		"data":   data,
	}
}
