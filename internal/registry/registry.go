// Package registry is the single entry point over the provider table and the
// model capability table. A Registry is immutable once built and safe for
// concurrent use without locking.
package registry

import (
	"errors"
	"fmt"
	"slices"

	"github.com/invopop/jsonschema"
	"github.com/nulzo/prism-registry/internal/capability"
	"github.com/nulzo/prism-registry/internal/i18n"
	"github.com/nulzo/prism-registry/internal/provider"
	"github.com/nulzo/prism-registry/internal/settings"
	"github.com/nulzo/prism-registry/pkg/api"
	"go.uber.org/zap"
)

const schemaBaseURL = "https://prism.local/schemas/providers/"

type Registry struct {
	providers *provider.Table
	models    *capability.Table
	loc       i18n.Localizer
}

// New builds the registry, resolving schema titles and descriptions through loc.
// Any inconsistency in the tables is reported as *api.DataIntegrityError and the
// registry must not be used.
func New(loc i18n.Localizer, opts ...Option) (*Registry, error) {
	if loc == nil {
		return nil, errors.New("registry: nil localizer")
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	var problems []string

	declared := make(map[string]bool, len(o.providers))
	descs := make([]provider.Descriptor, 0, len(o.providers))
	for _, d := range o.providers {
		declared[d.ID] = true
		if o.disabled[d.ID] {
			continue
		}
		d.Schema = d.Schema.Localize(func(key string) string { return loc.T(key) })
		descs = append(descs, d)
	}
	for id := range o.disabled {
		if !declared[id] {
			problems = append(problems, fmt.Sprintf("cannot disable undeclared provider %q", id))
		}
	}

	providers, p := provider.NewTable(descs)
	problems = append(problems, p...)

	for _, d := range providers.List() {
		filled := d.Schema.FillRequired(d.InitialSettings())
		if _, err := d.Schema.Validate(d.ID, filled, loc); err != nil {
			problems = append(problems, fmt.Sprintf("provider %q: initial settings do not satisfy its schema: %v", d.ID, err))
		}
	}

	models := slices.Concat(o.models, o.extra)
	for _, m := range models {
		if m.Provider != "" && !declared[m.Provider] {
			problems = append(problems, fmt.Sprintf("model %q references undeclared provider %q", m.Name, m.Provider))
		}
	}

	table, p := capability.NewTable(o.templates, models, o.fallback)
	problems = append(problems, p...)

	if len(problems) > 0 {
		for _, msg := range problems {
			o.logger.Error("Registry integrity check failed", zap.String("problem", msg))
		}
		return nil, &api.DataIntegrityError{Problems: problems}
	}

	o.logger.Info("Registry loaded",
		zap.Int("providers", providers.Len()),
		zap.Int("models", len(models)),
		zap.Int("templates", len(o.templates)),
		zap.String("default_template", o.fallback),
		zap.String("locale", loc.Locale()),
	)

	return &Registry{providers: providers, models: table, loc: loc}, nil
}

func (r *Registry) Locale() string { return r.loc.Locale() }

// ListProviders returns providers in declaration order.
func (r *Registry) ListProviders() []provider.Descriptor {
	return r.providers.List()
}

// GetProvider looks a provider up by exact id.
func (r *Registry) GetProvider(id string) (provider.Descriptor, error) {
	d, ok := r.providers.Get(id)
	if !ok {
		return provider.Descriptor{}, api.ProviderNotFound(id)
	}
	return d, nil
}

// ValidateSettings checks raw against the provider's schema, reporting every violation.
func (r *Registry) ValidateSettings(id string, raw settings.Values) (*settings.Validated, error) {
	d, err := r.GetProvider(id)
	if err != nil {
		return nil, err
	}
	return d.Schema.Validate(id, raw, r.loc)
}

// PrepareSettings merges the provider's initial settings under user and validates the result.
func (r *Registry) PrepareSettings(id string, user settings.Values) (*settings.Validated, error) {
	d, err := r.GetProvider(id)
	if err != nil {
		return nil, err
	}
	return d.Schema.Validate(id, settings.Merge(d.Initial, user), r.loc)
}

// BuildClient runs the provider's construction recipe. No network I/O happens here.
func (r *Registry) BuildClient(id string, v *settings.Validated) (provider.Client, error) {
	d, err := r.GetProvider(id)
	if err != nil {
		return nil, err
	}
	if v == nil || v.Provider() != id {
		return nil, fmt.Errorf("settings were not validated for provider %q", id)
	}
	c, err := d.Build(v)
	if err != nil {
		return nil, fmt.Errorf("build %s client: %w", id, err)
	}
	return c, nil
}

// SettingsSchema renders the provider's settings as a JSON Schema document.
func (r *Registry) SettingsSchema(id string) (*jsonschema.Schema, error) {
	d, err := r.GetProvider(id)
	if err != nil {
		return nil, err
	}
	return d.Schema.JSONSchema(schemaBaseURL+id, d.Label), nil
}

// ResolveCapabilities returns the media-type patterns model accepts for role.
// Unknown models get the default template; this never fails.
func (r *Registry) ResolveCapabilities(model string, role api.Role) []string {
	return r.models.Resolve(model, role)
}

// IsInputAllowed reports whether mediaType may be attached for role on model.
func (r *Registry) IsInputAllowed(model string, role api.Role, mediaType string) bool {
	return r.models.IsAllowed(model, role, mediaType)
}

// IsContentAllowed sniffs the media type of data and applies IsInputAllowed.
func (r *Registry) IsContentAllowed(model string, role api.Role, data []byte) (string, bool) {
	mt := capability.Sniff(data)
	return mt, r.models.IsAllowed(model, role, mt)
}

// ListModelNames returns model names in declaration order.
func (r *Registry) ListModelNames() []string {
	return r.models.Names()
}

// Models returns every model entry in declaration order.
func (r *Registry) Models() []capability.Model {
	return r.models.Models()
}

// Model returns the explicit table entry for name.
func (r *Registry) Model(name string) (capability.Model, error) {
	m, ok := r.models.Lookup(name)
	if !ok {
		return capability.Model{}, api.ModelNotFound(name)
	}
	return m, nil
}

// ProviderModels lists the models recorded for a provider.
func (r *Registry) ProviderModels(id string) ([]capability.Model, error) {
	if _, err := r.GetProvider(id); err != nil {
		return nil, err
	}
	return r.models.ModelsFor(id), nil
}

// Templates returns the capability templates in declaration order.
func (r *Registry) Templates() []capability.Template {
	return r.models.Templates()
}
