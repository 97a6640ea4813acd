package registry

import (
	"github.com/nulzo/prism-registry/internal/capability"
	"github.com/nulzo/prism-registry/internal/config"
	"github.com/nulzo/prism-registry/internal/provider"
	"go.uber.org/zap"
)

type options struct {
	providers []provider.Descriptor
	templates []capability.Template
	models    []capability.Model
	extra     []capability.Model
	fallback  string
	disabled  map[string]bool
	logger    *zap.Logger
}

func defaultOptions() *options {
	return &options{
		providers: provider.Builtin(),
		templates: capability.Templates(),
		models:    capability.Models(),
		fallback:  capability.DefaultTemplate,
		disabled:  make(map[string]bool),
		logger:    zap.NewNop(),
	}
}

// Option customises the tables a Registry is built from.
type Option func(*options)

// WithProviders replaces the built-in provider table.
func WithProviders(descs ...provider.Descriptor) Option {
	return func(o *options) { o.providers = descs }
}

// WithTemplates replaces the built-in capability templates.
func WithTemplates(templates ...capability.Template) Option {
	return func(o *options) { o.templates = templates }
}

// WithModels replaces the built-in model table.
func WithModels(models ...capability.Model) Option {
	return func(o *options) { o.models = models }
}

// WithExtraModels appends entries after the model table.
func WithExtraModels(models ...capability.Model) Option {
	return func(o *options) { o.extra = append(o.extra, models...) }
}

// WithDefaultTemplate sets the template used for unknown model names.
func WithDefaultTemplate(name string) Option {
	return func(o *options) {
		if name != "" {
			o.fallback = name
		}
	}
}

// WithoutProviders hides providers from the table. Their models stay resolvable.
func WithoutProviders(ids ...string) Option {
	return func(o *options) {
		for _, id := range ids {
			o.disabled[id] = true
		}
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// FromConfig translates the registry section of the application config into options.
func FromConfig(cfg config.RegistryConfig, logger *zap.Logger) []Option {
	return []Option{
		WithDefaultTemplate(cfg.DefaultTemplate),
		WithoutProviders(cfg.DisabledProviders...),
		WithExtraModels(cfg.Models...),
		WithLogger(logger),
	}
}
