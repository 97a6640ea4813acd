package v1

import (
	"github.com/invopop/jsonschema"
	"github.com/nulzo/prism-registry/internal/capability"
	"github.com/nulzo/prism-registry/internal/provider"
	"github.com/nulzo/prism-registry/internal/settings"
	"github.com/nulzo/prism-registry/pkg/api"
)

// Registry is the read surface the HTTP handlers need.
type Registry interface {
	Locale() string
	ListProviders() []provider.Descriptor
	GetProvider(id string) (provider.Descriptor, error)
	ValidateSettings(id string, raw settings.Values) (*settings.Validated, error)
	PrepareSettings(id string, user settings.Values) (*settings.Validated, error)
	SettingsSchema(id string) (*jsonschema.Schema, error)
	Models() []capability.Model
	ProviderModels(id string) ([]capability.Model, error)
	Model(name string) (capability.Model, error)
	ResolveCapabilities(model string, role api.Role) []string
	IsInputAllowed(model string, role api.Role, mediaType string) bool
}
