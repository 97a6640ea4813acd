package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nulzo/prism-registry/internal/settings"
	"github.com/nulzo/prism-registry/pkg/api"
)

type ProviderHandler struct {
	registry Registry
}

func NewProviderHandler(reg Registry) *ProviderHandler {
	return &ProviderHandler{registry: reg}
}

// List returns every enabled provider in declaration order.
//
// GET /v1/providers
func (h *ProviderHandler) List(c *gin.Context) {
	descs := h.registry.ListProviders()
	views := make([]providerView, 0, len(descs))
	for _, d := range descs {
		views = append(views, newProviderView(d))
	}
	c.JSON(http.StatusOK, list(views))
}

// Get returns one provider with its localized settings form.
//
// GET /v1/providers/:id
func (h *ProviderHandler) Get(c *gin.Context) {
	d, err := h.registry.GetProvider(c.Param("id"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, newProviderView(d))
}

// Schema returns the provider settings as a JSON Schema document.
//
// GET /v1/providers/:id/schema
func (h *ProviderHandler) Schema(c *gin.Context) {
	s, err := h.registry.SettingsSchema(c.Param("id"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, s)
}

// ValidateSettings checks a settings object, merged over the provider's initial
// settings unless merge=false, and echoes it back with secrets masked.
//
// POST /v1/providers/:id/settings
func (h *ProviderHandler) ValidateSettings(c *gin.Context) {
	id := c.Param("id")

	var raw settings.Values
	if err := c.ShouldBindJSON(&raw); err != nil {
		_ = c.Error(api.BadRequestError("Request body must be a JSON object.", api.WithExtension("provider", id)))
		return
	}

	validate := h.registry.PrepareSettings
	if c.DefaultQuery("merge", "true") == "false" {
		validate = h.registry.ValidateSettings
	}

	v, err := validate(id, raw)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"provider": v.Provider(),
		"valid":    true,
		"settings": v.Redacted(),
	})
}
