package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nulzo/prism-registry/internal/capability"
)

type ModelHandler struct {
	registry Registry
}

func NewModelHandler(reg Registry) *ModelHandler {
	return &ModelHandler{registry: reg}
}

// List returns the model table, optionally narrowed to one provider.
//
// GET /v1/models?provider=
func (h *ModelHandler) List(c *gin.Context) {
	var (
		models []capability.Model
		err    error
	)

	if id := c.Query("provider"); id != "" {
		models, err = h.registry.ProviderModels(id)
		if err != nil {
			_ = c.Error(err)
			return
		}
	} else {
		models = h.registry.Models()
	}

	c.JSON(http.StatusOK, list(models))
}

// Get returns the explicit table entry for a model.
//
// GET /v1/models/:name
func (h *ModelHandler) Get(c *gin.Context) {
	m, err := h.registry.Model(c.Param("name"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, m)
}
