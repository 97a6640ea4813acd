package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nulzo/prism-registry/internal/server/validator"
	"github.com/nulzo/prism-registry/pkg/api"
)

type capabilityQuery struct {
	Model     string `form:"model" binding:"required"`
	Role      string `form:"role" binding:"required,oneof=user assistant tool"`
	MediaType string `form:"media_type"`
}

type CapabilityHandler struct {
	registry  Registry
	validator *validator.Validator
}

func NewCapabilityHandler(reg Registry, v *validator.Validator) *CapabilityHandler {
	return &CapabilityHandler{registry: reg, validator: v}
}

// Resolve returns the media-type patterns a model accepts for a role and, when
// media_type is given, whether that concrete type may be attached.
//
// GET /v1/capabilities?model=&role=&media_type=
func (h *CapabilityHandler) Resolve(c *gin.Context) {
	var q capabilityQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		_ = c.Error(api.BadRequestError(
			"One or more query parameters are invalid.",
			api.WithExtension("errors", h.validator.ParseError(err)),
		))
		return
	}

	role := api.Role(q.Role)
	inputs := h.registry.ResolveCapabilities(q.Model, role)
	if inputs == nil {
		inputs = []string{}
	}

	resp := gin.H{
		"model":  q.Model,
		"role":   role,
		"inputs": inputs,
	}

	_, err := h.registry.Model(q.Model)
	resp["known"] = err == nil

	if q.MediaType != "" {
		resp["media_type"] = q.MediaType
		resp["allowed"] = h.registry.IsInputAllowed(q.Model, role, q.MediaType)
	}

	c.JSON(http.StatusOK, resp)
}
