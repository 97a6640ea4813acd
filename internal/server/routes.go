package server

import (
	"github.com/nulzo/prism-registry/internal/server/middleware"
	v1 "github.com/nulzo/prism-registry/internal/server/v1"
)

func (s *Server) SetupRoutes() {
	s.router.Use(middleware.CORS())
	s.router.Use(middleware.ErrorHandler(s.logger))

	health := v1.NewHealthHandler(s.registry)
	s.router.GET("/health", health.Health)

	api := s.router.Group("/v1")
	api.Use(middleware.NewRateLimiter(
		s.config.RateLimit.RequestsPerSecond,
		s.config.RateLimit.Burst,
		s.logger,
	).Middleware())
	{
		providers := v1.NewProviderHandler(s.registry)
		api.GET("/providers", providers.List)
		api.GET("/providers/:id", providers.Get)
		api.GET("/providers/:id/schema", providers.Schema)
		api.POST("/providers/:id/settings", providers.ValidateSettings)

		models := v1.NewModelHandler(s.registry)
		api.GET("/models", models.List)
		api.GET("/models/:name", models.Get)

		caps := v1.NewCapabilityHandler(s.registry, s.validator)
		api.GET("/capabilities", caps.Resolve)
	}
}
