package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/nulzo/prism-registry/pkg/api"
	"go.uber.org/zap"
)

// ErrorHandler renders the last handler error as an RFC 9457 problem.
func ErrorHandler(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		problem := api.AsProblem(c.Errors.Last().Err)
		if problem.Instance == "" {
			problem.Instance = c.Request.URL.Path
		}

		if problem.Log != nil {
			logger.Error("Internal error",
				zap.Error(problem.Log),
				zap.String("request_id", c.GetString(RequestIDKey)),
			)
		}

		c.Header("Content-Type", "application/problem+json")
		c.AbortWithStatusJSON(problem.Status, problem)
	}
}
