package middleware

import (
	"runtime/debug"

	"catalog-backend/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// Recovery converts a handler panic into the shared error envelope instead
// of a dropped connection. The stack is logged, never returned to the
// client.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				log.Error().
					Str("request_id", c.GetString("request_id")).
					Str("route", c.FullPath()).
					Interface("panic", err).
					Bytes("stack", debug.Stack()).
					Msg("panic recovered")

				response.InternalServerError(c, "Internal server error")
				c.Abort()
			}
		}()

		c.Next()
	}
}
