package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Origins the local web client runs on during development. Deployed origins
// come from config (CORS_ALLOWED_ORIGINS).
var devOrigins = []string{
	"http://localhost:3000",
	"http://localhost:5173",
	"http://127.0.0.1:3000",
	"http://127.0.0.1:5173",
}

// CORS allows the dev origins plus any extra ones from config. Credentialed
// requests are only allowed for origins on the list; the origin is echoed
// back, never wildcarded.
func CORS(extraOrigins ...string) gin.HandlerFunc {
	allowed := make(map[string]struct{}, len(devOrigins)+len(extraOrigins))
	for _, o := range devOrigins {
		allowed[o] = struct{}{}
	}
	for _, o := range extraOrigins {
		if o != "" {
			allowed[o] = struct{}{}
		}
	}

	return func(c *gin.Context) {
		h := c.Writer.Header()
		h.Set("Vary", "Origin")

		origin := c.GetHeader("Origin")
		if _, ok := allowed[origin]; ok && origin != "" {
			h.Set("Access-Control-Allow-Origin", origin)
			h.Set("Access-Control-Allow-Credentials", "true")
			h.Set("Access-Control-Allow-Headers", "Content-Type, Authorization, Accept, Origin, X-Requested-With")
			h.Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
			h.Set("Access-Control-Max-Age", "600")
		}

		// preflight must finish before the auth middleware runs
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
