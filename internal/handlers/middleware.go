package handlers

import (
	"net/http"
	"strings"

	"bookmarks/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	identityCtxKey  = "identity"
	requestIDCtxKey = "requestId"
	requestIDHeader = "X-Request-ID"
	authHeader      = "Authorization"
	bearerScheme    = "Bearer"
)

// requestIDMiddleware tags every request with an id for log correlation,
// honoring a caller-supplied X-Request-ID.
func (h *Handler) requestIDMiddleware(c *gin.Context) {
	id := c.GetHeader(requestIDHeader)
	if id == "" {
		id = uuid.NewString()
	}
	c.Set(requestIDCtxKey, id)
	c.Writer.Header().Set(requestIDHeader, id)
	c.Next()
}

// identityMiddleware verifies the bearer token and attaches the caller's
// identity to the request context for the rest of the pipeline.
func (h *Handler) identityMiddleware(c *gin.Context) {
	header := c.GetHeader(authHeader)
	if header == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"error": "missing Authorization header",
		})
		return
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || parts[0] != bearerScheme {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"error": "invalid Authorization header format",
		})
		return
	}

	identity, err := h.services.ParseToken(parts[1])
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"error": "invalid or expired token",
		})
		return
	}

	c.Set(identityCtxKey, identity)
	c.Next()
}

// callerIdentity pulls the identity set by identityMiddleware.
func callerIdentity(c *gin.Context) (service.Identity, bool) {
	v, ok := c.Get(identityCtxKey)
	if !ok {
		return service.Identity{}, false
	}
	identity, ok := v.(service.Identity)
	return identity, ok
}

func requestID(c *gin.Context) string {
	return c.GetString(requestIDCtxKey)
}
