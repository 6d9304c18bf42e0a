package handlers

import (
	"errors"
	"net/http"

	"bookmarks/internal/logger"
	"bookmarks/internal/service"
	"bookmarks/internal/validation"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handler wires HTTP layer to services, validation and logging.
type Handler struct {
	services *service.Service
	validate *validation.Validator
	log      *logger.Logger
}

// NewHandler constructs a new HTTP handler with dependencies.
func NewHandler(services *service.Service, log *logger.Logger) *Handler {
	return &Handler{
		services: services,
		validate: validation.New(),
		log:      log,
	}
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), h.requestIDMiddleware)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health endpoint
	router.GET("/health", h.health)

	// Auth endpoints
	auth := router.Group("/auth")
	{
		auth.POST("/signup", h.signUp)
		auth.POST("/signin", h.signIn)
	}

	// Profile endpoints (protected)
	users := router.Group("/users", h.identityMiddleware)
	{
		users.GET("/profile", h.getProfile)
		users.PUT("", h.updateProfile)
	}

	// Bookmark endpoints (protected)
	bookmarks := router.Group("/bookmarks", h.identityMiddleware)
	{
		bookmarks.GET("", h.listBookmarks)
		bookmarks.POST("", h.createBookmark)
		bookmarks.GET("/:id", h.getBookmark)
		bookmarks.PUT("/:id", h.updateBookmark)
		bookmarks.DELETE("/:id", h.deleteBookmark)
	}

	// Live bookmark feed (HTTP upgrade) — same port
	router.GET("/ws", h.wsConnect)

	return router
}

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// bindJSONOrBadRequest binds the body into dst and writes a 400 on failure.
// Unknown fields are dropped, per encoding/json defaults.
func (h *Handler) bindJSONOrBadRequest(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		if h.log != nil {
			h.log.Infow("bad_request_body", "path", c.FullPath(), "err", err)
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body: " + err.Error()})
		return false
	}
	return true
}

// validOrBadRequest runs struct validation and writes an aggregated 400
// listing every violated field.
func (h *Handler) validOrBadRequest(c *gin.Context, req any) bool {
	fields := h.validate.Check(req)
	if fields == nil {
		return true
	}
	c.JSON(http.StatusBadRequest, gin.H{
		"error":  "validation failed",
		"fields": fields,
	})
	return false
}

// writeServiceError maps domain errors onto HTTP statuses. Anything unmapped
// is an internal failure: logged with its cause, reported as a bare 500.
func (h *Handler) writeServiceError(c *gin.Context, err error, logKey string, kv ...interface{}) {
	switch {
	case errors.Is(err, service.ErrEmailTaken):
		c.JSON(http.StatusBadRequest, gin.H{"error": service.ErrEmailTaken.Error()})
	case errors.Is(err, service.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": service.ErrUserNotFound.Error()})
	case errors.Is(err, service.ErrInvalidPassword):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "password incorrect"})
	case errors.Is(err, service.ErrBookmarkNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": service.ErrBookmarkNotFound.Error()})
	case errors.Is(err, service.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": service.ErrForbidden.Error()})
	default:
		if h.log != nil {
			fields := append([]interface{}{"err", err, "request_id", requestID(c)}, kv...)
			h.log.Errorw(logKey, fields...)
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
