package handlers

import (
	"net/http"
	"strconv"

	"bookmarks/internal/service"

	"github.com/gin-gonic/gin"
)

type createBookmarkRequest struct {
	Title       string `json:"title" validate:"required"`
	Link        string `json:"link" validate:"required,url"`
	Description string `json:"description" validate:"omitempty,max=1000"`
}

// updateBookmarkRequest is a partial update; absent fields stay unchanged.
type updateBookmarkRequest struct {
	Title       *string `json:"title" validate:"omitempty,min=1"`
	Link        *string `json:"link" validate:"omitempty,url"`
	Description *string `json:"description" validate:"omitempty,max=1000"`
}

// bookmarkID parses the :id path parameter, writing a 400 on garbage.
func (h *Handler) bookmarkID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid bookmark id"})
		return 0, false
	}
	return id, true
}

// @Summary      List own bookmarks
// @Tags         bookmarks
// @Produce      json
// @Success      200  {array}  models.Bookmark
// @Failure      401  {object}  map[string]string
// @Router       /bookmarks [get]
// @Security     BearerAuth
func (h *Handler) listBookmarks(c *gin.Context) {
	identity, ok := callerIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing identity"})
		return
	}

	list, err := h.services.List(c.Request.Context(), identity.UserID)
	if err != nil {
		h.writeServiceError(c, err, "bookmarks_list_failed", "user_id", identity.UserID)
		return
	}
	c.JSON(http.StatusOK, list)
}

// @Summary      Get one bookmark
// @Tags         bookmarks
// @Produce      json
// @Param        id  path  int  true  "Bookmark id"
// @Success      200  {object}  models.Bookmark  "null when absent"
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Router       /bookmarks/{id} [get]
// @Security     BearerAuth
func (h *Handler) getBookmark(c *gin.Context) {
	identity, ok := callerIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing identity"})
		return
	}
	id, ok := h.bookmarkID(c)
	if !ok {
		return
	}

	b, err := h.services.GetByID(c.Request.Context(), identity.UserID, id)
	if err != nil {
		h.writeServiceError(c, err, "bookmark_get_failed", "user_id", identity.UserID, "bookmark_id", id)
		return
	}
	// Absence is not an error for reads; an owner-scoped miss serializes as null.
	c.JSON(http.StatusOK, b)
}

// @Summary      Create bookmark
// @Tags         bookmarks
// @Accept       json
// @Produce      json
// @Param        body  body   createBookmarkRequest  true  "Bookmark"
// @Success      201   {object}  models.Bookmark
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /bookmarks [post]
// @Security     BearerAuth
func (h *Handler) createBookmark(c *gin.Context) {
	identity, ok := callerIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing identity"})
		return
	}

	var req createBookmarkRequest
	if !h.bindJSONOrBadRequest(c, &req) {
		return
	}
	if !h.validOrBadRequest(c, &req) {
		return
	}

	b, err := h.services.Bookmarks.Create(c.Request.Context(), identity.UserID, req.Title, req.Link, req.Description)
	if err != nil {
		h.writeServiceError(c, err, "bookmark_create_failed", "user_id", identity.UserID)
		return
	}
	c.JSON(http.StatusCreated, b)
}

// @Summary      Update bookmark
// @Tags         bookmarks
// @Accept       json
// @Produce      json
// @Param        id    path   int                    true  "Bookmark id"
// @Param        body  body   updateBookmarkRequest  true  "Fields to change"
// @Success      200   {object}  models.Bookmark
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /bookmarks/{id} [put]
// @Security     BearerAuth
func (h *Handler) updateBookmark(c *gin.Context) {
	identity, ok := callerIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing identity"})
		return
	}
	id, ok := h.bookmarkID(c)
	if !ok {
		return
	}

	var req updateBookmarkRequest
	if !h.bindJSONOrBadRequest(c, &req) {
		return
	}
	if !h.validOrBadRequest(c, &req) {
		return
	}

	b, err := h.services.UpdateByID(c.Request.Context(), identity.UserID, id, service.BookmarkPatch{
		Title:       req.Title,
		Link:        req.Link,
		Description: req.Description,
	})
	if err != nil {
		h.writeServiceError(c, err, "bookmark_update_failed", "user_id", identity.UserID, "bookmark_id", id)
		return
	}
	c.JSON(http.StatusOK, b)
}

// @Summary      Delete bookmark
// @Tags         bookmarks
// @Param        id  path  int  true  "Bookmark id"
// @Success      204  "no content"
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /bookmarks/{id} [delete]
// @Security     BearerAuth
func (h *Handler) deleteBookmark(c *gin.Context) {
	identity, ok := callerIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing identity"})
		return
	}
	id, ok := h.bookmarkID(c)
	if !ok {
		return
	}

	if err := h.services.DeleteByID(c.Request.Context(), identity.UserID, id); err != nil {
		h.writeServiceError(c, err, "bookmark_delete_failed", "user_id", identity.UserID, "bookmark_id", id)
		return
	}
	c.Status(http.StatusNoContent)
}
