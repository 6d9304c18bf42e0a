package handlers

import (
	"net/http"

	"bookmarks/internal/service"

	"github.com/gin-gonic/gin"
)

// updateProfileRequest is a partial update; absent fields stay unchanged.
type updateProfileRequest struct {
	Email     *string `json:"email" validate:"omitempty,email"`
	FirstName *string `json:"first_name" validate:"omitempty,max=100"`
	LastName  *string `json:"last_name" validate:"omitempty,max=100"`
}

// @Summary      Get own profile
// @Tags         users
// @Produce      json
// @Success      200  {object}  models.User
// @Failure      401  {object}  map[string]string
// @Router       /users/profile [get]
// @Security     BearerAuth
func (h *Handler) getProfile(c *gin.Context) {
	identity, ok := callerIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing identity"})
		return
	}

	u, err := h.services.GetProfile(c.Request.Context(), identity.UserID)
	if err != nil {
		h.writeServiceError(c, err, "get_profile_failed", "user_id", identity.UserID)
		return
	}
	c.JSON(http.StatusOK, u)
}

// @Summary      Update own profile
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body   updateProfileRequest  true  "Fields to change"
// @Success      200   {object}  models.User
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /users [put]
// @Security     BearerAuth
func (h *Handler) updateProfile(c *gin.Context) {
	identity, ok := callerIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing identity"})
		return
	}

	var req updateProfileRequest
	if !h.bindJSONOrBadRequest(c, &req) {
		return
	}
	if !h.validOrBadRequest(c, &req) {
		return
	}

	u, err := h.services.UpdateProfile(c.Request.Context(), identity.UserID, service.ProfileUpdate{
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		h.writeServiceError(c, err, "update_profile_failed", "user_id", identity.UserID)
		return
	}
	c.JSON(http.StatusOK, u)
}
