package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Single, shared credentials payload for both signup and signin.
type credentialsRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// @Summary      Sign up
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body   credentialsRequest  true  "Credentials"
// @Success      201   {object}  map[string]string  "access_token"
// @Failure      400   {object}  map[string]string
// @Router       /auth/signup [post]
func (h *Handler) signUp(c *gin.Context) {
	var req credentialsRequest
	if !h.bindJSONOrBadRequest(c, &req) {
		return
	}
	if !h.validOrBadRequest(c, &req) {
		return
	}

	token, err := h.services.SignUp(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if h.log != nil {
			h.log.Infow("sign_up_failed", "email", req.Email, "err", err)
		}
		h.writeServiceError(c, err, "sign_up_failed")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"access_token": token})
}

// @Summary      Sign in
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body   credentialsRequest  true  "Credentials"
// @Success      200   {object}  map[string]string  "access_token"
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /auth/signin [post]
func (h *Handler) signIn(c *gin.Context) {
	var req credentialsRequest
	if !h.bindJSONOrBadRequest(c, &req) {
		return
	}
	if !h.validOrBadRequest(c, &req) {
		return
	}

	token, err := h.services.SignIn(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if h.log != nil {
			h.log.Infow("sign_in_failed", "email", req.Email, "err", err)
		}
		h.writeServiceError(c, err, "sign_in_failed")
		return
	}

	c.JSON(http.StatusOK, gin.H{"access_token": token})
}
