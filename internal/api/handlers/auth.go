// internal/api/handlers/auth.go
package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/codescope-coders/codescope-rework/internal/api/middleware"
	"github.com/codescope-coders/codescope-rework/internal/services"
	"github.com/codescope-coders/codescope-rework/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// AuthHandler holds dependencies for admin authentication.
type AuthHandler struct {
	service    services.AdminService
	validator  *validator.Validate
	logger     *zap.Logger
	expiration time.Duration
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(service services.AdminService, validate *validator.Validate, logger *zap.Logger, expiration time.Duration) *AuthHandler {
	return &AuthHandler{service: service, validator: validate, logger: logger, expiration: expiration}
}

// Login godoc
// @Summary      Admin login
// @Description  Authenticates an admin and issues a token, also set as a cookie. An unknown email registers a new admin account.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        credentials body dto.LoginRequest true "Email and password"
// @Success      200 {object} map[string]interface{}
// @Failure      400 {object} map[string]string
// @Failure      401 {object} map[string]string
// @Failure      500 {object} map[string]string
// @Router       /auth [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body: " + err.Error()})
		return
	}
	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Validation failed", "fieldErrors": FormatValidationErrors(err)})
		return
	}

	admin, token, err := h.service.Login(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{
				"message":     "Authentication failed.",
				"fieldErrors": gin.H{"password": "Invalid password."},
			})
			return
		}
		h.logger.Error("admin login", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to log in."})
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie("token", token, int(h.expiration.Seconds()), "/", "", false, true)

	resp := respond("Login successful.", dto.LoginPayload{Email: admin.Email})
	resp["token"] = token
	c.JSON(http.StatusOK, resp)
}

// CheckAuth godoc
// @Summary      Verify an admin token
// @Tags         auth
// @Produce      json
// @Success      200 {object} map[string]interface{}
// @Failure      401 {object} map[string]string
// @Router       /auth/check [post]
// @Security     BearerAuth
func (h *AuthHandler) CheckAuth(c *gin.Context) {
	claims, err := middleware.GetAdminFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Authentication required."})
		return
	}
	c.JSON(http.StatusOK, respond("Token is valid.", dto.LoginPayload{Email: claims.Email}))
}
