package auth

import (
	"net/http"

	"github.com/sawwere/team-selection/internal/service"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles HTTP requests for authentication
type AuthHandler struct {
	service *AuthService
	users   service.UserServiceInterface
}

// NewAuthHandler creates a new authentication handler
func NewAuthHandler(authService *AuthService, users service.UserServiceInterface) *AuthHandler {
	return &AuthHandler{service: authService, users: users}
}

// Login handles GET /auth/login
// @Summary Start the login flow
// @Description Redirect the browser to the university SSO authorization page
// @Tags authentication
// @Success 302 {string} string "Redirect to the identity provider"
// @Router /auth/login [get]
func (h *AuthHandler) Login(c *gin.Context) {
	c.Redirect(http.StatusFound, h.service.AuthURL())
}

// Callback handles GET /auth/callback
// @Summary Complete the login flow
// @Description Exchange the authorization code and redirect back to the frontend with a token
// @Tags authentication
// @Param code query string true "Authorization code"
// @Param state query string true "State parameter"
// @Success 302 {string} string "Redirect to the frontend with the token attached"
// @Failure 401 {object} map[string]interface{} "Invalid code or state"
// @Router /auth/callback [get]
func (h *AuthHandler) Callback(c *gin.Context) {
	code := c.Query("code")
	state := c.Query("state")
	if code == "" || state == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "code and state are required"})
		return
	}

	token, err := h.service.HandleCallback(c.Request.Context(), code, state)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	c.Redirect(http.StatusFound, h.service.FrontendRedirectURL()+"?token="+token)
}

// Me handles GET /auth/me
// @Summary Get the authenticated account
// @Description Get the user account behind the presented token
// @Tags authentication
// @Produce json
// @Success 200 {object} models.User "Authenticated account"
// @Failure 401 {object} map[string]interface{} "Missing or invalid token"
// @Security BearerAuth
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	email, ok := GetUserEmail(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	user, err := h.users.GetByEmail(email)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, user)
}
