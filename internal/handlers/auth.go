// Package handlers contains HTTP request handlers for the API service.
package handlers

import (
	"errors"
	"net/http"

	"github.com/Jerdirlson/api-task/internal/api"
	"github.com/Jerdirlson/api-task/internal/middleware"
	"github.com/Jerdirlson/api-task/internal/service"
	"github.com/gin-gonic/gin"
)

// AuthHandler handles authentication HTTP requests.
type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler creates a new AuthHandler instance.
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// LoginRequest represents the login request payload.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// RegisterRequest represents the registration request payload. Role is
// optional and defaults to the standard tier.
type RegisterRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
	Role     int    `json:"role"`
}

// Login authenticates a user and returns a signed bearer token.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	response, err := h.authService.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			api.Error(c, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		api.Error(c, http.StatusInternalServerError, "Login failed")
		return
	}

	api.Success(c, http.StatusOK, response)
}

// Register creates a new user account.
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.authService.Register(c.Request.Context(), req.Username, req.Password, req.Role); err != nil {
		if errors.Is(err, service.ErrUsernameTaken) {
			api.Error(c, http.StatusConflict, "Username already exists")
			return
		}
		api.Error(c, http.StatusInternalServerError, "Failed to register user")
		return
	}

	api.Success(c, http.StatusCreated, gin.H{"message": "User registered successfully"})
}

// CurrentUser returns the claims of the authenticated requester.
func (h *AuthHandler) CurrentUser(c *gin.Context) {
	claims, ok := middleware.ClaimsFromContext(c)
	if !ok {
		api.Error(c, http.StatusNotFound, "User not found")
		return
	}

	api.Success(c, http.StatusOK, gin.H{
		"username": claims.Username,
		"role":     claims.Role,
	})
}
