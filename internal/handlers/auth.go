package handlers

import (
	"errors"
	"net/http"

	"github.com/Shubha258/Task-Manager/internal/services"
	"github.com/gin-gonic/gin"
)

// AuthHandler coordinates authentication-related HTTP handlers.
type AuthHandler struct {
	authService *services.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Login authenticates a user and returns a signed access token together with
// the user record.
func (h *AuthHandler) Login(c *gin.Context) {
	type LoginRequest struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": false, "msg": "Please enter all details!!"})
		return
	}

	user, accessToken, err := h.authService.Login(services.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrMissingCredentials):
			c.JSON(http.StatusBadRequest, gin.H{"status": false, "msg": "Please enter all details!!"})
		case errors.Is(err, services.ErrEmailNotRegistered):
			c.JSON(http.StatusBadRequest, gin.H{"status": false, "msg": "This email is not registered!!"})
		case errors.Is(err, services.ErrWrongPassword):
			c.JSON(http.StatusBadRequest, gin.H{"status": false, "msg": "Password incorrect!!"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"status": false, "msg": "Internal Server Error"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":  accessToken,
		"user":   user,
		"status": true,
		"msg":    "Login successful..",
	})
}
