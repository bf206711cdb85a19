package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Shubha258/Task-Manager/internal/middleware"
	"github.com/Shubha258/Task-Manager/internal/services"
	"github.com/gin-gonic/gin"
)

// UserHandler coordinates signup and profile HTTP handlers.
type UserHandler struct {
	authService *services.AuthService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(authService *services.AuthService) *UserHandler {
	return &UserHandler{
		authService: authService,
	}
}

// Signup registers a new user. No token is issued; the user logs in
// separately.
func (h *UserHandler) Signup(c *gin.Context) {
	// Fields are untyped so a wrongly typed value can be told apart from a
	// missing one.
	type SignupRequest struct {
		Name     any `json:"name"`
		Email    any `json:"email"`
		Password any `json:"password"`
	}

	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "Please fill all the fields"})
		return
	}

	_, err := h.authService.Signup(services.SignupInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrMissingFields):
			c.JSON(http.StatusBadRequest, gin.H{"msg": "Please fill all the fields"})
		case errors.Is(err, services.ErrNonStringField):
			c.JSON(http.StatusBadRequest, gin.H{"msg": "Please send string values only"})
		case errors.Is(err, services.ErrPasswordTooShort):
			c.JSON(http.StatusBadRequest, gin.H{"msg": "Password length must be atleast 4 characters"})
		case errors.Is(err, services.ErrInvalidEmail):
			c.JSON(http.StatusBadRequest, gin.H{"msg": "Invalid Email"})
		case errors.Is(err, services.ErrEmailTaken):
			c.JSON(http.StatusBadRequest, gin.H{"msg": "This email is already registered"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"msg": "Internal Server Error"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"msg": "Congratulations!! Account has been created for you.."})
}

// GetProfile returns the authenticated user's profile.
func (h *UserHandler) GetProfile(c *gin.Context) {
	if _, err := strconv.ParseUint(c.Param("userId"), 10, 64); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": false, "msg": "Invalid user ID"})
		return
	}

	current, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"status": false, "msg": "Internal Server Error"})
		return
	}

	user, err := h.authService.GetUser(current.ID)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"status": false, "msg": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"status": false, "msg": "Internal Server Error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user":   user,
		"status": true,
		"msg":    "Profile found successfully..",
	})
}
