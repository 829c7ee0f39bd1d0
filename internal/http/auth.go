package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/thanhmai/journal/internal/auth"
)

// AuthController handles login and registration.
type AuthController struct {
	service *auth.Service
}

func NewAuthController(service *auth.Service) *AuthController {
	return &AuthController{service: service}
}

// RegisterRoutes registers authentication routes on the router.
func (ac *AuthController) RegisterRoutes(router *gin.Engine) {
	router.POST("/api/login", ac.Login)
	router.POST("/api/register", ac.Register)
}

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login validates a username/password pair and returns the user plus a
// signed token.
func (ac *AuthController) Login(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.IndentedJSON(http.StatusInternalServerError, gin.H{"success": false, "error": "invalid request body"})
		return
	}

	result, err := ac.service.Login(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) ||
			errors.Is(err, auth.ErrUsernameRequired) ||
			errors.Is(err, auth.ErrPasswordRequired) {
			c.IndentedJSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Invalid credentials"})
			return
		}
		c.IndentedJSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	c.IndentedJSON(http.StatusOK, gin.H{
		"success": true,
		"user":    result.User,
		"token":   result.Token,
	})
}

// Register creates a new account with the "user" role.
func (ac *AuthController) Register(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.IndentedJSON(http.StatusInternalServerError, gin.H{"success": false, "error": "invalid request body"})
		return
	}

	result, err := ac.service.Register(req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrUserExists):
			c.IndentedJSON(http.StatusConflict, gin.H{"success": false, "error": "User already exists"})
		case errors.Is(err, auth.ErrUsernameRequired),
			errors.Is(err, auth.ErrPasswordRequired),
			errors.Is(err, auth.ErrUsernameInvalid):
			c.IndentedJSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		default:
			c.IndentedJSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		}
		return
	}

	c.IndentedJSON(http.StatusOK, gin.H{
		"success": true,
		"user":    result.User,
		"token":   result.Token,
	})
}
