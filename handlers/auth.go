package handlers

import (
	"errors"
	"net/http"

	"rentride/services/renter"
	"rentride/utils"

	"github.com/gin-gonic/gin"
)

// AuthHandler serves renter signup and sign-in.
type AuthHandler struct {
	Auth renter.AuthService
}

func NewAuthHandler(auth renter.AuthService) *AuthHandler {
	return &AuthHandler{Auth: auth}
}

// RegisterHandler creates a renter account and returns a session token.
func (h *AuthHandler) RegisterHandler(c *gin.Context) {
	var input renter.RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid registration payload", err.Error())
		return
	}

	account, token, err := h.Auth.Register(input)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Registration failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"renter": account, "token": token})
}

// AuthenticateHandler verifies credentials and returns a session token.
func (h *AuthHandler) AuthenticateHandler(c *gin.Context) {
	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid credentials payload", err.Error())
		return
	}

	account, token, err := h.Auth.Authenticate(input.Email, input.Password)
	if err != nil {
		if errors.Is(err, renter.ErrInvalidCredentials) {
			utils.JSONError(c, http.StatusUnauthorized, "Invalid email or password", "")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Authentication failed", "Please try again later.")
		return
	}
	c.JSON(http.StatusOK, gin.H{"renter": account, "token": token})
}
