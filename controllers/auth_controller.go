package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"roombook-backend/middleware"
	"roombook-backend/utils"
)

// AuthController implements the demo login: any non-empty username and
// password pair gets a signed bearer token. There is no user database.
type AuthController struct {
	Secret string
}

func NewAuthController(secret string) *AuthController {
	return &AuthController{Secret: secret}
}

type authPayload struct {
	Action   string `json:"action"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login handles POST /api/auth.
func (a *AuthController) Login(c *gin.Context) {
	var payload authPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONErrorMessage(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request payload")
		return
	}
	if payload.Action != "login" {
		utils.JSONErrorMessage(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid action")
		return
	}

	username := strings.TrimSpace(payload.Username)
	if username == "" || payload.Password == "" {
		utils.JSONErrorMessage(c, http.StatusBadRequest, "VALIDATION_ERROR", "Username and password are required")
		return
	}

	token, err := middleware.IssueToken(a.Secret, username)
	if err != nil {
		utils.JSONErrorMessage(c, http.StatusInternalServerError, "SERVER_ERROR", "Failed to issue token")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"token":   token,
		"user": gin.H{
			"id":       "user-" + uuid.NewString(),
			"username": username,
			"email":    username + "@example.com",
			"name":     username,
		},
	})
}
