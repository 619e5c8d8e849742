package handlers

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/nithinvarma/agrimarket-backend/pkg/utils"
	"golang.org/x/crypto/bcrypt"
)

// Login exchanges the admin password for a session token. The bcrypt hash
// of the password lives in ADMIN_PASSWORD_HASH.
func Login() gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			Password string `json:"password" binding:"required"`
		}

		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		hash := os.Getenv("ADMIN_PASSWORD_HASH")
		if hash == "" {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Login is not configured"})
			return
		}

		if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(input.Password)); err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
			return
		}

		token, err := utils.GenerateSessionToken()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create session"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"token": token})
	}
}
