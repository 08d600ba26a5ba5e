package handlers

import (
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"digitalmenu/internal/catalog"
	"digitalmenu/internal/middleware"
)

type AdminLoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login accepts any non-empty credentials. There is no account store; the
// token only gates the admin API for the lifetime of the process.
func Login(store *catalog.Store, jwtSecret string, accessTTL time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /auth/login"

		var req AdminLoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
			return
		}

		email := strings.ToLower(strings.TrimSpace(req.Email))
		if email == "" || strings.TrimSpace(req.Password) == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "email and password are required"})
			return
		}

		expiresAt := time.Now().Add(accessTTL)
		claims := jwt.MapClaims{
			"sub":   email,
			"role":  "admin",
			"email": email,
			"exp":   expiresAt.Unix(),
		}

		token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
		signed, err := token.SignedString([]byte(jwtSecret))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "token generation failed"})
			return
		}

		store.Login()
		log.Printf("[%s] admin session opened for %s", route, email)

		c.JSON(http.StatusOK, gin.H{
			"token":     signed,
			"expiresAt": expiresAt.UTC(),
			"user":      gin.H{"email": email},
		})
	}
}

// Logout discards every edit made during the session and restores the seed
// data. Display preferences are kept.
func Logout(store *catalog.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		store.Logout()
		c.JSON(http.StatusOK, gin.H{"message": "logged out"})
	}
}

func Session(store *catalog.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"authenticated": store.Authenticated(),
			"subject":       c.GetString(middleware.SubjectKey),
		})
	}
}
