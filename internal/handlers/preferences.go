package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"digitalmenu/internal/catalog"
	"digitalmenu/internal/models"
)

type PreferencesUpdateRequest struct {
	Theme          *string `json:"theme" binding:"omitempty,theme"`
	Language       *string `json:"language" binding:"omitempty,locale"`
	ToggleTheme    bool    `json:"toggleTheme"`
	ToggleLanguage bool    `json:"toggleLanguage"`
}

func GetPreferences(store *catalog.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, store.Preferences())
	}
}

// UpdatePreferences sets theme and language, or flips them when the toggle
// flags are sent.
func UpdatePreferences(store *catalog.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req PreferencesUpdateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
			return
		}

		switch {
		case req.ToggleTheme:
			store.ToggleTheme()
		case req.Theme != nil:
			store.SetTheme(models.Theme(*req.Theme))
		}
		switch {
		case req.ToggleLanguage:
			store.ToggleLanguage()
		case req.Language != nil:
			store.SetLanguage(models.Locale(*req.Language))
		}

		c.JSON(http.StatusOK, store.Preferences())
	}
}
