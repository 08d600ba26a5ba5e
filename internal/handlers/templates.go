package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"digitalmenu/internal/catalog"
	"digitalmenu/internal/models"
)

type ActiveTemplateRequest struct {
	TemplateID string `json:"templateId"`
}

type CustomizationUpdateRequest struct {
	Logo           *string `json:"logo"`
	PrimaryColor   *string `json:"primaryColor" binding:"omitempty,hexcolor"`
	SecondaryColor *string `json:"secondaryColor" binding:"omitempty,hexcolor"`
}

func GetTemplates(store *catalog.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"data":             store.Templates(),
			"activeTemplateId": store.ActiveTemplateID(),
		})
	}
}

func GetActiveTemplate(store *catalog.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		response := gin.H{"activeTemplateId": store.ActiveTemplateID(), "template": nil}
		if t, ok := store.ActiveTemplate(); ok {
			response["template"] = t
		}
		c.JSON(http.StatusOK, response)
	}
}

func SetActiveTemplate(store *catalog.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ActiveTemplateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
			return
		}
		store.SetActiveTemplate(strings.TrimSpace(req.TemplateID))
		c.JSON(http.StatusOK, gin.H{"activeTemplateId": store.ActiveTemplateID()})
	}
}

func GetTemplateCustomization(store *catalog.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, store.TemplateCustomization())
	}
}

func UpdateTemplateCustomization(store *catalog.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CustomizationUpdateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
			return
		}

		patch := models.CustomizationPatch{
			Logo:           req.Logo,
			PrimaryColor:   req.PrimaryColor,
			SecondaryColor: req.SecondaryColor,
		}
		c.JSON(http.StatusOK, store.UpdateTemplateCustomization(patch))
	}
}
