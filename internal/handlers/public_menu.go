package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"digitalmenu/internal/catalog"
	"digitalmenu/internal/models"
)

/*
GET /public/menu?lang=ar

Renders the active menu for guests in the requested language together with
the active template and its customization.
*/
func GetPublicMenu(store *catalog.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /public/menu"
		defer handlePanic(c, route)

		locale := models.ParseLocale(c.Query("lang"))

		menu, ok, err := store.ActiveMenuWithData()
		if err != nil {
			respondStoreError(c, route, err)
			return
		}
		if !ok {
			respondWithError(c, http.StatusNotFound, route, "no active menu")
			return
		}

		response := gin.H{
			"lang":          locale,
			"menu":          menu.Localize(locale),
			"template":      nil,
			"customization": store.TemplateCustomization(),
		}
		if template, ok := store.ActiveTemplate(); ok {
			response["template"] = template
		}

		log.Printf("[%s] returning menu %s with %d items", route, menu.ID, menu.ItemCount())
		c.JSON(http.StatusOK, response)
	}
}

func GetPublicTemplates(store *catalog.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, store.Templates())
	}
}
