package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"digitalmenu/internal/catalog"
	"digitalmenu/internal/database"
	"digitalmenu/internal/models"
)

// MenuPublisher stores populated menu snapshots for the public site.
type MenuPublisher interface {
	Publish(ctx context.Context, menu models.PopulatedMenu, template *models.Template, customization models.TemplateCustomization) (models.PublishedMenu, error)
	Published(ctx context.Context, menuID string) (models.PublishedMenu, error)
	Unpublish(ctx context.Context, menuID string) (bool, error)
}

type CategoryAssociationInput struct {
	CategoryID string   `json:"categoryId" binding:"required"`
	ItemIDs    []string `json:"itemIds"`
}

type MenuCreateRequest struct {
	ID          string                     `json:"id"`
	Name        LocalizedTextInput         `json:"name"`
	Description *OptionalTextInput         `json:"description"`
	Categories  []CategoryAssociationInput `json:"categories" binding:"omitempty,dive"`
}

type MenuUpdateRequest struct {
	Name        *LocalizedTextInput         `json:"name"`
	Description *OptionalTextInput          `json:"description"`
	Categories  *[]CategoryAssociationInput `json:"categories" binding:"omitempty,dive"`
}

type ActiveMenuRequest struct {
	MenuID string `json:"menuId"`
}

func associationsFromInput(values []CategoryAssociationInput) []models.CategoryAssociation {
	out := make([]models.CategoryAssociation, 0, len(values))
	for _, v := range values {
		ids := make([]string, 0, len(v.ItemIDs))
		for _, id := range v.ItemIDs {
			if id = strings.TrimSpace(id); id != "" {
				ids = append(ids, id)
			}
		}
		out = append(out, models.CategoryAssociation{
			CategoryID: strings.TrimSpace(v.CategoryID),
			ItemIDs:    ids,
		})
	}
	return out
}

func GetMenus(store *catalog.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"data": store.Menus(),
		})
	}
}

func GetMenu(store *catalog.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		menu, ok := store.Menu(trimmedParam(c, "id"))
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "menu not found"})
			return
		}
		c.JSON(http.StatusOK, menu)
	}
}

// GetPopulatedMenu returns the menu with every category and item resolved.
func GetPopulatedMenu(store *catalog.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /admin/api/menus/:id/populated"

		menu, ok, err := store.MenuWithData(trimmedParam(c, "id"))
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "menu not found"})
			return
		}
		if err != nil {
			respondStoreError(c, route, err)
			return
		}
		c.JSON(http.StatusOK, menu)
	}
}

func CreateMenu(store *catalog.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /admin/api/menus"

		var req MenuCreateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
			return
		}

		name := req.Name.toModel()
		if name.Primary == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "name required"})
			return
		}

		menu, err := store.AddMenu(models.Menu{
			ID:          strings.TrimSpace(req.ID),
			Name:        name,
			Description: optionalDescription(req.Description),
			Categories:  associationsFromInput(req.Categories),
		})
		if err != nil {
			respondStoreError(c, route, err)
			return
		}

		log.Printf("[%s] created menu %s with %d categories", route, menu.ID, len(menu.Categories))
		c.JSON(http.StatusCreated, menu)
	}
}

// UpdateMenu merges name and description. When categories is present it
// replaces the whole association list.
func UpdateMenu(store *catalog.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req MenuUpdateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
			return
		}

		name, err := textPtr(req.Name)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "name cannot be empty"})
			return
		}
		patch := models.MenuPatch{Name: name}
		if req.Description != nil {
			description := req.Description.toModel()
			patch.Description = &description
		}
		if req.Categories != nil {
			assocs := associationsFromInput(*req.Categories)
			patch.Categories = &assocs
		}

		if patch.Empty() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "no fields to update"})
			return
		}

		updated, ok := store.UpdateMenu(trimmedParam(c, "id"), patch)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "menu not found"})
			return
		}
		c.JSON(http.StatusOK, updated)
	}
}

func DeleteMenu(store *catalog.Store, publisher MenuPublisher) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "DELETE /admin/api/menus/:id"

		id := trimmedParam(c, "id")
		if !store.DeleteMenu(id) {
			c.JSON(http.StatusNotFound, gin.H{"error": "menu not found"})
			return
		}

		if publisher != nil {
			removed, err := publisher.Unpublish(c.Request.Context(), id)
			if err != nil {
				log.Printf("[%s] unpublish %s: %v", route, id, err)
			} else if removed {
				log.Printf("[%s] removed published snapshot of %s", route, id)
			}
		}
		c.Status(http.StatusNoContent)
	}
}

// PublishMenu snapshots the populated menu together with the active template
// and customization.
func PublishMenu(store *catalog.Store, publisher MenuPublisher) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /admin/api/menus/:id/publish"

		if publisher == nil {
			respondWithError(c, http.StatusServiceUnavailable, route, "publishing is not configured")
			return
		}

		menu, ok, err := store.MenuWithData(trimmedParam(c, "id"))
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "menu not found"})
			return
		}
		if err != nil {
			respondStoreError(c, route, err)
			return
		}

		var template *models.Template
		if t, ok := store.ActiveTemplate(); ok {
			template = &t
		}

		published, err := publisher.Publish(c.Request.Context(), menu, template, store.TemplateCustomization())
		if err != nil {
			log.Printf("[%s] publish failed: %v", route, err)
			respondWithError(c, http.StatusBadGateway, route, "publish failed")
			return
		}

		log.Printf("[%s] published menu %s (%d items)", route, menu.ID, menu.ItemCount())
		c.JSON(http.StatusOK, published)
	}
}

// GetPublishedMenu returns the last snapshot written for the menu.
func GetPublishedMenu(publisher MenuPublisher) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /admin/api/menus/:id/published"

		if publisher == nil {
			respondWithError(c, http.StatusServiceUnavailable, route, "publishing is not configured")
			return
		}

		published, err := publisher.Published(c.Request.Context(), trimmedParam(c, "id"))
		if errors.Is(err, database.ErrNotPublished) {
			c.JSON(http.StatusNotFound, gin.H{"error": "menu not published"})
			return
		}
		if err != nil {
			log.Printf("[%s] lookup failed: %v", route, err)
			respondWithError(c, http.StatusBadGateway, route, "lookup failed")
			return
		}
		c.JSON(http.StatusOK, published)
	}
}

/*
GET /admin/api/active-menu
- Unset or stale selection returns menu: null
*/
func GetActiveMenu(store *catalog.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /admin/api/active-menu"

		menu, ok, err := store.ActiveMenuWithData()
		if err != nil {
			respondStoreError(c, route, err)
			return
		}
		response := gin.H{"activeMenuId": store.ActiveMenuID(), "menu": nil}
		if ok {
			response["menu"] = menu
		}
		c.JSON(http.StatusOK, response)
	}
}

/*
PUT /admin/api/active-menu
- The id is stored as given; it is not checked against the menus
*/
func SetActiveMenu(store *catalog.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ActiveMenuRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
			return
		}
		store.SetActiveMenu(strings.TrimSpace(req.MenuID))
		c.JSON(http.StatusOK, gin.H{"activeMenuId": store.ActiveMenuID()})
	}
}
