package handlers

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"digitalmenu/internal/catalog"
	"digitalmenu/internal/models"
)

type CategoryCreateRequest struct {
	ID          string             `json:"id"`
	Name        LocalizedTextInput `json:"name"`
	Description *OptionalTextInput `json:"description"`
}

type CategoryUpdateRequest struct {
	Name        *LocalizedTextInput `json:"name"`
	Description *OptionalTextInput  `json:"description"`
}

/*
GET /admin/api/categories
*/
func GetCategories(store *catalog.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"data": store.Categories(),
		})
	}
}

func GetCategory(store *catalog.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		category, ok := store.Category(trimmedParam(c, "id"))
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "category not found"})
			return
		}
		c.JSON(http.StatusOK, category)
	}
}

/*
POST /admin/api/categories
- Same id cannot be added twice
*/
func CreateCategory(store *catalog.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /admin/api/categories"

		var req CategoryCreateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
			return
		}

		name := req.Name.toModel()
		if name.Primary == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "name required"})
			return
		}

		category, err := store.AddCategory(models.Category{
			ID:          strings.TrimSpace(req.ID),
			Name:        name,
			Description: optionalDescription(req.Description),
		})
		if err != nil {
			respondStoreError(c, route, err)
			return
		}

		c.JSON(http.StatusCreated, category)
	}
}

/*
PUT /admin/api/categories/:id
*/
func UpdateCategory(store *catalog.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CategoryUpdateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
			return
		}

		name, err := textPtr(req.Name)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "name cannot be empty"})
			return
		}
		patch := models.CategoryPatch{Name: name}
		if req.Description != nil {
			description := req.Description.toModel()
			patch.Description = &description
		}

		if patch.Empty() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "no fields to update"})
			return
		}

		updated, ok := store.UpdateCategory(trimmedParam(c, "id"), patch)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "category not found"})
			return
		}

		c.JSON(http.StatusOK, updated)
	}
}

/*
DELETE /admin/api/categories/:id
- Menus keep the reference and fail to populate until it is removed
*/
func DeleteCategory(store *catalog.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "DELETE /admin/api/categories/:id"

		id := trimmedParam(c, "id")
		referencing := store.MenusReferencingCategory(id)

		if !store.DeleteCategory(id) {
			c.JSON(http.StatusNotFound, gin.H{"error": "category not found"})
			return
		}

		if len(referencing) > 0 {
			log.Printf("[%s] category %s is still referenced by menus %v", route, id, referencing)
		}
		c.Status(http.StatusNoContent)
	}
}
