package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"digitalmenu/internal/catalog"
	"digitalmenu/internal/models"
)

func handlePanic(c *gin.Context, route string) {
	if r := recover(); r != nil {
		log.Printf("[%s] panic recovered: %v", route, r)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

func respondWithError(c *gin.Context, status int, route string, message string) {
	log.Printf("[%s] returning error %d: %s", route, status, message)
	c.AbortWithStatusJSON(status, gin.H{"error": message})
}

// respondStoreError maps catalog errors onto HTTP statuses. A broken category
// reference is a conflict the admin has to repair, not a server fault.
func respondStoreError(c *gin.Context, route string, err error) {
	var sie *catalog.StructuralIntegrityError
	switch {
	case errors.As(err, &sie):
		log.Printf("[%s] structural integrity error: %v", route, err)
		c.AbortWithStatusJSON(http.StatusConflict, gin.H{
			"error":      "menu references a missing category",
			"menuId":     sie.MenuID,
			"categoryId": sie.CategoryID,
		})
	case errors.Is(err, catalog.ErrDuplicateID):
		respondWithError(c, http.StatusConflict, route, err.Error())
	default:
		respondWithError(c, http.StatusInternalServerError, route, "internal server error")
	}
}

// LocalizedTextInput is the request form of models.LocalizedText.
type LocalizedTextInput struct {
	Primary   string `json:"primary" binding:"required"`
	Alternate string `json:"alternate"`
}

func (in LocalizedTextInput) toModel() models.LocalizedText {
	return models.LocalizedText{Primary: in.Primary, Alternate: in.Alternate}.Trimmed()
}

// OptionalTextInput is used for descriptions, where both sides may be empty.
type OptionalTextInput struct {
	Primary   string `json:"primary"`
	Alternate string `json:"alternate"`
}

func (in OptionalTextInput) toModel() models.LocalizedText {
	return models.LocalizedText{Primary: in.Primary, Alternate: in.Alternate}.Trimmed()
}

func optionalDescription(in *OptionalTextInput) *models.LocalizedText {
	if in == nil {
		return nil
	}
	text := in.toModel()
	if text.IsZero() {
		return nil
	}
	return &text
}

func textPtr(in *LocalizedTextInput) (*models.LocalizedText, error) {
	if in == nil {
		return nil, nil
	}
	text := in.toModel()
	if text.Primary == "" {
		return nil, errors.New("name.primary cannot be empty")
	}
	return &text, nil
}

func trimmedParam(c *gin.Context, name string) string {
	return strings.TrimSpace(c.Param(name))
}
