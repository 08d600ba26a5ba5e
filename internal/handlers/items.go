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

/* =======================
   REQUEST MODELS
======================= */

type OptionInput struct {
	Label LocalizedTextInput `json:"label"`
	Price *models.Money      `json:"price" binding:"required"`
}

type ItemCreateRequest struct {
	ID              string               `json:"id"`
	Name            LocalizedTextInput   `json:"name"`
	Description     OptionalTextInput    `json:"description"`
	Price           *models.Money        `json:"price" binding:"required"`
	Image           string               `json:"image"`
	Calories        *int                 `json:"calories" binding:"omitempty,min=0"`
	PrepTimeMinutes *int                 `json:"prepTimeMinutes" binding:"omitempty,min=0"`
	SpiceLevel      *int                 `json:"spiceLevel" binding:"omitempty,min=1,max=5"`
	DietaryTags     []string             `json:"dietaryTags" binding:"omitempty,dive,dietary"`
	Ingredients     []LocalizedTextInput `json:"ingredients" binding:"omitempty,dive"`
	Allergens       []LocalizedTextInput `json:"allergens" binding:"omitempty,dive"`
	Sizes           []OptionInput        `json:"sizes" binding:"omitempty,dive"`
	AddOns          []OptionInput        `json:"addOns" binding:"omitempty,dive"`
}

// ItemUpdateRequest changes only the fields that are present. A JSON null
// reads the same as an absent field, so calories, prepTimeMinutes and
// spiceLevel are removed by naming them in Clear.
type ItemUpdateRequest struct {
	Name            *LocalizedTextInput   `json:"name"`
	Description     *OptionalTextInput    `json:"description"`
	Price           *models.Money         `json:"price"`
	Image           *string               `json:"image"`
	Calories        *int                  `json:"calories" binding:"omitempty,min=0"`
	PrepTimeMinutes *int                  `json:"prepTimeMinutes" binding:"omitempty,min=0"`
	SpiceLevel      *int                  `json:"spiceLevel" binding:"omitempty,min=1,max=5"`
	DietaryTags     *[]string             `json:"dietaryTags" binding:"omitempty,dive,dietary"`
	Ingredients     *[]LocalizedTextInput `json:"ingredients" binding:"omitempty,dive"`
	Allergens       *[]LocalizedTextInput `json:"allergens" binding:"omitempty,dive"`
	Sizes           *[]OptionInput        `json:"sizes" binding:"omitempty,dive"`
	AddOns          *[]OptionInput        `json:"addOns" binding:"omitempty,dive"`
	Clear           []string              `json:"clear" binding:"omitempty,dive,oneof=calories prepTimeMinutes spiceLevel"`
}

/* =======================
   HELPERS
======================= */

var (
	errNegativePrice = errors.New("price cannot be negative")
	errMissingPrice  = errors.New("price required")
)

func checkPrice(price *models.Money) error {
	if price != nil && price.IsNegative() {
		return errNegativePrice
	}
	return nil
}

func textsFromInput(values []LocalizedTextInput) []models.LocalizedText {
	if len(values) == 0 {
		return nil
	}
	out := make([]models.LocalizedText, 0, len(values))
	for _, v := range values {
		out = append(out, v.toModel())
	}
	return out
}

func sizesFromInput(values []OptionInput) ([]models.SizeVariant, error) {
	if len(values) == 0 {
		return nil, nil
	}
	out := make([]models.SizeVariant, 0, len(values))
	for _, v := range values {
		if v.Price == nil {
			return nil, errMissingPrice
		}
		if err := checkPrice(v.Price); err != nil {
			return nil, err
		}
		out = append(out, models.SizeVariant{Label: v.Label.toModel(), Price: *v.Price})
	}
	return out, nil
}

func addOnsFromInput(values []OptionInput) ([]models.AddOn, error) {
	if len(values) == 0 {
		return nil, nil
	}
	out := make([]models.AddOn, 0, len(values))
	for _, v := range values {
		if v.Price == nil {
			return nil, errMissingPrice
		}
		if err := checkPrice(v.Price); err != nil {
			return nil, err
		}
		out = append(out, models.AddOn{Label: v.Label.toModel(), Price: *v.Price})
	}
	return out, nil
}

func (req ItemCreateRequest) toItem() (models.Item, error) {
	name := req.Name.toModel()
	if name.Primary == "" {
		return models.Item{}, errors.New("name.primary cannot be empty")
	}
	if err := checkPrice(req.Price); err != nil {
		return models.Item{}, err
	}
	tags, err := models.NormalizeDietaryTags(req.DietaryTags)
	if err != nil {
		return models.Item{}, err
	}
	sizes, err := sizesFromInput(req.Sizes)
	if err != nil {
		return models.Item{}, err
	}
	addOns, err := addOnsFromInput(req.AddOns)
	if err != nil {
		return models.Item{}, err
	}
	if len(tags) == 0 {
		tags = nil
	}

	return models.Item{
		ID:              strings.TrimSpace(req.ID),
		Name:            name,
		Description:     req.Description.toModel(),
		Price:           *req.Price,
		Image:           strings.TrimSpace(req.Image),
		Calories:        req.Calories,
		PrepTimeMinutes: req.PrepTimeMinutes,
		SpiceLevel:      req.SpiceLevel,
		DietaryTags:     tags,
		Ingredients:     textsFromInput(req.Ingredients),
		Allergens:       textsFromInput(req.Allergens),
		Sizes:           sizes,
		AddOns:          addOns,
	}, nil
}

func (req ItemUpdateRequest) toPatch() (models.ItemPatch, error) {
	var patch models.ItemPatch

	name, err := textPtr(req.Name)
	if err != nil {
		return patch, err
	}
	patch.Name = name

	if req.Description != nil {
		description := req.Description.toModel()
		patch.Description = &description
	}
	if err := checkPrice(req.Price); err != nil {
		return patch, err
	}
	patch.Price = req.Price
	if req.Image != nil {
		image := strings.TrimSpace(*req.Image)
		patch.Image = &image
	}
	patch.Calories = req.Calories
	patch.PrepTimeMinutes = req.PrepTimeMinutes
	patch.SpiceLevel = req.SpiceLevel
	for _, field := range req.Clear {
		switch field {
		case "calories":
			patch.ClearCalories = true
		case "prepTimeMinutes":
			patch.ClearPrepTimeMinutes = true
		case "spiceLevel":
			patch.ClearSpiceLevel = true
		}
	}
	if (patch.ClearCalories && patch.Calories != nil) ||
		(patch.ClearPrepTimeMinutes && patch.PrepTimeMinutes != nil) ||
		(patch.ClearSpiceLevel && patch.SpiceLevel != nil) {
		return patch, errors.New("a field cannot be both set and cleared")
	}

	if req.DietaryTags != nil {
		tags, err := models.NormalizeDietaryTags(*req.DietaryTags)
		if err != nil {
			return patch, err
		}
		patch.DietaryTags = &tags
	}
	if req.Ingredients != nil {
		ingredients := textsFromInput(*req.Ingredients)
		patch.Ingredients = &ingredients
	}
	if req.Allergens != nil {
		allergens := textsFromInput(*req.Allergens)
		patch.Allergens = &allergens
	}
	if req.Sizes != nil {
		sizes, err := sizesFromInput(*req.Sizes)
		if err != nil {
			return patch, err
		}
		patch.Sizes = &sizes
	}
	if req.AddOns != nil {
		addOns, err := addOnsFromInput(*req.AddOns)
		if err != nil {
			return patch, err
		}
		patch.AddOns = &addOns
	}
	return patch, nil
}

func matchesSearch(item models.Item, search string) bool {
	search = strings.ToLower(search)
	for _, field := range []string{
		item.Name.Primary,
		item.Name.Alternate,
		item.Description.Primary,
		item.Description.Alternate,
	} {
		if strings.Contains(strings.ToLower(field), search) {
			return true
		}
	}
	return false
}

/* =======================
   GET (ADMIN) – LIST
======================= */

func GetItems(store *catalog.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, limit, err := parsePaginationParams(
			c.Query("page"),
			c.Query("limit"),
		)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		items := store.Items()

		if search := strings.TrimSpace(c.Query("search")); search != "" {
			filtered := items[:0]
			for _, item := range items {
				if matchesSearch(item, search) {
					filtered = append(filtered, item)
				}
			}
			items = filtered
		}

		if tag := strings.TrimSpace(c.Query("dietary")); tag != "" {
			parsed, err := models.ParseDietaryTag(tag)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			filtered := items[:0]
			for _, item := range items {
				if item.DietaryTags.Has(parsed) {
					filtered = append(filtered, item)
				}
			}
			items = filtered
		}

		data, pagination := paginate(items, page, limit)
		c.JSON(http.StatusOK, gin.H{
			"data":       data,
			"pagination": pagination,
		})
	}
}

func GetItem(store *catalog.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		item, ok := store.Item(trimmedParam(c, "id"))
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "item not found"})
			return
		}
		c.JSON(http.StatusOK, item)
	}
}

/* =======================
   CREATE
======================= */

func CreateItem(store *catalog.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /admin/api/items"

		var req ItemCreateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
			return
		}

		item, err := req.toItem()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		created, err := store.AddItem(item)
		if err != nil {
			respondStoreError(c, route, err)
			return
		}

		log.Printf("[%s] created item %s", route, created.ID)
		c.JSON(http.StatusCreated, created)
	}
}

/* =======================
   UPDATE
======================= */

func UpdateItem(store *catalog.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ItemUpdateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
			return
		}

		patch, err := req.toPatch()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if patch.Empty() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "no fields to update"})
			return
		}

		updated, ok := store.UpdateItem(trimmedParam(c, "id"), patch)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "item not found"})
			return
		}

		c.JSON(http.StatusOK, updated)
	}
}

/* =======================
   DELETE
======================= */

// DeleteItem removes the item from the pool. Menus that listed it simply stop
// showing it.
func DeleteItem(store *catalog.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !store.DeleteItem(trimmedParam(c, "id")) {
			c.JSON(http.StatusNotFound, gin.H{"error": "item not found"})
			return
		}
		c.Status(http.StatusNoContent)
	}
}
