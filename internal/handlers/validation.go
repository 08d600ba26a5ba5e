package handlers

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"digitalmenu/internal/models"
)

// RegisterValidators installs the custom binding tags used by request
// structs. It must run before the router serves requests.
func RegisterValidators() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	_ = v.RegisterValidation("dietary", func(fl validator.FieldLevel) bool {
		_, err := models.ParseDietaryTag(fl.Field().String())
		return err == nil
	})
	_ = v.RegisterValidation("complaintstatus", func(fl validator.FieldLevel) bool {
		return models.ComplaintStatus(fl.Field().String()).Valid()
	})
	_ = v.RegisterValidation("theme", func(fl validator.FieldLevel) bool {
		return models.Theme(fl.Field().String()).Valid()
	})
	_ = v.RegisterValidation("locale", func(fl validator.FieldLevel) bool {
		return models.Locale(fl.Field().String()).Valid()
	})
}
