package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"tanyaku_backend/internals/features/qna/tags/controller"
)

// AllTagRoutes: daftar tag, tanpa login.
func AllTagRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewTagController(db)

	t := api.Group("/tags")
	t.Get("/", ctrl.GetAllTags)
}
