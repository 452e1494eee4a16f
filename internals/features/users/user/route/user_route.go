package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"tanyaku_backend/internals/features/users/user/controller"
)

// AllUserRoutes: profil publik + statistik, tanpa login.
func AllUserRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewUserController(db)

	u := api.Group("/users")
	u.Get("/by-username/:username", ctrl.GetUserByUsername)
	u.Get("/:id", ctrl.GetUserByID)              // 🔍 profil + agregat
	u.Get("/:id/questions", ctrl.GetUserQuestions)
	u.Get("/:id/answers", ctrl.GetUserAnswers)
	u.Get("/:id/used-tags", ctrl.GetUserUsedTagCounts) // 📊 chart profil
}
