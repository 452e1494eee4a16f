package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"tanyaku_backend/internals/features/qna/answers/controller"
)

// AnswerUserRoutes: semua mutasi jawaban wajib login.
func AnswerUserRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewAnswerController(db)

	a := api.Group("/answers")
	a.Post("/", ctrl.CreateAnswer)        // ➕ jawab pertanyaan
	a.Patch("/:id", ctrl.UpdateAnswer)    // 🔄 hanya penulis
	a.Post("/:id/adopt", ctrl.AdoptAnswer) // ✅ hanya pemilik pertanyaan
	a.Delete("/:id", ctrl.DeleteAnswer)   // 🗑️ hanya penulis
}
