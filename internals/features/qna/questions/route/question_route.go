package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	answerController "tanyaku_backend/internals/features/qna/answers/controller"
	"tanyaku_backend/internals/features/qna/questions/controller"
	tagController "tanyaku_backend/internals/features/qna/tags/controller"
)

// AllQuestionRoutes: endpoint baca, tanpa login.
func AllQuestionRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewQuestionController(db)
	answers := answerController.NewAnswerController(db)
	tags := tagController.NewTagController(db)

	q := api.Group("/questions")
	q.Get("/", ctrl.SearchQuestions)            // 🔍 cari pertanyaan (filter AND)
	q.Get("/:id", ctrl.GetQuestionByID)         // 🔍 detail + view count naik
	q.Get("/:id/answers", answers.GetAnswersByQuestion)
	q.Get("/:id/tags", tags.GetTagsByQuestion)
}

// QuestionUserRoutes: mutasi, wajib login (dipasang di group ber-JWT).
func QuestionUserRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewQuestionController(db)

	q := api.Group("/questions")
	q.Post("/", ctrl.CreateQuestion)            // ➕ buat pertanyaan
	q.Patch("/:id", ctrl.UpdateQuestion)        // 🔄 hanya pemilik
	q.Delete("/:id", ctrl.DeleteQuestion)       // 🗑️ hanya pemilik
	q.Post("/:id/thumbup", ctrl.ThumbupQuestion)
}
