package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	answerRoute "tanyaku_backend/internals/features/qna/answers/route"
	questionRoute "tanyaku_backend/internals/features/qna/questions/route"
	tagRoute "tanyaku_backend/internals/features/qna/tags/route"
	authRoute "tanyaku_backend/internals/features/users/auth/route"
	userRoute "tanyaku_backend/internals/features/users/user/route"
	authMiddleware "tanyaku_backend/internals/middlewares/auth"
)

// SetupRoutes memasang seluruh endpoint aplikasi.
//
//	/api/auth   → register & login
//	/api/public → baca tanpa login
//	/api/u      → butuh access token (JWT)
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	api := app.Group("/api")

	// 🔑 AUTH
	authRoute.AuthRoutes(api, db)

	// 🌐 PUBLIC
	public := api.Group("/public")
	questionRoute.AllQuestionRoutes(public, db)
	tagRoute.AllTagRoutes(public, db)
	userRoute.AllUserRoutes(public, db)

	// 🔒 USER (login)
	private := api.Group("/u", authMiddleware.AuthMiddleware())
	questionRoute.QuestionUserRoutes(private, db)
	answerRoute.AnswerUserRoutes(private, db)
}
