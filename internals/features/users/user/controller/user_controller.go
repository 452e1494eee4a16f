package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	answerDTO "tanyaku_backend/internals/features/qna/answers/dto"
	answerService "tanyaku_backend/internals/features/qna/answers/service"
	questionDTO "tanyaku_backend/internals/features/qna/questions/dto"
	questionService "tanyaku_backend/internals/features/qna/questions/service"
	tagService "tanyaku_backend/internals/features/qna/tags/service"
	"tanyaku_backend/internals/features/users/user/dto"
	"tanyaku_backend/internals/features/users/user/service"
	helper "tanyaku_backend/internals/helpers"
)

type UserController struct {
	DB        *gorm.DB
	Service   *service.UserService
	Questions *questionService.QuestionService
	Answers   *answerService.AnswerService
	Tags      *tagService.TagService
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{
		DB:        db,
		Service:   service.NewUserService(db),
		Questions: questionService.NewQuestionService(db),
		Answers:   answerService.NewAnswerService(db),
		Tags:      tagService.NewTagService(db),
	}
}

// 🔍 GET /users/:id — profil + agregat kontribusi.
func (ctrl *UserController) GetUserByID(c *fiber.Ctx) error {
	id, err := helper.ParseUintParam(c, "id")
	if err != nil {
		return err
	}

	user, err := ctrl.Service.FindUserByID(id)
	if errors.Is(err, service.ErrUserNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "User tidak ditemukan")
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil user")
	}

	questionCount, answerCount, err := ctrl.Service.CountContributions(id)
	if err != nil {
		log.Println("[WARN] count contributions:", err)
	}

	return helper.JsonOK(c, "", dto.UserProfileDTO{
		UserDTO:       dto.ToUserDTO(*user),
		QuestionCount: questionCount,
		AnswerCount:   answerCount,
	})
}

// 🔍 GET /users/by-username/:username
func (ctrl *UserController) GetUserByUsername(c *fiber.Ctx) error {
	username := strings.TrimSpace(c.Params("username"))
	if username == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Username wajib diisi")
	}

	user, err := ctrl.Service.FindUserByUsername(username)
	if errors.Is(err, service.ErrUserNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "User tidak ditemukan")
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil user")
	}

	return helper.JsonOK(c, "", dto.ToUserDTO(*user))
}

// 📄 GET /users/:id/questions — pertanyaan milik user.
func (ctrl *UserController) GetUserQuestions(c *fiber.Ctx) error {
	id, err := helper.ParseUintParam(c, "id")
	if err != nil {
		return err
	}

	questions, err := ctrl.Questions.FindQuestionsByUserID(id)
	if err != nil {
		log.Println("[ERROR] questions by user:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil pertanyaan user")
	}
	return helper.JsonList(c, "", questionDTO.ToQuestionDTOs(questions), nil)
}

// 📄 GET /users/:id/answers — jawaban milik user.
func (ctrl *UserController) GetUserAnswers(c *fiber.Ctx) error {
	id, err := helper.ParseUintParam(c, "id")
	if err != nil {
		return err
	}

	answers, err := ctrl.Answers.FindAnswersByUserID(id)
	if err != nil {
		log.Println("[ERROR] answers by user:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil jawaban user")
	}
	return helper.JsonList(c, "", answerDTO.ToAnswerDTOs(answers), nil)
}

// 📊 GET /users/:id/used-tags — statistik pemakaian tag (chart profil).
func (ctrl *UserController) GetUserUsedTagCounts(c *fiber.Ctx) error {
	id, err := helper.ParseUintParam(c, "id")
	if err != nil {
		return err
	}

	rows, err := ctrl.Tags.UserUsedTagCounts(id)
	if err != nil {
		log.Println("[ERROR] used tag counts:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil statistik tag")
	}
	return helper.JsonList(c, "", rows, nil)
}
