package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"tanyaku_backend/internals/features/qna/answers/dto"
	"tanyaku_backend/internals/features/qna/answers/service"
	questionService "tanyaku_backend/internals/features/qna/questions/service"
	helper "tanyaku_backend/internals/helpers"
)

type AnswerController struct {
	DB        *gorm.DB
	Service   *service.AnswerService
	Validator *validator.Validate
}

func NewAnswerController(db *gorm.DB) *AnswerController {
	return &AnswerController{
		DB:        db,
		Service:   service.NewAnswerService(db),
		Validator: validator.New(),
	}
}

// 📄 GET /questions/:id/answers — jawaban untuk satu pertanyaan.
func (ctrl *AnswerController) GetAnswersByQuestion(c *fiber.Ctx) error {
	questionID, err := helper.ParseUintParam(c, "id")
	if err != nil {
		return err
	}

	answers, err := ctrl.Service.FindAnswersByQuestionID(questionID)
	if err != nil {
		log.Println("[ERROR] answers by question:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil jawaban")
	}
	return helper.JsonList(c, "", dto.ToAnswerDTOs(answers), nil)
}

// ➕ POST /answers — jawab pertanyaan (wajib login).
func (ctrl *AnswerController) CreateAnswer(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.CreateAnswerRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.AnswerDescription = strings.TrimSpace(req.AnswerDescription)

	if err := ctrl.Validator.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	answer, err := ctrl.Service.CreateAnswer(req.AnswerQuestionID, userID, req.AnswerDescription)
	if errors.Is(err, questionService.ErrQuestionNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "Pertanyaan tidak ditemukan")
	}
	if err != nil {
		log.Println("[ERROR] create answer:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat jawaban")
	}

	return helper.JsonCreated(c, "Jawaban berhasil dibuat", dto.ToAnswerDTO(*answer))
}

// 🔄 PATCH /answers/:id — hanya penulis jawaban, hanya deskripsi.
func (ctrl *AnswerController) UpdateAnswer(c *fiber.Ctx) error {
	id, err := helper.ParseUintParam(c, "id")
	if err != nil {
		return err
	}
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	existing, err := ctrl.Service.FindAnswerByID(id)
	if errors.Is(err, service.ErrAnswerNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "Jawaban tidak ditemukan")
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil jawaban")
	}
	if existing.AnswerAuthorID != userID {
		return helper.JsonError(c, fiber.StatusForbidden, "Bukan jawaban milikmu")
	}

	var req dto.UpdateAnswerRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.AnswerDescription = strings.TrimSpace(req.AnswerDescription)
	if err := ctrl.Validator.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	answer, err := ctrl.Service.UpdateAnswerDescription(id, req.AnswerDescription)
	if err != nil {
		log.Println("[ERROR] update answer:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal update jawaban")
	}

	return helper.JsonUpdated(c, "Jawaban berhasil diperbarui", dto.ToAnswerDTO(*answer))
}

// ✅ POST /answers/:id/adopt — hanya pemilik pertanyaan (dicek lewat
// snapshot answer_question_author_id).
func (ctrl *AnswerController) AdoptAnswer(c *fiber.Ctx) error {
	id, err := helper.ParseUintParam(c, "id")
	if err != nil {
		return err
	}
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	existing, err := ctrl.Service.FindAnswerByID(id)
	if errors.Is(err, service.ErrAnswerNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "Jawaban tidak ditemukan")
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil jawaban")
	}
	if existing.AnswerQuestionAuthorID != userID {
		return helper.JsonError(c, fiber.StatusForbidden, "Hanya pemilik pertanyaan yang bisa adopsi jawaban")
	}

	answer, err := ctrl.Service.AdoptAnswer(id)
	if errors.Is(err, service.ErrAlreadyAdopted) {
		return helper.JsonError(c, fiber.StatusConflict, "Jawaban sudah diadopsi")
	}
	if err != nil {
		log.Println("[ERROR] adopt answer:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal adopsi jawaban")
	}

	return helper.JsonUpdated(c, "Jawaban diadopsi", dto.ToAnswerDTO(*answer))
}

// 🗑️ DELETE /answers/:id — hanya penulis jawaban.
func (ctrl *AnswerController) DeleteAnswer(c *fiber.Ctx) error {
	id, err := helper.ParseUintParam(c, "id")
	if err != nil {
		return err
	}
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	existing, err := ctrl.Service.FindAnswerByID(id)
	if errors.Is(err, service.ErrAnswerNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "Jawaban tidak ditemukan")
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil jawaban")
	}
	if existing.AnswerAuthorID != userID {
		return helper.JsonError(c, fiber.StatusForbidden, "Bukan jawaban milikmu")
	}

	deleted, err := ctrl.Service.DeleteAnswer(id)
	if err != nil {
		log.Println("[ERROR] delete answer:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus jawaban")
	}

	return helper.JsonDeleted(c, "Jawaban berhasil dihapus", fiber.Map{
		"answer_id": id,
		"deleted":   deleted,
	})
}
