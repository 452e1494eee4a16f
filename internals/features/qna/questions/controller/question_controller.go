package controller

import (
	"errors"
	"log"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"tanyaku_backend/internals/features/qna/questions/dto"
	"tanyaku_backend/internals/features/qna/questions/service"
	tagService "tanyaku_backend/internals/features/qna/tags/service"
	helper "tanyaku_backend/internals/helpers"
)

type QuestionController struct {
	DB        *gorm.DB
	Service   *service.QuestionService
	Tags      *tagService.TagService
	Validator *validator.Validate
}

func NewQuestionController(db *gorm.DB) *QuestionController {
	return &QuestionController{
		DB:        db,
		Service:   service.NewQuestionService(db),
		Tags:      tagService.NewTagService(db),
		Validator: validator.New(),
	}
}

// 🔍 GET /questions — cari pertanyaan lewat kombinasi filter (AND).
// Nol hasil = list kosong, bukan error.
func (ctrl *QuestionController) SearchQuestions(c *fiber.Ctx) error {
	filter, err := parseSearchFilter(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	questions, err := ctrl.Service.SearchQuestions(filter)
	if err != nil {
		log.Println("[ERROR] search questions:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mencari pertanyaan")
	}

	return helper.JsonList(c, "", dto.ToQuestionDTOs(questions), nil)
}

// 🔍 GET /questions/:id — detail pertanyaan + tag-nya.
// View count dinaikkan atomik setiap kali dibaca.
func (ctrl *QuestionController) GetQuestionByID(c *fiber.Ctx) error {
	id, err := helper.ParseUintParam(c, "id")
	if err != nil {
		return err
	}

	question, err := ctrl.Service.FindQuestionByID(id)
	if errors.Is(err, service.ErrQuestionNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "Pertanyaan tidak ditemukan")
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil pertanyaan")
	}

	if err := ctrl.Service.IncrementViewCount(id); err != nil {
		// view count bukan data kritis; jangan gagalkan response
		log.Println("[WARN] bump view count:", err)
	} else {
		question.QuestionViewCount++
	}

	tagIDs, err := ctrl.Tags.TagIDsByQuestionID(id)
	if err != nil {
		log.Println("[WARN] tags by question:", err)
	}

	return helper.JsonOK(c, "", dto.ToQuestionDTOWithTags(*question, tagIDs))
}

// ➕ POST /questions — buat pertanyaan (wajib login).
func (ctrl *QuestionController) CreateQuestion(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.CreateQuestionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.QuestionTitle = strings.TrimSpace(req.QuestionTitle)
	req.QuestionDescription = strings.TrimSpace(req.QuestionDescription)

	if err := ctrl.Validator.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	question, err := ctrl.Service.CreateQuestion(req, userID)
	if err != nil {
		log.Println("[ERROR] create question:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat pertanyaan")
	}

	return helper.JsonCreated(c, "Pertanyaan berhasil dibuat",
		dto.ToQuestionDTOWithTags(*question, req.TagIDs))
}

// 🔄 PATCH /questions/:id — hanya pemilik yang boleh mengubah.
func (ctrl *QuestionController) UpdateQuestion(c *fiber.Ctx) error {
	id, err := helper.ParseUintParam(c, "id")
	if err != nil {
		return err
	}
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	// cek kepemilikan SEBELUM mutasi apa pun
	existing, err := ctrl.Service.FindQuestionByID(id)
	if errors.Is(err, service.ErrQuestionNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "Pertanyaan tidak ditemukan")
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil pertanyaan")
	}
	if existing.QuestionAuthorID != userID {
		return helper.JsonError(c, fiber.StatusForbidden, "Bukan pertanyaan milikmu")
	}

	var req dto.UpdateQuestionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.Validator.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	question, err := ctrl.Service.UpdateQuestion(id, req)
	if errors.Is(err, service.ErrQuestionNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "Pertanyaan tidak ditemukan")
	}
	if err != nil {
		log.Println("[ERROR] update question:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal update pertanyaan")
	}

	tagIDs, _ := ctrl.Tags.TagIDsByQuestionID(id)
	return helper.JsonUpdated(c, "Pertanyaan berhasil diperbarui",
		dto.ToQuestionDTOWithTags(*question, tagIDs))
}

// 🗑️ DELETE /questions/:id — hanya pemilik; balikin flag deleted.
func (ctrl *QuestionController) DeleteQuestion(c *fiber.Ctx) error {
	id, err := helper.ParseUintParam(c, "id")
	if err != nil {
		return err
	}
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	existing, err := ctrl.Service.FindQuestionByID(id)
	if errors.Is(err, service.ErrQuestionNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "Pertanyaan tidak ditemukan")
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil pertanyaan")
	}
	if existing.QuestionAuthorID != userID {
		return helper.JsonError(c, fiber.StatusForbidden, "Bukan pertanyaan milikmu")
	}

	deleted, err := ctrl.Service.DeleteQuestion(id)
	if err != nil {
		log.Println("[ERROR] delete question:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus pertanyaan")
	}

	return helper.JsonDeleted(c, "Pertanyaan berhasil dihapus", fiber.Map{
		"question_id": id,
		"deleted":     deleted,
	})
}

// 👍 POST /questions/:id/thumbup
func (ctrl *QuestionController) ThumbupQuestion(c *fiber.Ctx) error {
	id, err := helper.ParseUintParam(c, "id")
	if err != nil {
		return err
	}

	question, err := ctrl.Service.ThumbupQuestion(id)
	if errors.Is(err, service.ErrQuestionNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "Pertanyaan tidak ditemukan")
	}
	if err != nil {
		log.Println("[ERROR] thumbup question:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memberi thumbup")
	}

	return helper.JsonOK(c, "Thumbup tercatat", dto.ToQuestionDTO(*question))
}

// parseSearchFilter membaca query string jadi filter bertipe.
// tag_ids menerima "1,2,3" — angka invalid = 400, bukan diteruskan
// mentah ke query.
func parseSearchFilter(c *fiber.Ctx) (dto.SearchQuestionFilter, error) {
	var f dto.SearchQuestionFilter

	if v := strings.TrimSpace(c.Query("title")); v != "" {
		f.Title = &v
	}
	if v := strings.TrimSpace(c.Query("description")); v != "" {
		f.Description = &v
	}
	if v := strings.TrimSpace(c.Query("author")); v != "" {
		f.Author = &v
	}
	if v := strings.TrimSpace(c.Query("realtime_share")); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return f, errors.New("realtime_share harus boolean")
		}
		f.RealtimeShare = &b
	}
	if v := strings.TrimSpace(c.Query("tag_ids")); v != "" {
		for _, part := range strings.Split(v, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			id, err := strconv.ParseUint(part, 10, 64)
			if err != nil || id == 0 {
				return f, errors.New("tag_ids harus daftar angka positif dipisah koma")
			}
			f.TagIDs = append(f.TagIDs, uint(id))
		}
	}

	f.Skip, _ = strconv.Atoi(c.Query("skip", "0"))
	if f.Skip < 0 {
		f.Skip = 0
	}
	f.Take, _ = strconv.Atoi(c.Query("take", "0"))

	return f, nil
}
