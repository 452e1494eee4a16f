package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"tanyaku_backend/internals/features/qna/tags/dto"
	"tanyaku_backend/internals/features/qna/tags/service"
	helper "tanyaku_backend/internals/helpers"
)

type TagController struct {
	DB      *gorm.DB
	Service *service.TagService
}

func NewTagController(db *gorm.DB) *TagController {
	return &TagController{DB: db, Service: service.NewTagService(db)}
}

// 📄 GET /tags — semua tag (read-only; provisioning lewat seeder).
func (ctrl *TagController) GetAllTags(c *fiber.Ctx) error {
	tags, err := ctrl.Service.FindAllTags()
	if err != nil {
		log.Println("[ERROR] get all tags:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil daftar tag")
	}
	return helper.JsonList(c, "", dto.ToTagDTOs(tags), nil)
}

// 📄 GET /questions/:id/tags — tag yang menempel di satu pertanyaan.
func (ctrl *TagController) GetTagsByQuestion(c *fiber.Ctx) error {
	questionID, err := helper.ParseUintParam(c, "id")
	if err != nil {
		return err
	}

	tags, err := ctrl.Service.FindTagsByQuestionID(questionID)
	if err != nil {
		log.Println("[ERROR] tags by question:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil tag pertanyaan")
	}
	return helper.JsonList(c, "", dto.ToTagDTOs(tags), nil)
}
