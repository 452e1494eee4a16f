package dto

import (
	"time"

	"tanyaku_backend/internals/features/qna/answers/model"
)

// ============================
// Response DTO
// ============================
type AnswerDTO struct {
	AnswerID               uint      `json:"answer_id"`
	AnswerQuestionID       uint      `json:"answer_question_id"`
	AnswerQuestionAuthorID uint      `json:"answer_question_author_id"`
	AnswerAuthorID         uint      `json:"answer_author_id"`
	AnswerDescription      string    `json:"answer_description"`
	AnswerState            int       `json:"answer_state"`
	AnswerCreatedAt        time.Time `json:"answer_created_at"`
	AnswerUpdatedAt        time.Time `json:"answer_updated_at"`
}

// ============================
// Create Request DTO
// ============================
type CreateAnswerRequest struct {
	AnswerQuestionID  uint   `json:"answer_question_id" validate:"required,gt=0"`
	AnswerDescription string `json:"answer_description" validate:"required"`
}

// ============================
// Update Request DTO (hanya deskripsi yang bisa diubah)
// ============================
type UpdateAnswerRequest struct {
	AnswerDescription string `json:"answer_description" validate:"required"`
}

// ============================
// Converter
// ============================
func ToAnswerDTO(m model.AnswerModel) AnswerDTO {
	return AnswerDTO{
		AnswerID:               m.AnswerID,
		AnswerQuestionID:       m.AnswerQuestionID,
		AnswerQuestionAuthorID: m.AnswerQuestionAuthorID,
		AnswerAuthorID:         m.AnswerAuthorID,
		AnswerDescription:      m.AnswerDescription,
		AnswerState:            m.AnswerState,
		AnswerCreatedAt:        m.AnswerCreatedAt,
		AnswerUpdatedAt:        m.AnswerUpdatedAt,
	}
}

func ToAnswerDTOs(ms []model.AnswerModel) []AnswerDTO {
	out := make([]AnswerDTO, 0, len(ms))
	for _, m := range ms {
		out = append(out, ToAnswerDTO(m))
	}
	return out
}
