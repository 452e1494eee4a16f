package dto

import (
	"time"

	"tanyaku_backend/internals/features/qna/questions/model"
)

// ============================
// Search filter (semua field opsional, AND-ed)
// ============================
type SearchQuestionFilter struct {
	Title         *string `json:"title" query:"title"`
	Description   *string `json:"description" query:"description"`
	Author        *string `json:"author" query:"author"`
	RealtimeShare *bool   `json:"realtime_share" query:"realtime_share"`
	TagIDs        []uint  `json:"tag_ids" query:"tag_ids"`
	Skip          int     `json:"skip" query:"skip" validate:"gte=0"`
	Take          int     `json:"take" query:"take" validate:"gte=0"`
}

// ============================
// Response DTO
// ============================
type QuestionDTO struct {
	QuestionID            uint      `json:"question_id"`
	QuestionAuthorID      uint      `json:"question_author_id"`
	QuestionTitle         string    `json:"question_title"`
	QuestionDescription   string    `json:"question_description"`
	QuestionRealtimeShare bool      `json:"question_realtime_share"`
	QuestionViewCount     int       `json:"question_view_count"`
	QuestionThumbupCount  int       `json:"question_thumbup_count"`
	QuestionCreatedAt     time.Time `json:"question_created_at"`
	QuestionUpdatedAt     time.Time `json:"question_updated_at"`
	TagIDs                []uint    `json:"tag_ids,omitempty"`
}

// ============================
// Create Request DTO
// ============================
type CreateQuestionRequest struct {
	QuestionTitle         string `json:"question_title" validate:"required,min=3,max=255"`
	QuestionDescription   string `json:"question_description" validate:"required"`
	QuestionRealtimeShare bool   `json:"question_realtime_share"`
	TagIDs                []uint `json:"tag_ids" validate:"omitempty,dive,gt=0"`
}

// ============================
// Update Request DTO (partial patch: field nil = tidak diubah)
// ============================
type UpdateQuestionRequest struct {
	QuestionTitle         *string `json:"question_title" validate:"omitempty,min=3,max=255"`
	QuestionDescription   *string `json:"question_description" validate:"omitempty,min=1"`
	QuestionRealtimeShare *bool   `json:"question_realtime_share"`
	TagIDs                []uint  `json:"tag_ids" validate:"omitempty,dive,gt=0"`
}

// ============================
// Converter
// ============================
func ToQuestionDTO(m model.QuestionModel) QuestionDTO {
	return QuestionDTO{
		QuestionID:            m.QuestionID,
		QuestionAuthorID:      m.QuestionAuthorID,
		QuestionTitle:         m.QuestionTitle,
		QuestionDescription:   m.QuestionDescription,
		QuestionRealtimeShare: m.QuestionRealtimeShare,
		QuestionViewCount:     m.QuestionViewCount,
		QuestionThumbupCount:  m.QuestionThumbupCount,
		QuestionCreatedAt:     m.QuestionCreatedAt,
		QuestionUpdatedAt:     m.QuestionUpdatedAt,
	}
}

func ToQuestionDTOWithTags(m model.QuestionModel, tagIDs []uint) QuestionDTO {
	out := ToQuestionDTO(m)
	out.TagIDs = tagIDs
	return out
}

func ToQuestionDTOs(ms []model.QuestionModel) []QuestionDTO {
	out := make([]QuestionDTO, 0, len(ms))
	for _, m := range ms {
		out = append(out, ToQuestionDTO(m))
	}
	return out
}
