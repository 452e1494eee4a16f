package model

import "time"

// State jawaban.
const (
	AnswerStateUnadopted = 0
	AnswerStateAdopted   = 1
)

// AnswerModel merepresentasikan tabel answers.
// answer_question_author_id adalah snapshot pemilik pertanyaan saat
// jawaban dibuat — tidak pernah di-sync ulang (transfer kepemilikan
// pertanyaan tidak didukung).
type AnswerModel struct {
	AnswerID               uint      `gorm:"column:answer_id;primaryKey;autoIncrement" json:"answer_id"`
	AnswerQuestionID       uint      `gorm:"column:answer_question_id;not null;index" json:"answer_question_id"`
	AnswerQuestionAuthorID uint      `gorm:"column:answer_question_author_id;not null;index" json:"answer_question_author_id"`
	AnswerAuthorID         uint      `gorm:"column:answer_author_id;not null;index" json:"answer_author_id"`
	AnswerDescription      string    `gorm:"column:answer_description;type:text;not null" json:"answer_description"`
	AnswerState            int       `gorm:"column:answer_state;not null;default:0" json:"answer_state"`
	AnswerCreatedAt        time.Time `gorm:"column:answer_created_at;autoCreateTime" json:"answer_created_at"`
	AnswerUpdatedAt        time.Time `gorm:"column:answer_updated_at;autoUpdateTime" json:"answer_updated_at"`
}

func (AnswerModel) TableName() string {
	return "answers"
}
