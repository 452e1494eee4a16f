package model

// QuestionTagModel: join table pertanyaan ↔ tag. Sengaja tanpa unique
// constraint di pasangan (question_id, tag_id) — dedup dilakukan di
// service sebelum insert.
type QuestionTagModel struct {
	QuestionTagID         uint `gorm:"column:question_tag_id;primaryKey;autoIncrement" json:"question_tag_id"`
	QuestionTagQuestionID uint `gorm:"column:question_tag_question_id;not null;index" json:"question_tag_question_id"`
	QuestionTagTagID      uint `gorm:"column:question_tag_tag_id;not null;index" json:"question_tag_tag_id"`
}

func (QuestionTagModel) TableName() string {
	return "question_tags"
}
