package model

import "time"

// QuestionModel merepresentasikan tabel questions.
// question_id bigserial monotonic — dipakai sebagai proxy recency
// untuk ordering listing (DESC).
type QuestionModel struct {
	QuestionID            uint      `gorm:"column:question_id;primaryKey;autoIncrement" json:"question_id"`
	QuestionAuthorID      uint      `gorm:"column:question_author_id;not null;index" json:"question_author_id"`
	QuestionTitle         string    `gorm:"column:question_title;type:varchar(255);not null" json:"question_title"`
	QuestionDescription   string    `gorm:"column:question_description;type:text;not null" json:"question_description"`
	QuestionRealtimeShare bool      `gorm:"column:question_realtime_share;not null;default:false" json:"question_realtime_share"`
	QuestionViewCount     int       `gorm:"column:question_view_count;not null;default:0" json:"question_view_count"`
	QuestionThumbupCount  int       `gorm:"column:question_thumbup_count;not null;default:0" json:"question_thumbup_count"`
	QuestionCreatedAt     time.Time `gorm:"column:question_created_at;autoCreateTime" json:"question_created_at"`
	QuestionUpdatedAt     time.Time `gorm:"column:question_updated_at;autoUpdateTime" json:"question_updated_at"`
}

func (QuestionModel) TableName() string {
	return "questions"
}
