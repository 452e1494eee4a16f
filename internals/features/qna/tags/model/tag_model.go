package model

import "time"

// TagModel: label topik, read-only dari sisi layanan Q&A
// (provisioning lewat seeder).
type TagModel struct {
	TagID        uint      `gorm:"column:tag_id;primaryKey;autoIncrement" json:"tag_id"`
	TagName      string    `gorm:"column:tag_name;size:50;uniqueIndex;not null" json:"tag_name"`
	TagCreatedAt time.Time `gorm:"column:tag_created_at;autoCreateTime" json:"tag_created_at"`
}

func (TagModel) TableName() string {
	return "tags"
}
