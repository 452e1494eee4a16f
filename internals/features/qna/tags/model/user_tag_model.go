package model

// UserTagModel: counter denormalisasi pemakaian tag per user.
// user_tag_count = berapa kali user memakai tag ini saat membuat
// pertanyaan. Counter ini tidak pernah dikurangi (lifetime usage),
// termasuk saat pertanyaan dihapus atau daftar tag di-update.
type UserTagModel struct {
	UserTagID     uint `gorm:"column:user_tag_id;primaryKey;autoIncrement" json:"user_tag_id"`
	UserTagUserID uint `gorm:"column:user_tag_user_id;not null;uniqueIndex:idx_user_tags_user_tag" json:"user_tag_user_id"`
	UserTagTagID  uint `gorm:"column:user_tag_tag_id;not null;uniqueIndex:idx_user_tags_user_tag" json:"user_tag_tag_id"`
	UserTagCount  int  `gorm:"column:user_tag_count;not null;default:0" json:"user_tag_count"`
}

func (UserTagModel) TableName() string {
	return "user_tags"
}
