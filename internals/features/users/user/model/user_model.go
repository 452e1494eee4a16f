package model

import (
	"time"

	"gorm.io/datatypes"
)

// UserModel merepresentasikan tabel users di database.
// ID pakai bigserial supaya monotonic (dipakai juga sebagai sort key).
type UserModel struct {
	UserID         uint           `gorm:"column:user_id;primaryKey;autoIncrement" json:"user_id"`
	UserName       string         `gorm:"column:user_name;size:50;unique;not null" json:"user_name" validate:"required,min=3,max=50"`
	UserEmail      string         `gorm:"column:user_email;size:255;unique;not null" json:"user_email" validate:"required,email"`
	UserPassword   string         `gorm:"column:user_password;not null" json:"-" validate:"required,min=8"`
	UserProfileURL *string        `gorm:"column:user_profile_url;type:text" json:"user_profile_url,omitempty"`
	UserSocialLinks datatypes.JSON `gorm:"column:user_social_links" json:"user_social_links,omitempty"`
	UserScore      int            `gorm:"column:user_score;not null;default:0" json:"user_score"`
	UserCreatedAt  time.Time      `gorm:"column:user_created_at;autoCreateTime" json:"user_created_at"`
	UserUpdatedAt  time.Time      `gorm:"column:user_updated_at;autoUpdateTime" json:"user_updated_at"`
}

func (UserModel) TableName() string {
	return "users"
}
