package dto

import (
	"time"

	"gorm.io/datatypes"

	"tanyaku_backend/internals/features/users/user/model"
)

// ============================
// Response DTO (tanpa kolom sensitif)
// ============================
type UserDTO struct {
	UserID          uint           `json:"user_id"`
	UserName        string         `json:"user_name"`
	UserProfileURL  *string        `json:"user_profile_url,omitempty"`
	UserSocialLinks datatypes.JSON `json:"user_social_links,omitempty"`
	UserScore       int            `json:"user_score"`
	UserCreatedAt   time.Time      `json:"user_created_at"`
}

// UserProfileDTO: profil + agregat buat halaman profil.
type UserProfileDTO struct {
	UserDTO
	QuestionCount int64 `json:"question_count"`
	AnswerCount   int64 `json:"answer_count"`
}

func ToUserDTO(m model.UserModel) UserDTO {
	return UserDTO{
		UserID:          m.UserID,
		UserName:        m.UserName,
		UserProfileURL:  m.UserProfileURL,
		UserSocialLinks: m.UserSocialLinks,
		UserScore:       m.UserScore,
		UserCreatedAt:   m.UserCreatedAt,
	}
}
