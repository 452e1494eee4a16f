package service

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	answerModel "tanyaku_backend/internals/features/qna/answers/model"
	questionModel "tanyaku_backend/internals/features/qna/questions/model"
	"tanyaku_backend/internals/features/users/user/model"
)

var ErrUserNotFound = errors.New("user tidak ditemukan")

type UserService struct {
	DB *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{DB: db}
}

func (s *UserService) FindUserByID(id uint) (*model.UserModel, error) {
	var u model.UserModel
	err := s.DB.First(&u, "user_id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find user %d: %w", id, err)
	}
	return &u, nil
}

func (s *UserService) FindUserByUsername(username string) (*model.UserModel, error) {
	var u model.UserModel
	err := s.DB.First(&u, "user_name = ?", username).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find user %q: %w", username, err)
	}
	return &u, nil
}

// CountContributions menghitung jumlah pertanyaan & jawaban user
// (dipakai halaman profil).
func (s *UserService) CountContributions(userID uint) (questions int64, answers int64, err error) {
	if err = s.DB.Model(&questionModel.QuestionModel{}).
		Where("question_author_id = ?", userID).
		Count(&questions).Error; err != nil {
		return 0, 0, fmt.Errorf("count questions %d: %w", userID, err)
	}
	if err = s.DB.Model(&answerModel.AnswerModel{}).
		Where("answer_author_id = ?", userID).
		Count(&answers).Error; err != nil {
		return 0, 0, fmt.Errorf("count answers %d: %w", userID, err)
	}
	return questions, answers, nil
}
