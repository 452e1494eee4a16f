package service

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"tanyaku_backend/internals/features/qna/answers/model"
	questionModel "tanyaku_backend/internals/features/qna/questions/model"
	questionService "tanyaku_backend/internals/features/qna/questions/service"
)

var (
	ErrAnswerNotFound = errors.New("jawaban tidak ditemukan")
	ErrAlreadyAdopted = errors.New("jawaban sudah diadopsi")
)

type AnswerService struct {
	DB *gorm.DB
}

func NewAnswerService(db *gorm.DB) *AnswerService {
	return &AnswerService{DB: db}
}

// CreateAnswer membuat jawaban untuk sebuah pertanyaan. Pemilik
// pertanyaan di-snapshot ke answer_question_author_id saat create dan
// tidak pernah di-sync ulang. State awal selalu unadopted.
func (s *AnswerService) CreateAnswer(questionID, authorID uint, description string) (*model.AnswerModel, error) {
	var question questionModel.QuestionModel
	err := s.DB.Select("question_id", "question_author_id").
		First(&question, "question_id = ?", questionID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, questionService.ErrQuestionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load parent question %d: %w", questionID, err)
	}

	answer := model.AnswerModel{
		AnswerQuestionID:       question.QuestionID,
		AnswerQuestionAuthorID: question.QuestionAuthorID,
		AnswerAuthorID:         authorID,
		AnswerDescription:      description,
		AnswerState:            model.AnswerStateUnadopted,
	}
	if err := s.DB.Create(&answer).Error; err != nil {
		return nil, fmt.Errorf("insert answer: %w", err)
	}
	return &answer, nil
}

func (s *AnswerService) FindAnswerByID(id uint) (*model.AnswerModel, error) {
	var a model.AnswerModel
	err := s.DB.First(&a, "answer_id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrAnswerNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find answer %d: %w", id, err)
	}
	return &a, nil
}

func (s *AnswerService) FindAnswersByQuestionID(questionID uint) ([]model.AnswerModel, error) {
	var answers []model.AnswerModel
	if err := s.DB.Where("answer_question_id = ?", questionID).
		Order("answer_id ASC").
		Find(&answers).Error; err != nil {
		return nil, fmt.Errorf("find answers by question %d: %w", questionID, err)
	}
	return answers, nil
}

func (s *AnswerService) FindAnswersByUserID(userID uint) ([]model.AnswerModel, error) {
	var answers []model.AnswerModel
	if err := s.DB.Where("answer_author_id = ?", userID).
		Order("answer_id DESC").
		Find(&answers).Error; err != nil {
		return nil, fmt.Errorf("find answers by user %d: %w", userID, err)
	}
	return answers, nil
}

// UpdateAnswerDescription mengganti deskripsi saja; state dan relasi
// tidak tersentuh.
func (s *AnswerService) UpdateAnswerDescription(id uint, description string) (*model.AnswerModel, error) {
	answer, err := s.FindAnswerByID(id)
	if err != nil {
		return nil, err
	}
	answer.AnswerDescription = description
	if err := s.DB.Save(answer).Error; err != nil {
		return nil, fmt.Errorf("update answer %d: %w", id, err)
	}
	return answer, nil
}

// AdoptAnswer menandai jawaban sebagai diadopsi (0 → 1). Cek bahwa
// requester = pemilik pertanyaan dilakukan di controller memakai
// snapshot answer_question_author_id.
func (s *AnswerService) AdoptAnswer(id uint) (*model.AnswerModel, error) {
	answer, err := s.FindAnswerByID(id)
	if err != nil {
		return nil, err
	}
	if answer.AnswerState == model.AnswerStateAdopted {
		return nil, ErrAlreadyAdopted
	}
	answer.AnswerState = model.AnswerStateAdopted
	if err := s.DB.Save(answer).Error; err != nil {
		return nil, fmt.Errorf("adopt answer %d: %w", id, err)
	}
	return answer, nil
}

// DeleteAnswer: hard delete, true hanya kalau memang ada baris yang
// terhapus.
func (s *AnswerService) DeleteAnswer(id uint) (bool, error) {
	res := s.DB.Delete(&model.AnswerModel{}, "answer_id = ?", id)
	if res.Error != nil {
		return false, fmt.Errorf("delete answer %d: %w", id, res.Error)
	}
	return res.RowsAffected > 0, nil
}
