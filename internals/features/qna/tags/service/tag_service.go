package service

import (
	"fmt"

	"gorm.io/gorm"

	"tanyaku_backend/internals/features/qna/tags/dto"
	"tanyaku_backend/internals/features/qna/tags/model"
)

type TagService struct {
	DB *gorm.DB
}

func NewTagService(db *gorm.DB) *TagService {
	return &TagService{DB: db}
}

func (s *TagService) FindAllTags() ([]model.TagModel, error) {
	var tags []model.TagModel
	if err := s.DB.Order("tag_name ASC").Find(&tags).Error; err != nil {
		return nil, fmt.Errorf("find all tags: %w", err)
	}
	return tags, nil
}

func (s *TagService) FindTagsByIDs(ids []uint) ([]model.TagModel, error) {
	if len(ids) == 0 {
		return []model.TagModel{}, nil
	}
	var tags []model.TagModel
	if err := s.DB.Where("tag_id IN ?", ids).Find(&tags).Error; err != nil {
		return nil, fmt.Errorf("find tags by ids: %w", err)
	}
	return tags, nil
}

// TagIDsByQuestionID mengambil id tag yang menempel di satu pertanyaan.
func (s *TagService) TagIDsByQuestionID(questionID uint) ([]uint, error) {
	var ids []uint
	if err := s.DB.Table("question_tags").
		Distinct("question_tag_tag_id").
		Where("question_tag_question_id = ?", questionID).
		Pluck("question_tag_tag_id", &ids).Error; err != nil {
		return nil, fmt.Errorf("tag ids by question %d: %w", questionID, err)
	}
	return ids, nil
}

func (s *TagService) FindTagsByQuestionID(questionID uint) ([]model.TagModel, error) {
	ids, err := s.TagIDsByQuestionID(questionID)
	if err != nil {
		return nil, err
	}
	return s.FindTagsByIDs(ids)
}

// UserUsedTagCounts: statistik pemakaian tag milik user dari counter
// denormalisasi user_tags, join ke tags untuk nama, urut terbanyak.
func (s *TagService) UserUsedTagCounts(userID uint) ([]dto.UserTagCountDTO, error) {
	var rows []dto.UserTagCountDTO
	if err := s.DB.Table("user_tags").
		Select("user_tags.user_tag_tag_id AS tag_id, tags.tag_name AS tag_name, user_tags.user_tag_count AS count").
		Joins("JOIN tags ON tags.tag_id = user_tags.user_tag_tag_id").
		Where("user_tags.user_tag_user_id = ?", userID).
		Order("user_tags.user_tag_count DESC").
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("user used tag counts %d: %w", userID, err)
	}
	return rows, nil
}
