package service

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"tanyaku_backend/internals/features/qna/questions/dto"
	"tanyaku_backend/internals/features/qna/questions/model"
	tagModel "tanyaku_backend/internals/features/qna/tags/model"
	userModel "tanyaku_backend/internals/features/users/user/model"
)

var ErrQuestionNotFound = errors.New("pertanyaan tidak ditemukan")

const (
	DefaultTakeQuestions = 20
	MaxTakeQuestions     = 100
)

type QuestionService struct {
	DB *gorm.DB
}

func NewQuestionService(db *gorm.DB) *QuestionService {
	return &QuestionService{DB: db}
}

// =========================================================
// Tag intersection
// =========================================================

// tagIntersectionSubquery menyusun sub-select atas question_tags per
// tag id, lalu merantainya dengan IN sehingga hanya question_id yang
// punya SEMUA tag yang lolos (irisan, bukan union). Tag id terikat
// sebagai parameter bertipe uint — tidak pernah diinterpolasi string.
func (s *QuestionService) tagIntersectionSubquery(tagIDs []uint) *gorm.DB {
	sub := s.DB.Table("question_tags").
		Distinct("question_tag_question_id").
		Where("question_tag_tag_id = ?", tagIDs[0])

	for _, tagID := range tagIDs[1:] {
		sub = sub.Where("question_tag_question_id IN (?)",
			s.DB.Table("question_tags").
				Select("question_tag_question_id").
				Where("question_tag_tag_id = ?", tagID))
	}
	return sub
}

// QuestionIDsWithAllTags mengembalikan himpunan question_id yang punya
// semua tag di tagIDs. Irisan kosong = slice kosong, bukan error.
func (s *QuestionService) QuestionIDsWithAllTags(tagIDs []uint) ([]uint, error) {
	if len(tagIDs) == 0 {
		return nil, errors.New("tagIDs tidak boleh kosong")
	}
	var ids []uint
	if err := s.tagIntersectionSubquery(tagIDs).Pluck("question_tag_question_id", &ids).Error; err != nil {
		return nil, fmt.Errorf("resolve tag intersection: %w", err)
	}
	return ids, nil
}

// =========================================================
// Search & reads
// =========================================================

// SearchQuestions menggabungkan semua filter yang terisi dengan AND.
// Author yang tidak dikenal → hasil kosong tanpa menjalankan query
// utama. Ordering question_id DESC (id monotonic = proxy recency).
func (s *QuestionService) SearchQuestions(f dto.SearchQuestionFilter) ([]model.QuestionModel, error) {
	tx := s.DB.Model(&model.QuestionModel{})

	if f.Title != nil && *f.Title != "" {
		tx = tx.Where("question_title LIKE ?", "%"+*f.Title+"%")
	}
	if f.Description != nil && *f.Description != "" {
		tx = tx.Where("question_description LIKE ?", "%"+*f.Description+"%")
	}
	if f.RealtimeShare != nil {
		tx = tx.Where("question_realtime_share = ?", *f.RealtimeShare)
	}

	if f.Author != nil && *f.Author != "" {
		var author userModel.UserModel
		err := s.DB.Select("user_id").Where("user_name = ?", *f.Author).First(&author).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// username tidak ada → short-circuit, tanpa scan questions
			return []model.QuestionModel{}, nil
		}
		if err != nil {
			return nil, fmt.Errorf("lookup author: %w", err)
		}
		tx = tx.Where("question_author_id = ?", author.UserID)
	}

	if len(f.TagIDs) > 0 {
		tx = tx.Where("question_id IN (?)", s.tagIntersectionSubquery(f.TagIDs))
	}

	skip := f.Skip
	if skip < 0 {
		skip = 0
	}
	take := f.Take
	if take <= 0 {
		take = DefaultTakeQuestions
	}
	if take > MaxTakeQuestions {
		take = MaxTakeQuestions
	}

	var questions []model.QuestionModel
	if err := tx.Order("question_id DESC").
		Offset(skip).Limit(take).
		Find(&questions).Error; err != nil {
		return nil, fmt.Errorf("search questions: %w", err)
	}
	return questions, nil
}

// FindQuestionByID: point lookup — absen = ErrQuestionNotFound
// (beda dengan search yang mengembalikan list kosong).
func (s *QuestionService) FindQuestionByID(id uint) (*model.QuestionModel, error) {
	var q model.QuestionModel
	err := s.DB.First(&q, "question_id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrQuestionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find question %d: %w", id, err)
	}
	return &q, nil
}

func (s *QuestionService) FindQuestionsByUserID(userID uint) ([]model.QuestionModel, error) {
	var questions []model.QuestionModel
	if err := s.DB.Where("question_author_id = ?", userID).
		Order("question_id DESC").
		Find(&questions).Error; err != nil {
		return nil, fmt.Errorf("find questions by user %d: %w", userID, err)
	}
	return questions, nil
}

// =========================================================
// Mutations
// =========================================================

// CreateQuestion menyimpan pertanyaan + asosiasi tag + counter
// user_tags dalam SATU transaksi: crash di tengah tidak meninggalkan
// state parsial. Tag duplikat di input di-dedup dulu (satu increment
// per tag unik). Counter dinaikkan atomik lewat upsert
// ON CONFLICT ... count = count + 1 (insert pertama = 1, bukan 0).
func (s *QuestionService) CreateQuestion(req dto.CreateQuestionRequest, authorID uint) (*model.QuestionModel, error) {
	question := model.QuestionModel{
		QuestionAuthorID:      authorID,
		QuestionTitle:         req.QuestionTitle,
		QuestionDescription:   req.QuestionDescription,
		QuestionRealtimeShare: req.QuestionRealtimeShare,
	}
	tagIDs := uniqueTagIDs(req.TagIDs)

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&question).Error; err != nil {
			return fmt.Errorf("insert question: %w", err)
		}
		for _, tagID := range tagIDs {
			if err := tx.Create(&model.QuestionTagModel{
				QuestionTagQuestionID: question.QuestionID,
				QuestionTagTagID:      tagID,
			}).Error; err != nil {
				return fmt.Errorf("insert question_tag %d: %w", tagID, err)
			}
			if err := bumpUserTagCount(tx, authorID, tagID); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &question, nil
}

// UpdateQuestion: partial patch — hanya field yang dikirim yang
// berubah; author id tidak pernah tersentuh. TagIDs non-empty =
// full replace asosiasi (hapus semua lalu buat ulang, bukan diff).
// Counter user_tags sengaja TIDAK disesuaikan saat update.
func (s *QuestionService) UpdateQuestion(id uint, req dto.UpdateQuestionRequest) (*model.QuestionModel, error) {
	var question model.QuestionModel

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		err := tx.First(&question, "question_id = ?", id).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrQuestionNotFound
		}
		if err != nil {
			return fmt.Errorf("load question %d: %w", id, err)
		}

		if req.QuestionTitle != nil {
			question.QuestionTitle = *req.QuestionTitle
		}
		if req.QuestionDescription != nil {
			question.QuestionDescription = *req.QuestionDescription
		}
		if req.QuestionRealtimeShare != nil {
			question.QuestionRealtimeShare = *req.QuestionRealtimeShare
		}
		if err := tx.Save(&question).Error; err != nil {
			return fmt.Errorf("update question %d: %w", id, err)
		}

		if len(req.TagIDs) > 0 {
			if err := tx.Where("question_tag_question_id = ?", id).
				Delete(&model.QuestionTagModel{}).Error; err != nil {
				return fmt.Errorf("clear question_tags %d: %w", id, err)
			}
			for _, tagID := range uniqueTagIDs(req.TagIDs) {
				if err := tx.Create(&model.QuestionTagModel{
					QuestionTagQuestionID: id,
					QuestionTagTagID:      tagID,
				}).Error; err != nil {
					return fmt.Errorf("recreate question_tag %d: %w", tagID, err)
				}
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &question, nil
}

// DeleteQuestion: hard delete. true kalau memang ada baris yang
// terhapus; pemanggilan kedua untuk id yang sama = false.
// Tidak ada cascade ke answers/question_tags/user_tags di layer ini.
func (s *QuestionService) DeleteQuestion(id uint) (bool, error) {
	res := s.DB.Delete(&model.QuestionModel{}, "question_id = ?", id)
	if res.Error != nil {
		return false, fmt.Errorf("delete question %d: %w", id, res.Error)
	}
	return res.RowsAffected > 0, nil
}

// IncrementViewCount menaikkan view count atomik di DB (bukan
// read-modify-write).
func (s *QuestionService) IncrementViewCount(id uint) error {
	res := s.DB.Model(&model.QuestionModel{}).
		Where("question_id = ?", id).
		UpdateColumn("question_view_count", gorm.Expr("question_view_count + 1"))
	if res.Error != nil {
		return fmt.Errorf("bump view count %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrQuestionNotFound
	}
	return nil
}

// ThumbupQuestion menaikkan thumbup count atomik lalu membaca ulang.
func (s *QuestionService) ThumbupQuestion(id uint) (*model.QuestionModel, error) {
	res := s.DB.Model(&model.QuestionModel{}).
		Where("question_id = ?", id).
		UpdateColumn("question_thumbup_count", gorm.Expr("question_thumbup_count + 1"))
	if res.Error != nil {
		return nil, fmt.Errorf("bump thumbup %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, ErrQuestionNotFound
	}
	return s.FindQuestionByID(id)
}

// =========================================================
// Internal
// =========================================================

// bumpUserTagCount: upsert counter pemakaian tag. Baris belum ada →
// insert count=1; sudah ada → increment atomik di DB (tanpa window
// read-modify-write).
func bumpUserTagCount(tx *gorm.DB, userID, tagID uint) error {
	err := tx.Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "user_tag_user_id"},
			{Name: "user_tag_tag_id"},
		},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"user_tag_count": gorm.Expr("user_tag_count + 1"),
		}),
	}).Create(&tagModel.UserTagModel{
		UserTagUserID: userID,
		UserTagTagID:  tagID,
		UserTagCount:  1,
	}).Error
	if err != nil {
		return fmt.Errorf("upsert user_tag (%d,%d): %w", userID, tagID, err)
	}
	return nil
}

func uniqueTagIDs(in []uint) []uint {
	seen := make(map[uint]struct{}, len(in))
	out := make([]uint, 0, len(in))
	for _, id := range in {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
