package service

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"tanyaku_backend/internals/features/qna/questions/dto"
	"tanyaku_backend/internals/features/qna/questions/model"
	tagModel "tanyaku_backend/internals/features/qna/tags/model"
	userModel "tanyaku_backend/internals/features/users/user/model"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&userModel.UserModel{},
		&tagModel.TagModel{},
		&tagModel.UserTagModel{},
		&model.QuestionModel{},
		&model.QuestionTagModel{},
	))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, name string) userModel.UserModel {
	t.Helper()
	u := userModel.UserModel{
		UserName:     name,
		UserEmail:    name + "@example.com",
		UserPassword: "rahasia-banget",
	}
	require.NoError(t, db.Create(&u).Error)
	return u
}

func seedTag(t *testing.T, db *gorm.DB, name string) tagModel.TagModel {
	t.Helper()
	tg := tagModel.TagModel{TagName: name}
	require.NoError(t, db.Create(&tg).Error)
	return tg
}

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

func TestCreateQuestion_WithTagsAndCounters(t *testing.T) {
	db := setupTestDB(t)
	svc := NewQuestionService(db)
	user := seedUser(t, db, "budi")
	tagGo := seedTag(t, db, "golang")
	tagDB := seedTag(t, db, "database")

	q, err := svc.CreateQuestion(dto.CreateQuestionRequest{
		QuestionTitle:       "Cara pakai GORM transaction?",
		QuestionDescription: "Bagaimana pola transaksi yang benar?",
		TagIDs:              []uint{tagGo.TagID, tagDB.TagID},
	}, user.UserID)
	require.NoError(t, err)
	require.NotZero(t, q.QuestionID)
	require.Equal(t, user.UserID, q.QuestionAuthorID)

	var links []model.QuestionTagModel
	require.NoError(t, db.Where("question_tag_question_id = ?", q.QuestionID).Find(&links).Error)
	require.Len(t, links, 2)

	var counters []tagModel.UserTagModel
	require.NoError(t, db.Where("user_tag_user_id = ?", user.UserID).Find(&counters).Error)
	require.Len(t, counters, 2)
	for _, c := range counters {
		require.Equal(t, 1, c.UserTagCount)
	}
}

func TestCreateQuestion_DuplicateTagIDsSingleIncrement(t *testing.T) {
	db := setupTestDB(t)
	svc := NewQuestionService(db)
	user := seedUser(t, db, "siti")
	tag := seedTag(t, db, "backend")

	_, err := svc.CreateQuestion(dto.CreateQuestionRequest{
		QuestionTitle:       "Duplikat tag di request",
		QuestionDescription: "tag yang sama dikirim dua kali",
		TagIDs:              []uint{tag.TagID, tag.TagID},
	}, user.UserID)
	require.NoError(t, err)

	var counter tagModel.UserTagModel
	require.NoError(t, db.Where("user_tag_user_id = ? AND user_tag_tag_id = ?",
		user.UserID, tag.TagID).First(&counter).Error)
	require.Equal(t, 1, counter.UserTagCount)

	var linkCount int64
	require.NoError(t, db.Model(&model.QuestionTagModel{}).
		Where("question_tag_tag_id = ?", tag.TagID).Count(&linkCount).Error)
	require.Equal(t, int64(1), linkCount)
}

func TestCreateQuestion_CounterIncrementsAcrossQuestions(t *testing.T) {
	db := setupTestDB(t)
	svc := NewQuestionService(db)
	user := seedUser(t, db, "andi")
	tag := seedTag(t, db, "devops")

	for i := 0; i < 2; i++ {
		_, err := svc.CreateQuestion(dto.CreateQuestionRequest{
			QuestionTitle:       "Pertanyaan CI/CD",
			QuestionDescription: "deskripsi",
			TagIDs:              []uint{tag.TagID},
		}, user.UserID)
		require.NoError(t, err)
	}

	var counter tagModel.UserTagModel
	require.NoError(t, db.Where("user_tag_user_id = ? AND user_tag_tag_id = ?",
		user.UserID, tag.TagID).First(&counter).Error)
	require.Equal(t, 2, counter.UserTagCount)
}

func TestSearchQuestions_TagIntersection(t *testing.T) {
	db := setupTestDB(t)
	svc := NewQuestionService(db)
	user := seedUser(t, db, "tono")
	t1 := seedTag(t, db, "golang")
	t2 := seedTag(t, db, "database")
	t3 := seedTag(t, db, "frontend")

	// q1: {t1,t2}, q2: {t1}, q3: {t2,t3}
	q1, err := svc.CreateQuestion(dto.CreateQuestionRequest{
		QuestionTitle: "q satu", QuestionDescription: "d",
		TagIDs: []uint{t1.TagID, t2.TagID},
	}, user.UserID)
	require.NoError(t, err)
	_, err = svc.CreateQuestion(dto.CreateQuestionRequest{
		QuestionTitle: "q dua", QuestionDescription: "d",
		TagIDs: []uint{t1.TagID},
	}, user.UserID)
	require.NoError(t, err)
	_, err = svc.CreateQuestion(dto.CreateQuestionRequest{
		QuestionTitle: "q tiga", QuestionDescription: "d",
		TagIDs: []uint{t2.TagID, t3.TagID},
	}, user.UserID)
	require.NoError(t, err)

	// irisan [t1,t2] → hanya q1
	got, err := svc.SearchQuestions(dto.SearchQuestionFilter{
		TagIDs: []uint{t1.TagID, t2.TagID},
	})
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, q1.QuestionID, got[0].QuestionID)

	// satu tag [t2] → q1 dan q3
	got, err = svc.SearchQuestions(dto.SearchQuestionFilter{
		TagIDs: []uint{t2.TagID},
	})
	require.NoError(t, err)
	require.Len(t, got, 2)

	// kombinasi yang tidak dipunyai siapapun → kosong, bukan error
	got, err = svc.SearchQuestions(dto.SearchQuestionFilter{
		TagIDs: []uint{t1.TagID, t3.TagID},
	})
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestQuestionIDsWithAllTags_EmptyInputRejected(t *testing.T) {
	db := setupTestDB(t)
	svc := NewQuestionService(db)

	_, err := svc.QuestionIDsWithAllTags(nil)
	require.Error(t, err)
}

func TestSearchQuestions_CombinedFiltersAndOrdering(t *testing.T) {
	db := setupTestDB(t)
	svc := NewQuestionService(db)
	budi := seedUser(t, db, "budi")
	siti := seedUser(t, db, "siti")
	tag := seedTag(t, db, "golang")

	_, err := svc.CreateQuestion(dto.CreateQuestionRequest{
		QuestionTitle: "goroutine leak", QuestionDescription: "channel tidak ditutup",
		TagIDs: []uint{tag.TagID},
	}, budi.UserID)
	require.NoError(t, err)
	q2, err := svc.CreateQuestion(dto.CreateQuestionRequest{
		QuestionTitle: "goroutine pool", QuestionDescription: "worker pool",
		QuestionRealtimeShare: true,
		TagIDs:                []uint{tag.TagID},
	}, budi.UserID)
	require.NoError(t, err)
	_, err = svc.CreateQuestion(dto.CreateQuestionRequest{
		QuestionTitle: "goroutine punya siti", QuestionDescription: "lain",
	}, siti.UserID)
	require.NoError(t, err)

	// semua filter AND-ed
	got, err := svc.SearchQuestions(dto.SearchQuestionFilter{
		Title:         strPtr("goroutine"),
		Author:        strPtr("budi"),
		RealtimeShare: boolPtr(true),
		TagIDs:        []uint{tag.TagID},
	})
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, q2.QuestionID, got[0].QuestionID)

	// ordering: id terbaru dulu
	got, err = svc.SearchQuestions(dto.SearchQuestionFilter{Author: strPtr("budi")})
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Greater(t, got[0].QuestionID, got[1].QuestionID)
}

func TestSearchQuestions_UnknownAuthorShortCircuits(t *testing.T) {
	db := setupTestDB(t)
	svc := NewQuestionService(db)
	user := seedUser(t, db, "budi")

	_, err := svc.CreateQuestion(dto.CreateQuestionRequest{
		QuestionTitle: "ada isinya", QuestionDescription: "d",
	}, user.UserID)
	require.NoError(t, err)

	got, err := svc.SearchQuestions(dto.SearchQuestionFilter{
		Author: strPtr("tidak-ada-orangnya"),
	})
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestSearchQuestions_Paging(t *testing.T) {
	db := setupTestDB(t)
	svc := NewQuestionService(db)
	user := seedUser(t, db, "budi")

	for i := 0; i < 5; i++ {
		_, err := svc.CreateQuestion(dto.CreateQuestionRequest{
			QuestionTitle: "halaman", QuestionDescription: "d",
		}, user.UserID)
		require.NoError(t, err)
	}

	page1, err := svc.SearchQuestions(dto.SearchQuestionFilter{Skip: 0, Take: 2})
	require.NoError(t, err)
	require.Len(t, page1, 2)

	page2, err := svc.SearchQuestions(dto.SearchQuestionFilter{Skip: 2, Take: 2})
	require.NoError(t, err)
	require.Len(t, page2, 2)
	require.Less(t, page2[0].QuestionID, page1[1].QuestionID)

	// skip negatif dinormalisasi ke 0
	all, err := svc.SearchQuestions(dto.SearchQuestionFilter{Skip: -3})
	require.NoError(t, err)
	require.Len(t, all, 5)
}

func TestFindQuestionByID_NotFound(t *testing.T) {
	db := setupTestDB(t)
	svc := NewQuestionService(db)

	_, err := svc.FindQuestionByID(9999)
	require.ErrorIs(t, err, ErrQuestionNotFound)
}

func TestUpdateQuestion_PartialPatchAndTagReplace(t *testing.T) {
	db := setupTestDB(t)
	svc := NewQuestionService(db)
	user := seedUser(t, db, "budi")
	t1 := seedTag(t, db, "golang")
	t2 := seedTag(t, db, "database")

	q, err := svc.CreateQuestion(dto.CreateQuestionRequest{
		QuestionTitle:       "judul lama",
		QuestionDescription: "deskripsi lama",
		TagIDs:              []uint{t1.TagID},
	}, user.UserID)
	require.NoError(t, err)

	updated, err := svc.UpdateQuestion(q.QuestionID, dto.UpdateQuestionRequest{
		QuestionTitle: strPtr("judul baru"),
		TagIDs:        []uint{t2.TagID},
	})
	require.NoError(t, err)
	require.Equal(t, "judul baru", updated.QuestionTitle)
	// field yang tidak dikirim tidak berubah
	require.Equal(t, "deskripsi lama", updated.QuestionDescription)
	require.Equal(t, user.UserID, updated.QuestionAuthorID)

	// tag = full replace, bukan union
	var links []model.QuestionTagModel
	require.NoError(t, db.Where("question_tag_question_id = ?", q.QuestionID).Find(&links).Error)
	require.Len(t, links, 1)
	require.Equal(t, t2.TagID, links[0].QuestionTagTagID)

	// counter lama tidak dikurangi saat update
	var counter tagModel.UserTagModel
	require.NoError(t, db.Where("user_tag_user_id = ? AND user_tag_tag_id = ?",
		user.UserID, t1.TagID).First(&counter).Error)
	require.Equal(t, 1, counter.UserTagCount)
}

func TestUpdateQuestion_NotFound(t *testing.T) {
	db := setupTestDB(t)
	svc := NewQuestionService(db)

	_, err := svc.UpdateQuestion(12345, dto.UpdateQuestionRequest{
		QuestionTitle: strPtr("tidak akan tersimpan"),
	})
	require.ErrorIs(t, err, ErrQuestionNotFound)
}

func TestDeleteQuestion_SecondCallFalse(t *testing.T) {
	db := setupTestDB(t)
	svc := NewQuestionService(db)
	user := seedUser(t, db, "budi")

	q, err := svc.CreateQuestion(dto.CreateQuestionRequest{
		QuestionTitle: "akan dihapus", QuestionDescription: "d",
	}, user.UserID)
	require.NoError(t, err)

	ok, err := svc.DeleteQuestion(q.QuestionID)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = svc.DeleteQuestion(q.QuestionID)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestViewAndThumbupCounters(t *testing.T) {
	db := setupTestDB(t)
	svc := NewQuestionService(db)
	user := seedUser(t, db, "budi")

	q, err := svc.CreateQuestion(dto.CreateQuestionRequest{
		QuestionTitle: "counter", QuestionDescription: "d",
	}, user.UserID)
	require.NoError(t, err)

	require.NoError(t, svc.IncrementViewCount(q.QuestionID))
	require.NoError(t, svc.IncrementViewCount(q.QuestionID))

	bumped, err := svc.ThumbupQuestion(q.QuestionID)
	require.NoError(t, err)
	require.Equal(t, 1, bumped.QuestionThumbupCount)
	require.Equal(t, 2, bumped.QuestionViewCount)

	require.ErrorIs(t, svc.IncrementViewCount(9999), ErrQuestionNotFound)
	_, err = svc.ThumbupQuestion(9999)
	require.ErrorIs(t, err, ErrQuestionNotFound)
}
