package service

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"tanyaku_backend/internals/features/qna/answers/model"
	questionModel "tanyaku_backend/internals/features/qna/questions/model"
	questionService "tanyaku_backend/internals/features/qna/questions/service"
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
		&questionModel.QuestionModel{},
		&model.AnswerModel{},
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

func seedQuestion(t *testing.T, db *gorm.DB, authorID uint) questionModel.QuestionModel {
	t.Helper()
	q := questionModel.QuestionModel{
		QuestionAuthorID:    authorID,
		QuestionTitle:       "pertanyaan induk",
		QuestionDescription: "deskripsi",
	}
	require.NoError(t, db.Create(&q).Error)
	return q
}

func TestCreateAnswer_SnapshotsQuestionAuthor(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAnswerService(db)
	asker := seedUser(t, db, "penanya")
	responder := seedUser(t, db, "penjawab")
	q := seedQuestion(t, db, asker.UserID)

	a, err := svc.CreateAnswer(q.QuestionID, responder.UserID, "coba pakai context")
	require.NoError(t, err)
	require.Equal(t, q.QuestionID, a.AnswerQuestionID)
	require.Equal(t, asker.UserID, a.AnswerQuestionAuthorID)
	require.Equal(t, responder.UserID, a.AnswerAuthorID)
	require.Equal(t, model.AnswerStateUnadopted, a.AnswerState)
}

func TestCreateAnswer_QuestionMissing(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAnswerService(db)
	responder := seedUser(t, db, "penjawab")

	_, err := svc.CreateAnswer(9999, responder.UserID, "ke mana-mana")
	require.ErrorIs(t, err, questionService.ErrQuestionNotFound)
}

func TestFindAnswersByQuestionID_Ordering(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAnswerService(db)
	asker := seedUser(t, db, "penanya")
	responder := seedUser(t, db, "penjawab")
	q := seedQuestion(t, db, asker.UserID)

	a1, err := svc.CreateAnswer(q.QuestionID, responder.UserID, "jawaban pertama")
	require.NoError(t, err)
	a2, err := svc.CreateAnswer(q.QuestionID, responder.UserID, "jawaban kedua")
	require.NoError(t, err)

	answers, err := svc.FindAnswersByQuestionID(q.QuestionID)
	require.NoError(t, err)
	require.Len(t, answers, 2)
	require.Equal(t, a1.AnswerID, answers[0].AnswerID)
	require.Equal(t, a2.AnswerID, answers[1].AnswerID)
}

func TestUpdateAnswerDescription(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAnswerService(db)
	asker := seedUser(t, db, "penanya")
	q := seedQuestion(t, db, asker.UserID)

	a, err := svc.CreateAnswer(q.QuestionID, asker.UserID, "draft")
	require.NoError(t, err)

	updated, err := svc.UpdateAnswerDescription(a.AnswerID, "sudah direvisi")
	require.NoError(t, err)
	require.Equal(t, "sudah direvisi", updated.AnswerDescription)
	require.Equal(t, a.AnswerState, updated.AnswerState)

	_, err = svc.UpdateAnswerDescription(9999, "hilang")
	require.ErrorIs(t, err, ErrAnswerNotFound)
}

func TestAdoptAnswer(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAnswerService(db)
	asker := seedUser(t, db, "penanya")
	responder := seedUser(t, db, "penjawab")
	q := seedQuestion(t, db, asker.UserID)

	a, err := svc.CreateAnswer(q.QuestionID, responder.UserID, "jawaban mantap")
	require.NoError(t, err)

	adopted, err := svc.AdoptAnswer(a.AnswerID)
	require.NoError(t, err)
	require.Equal(t, model.AnswerStateAdopted, adopted.AnswerState)

	_, err = svc.AdoptAnswer(a.AnswerID)
	require.ErrorIs(t, err, ErrAlreadyAdopted)

	_, err = svc.AdoptAnswer(9999)
	require.ErrorIs(t, err, ErrAnswerNotFound)
}

func TestDeleteAnswer_SecondCallFalse(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAnswerService(db)
	asker := seedUser(t, db, "penanya")
	q := seedQuestion(t, db, asker.UserID)

	a, err := svc.CreateAnswer(q.QuestionID, asker.UserID, "sementara")
	require.NoError(t, err)

	ok, err := svc.DeleteAnswer(a.AnswerID)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = svc.DeleteAnswer(a.AnswerID)
	require.NoError(t, err)
	require.False(t, ok)
}
