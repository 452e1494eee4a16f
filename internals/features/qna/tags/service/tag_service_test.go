package service

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	questionModel "tanyaku_backend/internals/features/qna/questions/model"
	"tanyaku_backend/internals/features/qna/tags/model"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&model.TagModel{},
		&model.UserTagModel{},
		&questionModel.QuestionModel{},
		&questionModel.QuestionTagModel{},
	))
	return db
}

func TestFindAllTags_SortedByName(t *testing.T) {
	db := setupTestDB(t)
	svc := NewTagService(db)
	require.NoError(t, db.Create(&model.TagModel{TagName: "security"}).Error)
	require.NoError(t, db.Create(&model.TagModel{TagName: "android"}).Error)

	tags, err := svc.FindAllTags()
	require.NoError(t, err)
	require.Len(t, tags, 2)
	require.Equal(t, "android", tags[0].TagName)
	require.Equal(t, "security", tags[1].TagName)
}

func TestFindTagsByQuestionID(t *testing.T) {
	db := setupTestDB(t)
	svc := NewTagService(db)

	tg := model.TagModel{TagName: "golang"}
	require.NoError(t, db.Create(&tg).Error)
	q := questionModel.QuestionModel{
		QuestionAuthorID:    1,
		QuestionTitle:       "judul",
		QuestionDescription: "deskripsi",
	}
	require.NoError(t, db.Create(&q).Error)
	require.NoError(t, db.Create(&questionModel.QuestionTagModel{
		QuestionTagQuestionID: q.QuestionID,
		QuestionTagTagID:      tg.TagID,
	}).Error)

	tags, err := svc.FindTagsByQuestionID(q.QuestionID)
	require.NoError(t, err)
	require.Len(t, tags, 1)
	require.Equal(t, "golang", tags[0].TagName)

	// pertanyaan tanpa tag → kosong, bukan error
	tags, err = svc.FindTagsByQuestionID(9999)
	require.NoError(t, err)
	require.Empty(t, tags)
}

func TestUserUsedTagCounts_OrderedByCountDesc(t *testing.T) {
	db := setupTestDB(t)
	svc := NewTagService(db)

	tGo := model.TagModel{TagName: "golang"}
	tDB := model.TagModel{TagName: "database"}
	require.NoError(t, db.Create(&tGo).Error)
	require.NoError(t, db.Create(&tDB).Error)

	require.NoError(t, db.Create(&model.UserTagModel{
		UserTagUserID: 7, UserTagTagID: tGo.TagID, UserTagCount: 2,
	}).Error)
	require.NoError(t, db.Create(&model.UserTagModel{
		UserTagUserID: 7, UserTagTagID: tDB.TagID, UserTagCount: 5,
	}).Error)
	// user lain tidak ikut terbawa
	require.NoError(t, db.Create(&model.UserTagModel{
		UserTagUserID: 8, UserTagTagID: tGo.TagID, UserTagCount: 99,
	}).Error)

	rows, err := svc.UserUsedTagCounts(7)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	require.Equal(t, "database", rows[0].TagName)
	require.Equal(t, 5, rows[0].Count)
	require.Equal(t, "golang", rows[1].TagName)
	require.Equal(t, 2, rows[1].Count)
}
