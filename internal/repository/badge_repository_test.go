package repository

import (
	"testing"
	"time"

	"learning_platform_backend/internal/model"
	"learning_platform_backend/pkg/database"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db))
	return db
}

func TestCreateUserBadge_DuplicateTranslated(t *testing.T) {
	db := newTestDB(t)
	repo := NewBadgeRepository(db)

	badge := &model.Badge{Name: "First Chapter", Description: "d", Type: model.BadgeChapterCompletion}
	require.NoError(t, db.Create(badge).Error)

	first := &model.UserBadge{UserID: 1, BadgeID: badge.ID, EarnedAt: time.Now()}
	require.NoError(t, repo.CreateUserBadge(first))

	// 唯一索引把重复插入翻译成 gorm.ErrDuplicatedKey
	dup := &model.UserBadge{UserID: 1, BadgeID: badge.ID, EarnedAt: time.Now()}
	err := repo.CreateUserBadge(dup)
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)

	// 不同用户不受影响
	other := &model.UserBadge{UserID: 2, BadgeID: badge.ID, EarnedAt: time.Now()}
	assert.NoError(t, repo.CreateUserBadge(other))
}

func TestSumScores_EmptyHistoryIsZero(t *testing.T) {
	db := newTestDB(t)
	repo := NewQuizResultRepository(db)

	total, err := repo.SumScores(42)
	require.NoError(t, err)
	assert.EqualValues(t, 0, total)
}

func TestCountDistinctCompletedChapters(t *testing.T) {
	db := newTestDB(t)
	repo := NewProgressRepository(db)

	now := time.Now()
	rows := []model.Progress{
		{UserID: 1, ChapterID: "01-a", SectionID: "s1", Completed: true, LastAccessedAt: now},
		{UserID: 1, ChapterID: "01-a", SectionID: "s2", Completed: true, LastAccessedAt: now},
		{UserID: 1, ChapterID: "02-b", SectionID: "s1", Completed: true, LastAccessedAt: now},
		{UserID: 1, ChapterID: "03-c", SectionID: "s1", Completed: false, LastAccessedAt: now},
		{UserID: 2, ChapterID: "04-d", SectionID: "s1", Completed: true, LastAccessedAt: now},
	}
	for i := range rows {
		require.NoError(t, db.Create(&rows[i]).Error)
	}

	count, err := repo.CountDistinctCompletedChapters(1)
	require.NoError(t, err)
	assert.EqualValues(t, 2, count)
}
