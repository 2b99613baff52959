package service

import (
	"testing"

	"learning_platform_backend/internal/config"
	"learning_platform_backend/internal/model"
	"learning_platform_backend/internal/repository"
	"learning_platform_backend/pkg/database"

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

	// 内存库只允许一个连接，避免连接池各自拿到独立的空库
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db))
	return db
}

type testServices struct {
	db       *gorm.DB
	chapter  *ChapterService
	progress *ProgressService
	quiz     *QuizService
	exercise *ExerciseService
	badge    *BadgeService
	users    *repository.UserRepository
}

func newTestServices(t *testing.T) *testServices {
	t.Helper()

	db := newTestDB(t)

	userRepo := repository.NewUserRepository(db)
	chapterRepo := repository.NewChapterRepository(db)
	progressRepo := repository.NewProgressRepository(db)
	quizRepo := repository.NewQuizResultRepository(db)
	exerciseRepo := repository.NewExerciseSubmissionRepository(db)
	badgeRepo := repository.NewBadgeRepository(db)

	badge := NewBadgeService(badgeRepo, userRepo, progressRepo, quizRepo, exerciseRepo)

	return &testServices{
		db:       db,
		chapter:  NewChapterService(chapterRepo, &config.Config{}, nil),
		progress: NewProgressService(progressRepo, badge),
		quiz:     NewQuizService(quizRepo, badge),
		exercise: NewExerciseService(exerciseRepo, badge),
		badge:    badge,
		users:    userRepo,
	}
}

func createTestUser(t *testing.T, s *testServices, name, email string) *model.User {
	t.Helper()

	user := &model.User{
		Name:     name,
		Email:    email,
		Password: "hashed",
		Role:     model.Student,
	}
	require.NoError(t, s.users.Create(user))
	return user
}

func seedTestBadges(t *testing.T, db *gorm.DB) {
	t.Helper()
	require.NoError(t, database.SeedBadges(db))
}
