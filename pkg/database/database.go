package database

import (
	"fmt"
	"log"

	"learning_platform_backend/internal/config"
	"learning_platform_backend/internal/model"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func InitDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=Local",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.DBName,
		cfg.Charset,
		cfg.ParseTime,
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
		// 把数据库的唯一键冲突翻译成 gorm.ErrDuplicatedKey，
		// 徽章发放的并发去重依赖这一点
		TranslateError: true,
	})

	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	if err := Migrate(db); err != nil {
		return nil, err
	}

	log.Println("Database migration completed")

	if err := SeedBadges(db); err != nil {
		return nil, err
	}

	return db, nil
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.User{},
		&model.Chapter{},
		&model.Progress{},
		&model.QuizResult{},
		&model.ExerciseSubmission{},
		&model.Badge{},
		&model.UserBadge{},
	)
}

// SeedBadges 徽章目录为空时写入默认徽章，只在进程启动时执行一次
func SeedBadges(db *gorm.DB) error {
	var count int64
	if err := db.Model(&model.Badge{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	defaultBadges := []model.Badge{
		{
			Name:           "First Chapter",
			Description:    "Complete your first chapter",
			IconURL:        "/badges/first-chapter.png",
			Type:           model.BadgeChapterCompletion,
			PointsRequired: 1,
		},
		{
			Name:           "Five Chapters",
			Description:    "Complete five chapters",
			IconURL:        "/badges/five-chapters.png",
			Type:           model.BadgeChapterCompletion,
			PointsRequired: 5,
		},
		{
			Name:           "Ten Chapters",
			Description:    "Complete ten chapters",
			IconURL:        "/badges/ten-chapters.png",
			Type:           model.BadgeChapterCompletion,
			PointsRequired: 10,
		},
		{
			Name:           "Quiz Master",
			Description:    "Score 100% on five quizzes",
			IconURL:        "/badges/quiz-master.png",
			Type:           model.BadgeQuizMaster,
			PointsRequired: 5,
		},
		{
			Name:           "Code Ninja",
			Description:    "Complete 10 coding exercises",
			IconURL:        "/badges/code-ninja.png",
			Type:           model.BadgeExerciseMaster,
			PointsRequired: 10,
		},
		{
			// 保留的特殊徽章，当前没有对应发放规则
			Name:           "Platform Hero",
			Description:    "Complete all chapters with 90%+ average",
			IconURL:        "/badges/platform-hero.png",
			Type:           model.BadgeSpecial,
			PointsRequired: 100,
		},
	}

	for i := range defaultBadges {
		if err := db.Create(&defaultBadges[i]).Error; err != nil {
			return err
		}
	}

	log.Println("Default badges seeded")
	return nil
}
