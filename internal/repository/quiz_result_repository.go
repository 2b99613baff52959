package repository

import (
	"learning_platform_backend/internal/model"

	"gorm.io/gorm"
)

type QuizResultRepository struct {
	DB *gorm.DB
}

func NewQuizResultRepository(db *gorm.DB) *QuizResultRepository {
	return &QuizResultRepository{DB: db}
}

func (r *QuizResultRepository) Create(result *model.QuizResult) error {
	return r.DB.Create(result).Error
}

func (r *QuizResultRepository) FindByUserID(userID uint) ([]model.QuizResult, error) {
	var results []model.QuizResult
	err := r.DB.Where("user_id = ?", userID).Order("completed_at desc").Find(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}

func (r *QuizResultRepository) FindByUserIDAndChapterID(userID uint, chapterID string) ([]model.QuizResult, error) {
	var results []model.QuizResult
	err := r.DB.Where("user_id = ? AND chapter_id = ?", userID, chapterID).
		Order("completed_at desc").Find(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}

// CountPerfectScores 满分（100分）测验次数
func (r *QuizResultRepository) CountPerfectScores(userID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&model.QuizResult{}).
		Where("user_id = ? AND score = ?", userID, 100).
		Count(&count).Error
	return count, err
}

// SumScores 用户所有测验得分之和
func (r *QuizResultRepository) SumScores(userID uint) (int64, error) {
	var total int64
	err := r.DB.Model(&model.QuizResult{}).
		Where("user_id = ?", userID).
		Select("COALESCE(SUM(score), 0)").
		Scan(&total).Error
	return total, err
}
