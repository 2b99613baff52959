package repository

import (
	"learning_platform_backend/internal/model"

	"gorm.io/gorm"
)

type ExerciseSubmissionRepository struct {
	DB *gorm.DB
}

func NewExerciseSubmissionRepository(db *gorm.DB) *ExerciseSubmissionRepository {
	return &ExerciseSubmissionRepository{DB: db}
}

func (r *ExerciseSubmissionRepository) Create(submission *model.ExerciseSubmission) error {
	return r.DB.Create(submission).Error
}

func (r *ExerciseSubmissionRepository) FindByUserID(userID uint) ([]model.ExerciseSubmission, error) {
	var submissions []model.ExerciseSubmission
	err := r.DB.Where("user_id = ?", userID).Order("submitted_at desc").Find(&submissions).Error
	if err != nil {
		return nil, err
	}
	return submissions, nil
}

// CountPassed 通过的练习提交数
func (r *ExerciseSubmissionRepository) CountPassed(userID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&model.ExerciseSubmission{}).
		Where("user_id = ? AND passed = ?", userID, true).
		Count(&count).Error
	return count, err
}
