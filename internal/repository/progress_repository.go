package repository

import (
	"learning_platform_backend/internal/model"

	"gorm.io/gorm"
)

type ProgressRepository struct {
	DB *gorm.DB
}

func NewProgressRepository(db *gorm.DB) *ProgressRepository {
	return &ProgressRepository{DB: db}
}

func (r *ProgressRepository) FindByUserAndChapterAndSection(userID uint, chapterID, sectionID string) (*model.Progress, error) {
	var progress model.Progress
	err := r.DB.Where("user_id = ? AND chapter_id = ? AND section_id = ?", userID, chapterID, sectionID).
		First(&progress).Error
	if err != nil {
		return nil, err
	}
	return &progress, nil
}

func (r *ProgressRepository) FindByUserID(userID uint) ([]model.Progress, error) {
	var progress []model.Progress
	err := r.DB.Where("user_id = ?", userID).Find(&progress).Error
	if err != nil {
		return nil, err
	}
	return progress, nil
}

func (r *ProgressRepository) FindByUserIDAndChapterID(userID uint, chapterID string) ([]model.Progress, error) {
	var progress []model.Progress
	err := r.DB.Where("user_id = ? AND chapter_id = ?", userID, chapterID).Find(&progress).Error
	if err != nil {
		return nil, err
	}
	return progress, nil
}

// CountDistinctCompletedChapters 统计已完成的不同章节数；同一章节多个小节只算一次
func (r *ProgressRepository) CountDistinctCompletedChapters(userID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&model.Progress{}).
		Where("user_id = ? AND completed = ?", userID, true).
		Distinct("chapter_id").
		Count(&count).Error
	return count, err
}

func (r *ProgressRepository) Save(progress *model.Progress) error {
	return r.DB.Save(progress).Error
}
